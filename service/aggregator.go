package service

import "github.com/Scalingo/gitlangcards/model"

// AggregateLanguages returns one entry per distinct language found in repos, in first-seen order.
// Repositories without a language are ignored.
func AggregateLanguages(username string, repos []model.RepositoryDescriptor) model.LanguageEntries {
	entries := make(model.LanguageEntries, 0)
	positions := make(map[string]int)

	for _, r := range repos {
		if !r.HasLanguage() {
			continue
		}

		entry := model.LanguageEntry{
			Language:    *r.Language,
			ProjectsURL: model.ProjectsFilter{Username: username, Language: *r.Language}.ToProjectsURL(),
		}

		// same language seen again: the url is the same, last write wins
		if i, found := positions[entry.Language]; found {
			entries[i] = entry
			continue
		}

		positions[entry.Language] = len(entries)
		entries = append(entries, entry)
	}

	return entries
}
