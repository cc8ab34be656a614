package model

// NoLanguage is the placeholder GitHub sometimes serializes for repositories without a detected language
const NoLanguage = "null"

// RepositoryDescriptor is the part of a GitHub repository the widget cares about.
// Language is nil when GitHub could not detect one.
type RepositoryDescriptor struct {
	Name     string  `json:"name"`
	Language *string `json:"language,omitempty"`
}

// HasLanguage reports whether the descriptor carries a usable language
func (r RepositoryDescriptor) HasLanguage() bool {
	return r.Language != nil && *r.Language != "" && *r.Language != NoLanguage
}

type LanguageEntry struct {
	Language    string `json:"language"`
	ProjectsURL string `json:"projectsURL"`
}

type LanguageEntries []LanguageEntry

// ToMap returns the language -> projects URL mapping
func (entries LanguageEntries) ToMap() map[string]string {
	mapping := make(map[string]string, len(entries))

	for _, e := range entries {
		mapping[e.Language] = e.ProjectsURL
	}

	return mapping
}
