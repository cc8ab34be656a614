package widget

import (
	"github.com/Scalingo/gitlangcards/colors"
	"github.com/Scalingo/gitlangcards/model"
	"github.com/Scalingo/gitlangcards/service"
)

// State is the view state owned by a Container.
// Revision is bumped on every successful fetch, cards are always replaced as a whole.
type State struct {
	Username string
	Cards    []model.LanguageCard
	Revision int
}

// FetchResult is what the repository fetch hands back to the container
type FetchResult struct {
	Repositories []model.RepositoryDescriptor
	Err          error
}

// Reduce computes the state following a fetch. On error the current state is returned untouched
// along with the error, the caller decides how to report it.
func Reduce(current State, username string, result FetchResult, table *colors.Table) (State, error) {
	if result.Err != nil {
		return current, result.Err
	}

	entries := service.AggregateLanguages(username, result.Repositories)

	cards := make([]model.LanguageCard, 0, len(entries))
	for _, entry := range entries {
		cards = append(cards, NewCard(entry, table))
	}

	return State{
		Username: username,
		Cards:    cards,
		Revision: current.Revision + 1,
	}, nil
}

func (s State) clone() State {
	cards := make([]model.LanguageCard, len(s.Cards))
	copy(cards, s.Cards)
	s.Cards = cards

	return s
}
