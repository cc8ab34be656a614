package tui

import (
	"github.com/Scalingo/gitlangcards/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Sender is the part of *tea.Program the browser needs
type Sender interface {
	Send(msg tea.Msg)
	Quit()
}

// Browser is both the mount and the carousel of a widget container running in a terminal.
// Cards and carousel state are forwarded to the bubbletea program as messages.
type Browser struct {
	program Sender
}

func NewBrowser(program Sender) *Browser {
	return &Browser{program: program}
}

func (b *Browser) Render(cards []model.LanguageCard) error {
	b.program.Send(cardsMsg{cards: cards})
	return nil
}

func (b *Browser) Initialize(items int) error {
	b.program.Send(carouselMsg{items: items})
	return nil
}

// Destroy stops the program, the terminal is restored by bubbletea
func (b *Browser) Destroy() error {
	b.program.Quit()
	return nil
}
