// Package tui is the terminal host of the widget: a bubbletea program acting as
// the carousel, showing a sliding window of language cards.
package tui

import (
	"fmt"
	"strings"

	"github.com/Scalingo/gitlangcards/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type cardsMsg struct {
	cards []model.LanguageCard
}

type carouselMsg struct {
	items int
}

// StatusMsg replaces the status line, used to report a failed fetch
type StatusMsg string

type Model struct {
	username string
	cards    []model.LanguageCard
	offset   int
	visible  int
	active   bool
	status   string
}

func NewModel(username string, visible int) Model {
	if visible < 1 {
		visible = 1
	}

	return Model{
		username: username,
		visible:  visible,
		status:   "loading languages...",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsMsg:
		m.cards = msg.cards
		m.offset = 0

	case carouselMsg:
		m.active = true
		m.offset = 0
		m.status = fmt.Sprintf("%d languages", msg.items)

	case StatusMsg:
		m.status = string(msg)

	case tea.WindowSizeMsg:
		// keep room for the card borders
		m.visible = max(1, msg.Width/(cardWidth+4))
		m.offset = m.clamp(m.offset)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l":
			m.offset = m.clamp(m.offset + 1)
		case "left", "h":
			m.offset = m.clamp(m.offset - 1)
		case "home":
			m.offset = 0
		case "end":
			m.offset = m.clamp(len(m.cards))
		}
	}

	return m, nil
}

func (m Model) clamp(offset int) int {
	maxOffset := len(m.cards) - m.visible
	if maxOffset < 0 {
		maxOffset = 0
	}

	return min(max(offset, 0), maxOffset)
}

// Window returns the cards currently in view
func (m Model) Window() []model.LanguageCard {
	if !m.active || len(m.cards) == 0 {
		return nil
	}

	end := min(m.offset+m.visible, len(m.cards))
	return m.cards[m.offset:end]
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(languageStyle.Render(m.username))
	b.WriteString(mutedStyle.Render(" · " + m.status))
	b.WriteString("\n\n")

	window := m.Window()
	if len(window) > 0 {
		rendered := make([]string, 0, len(window))
		for _, card := range window {
			rendered = append(rendered, RenderCard(card))
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		b.WriteString("\n")
		b.WriteString(m.indicator())
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("←/→ slide · q quit"))
	b.WriteString("\n")

	return b.String()
}

// indicator shows which cards are in view
func (m Model) indicator() string {
	dots := make([]string, len(m.cards))
	for i := range m.cards {
		if i >= m.offset && i < m.offset+m.visible {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}

	return mutedStyle.Render(strings.Join(dots, " "))
}
