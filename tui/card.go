package tui

import (
	"github.com/Scalingo/gitlangcards/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const cardWidth = 34

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(cardWidth)

	languageStyle = lipgloss.NewStyle().Bold(true)
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Underline(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Swatch is a small block painted with the language color
func Swatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

// hyperlink wraps text in an OSC 8 sequence, terminals without support show the text only
func hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// RenderCard draws a single language card for the terminal
func RenderCard(card model.LanguageCard) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		languageStyle.Render(card.Language),
		linkStyle.Render(hyperlink(card.ProjectsURL, "Projects with this language")),
	)

	return cardStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, Swatch(card.Color), " ", body))
}

// RenderTable lists the cards as a table, used by non interactive output
func RenderTable(cards []model.LanguageCard) string {
	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, []string{Swatch(card.Color), card.Language, card.Color, card.ProjectsURL})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("", "LANGUAGE", "COLOR", "PROJECTS").
		Rows(rows...).
		String()
}
