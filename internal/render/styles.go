// Package render draws list, gallery and detail views for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pokedex/viewer/internal/domain"
)

var (
	Accent = lipgloss.Color("#EF5350")
	Muted  = lipgloss.Color("#8A8F98")
	Track  = lipgloss.Color("#3A3F4B")
	Fill   = lipgloss.Color("#8BC34A")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	numberStyle = lipgloss.NewStyle().Foreground(Muted)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(12)
	hiddenStyle = lipgloss.NewStyle().Italic(true).Foreground(Muted)
	emptyStyle  = lipgloss.NewStyle().Italic(true).Foreground(Muted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1).
			Width(CardWidth)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)
)

// CardWidth is the inner width of a gallery card.
const CardWidth = 18

var titleCaser = cases.Title(language.English)

// DisplayName title-cases an API name, e.g. "mr-mime" -> "Mr-Mime".
func DisplayName(name string) string {
	return titleCaser.String(name)
}

// Badge renders a type tag on its type colour.
func Badge(t domain.TypeName) string {
	return badgeStyle.Background(lipgloss.Color(t.Color())).Render(t.String())
}

// SelectedBadge marks the active type in a filter bar.
func SelectedBadge(t domain.TypeName) string {
	return badgeStyle.Background(lipgloss.Color(t.Color())).Bold(true).Underline(true).Render("[" + t.String() + "]")
}
