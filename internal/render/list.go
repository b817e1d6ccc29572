package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokedex/viewer/internal/domain"
	"pokedex/viewer/internal/view"
)

const (
	noSearchResults = "No Pokemon found matching your search."
	noTypeResults   = "No Pokemon found for this type."
)

// List renders one row per item.
func List(page view.Page) string {
	if len(page.Items) == 0 {
		return emptyStyle.Render(noSearchResults) + "\n"
	}

	var b strings.Builder
	for _, item := range page.Items {
		fmt.Fprintf(&b, "%s  %s\n", numberStyle.Render(item.Number()), DisplayName(item.Name))
	}
	b.WriteString(footer(page))
	return b.String()
}

// TypeBar renders every known type, highlighting selected.
func TypeBar(selected domain.TypeName) string {
	badges := make([]string, 0, len(domain.Types))
	for _, t := range domain.Types {
		if t == selected {
			badges = append(badges, SelectedBadge(t))
		} else {
			badges = append(badges, Badge(t))
		}
	}
	return strings.Join(badges, " ")
}

// Gallery renders the type filter bar and a grid of cards, columns wide.
func Gallery(page view.Page, selected domain.TypeName, columns int) string {
	var b strings.Builder
	b.WriteString(TypeBar(selected))
	b.WriteString("\n\n")

	if len(page.Items) == 0 {
		b.WriteString(emptyStyle.Render(noTypeResults))
		b.WriteString("\n")
		return b.String()
	}

	if columns < 1 {
		columns = 1
	}

	for start := 0; start < len(page.Items); start += columns {
		end := min(start+columns, len(page.Items))
		cards := make([]string, 0, end-start)
		for _, item := range page.Items[start:end] {
			cards = append(cards, Card(item))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
	}
	b.WriteString(footer(page))
	return b.String()
}

// Card renders a single gallery card.
func Card(item domain.Summary) string {
	badges := make([]string, len(item.Types))
	for i, t := range item.Types {
		badges[i] = Badge(t)
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(DisplayName(item.Name)),
		numberStyle.Render(item.Number()),
		strings.Join(badges, " "),
	))
}

func footer(page view.Page) string {
	if page.TotalPages <= 1 {
		return numberStyle.Render(fmt.Sprintf("%d shown", page.TotalCount)) + "\n"
	}
	return numberStyle.Render(fmt.Sprintf("page %d of %d, %d total", page.Page, page.TotalPages, page.TotalCount)) + "\n"
}
