package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokedex/viewer/internal/domain"
)

// StatBarCells is the width of a rendered stat bar.
const StatBarCells = 30

// StatBar renders a horizontal bar proportional to value/255 across cells.
// A negative cell count renders nothing.
func StatBar(stat domain.Stat, cells int) string {
	cells = max(cells, 0)
	filled := min(max(int(math.Round(stat.BarWidth()/100*float64(cells))), 0), cells)
	return lipgloss.NewStyle().Foreground(Fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(Track).Render(strings.Repeat("░", cells-filled))
}

// Detail renders the full panel for one item with its neighbours.
func Detail(d *domain.Detail, prev, next int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(DisplayName(d.Name)), numberStyle.Render(d.Number()))

	badges := make([]string, len(d.Types))
	for i, t := range d.Types {
		badges[i] = Badge(t)
	}
	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n\n")

	if d.Description != "" {
		b.WriteString(d.Description)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "%s%.1f m\n", labelStyle.Render("Height:"), d.HeightMeters())
	fmt.Fprintf(&b, "%s%.1f kg\n", labelStyle.Render("Weight:"), d.WeightKilograms())
	fmt.Fprintf(&b, "%s%d\n", labelStyle.Render("Base Exp.:"), d.BaseExperience)

	b.WriteString("\n" + titleStyle.Render("Abilities") + "\n")
	for _, a := range d.Abilities {
		if a.Hidden {
			fmt.Fprintf(&b, "  %s %s\n", a.Name, hiddenStyle.Render("(Hidden)"))
		} else {
			fmt.Fprintf(&b, "  %s\n", a.Name)
		}
	}

	b.WriteString("\n" + titleStyle.Render("Base Stats") + "\n")
	for _, s := range d.Stats {
		fmt.Fprintf(&b, "  %s %s %3d\n", labelStyle.Render(s.Label()), StatBar(s, StatBarCells), s.Value)
	}

	b.WriteString("\n" + titleStyle.Render("Sprites") + "\n")
	sprites := []struct{ label, url string }{
		{"Artwork", d.ArtworkURL},
		{"Front", d.Sprites.Front},
		{"Back", d.Sprites.Back},
		{"Shiny Front", d.Sprites.FrontShiny},
		{"Shiny Back", d.Sprites.BackShiny},
	}
	for _, s := range sprites {
		if s.url != "" {
			fmt.Fprintf(&b, "  %s%s\n", labelStyle.Render(s.label), s.url)
		}
	}

	fmt.Fprintf(&b, "\n%s  %s\n",
		numberStyle.Render(fmt.Sprintf("← #%03d", prev)),
		numberStyle.Render(fmt.Sprintf("#%03d →", next)))

	return b.String()
}
