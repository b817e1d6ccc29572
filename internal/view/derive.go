// Package view derives what is shown from a loaded collection and the
// current query. Nothing here touches the network or mutates its input.
package view

import (
	"cmp"
	"slices"
	"strings"

	"pokedex/viewer/internal/domain"
)

// Derive returns the visible subset of items for q. The result is a new
// slice; items is never reordered or modified. Pagination is not applied.
func Derive(items []domain.Summary, q domain.Query) []domain.Summary {
	needle := strings.ToLower(q.Text)

	visible := make([]domain.Summary, 0, len(items))
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if q.Type != "" && !item.HasType(q.Type) {
			continue
		}
		visible = append(visible, item)
	}

	if compare := comparator(q.Sort); compare != nil {
		if q.Descending {
			asc := compare
			compare = func(a, b domain.Summary) int { return asc(b, a) }
		}
		slices.SortStableFunc(visible, compare)
	}

	return visible
}

func comparator(key domain.SortKey) func(a, b domain.Summary) int {
	switch key {
	case domain.SortByID:
		return func(a, b domain.Summary) int { return cmp.Compare(a.ID, b.ID) }
	case domain.SortByName:
		return func(a, b domain.Summary) int { return strings.Compare(a.Name, b.Name) }
	default:
		return nil
	}
}

// Page is one window of a derived list.
type Page struct {
	Items      []domain.Summary `json:"items"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// Paginate cuts items into 1-based pages of size. A size of zero or less
// returns everything as a single page. Pages past the end are empty.
func Paginate(items []domain.Summary, page, size int) Page {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return Page{Items: items, TotalCount: len(items), Page: 1, TotalPages: 1}
	}

	totalPages := len(items) / size
	if len(items)%size != 0 || totalPages == 0 {
		totalPages++
	}

	if page > totalPages {
		return Page{Items: items[:0:0], TotalCount: len(items), Page: page, TotalPages: totalPages}
	}

	start := (page - 1) * size
	end := start + min(size, len(items)-start)

	return Page{
		Items:      items[start:end],
		TotalCount: len(items),
		Page:       page,
		TotalPages: totalPages,
	}
}
