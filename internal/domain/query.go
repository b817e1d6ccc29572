package domain

import (
	"fmt"
	"strings"
)

type SortKey string

const (
	SortNone   SortKey = "" // keep source order
	SortByID   SortKey = "id"
	SortByName SortKey = "name"
)

func (k SortKey) String() string {
	return string(k)
}

// ParseSortKey accepts "id" or "name"; an empty string means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortNone:
		return SortNone, nil
	case SortByID:
		return SortByID, nil
	case SortByName:
		return SortByName, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// ParseSortOrder accepts "asc" or "desc" and reports whether the order is descending.
func ParseSortOrder(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return false, nil
	case "desc":
		return true, nil
	default:
		return false, fmt.Errorf("unknown sort order %q", s)
	}
}

// Query is the transient view state applied to a loaded collection.
// The zero value passes every item through in source order.
type Query struct {
	Text       string   `json:"text,omitempty"`
	Type       TypeName `json:"type,omitempty"`
	Sort       SortKey  `json:"sort,omitempty"`
	Descending bool     `json:"descending,omitempty"` // ignored with SortNone
	Page       int      `json:"page,omitempty"`
	PageSize   int      `json:"page_size,omitempty"` // 0 disables pagination
}

// ToggleType selects t, or clears the selection when t is already selected.
func (q Query) ToggleType(t TypeName) Query {
	if q.Type == t {
		q.Type = ""
	} else {
		q.Type = t
	}
	return q
}
