package domain

import "fmt"

// Reference is a single entry of the paginated list endpoint.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Summary struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	ImageURL string     `json:"image_url"`
	Types    []TypeName `json:"types"`
}

// Number returns the zero-padded display number, e.g. "#025".
func (s Summary) Number() string {
	return fmt.Sprintf("#%03d", s.ID)
}

// HasType reports whether the item carries the given category tag.
func (s Summary) HasType(t TypeName) bool {
	for _, own := range s.Types {
		if own == t {
			return true
		}
	}
	return false
}

type Sprites struct {
	Front      string `json:"front,omitempty"`
	Back       string `json:"back,omitempty"`
	FrontShiny string `json:"front_shiny,omitempty"`
	BackShiny  string `json:"back_shiny,omitempty"`
}

type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

type Detail struct {
	Summary

	Height         int       `json:"height"` // decimetres
	Weight         int       `json:"weight"` // hectograms
	BaseExperience int       `json:"base_experience"`
	ArtworkURL     string    `json:"artwork_url"`
	Sprites        Sprites   `json:"sprites"`
	Abilities      []Ability `json:"abilities"`
	Stats          []Stat    `json:"stats"`
	SpeciesURL     string    `json:"species_url,omitempty"`
	Description    string    `json:"description"`
}

func (d Detail) HeightMeters() float64 {
	return float64(d.Height) / 10
}

func (d Detail) WeightKilograms() float64 {
	return float64(d.Weight) / 10
}
