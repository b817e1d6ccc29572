package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"pokedex/viewer/internal/domain"

	log "github.com/sirupsen/logrus"
)

// responseMapper turns raw API payloads into domain records.
type responseMapper struct {
	language string
}

func newResponseMapper(language string) *responseMapper {
	if language == "" {
		language = "en"
	}
	return &responseMapper{
		language: language,
	}
}

func (p *responseMapper) ParseList(body []byte) ([]domain.Reference, error) {
	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	refs := make([]domain.Reference, 0, len(list.Results))
	for _, result := range list.Results {
		if result.URL == "" {
			return nil, fmt.Errorf("reference %q has no url", result.Name)
		}
		refs = append(refs, domain.Reference{Name: result.Name, URL: result.URL})
	}

	return refs, nil
}

func (p *responseMapper) ParsePokemon(body []byte) (*domain.Detail, error) {
	var raw pokemonResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if raw.ID <= 0 || raw.Name == "" {
		return nil, fmt.Errorf("payload has no id or name")
	}

	types := make([]domain.TypeName, 0, len(raw.Types))
	for _, t := range raw.Types {
		types = append(types, domain.TypeName(t.Type.Name))
	}

	abilities := make([]domain.Ability, 0, len(raw.Abilities))
	for _, a := range raw.Abilities {
		abilities = append(abilities, domain.Ability{Name: a.Ability.Name, Hidden: a.IsHidden})
	}

	stats := make([]domain.Stat, 0, len(raw.Stats))
	for _, s := range raw.Stats {
		stats = append(stats, domain.Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}

	artwork := raw.Sprites.Other.OfficialArtwork.FrontDefault
	if artwork == "" {
		artwork = raw.Sprites.FrontDefault
	}

	return &domain.Detail{
		Summary: domain.Summary{
			ID:       raw.ID,
			Name:     raw.Name,
			ImageURL: raw.Sprites.FrontDefault,
			Types:    types,
		},
		Height:         raw.Height,
		Weight:         raw.Weight,
		BaseExperience: raw.BaseExperience,
		ArtworkURL:     artwork,
		Sprites: domain.Sprites{
			Front:      raw.Sprites.FrontDefault,
			Back:       raw.Sprites.BackDefault,
			FrontShiny: raw.Sprites.FrontShiny,
			BackShiny:  raw.Sprites.BackShiny,
		},
		Abilities:  abilities,
		Stats:      stats,
		SpeciesURL: raw.Species.URL,
	}, nil
}

// ParseDescription returns the first flavor text in the mapper's language,
// or an empty string when there is none.
func (p *responseMapper) ParseDescription(body []byte) (string, error) {
	var species speciesResponse
	if err := json.Unmarshal(body, &species); err != nil {
		return "", fmt.Errorf("failed to decode JSON: %w", err)
	}

	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name == p.language {
			return normalizeFlavorText(entry.FlavorText), nil
		}
	}

	log.Debugf("No %q flavor text among %d entries", p.language, len(species.FlavorTextEntries))
	return "", nil
}

// normalizeFlavorText replaces each control character (form feeds and line
// breaks in the game text) with a single space.
func normalizeFlavorText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
