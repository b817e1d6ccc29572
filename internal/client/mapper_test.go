package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/viewer/internal/domain"
)

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "base_experience": 112,
  "sprites": {
    "front_default": "https://img.test/25.png",
    "back_default": "https://img.test/back/25.png",
    "front_shiny": "https://img.test/shiny/25.png",
    "back_shiny": null,
    "other": {"official-artwork": {"front_default": "https://img.test/art/25.png"}}
  },
  "types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
  "abilities": [
    {"ability": {"name": "static"}, "is_hidden": false, "slot": 1},
    {"ability": {"name": "lightning-rod"}, "is_hidden": true, "slot": 3}
  ],
  "stats": [
    {"base_stat": 35, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 90, "effort": 2, "stat": {"name": "speed"}}
  ],
  "species": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-species/25/"}
}`

func TestResponseMapper_ParsePokemon(t *testing.T) {
	m := newResponseMapper("en")

	d, err := m.ParsePokemon([]byte(pikachuJSON))
	require.NoError(t, err)

	assert.Equal(t, 25, d.ID)
	assert.Equal(t, "pikachu", d.Name)
	assert.Equal(t, "https://img.test/25.png", d.ImageURL)
	assert.Equal(t, []domain.TypeName{domain.TypeElectric}, d.Types)
	assert.Equal(t, 4, d.Height)
	assert.Equal(t, 60, d.Weight)
	assert.Equal(t, 112, d.BaseExperience)
	assert.Equal(t, "https://img.test/art/25.png", d.ArtworkURL)
	assert.Equal(t, "", d.Sprites.BackShiny)
	assert.Equal(t, []domain.Ability{{Name: "static"}, {Name: "lightning-rod", Hidden: true}}, d.Abilities)
	assert.Equal(t, []domain.Stat{{Name: "hp", Value: 35}, {Name: "speed", Value: 90}}, d.Stats)
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon-species/25/", d.SpeciesURL)
}

func TestResponseMapper_ArtworkFallsBackToFrontSprite(t *testing.T) {
	m := newResponseMapper("en")

	d, err := m.ParsePokemon([]byte(`{"id": 1, "name": "bulbasaur", "sprites": {"front_default": "front.png", "other": {"official-artwork": {"front_default": null}}}}`))
	require.NoError(t, err)

	assert.Equal(t, "front.png", d.ArtworkURL)
}

func TestResponseMapper_ParsePokemonRejectsMalformed(t *testing.T) {
	m := newResponseMapper("en")

	_, err := m.ParsePokemon([]byte(`{"id": "x"`))
	assert.Error(t, err)

	_, err = m.ParsePokemon([]byte(`{"name": "missingno"}`))
	assert.Error(t, err)
}

func TestResponseMapper_ParseList(t *testing.T) {
	m := newResponseMapper("en")

	refs, err := m.ParseList([]byte(`{"count": 2, "next": null, "results": [
		{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
		{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []domain.Reference{
		{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
		{Name: "ivysaur", URL: "https://pokeapi.co/api/v2/pokemon/2/"},
	}, refs)

	_, err = m.ParseList([]byte(`{"results": [{"name": "broken"}]}`))
	assert.Error(t, err)
}

func TestResponseMapper_ParseDescription(t *testing.T) {
	body := []byte(`{"flavor_text_entries": [
		{"flavor_text": "Lorsque plusieurs\nde ces POKéMON", "language": {"name": "fr"}},
		{"flavor_text": "When several of\nthese POKéMON\fgather, their\relectricity could\tbuild.", "language": {"name": "en"}},
		{"flavor_text": "Second English entry.", "language": {"name": "en"}}
	]}`)

	got, err := newResponseMapper("en").ParseDescription(body)
	require.NoError(t, err)
	assert.Equal(t, "When several of these POKéMON gather, their electricity could build.", got)

	got, err = newResponseMapper("fr").ParseDescription(body)
	require.NoError(t, err)
	assert.Equal(t, "Lorsque plusieurs de ces POKéMON", got)

	got, err = newResponseMapper("de").ParseDescription(body)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizeFlavorText(t *testing.T) {
	assert.Equal(t, "a b  c", normalizeFlavorText("a\fb\n\nc"))
	assert.Equal(t, "plain", normalizeFlavorText("plain"))
}
