// Package pokeapitest provides an in-process fake of the PokeAPI endpoints
// used by the viewer, for tests.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Pokemon is the fake server's record for one creature.
type Pokemon struct {
	ID          int
	Name        string
	Types       []string
	Description string
}

// Starters are the first nine entries of the national dex.
var Starters = []Pokemon{
	{1, "bulbasaur", []string{"grass", "poison"}, "A strange seed was\nplanted on its\fback at birth."},
	{2, "ivysaur", []string{"grass", "poison"}, "When the bulb on\nits back grows large, it\fappears to lose the\nability to stand."},
	{3, "venusaur", []string{"grass", "poison"}, "The plant blooms\nwhen it is absorbing\fsolar energy."},
	{4, "charmander", []string{"fire"}, "Obviously prefers\nhot places.\fWhen it rains, steam\nis said to spout\nfrom the tip of its\ntail."},
	{5, "charmeleon", []string{"fire"}, "When it swings\nits burning tail,\fit elevates the\ntemperature to\nunbearably high\nlevels."},
	{6, "charizard", []string{"fire", "flying"}, "Spits fire that\nis hot enough to\fmelt boulders."},
	{7, "squirtle", []string{"water"}, "After birth, its\nback swells and\fhardens into a\nshell."},
	{8, "wartortle", []string{"water"}, "Often hides in\nwater to stalk\funwary prey."},
	{9, "blastoise", []string{"water"}, "A brutal POKéMON\nwith pressurized\fwater jets on its\nshell."},
}

// MockPokeAPI serves /pokemon, /pokemon/{id}/ and /pokemon-species/{id}/.
type MockPokeAPI struct {
	Server *httptest.Server

	mu       sync.RWMutex
	pokemon  []Pokemon
	listGate chan struct{}

	// Failure simulation
	FailList      atomic.Bool
	failDetail    map[int]bool
	failSpecies   map[int]bool
	malformDetail map[int]bool

	ListRequests    atomic.Int32
	DetailRequests  atomic.Int32
	SpeciesRequests atomic.Int32
}

// NewMockPokeAPI starts a fake API serving the given creatures in order.
func NewMockPokeAPI(pokemon []Pokemon) *MockPokeAPI {
	mock := &MockPokeAPI{
		pokemon:       pokemon,
		failDetail:    make(map[int]bool),
		failSpecies:   make(map[int]bool),
		malformDetail: make(map[int]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /pokemon", mock.handleList)
	mux.HandleFunc("GET /pokemon/{id}/", mock.handleDetail)
	mux.HandleFunc("GET /pokemon/{id}", mock.handleDetail)
	mux.HandleFunc("GET /pokemon-species/{id}/", mock.handleSpecies)

	mock.Server = httptest.NewServer(mux)
	return mock
}

// URL is the base URL to configure the client with.
func (m *MockPokeAPI) URL() string {
	return m.Server.URL
}

func (m *MockPokeAPI) Close() {
	m.Server.Close()
}

func (m *MockPokeAPI) find(key string) (Pokemon, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, err := strconv.Atoi(key)
	for _, p := range m.pokemon {
		if (err == nil && p.ID == id) || strings.EqualFold(p.Name, key) {
			return p, true
		}
	}
	return Pokemon{}, false
}

func (m *MockPokeAPI) handleList(w http.ResponseWriter, r *http.Request) {
	m.ListRequests.Add(1)

	m.mu.RLock()
	gate := m.listGate
	m.mu.RUnlock()
	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if m.FailList.Load() {
		http.Error(w, "list unavailable", http.StatusInternalServerError)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	m.mu.RLock()
	all := m.pokemon
	m.mu.RUnlock()

	results := make([]map[string]string, 0, limit)
	for i := offset; i < len(all) && i < offset+limit; i++ {
		results = append(results, map[string]string{
			"name": all[i].Name,
			"url":  fmt.Sprintf("%s/pokemon/%d/", m.Server.URL, all[i].ID),
		})
	}

	writeJSON(w, map[string]any{
		"count":    len(all),
		"next":     nil,
		"previous": nil,
		"results":  results,
	})
}

func (m *MockPokeAPI) handleDetail(w http.ResponseWriter, r *http.Request) {
	m.DetailRequests.Add(1)

	p, ok := m.find(r.PathValue("id"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if m.failing(m.failDetail, p.ID) {
		http.Error(w, "detail unavailable", http.StatusInternalServerError)
		return
	}
	if m.failing(m.malformDetail, p.ID) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "not-a-number",`)
		return
	}

	types := make([]map[string]any, len(p.Types))
	for i, t := range p.Types {
		types[i] = map[string]any{
			"slot": i + 1,
			"type": map[string]string{"name": t, "url": m.Server.URL + "/type/" + t + "/"},
		}
	}

	stats := []map[string]any{}
	for i, name := range []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"} {
		stats = append(stats, map[string]any{
			"base_stat": 40 + p.ID + i*5,
			"effort":    0,
			"stat":      map[string]string{"name": name},
		})
	}

	writeJSON(w, map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"height":          p.ID * 3,
		"weight":          p.ID * 50,
		"base_experience": 60 + p.ID,
		"sprites": map[string]any{
			"front_default": spriteURL("", p.ID),
			"back_default":  spriteURL("back/", p.ID),
			"front_shiny":   spriteURL("shiny/", p.ID),
			"back_shiny":    nil,
			"other": map[string]any{
				"official-artwork": map[string]any{
					"front_default": spriteURL("other/official-artwork/", p.ID),
				},
			},
		},
		"types": types,
		"abilities": []map[string]any{
			{"ability": map[string]string{"name": p.Name + "-ability"}, "is_hidden": false, "slot": 1},
			{"ability": map[string]string{"name": p.Name + "-hidden"}, "is_hidden": true, "slot": 3},
		},
		"stats": stats,
		"species": map[string]string{
			"name": p.Name,
			"url":  fmt.Sprintf("%s/pokemon-species/%d/", m.Server.URL, p.ID),
		},
	})
}

func (m *MockPokeAPI) handleSpecies(w http.ResponseWriter, r *http.Request) {
	m.SpeciesRequests.Add(1)

	p, ok := m.find(r.PathValue("id"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if m.failing(m.failSpecies, p.ID) {
		http.Error(w, "species unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"id":   p.ID,
		"name": p.Name,
		"flavor_text_entries": []map[string]any{
			{"flavor_text": "Texte en français.", "language": map[string]string{"name": "fr"}},
			{"flavor_text": p.Description, "language": map[string]string{"name": "en"}},
			{"flavor_text": "A later English entry.", "language": map[string]string{"name": "en"}},
		},
	})
}

func (m *MockPokeAPI) failing(set map[int]bool, id int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return set[id]
}

// SetFailDetail toggles failure of the detail endpoint for id.
func (m *MockPokeAPI) SetFailDetail(id int, fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failDetail[id] = fail
}

func (m *MockPokeAPI) SetFailSpecies(id int, fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSpecies[id] = fail
}

// SetMalformDetail makes the detail endpoint for id return truncated JSON.
func (m *MockPokeAPI) SetMalformDetail(id int, malformed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.malformDetail[id] = malformed
}

// HoldList makes list requests block until release is called or the
// request is abandoned.
func (m *MockPokeAPI) HoldList() (release func()) {
	gate := make(chan struct{})

	m.mu.Lock()
	m.listGate = gate
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { close(gate) })
	}
}

func spriteURL(variant string, id int) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%s%d.png", variant, id)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
