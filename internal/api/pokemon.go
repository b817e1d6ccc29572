package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pokedex/viewer/internal/domain"
	"pokedex/viewer/internal/service"
)

// handleListPokemon returns the filtered, sorted and paginated collection
func (s *Server) handleListPokemon(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.catalog.Visible(r.Context(), q)
	if err != nil {
		respondError(w, http.StatusBadGateway, service.UserMessage(err))
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// handleGetPokemon returns one pokemon with its neighbours
func (s *Server) handleGetPokemon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	detail, err := s.catalog.Detail(r.Context(), strconv.Itoa(id))
	if err != nil {
		respondError(w, http.StatusBadGateway, service.UserMessage(err))
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

type typeInfo struct {
	Name  domain.TypeName `json:"name"`
	Color string          `json:"color"`
}

// handleGetTypes returns the type catalogue used by the gallery filter
func (s *Server) handleGetTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]typeInfo, len(domain.Types))
	for i, t := range domain.Types {
		types[i] = typeInfo{Name: t, Color: t.Color()}
	}
	respondJSON(w, http.StatusOK, types)
}

func parseQuery(r *http.Request) (domain.Query, error) {
	values := r.URL.Query()

	sortKey, err := domain.ParseSortKey(values.Get("sort"))
	if err != nil {
		return domain.Query{}, err
	}

	descending, err := domain.ParseSortOrder(values.Get("order"))
	if err != nil {
		return domain.Query{}, err
	}

	q := domain.Query{
		Text:       values.Get("q"),
		Type:       domain.TypeName(values.Get("type")),
		Sort:       sortKey,
		Descending: descending,
	}

	if q.Page, err = parsePositive(values.Get("page"), "page"); err != nil {
		return domain.Query{}, err
	}
	if q.PageSize, err = parsePositive(values.Get("page_size"), "page_size"); err != nil {
		return domain.Query{}, err
	}

	return q, nil
}

func parsePositive(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &paramError{name: name}
	}
	return n, nil
}

type paramError struct {
	name string
}

func (e *paramError) Error() string {
	return e.name + " must be a positive integer"
}
