package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pokedex/viewer/internal/client"
	"pokedex/viewer/internal/domain"
	"pokedex/viewer/internal/view"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrCollectionLoad marks a failed list-plus-details load.
	ErrCollectionLoad = errors.New("collection load failed")
	// ErrItemLoad marks a failed single-item load.
	ErrItemLoad = errors.New("item load failed")
)

// UserMessage collapses any load error into the static message shown to
// the user. The cause is not included.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrItemLoad):
		return "Failed to fetch Pokemon details"
	case errors.Is(err, ErrCollectionLoad):
		return "Failed to fetch Pokemon list"
	default:
		return "API request failed"
	}
}

// DetailView is a single item together with its wraparound neighbours.
type DetailView struct {
	Pokemon *domain.Detail `json:"pokemon"`
	Prev    int            `json:"prev"`
	Next    int            `json:"next"`
}

// Catalog owns the loaded collection. A successful load replaces the
// collection wholesale; a failed one leaves the previous one untouched.
type Catalog struct {
	client   client.PokeAPIClient
	pageSize int

	group      singleflight.Group
	mu         sync.RWMutex
	collection []domain.Summary
	loaded     bool
}

func NewCatalog(client client.PokeAPIClient, pageSize int) *Catalog {
	return &Catalog{
		client:   client,
		pageSize: pageSize,
	}
}

// Load fetches the collection from the API and makes it current.
func (s *Catalog) Load(ctx context.Context) ([]domain.Summary, error) {
	logger := log.WithFields(log.Fields{
		"load_id":   uuid.NewString(),
		"page_size": s.pageSize,
	})
	logger.Info("🔄 Loading collection")

	details, err := s.client.GetPokemonPage(ctx, s.pageSize)
	if err != nil {
		logger.Errorf("❌ Collection load failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrCollectionLoad, err)
	}

	collection := make([]domain.Summary, len(details))
	for i, d := range details {
		collection[i] = d.Summary
	}

	s.mu.Lock()
	s.collection = collection
	s.loaded = true
	s.mu.Unlock()

	logger.Infof("✅ Loaded %d pokemon", len(collection))
	return collection, nil
}

// Collection returns the current collection, loading it on first use.
// Concurrent first callers share one load, which outlives any single
// caller's cancellation; a cancelled caller stops waiting and gets its own
// context error. Each request of the load is still bounded by the client
// timeout.
func (s *Catalog) Collection(ctx context.Context) ([]domain.Summary, error) {
	s.mu.RLock()
	collection, loaded := s.collection, s.loaded
	s.mu.RUnlock()

	if loaded {
		return collection, nil
	}

	ch := s.group.DoChan("collection", func() (interface{}, error) {
		return s.Load(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.Summary), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrCollectionLoad, ctx.Err())
	}
}

// Visible derives the page of the collection selected by q.
func (s *Catalog) Visible(ctx context.Context, q domain.Query) (view.Page, error) {
	collection, err := s.Collection(ctx)
	if err != nil {
		return view.Page{}, err
	}
	return view.Paginate(view.Derive(collection, q), q.Page, q.PageSize), nil
}

// Total is the known item count used for detail navigation: the size of
// the loaded collection, or the configured page size before any load.
func (s *Catalog) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loaded && len(s.collection) > 0 {
		return len(s.collection)
	}
	return s.pageSize
}

// LoadDetail fetches one item and then its species description.
func (s *Catalog) LoadDetail(ctx context.Context, idOrName string) (*domain.Detail, error) {
	logger := log.WithField("pokemon", idOrName)

	detail, err := s.client.GetPokemon(ctx, idOrName)
	if err != nil {
		logger.Errorf("❌ Detail load failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrItemLoad, err)
	}

	description, err := s.client.GetDescription(ctx, detail.SpeciesURL)
	if err != nil {
		logger.Errorf("❌ Description load failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrItemLoad, err)
	}
	detail.Description = description

	logger.Debugf("Loaded detail %s", detail.Number())
	return detail, nil
}

// Detail loads one item and computes its previous and next identifiers.
func (s *Catalog) Detail(ctx context.Context, idOrName string) (*DetailView, error) {
	detail, err := s.LoadDetail(ctx, idOrName)
	if err != nil {
		return nil, err
	}

	prev, next := view.Neighbors(detail.ID, s.Total())
	return &DetailView{
		Pokemon: detail,
		Prev:    prev,
		Next:    next,
	}, nil
}
