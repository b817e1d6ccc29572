package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pokedex/viewer/internal/config"
	"pokedex/viewer/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type PokeAPIClient interface {
	ListPokemon(ctx context.Context, limit, offset int) ([]domain.Reference, error)
	GetPokemonPage(ctx context.Context, limit int) ([]*domain.Detail, error)
	GetPokemon(ctx context.Context, idOrName string) (*domain.Detail, error)
	GetPokemonByURL(ctx context.Context, url string) (*domain.Detail, error)
	GetDescription(ctx context.Context, speciesURL string) (string, error)
}

type pokeAPIClient struct {
	rl         ratelimit.Limiter
	config     config.PokeAPIConfig
	baseURL    string
	timeout    time.Duration
	httpClient *resty.Client
	mapper     *responseMapper
}

// NewPokeAPIClient builds a client for the API at cfg.BaseURL. Requests are
// attempted once; there is no retry.
func NewPokeAPIClient(cfg config.PokeAPIConfig) PokeAPIClient {
	timeout := time.Duration(cfg.Timeout) * time.Second

	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
		log.Infof("🔗 Using proxy: %s", cfg.Proxy)
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &pokeAPIClient{
		rl:         rl,
		config:     cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    timeout,
		httpClient: client,
		mapper:     newResponseMapper(cfg.Language),
	}
}

func (c *pokeAPIClient) ListPokemon(ctx context.Context, limit, offset int) ([]domain.Reference, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)

	body, err := c.fetchJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon list: %w", err)
	}

	refs, err := c.mapper.ParseList(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pokemon list: %w", err)
	}

	log.Debugf("Fetched list page with %d references (limit=%d offset=%d)", len(refs), limit, offset)
	return refs, nil
}

// GetPokemonPage fetches the first limit references and then every detail
// record concurrently. It returns once all detail requests have settled;
// if any of them failed the whole page fails and nothing is returned.
func (c *pokeAPIClient) GetPokemonPage(ctx context.Context, limit int) ([]*domain.Detail, error) {
	refs, err := c.ListPokemon(ctx, limit, 0)
	if err != nil {
		return nil, err
	}

	details, err := fetchAll(ctx, len(refs), c.config.MaxWorkers, func(ctx context.Context, i int) (*domain.Detail, error) {
		detail, err := c.GetPokemonByURL(ctx, refs[i].URL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", refs[i].Name, err)
		}
		return detail, nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("Joined %d detail records", len(details))
	return details, nil
}

func (c *pokeAPIClient) GetPokemon(ctx context.Context, idOrName string) (*domain.Detail, error) {
	return c.GetPokemonByURL(ctx, fmt.Sprintf("%s/pokemon/%s", c.baseURL, strings.ToLower(idOrName)))
}

func (c *pokeAPIClient) GetPokemonByURL(ctx context.Context, url string) (*domain.Detail, error) {
	body, err := c.fetchJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon: %w", err)
	}

	detail, err := c.mapper.ParsePokemon(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pokemon from %s: %w", url, err)
	}

	log.Debugf("Fetched pokemon %s %s", detail.Number(), detail.Name)
	return detail, nil
}

func (c *pokeAPIClient) GetDescription(ctx context.Context, speciesURL string) (string, error) {
	if speciesURL == "" {
		return "", fmt.Errorf("no species url")
	}

	body, err := c.fetchJSON(ctx, speciesURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch species: %w", err)
	}

	description, err := c.mapper.ParseDescription(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse species: %w", err)
	}

	return description, nil
}

func (c *pokeAPIClient) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	c.rl.Take()

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.httpClient.R().
		SetContext(reqCtx).
		Get(url)

	if err != nil {
		// Check if this is a context cancellation from the parent context
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return []byte(resp.String()), nil
}
