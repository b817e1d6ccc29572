package container

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"pokedex/viewer/internal/api"
	"pokedex/viewer/internal/client"
	"pokedex/viewer/internal/config"
	"pokedex/viewer/internal/service"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.PokeAPIClient
	Catalog *service.Catalog
	Server  *api.Server
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	pokeClient := client.NewPokeAPIClient(cfg.PokeAPI)
	catalog := service.NewCatalog(pokeClient, cfg.PokeAPI.PageSize)

	return &Container{
		Config:  cfg,
		Client:  pokeClient,
		Catalog: catalog,
		Server:  api.New(catalog, cfg.Server.AllowedOrigins),
	}, nil
}

// Serve listens on the configured address and runs the JSON view server
// until ctx is cancelled.
func (c *Container) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", c.Config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Config.Server.Addr(), err)
	}
	return c.ServeListener(ctx, ln)
}

// ServeListener runs the JSON view server on ln until ctx is cancelled,
// then shuts it down gracefully. The collection is loaded in the
// background at start; a failed warm-up is logged and the next list
// request tries again.
func (c *Container) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           c.Server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("🚀 Serving on http://%s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if _, err := c.Catalog.Collection(ctx); err != nil {
			log.Warnf("⚠️ Warm-up load failed: %s", service.UserMessage(err))
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("🛑 Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
