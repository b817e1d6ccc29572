package container

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"pokedex/viewer/internal/config"
	"pokedex/viewer/internal/domain"
	"pokedex/viewer/internal/pokeapitest"
)

func TestNew_WiresCatalog(t *testing.T) {
	mock := pokeapitest.NewMockPokeAPI(pokeapitest.Starters)
	defer mock.Close()

	app, err := New(&config.Config{
		PokeAPI: config.PokeAPIConfig{BaseURL: mock.URL(), PageSize: 3, Timeout: 5, Language: "en"},
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 0},
	})
	require.NoError(t, err)
	require.NotNil(t, app.Server)

	page, err := app.Catalog.Visible(context.Background(), domain.Query{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestServeListener_ServesAndShutsDown(t *testing.T) {
	defer goleak.VerifyNone(t)

	mock := pokeapitest.NewMockPokeAPI(pokeapitest.Starters)
	defer mock.Close()

	app, err := New(&config.Config{
		PokeAPI: config.PokeAPIConfig{BaseURL: mock.URL(), PageSize: 9, Timeout: 5, Language: "en"},
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 0},
	})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.ServeListener(ctx, ln)
	}()

	transport := &http.Transport{DisableKeepAlives: true}
	defer transport.CloseIdleConnections()
	httpClient := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	fetch := func(path string) (int, string) {
		resp, err := httpClient.Get(base + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	status, body := fetch("/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body)

	status, _ = fetch("/api/pokemon")
	assert.Equal(t, http.StatusOK, status)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = httpClient.Get(base + "/health")
	assert.Error(t, err, "listener is closed after shutdown")
}

func TestServe_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	app, err := New(&config.Config{
		PokeAPI: config.PokeAPIConfig{BaseURL: "http://127.0.0.1:1", PageSize: 1, Timeout: 1, Language: "en"},
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: port},
	})
	require.NoError(t, err)

	err = app.Serve(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}
