package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"pokedex/internal/config"
	"pokedex/internal/metrics"
)

// newTestApp wires an app against upstream the way PersistentPreRunE would.
func newTestApp(t *testing.T, upstream http.Handler) *app {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	registry := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(registry)
	require.NoError(t, err)

	return &app{
		cfg: config.Config{
			Addr:           "127.0.0.1:0",
			PokeAPIBaseURL: srv.URL,
		},
		log:      zerolog.Nop(),
		registry: registry,
		metrics:  collector,
	}
}
