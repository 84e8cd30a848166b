package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pokedex/internal/config"
	"pokedex/internal/display"
	"pokedex/internal/logging"
	"pokedex/internal/metrics"
	"pokedex/internal/platform/pokeapi"
	"pokedex/internal/pokemon"
)

// app carries what PersistentPreRunE wires for the subcommands.
type app struct {
	cfg      config.Config
	log      zerolog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Fetch and display the first page of the PokeAPI listing",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			registry := prometheus.NewRegistry()
			collector, err := metrics.NewCollector(registry)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.log = log
			a.registry = registry
			a.metrics = collector
			return nil
		},
	}

	root.AddCommand(serveCmd(a), listCmd(a))
	return root
}

// newComponent wires the client, the service and a component. The HTTP
// client has no timeout of its own; teardown is the only cancellation.
func (a *app) newComponent(opts ...display.Option) *display.Component {
	client := pokeapi.NewClient(&http.Client{},
		pokeapi.WithBaseURL(a.cfg.PokeAPIBaseURL),
		pokeapi.WithRateLimit(a.cfg.PokeAPIRPS),
	)
	svc := pokemon.NewService(client, pokemon.WithMetrics(a.metrics))

	opts = append([]display.Option{
		display.WithLogger(a.log.With().Str("component", "display").Logger()),
		display.WithMetrics(a.metrics),
	}, opts...)
	return display.NewComponent(svc, opts...)
}
