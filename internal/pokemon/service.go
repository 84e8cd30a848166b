package pokemon

import (
	"context"
	"errors"
	"time"

	"pokedex/internal/async"
	"pokedex/internal/metrics"
)

// Lister is the part of the PokeAPI client the service needs.
type Lister interface {
	ListPokemon(ctx context.Context) (*ListResponse, error)
}

type Metrics interface {
	FetchFinished(outcome string, duration time.Duration)
}

type Service struct {
	lister  Lister
	metrics Metrics
}

type ServiceOption func(*Service)

func WithMetrics(m Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(lister Lister, opts ...ServiceOption) *Service {
	s := &Service{
		lister:  lister,
		metrics: metrics.NewNoopCollector(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPokemons starts a fresh listing request and returns a task that resolves
// to the listing results. Count and pagination links are dropped. On failure
// the task resolves to a nil slice and the error.
func (s *Service) GetPokemons(ctx context.Context) *async.Task[[]Pokemon] {
	return async.Go(ctx, s.fetch)
}

func (s *Service) fetch(ctx context.Context) ([]Pokemon, error) {
	start := time.Now()
	res, err := s.lister.ListPokemon(ctx)
	if err != nil {
		outcome := metrics.OutcomeFailure
		if errors.Is(err, context.Canceled) {
			outcome = metrics.OutcomeCancelled
		}
		s.metrics.FetchFinished(outcome, time.Since(start))
		return nil, err
	}
	s.metrics.FetchFinished(metrics.OutcomeSuccess, time.Since(start))

	results := res.Results
	if results == nil {
		results = []Pokemon{}
	}
	return results, nil
}
