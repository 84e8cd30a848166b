package display

import (
	"context"

	"pokedex/internal/async"
	"pokedex/internal/pokemon"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=display

// Fetcher starts a listing request. pokemon.Service satisfies it.
type Fetcher interface {
	GetPokemons(ctx context.Context) *async.Task[[]pokemon.Pokemon]
}

type Metrics interface {
	DeliveryApplied()
	DeliveryDropped(reason string)
	SubscriptionReleased()
}
