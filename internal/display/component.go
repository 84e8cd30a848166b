package display

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pokedex/internal/metrics"
	"pokedex/internal/pokemon"
)

var ErrTornDown = errors.New("component torn down")

// View is what the presentation layer renders. Pokemon is never nil.
type View struct {
	State   State
	Pokemon []pokemon.Pokemon
}

type Option func(*Component)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Component) {
		c.log = log
	}
}

func WithMetrics(m Metrics) Option {
	return func(c *Component) {
		c.metrics = m
	}
}

// WithErrorHandler registers fn to observe fetch failures. The view stays
// empty either way.
func WithErrorHandler(fn func(error)) Option {
	return func(c *Component) {
		c.onError = fn
	}
}

// Component holds the listing for one mounted view. It subscribes on OnInit,
// stores the delivered listing and releases its subscription on OnTeardown.
type Component struct {
	fetcher Fetcher
	log     zerolog.Logger
	metrics Metrics
	onError func(error)

	mu      sync.Mutex
	state   State
	pokemon []pokemon.Pokemon
	sub     *Subscription
	err     error

	// settled belongs to the current subscription; isSettled reports whether
	// it has been closed.
	settled   chan struct{}
	isSettled bool
}

func NewComponent(fetcher Fetcher, opts ...Option) *Component {
	c := &Component{
		fetcher: fetcher,
		log:     zerolog.Nop(),
		metrics: metrics.NewNoopCollector(),
		pokemon: []pokemon.Pokemon{},
		settled: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnInit subscribes to a fresh listing. A subscription still waiting for its
// result is released and replaced. Once populated, OnInit does nothing.
// Fetch failures never surface here; the only error is ErrTornDown.
func (c *Component) OnInit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateTornDown:
		return ErrTornDown
	case StatePopulated:
		return nil
	}

	if c.sub != nil {
		c.releaseLocked()
	}
	// A failed subscription already closed settled; the new one gets its own.
	if c.isSettled {
		c.settled = make(chan struct{})
		c.isSettled = false
	}

	// The listener needs c.mu, so nothing is applied before OnInit returns.
	sub := newSubscription(c.fetcher.GetPokemons(ctx))
	c.sub = sub
	c.state = StateAwaitingDelivery
	c.err = nil
	c.log.Debug().Str("subscription", sub.ID().String()).Msg("subscribed to listing")

	go c.listen(sub)
	return nil
}

// OnTeardown releases the subscription and moves the component to its
// terminal state. Calling it more than once is harmless.
func (c *Component) OnTeardown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateTornDown {
		return
	}
	if c.sub != nil {
		c.releaseLocked()
	}
	c.state = StateTornDown
	c.pokemon = []pokemon.Pokemon{}
	c.settle()
	c.log.Debug().Msg("component torn down")
}

// Snapshot returns the current view. The slice is a copy.
func (c *Component) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]pokemon.Pokemon, len(c.pokemon))
	copy(out, c.pokemon)
	return View{State: c.state, Pokemon: out}
}

// Err returns the failure of the current subscription, if any.
func (c *Component) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Subscription returns the id of the held handle.
func (c *Component) Subscription() (uuid.UUID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub == nil {
		return uuid.Nil, false
	}
	return c.sub.ID(), true
}

// Settled is closed once the current subscription is delivered, fails, or
// the component is torn down. A re-init after a failure starts a new channel,
// so callers waiting on a later subscription must call Settled again after
// OnInit. Replacing a subscription that is still pending keeps the channel.
func (c *Component) Settled() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settled
}

func (c *Component) listen(sub *Subscription) {
	<-sub.task.Done()
	list, err := sub.task.Result()

	c.mu.Lock()
	switch {
	case c.state == StateTornDown:
		c.mu.Unlock()
		c.metrics.DeliveryDropped(metrics.ReasonTornDown)
		return
	case c.sub != sub:
		c.mu.Unlock()
		c.metrics.DeliveryDropped(metrics.ReasonStale)
		return
	case err != nil:
		c.err = err
		c.settle()
		c.mu.Unlock()

		c.metrics.DeliveryDropped(metrics.ReasonFailed)
		c.log.Warn().Err(err).Str("subscription", sub.ID().String()).Msg("listing fetch failed")
		if c.onError != nil {
			c.onError(err)
		}
		return
	}

	if list == nil {
		list = []pokemon.Pokemon{}
	}
	c.pokemon = list
	c.state = StatePopulated
	c.settle()
	c.mu.Unlock()

	c.metrics.DeliveryApplied()
	c.log.Debug().Int("count", len(list)).Str("subscription", sub.ID().String()).Msg("listing delivered")
}

func (c *Component) releaseLocked() {
	if c.sub.Release() {
		c.metrics.SubscriptionReleased()
	}
	c.sub = nil
}

// settle requires c.mu.
func (c *Component) settle() {
	if !c.isSettled {
		close(c.settled)
		c.isSettled = true
	}
}
