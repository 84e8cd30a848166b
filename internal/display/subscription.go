package display

import (
	"sync"

	"github.com/google/uuid"

	"pokedex/internal/async"
	"pokedex/internal/pokemon"
)

// Subscription is the handle a component holds on one in-flight or completed
// listing request. Only the owning component releases it.
type Subscription struct {
	id   uuid.UUID
	task *async.Task[[]pokemon.Pokemon]
	once sync.Once
}

func newSubscription(task *async.Task[[]pokemon.Pokemon]) *Subscription {
	return &Subscription{
		id:   uuid.New(),
		task: task,
	}
}

func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Release cancels any pending delivery. It reports true only on the first call.
func (s *Subscription) Release() bool {
	released := false
	s.once.Do(func() {
		s.task.Cancel()
		released = true
	})
	return released
}
