package live

import (
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/tasktracker/internal/models"
)

// Subscription is a handle to a live query. Snapshots on Updates are shared
// between subscribers and must not be modified.
type Subscription struct {
	hub     *Hub
	entry   *entry
	updates chan []models.Task
	done    chan struct{}
	id      string
	once    sync.Once
	closed  bool
}

func newSubscription(h *Hub, e *entry) *Subscription {
	return &Subscription{
		hub:     h,
		entry:   e,
		id:      uuid.NewString(),
		updates: make(chan []models.Task, 1),
		done:    make(chan struct{}),
	}
}

// ID returns the unique subscription identifier
func (s *Subscription) ID() string {
	return s.id
}

// Updates delivers snapshots. A slow reader only sees the latest one.
// The channel is closed when the subscription ends.
func (s *Subscription) Updates() <-chan []models.Task {
	return s.updates
}

// Done is closed when the subscription ends
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Cancel stops the subscription. It is safe to call more than once
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
	})
}

// push заменяет неполученный снимок новым. Вызывается под hub.mu
func (s *Subscription) push(snapshot []models.Task) {
	if s.closed {
		return
	}
	select {
	case <-s.updates:
	default:
	}
	s.updates <- snapshot
}

// closeLocked закрывает каналы. Вызывается под hub.mu
func (s *Subscription) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.updates)
	close(s.done)
}
