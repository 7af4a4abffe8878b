// Package live keeps task queries subscribed and pushes a fresh snapshot to
// every subscriber whenever the owner's tasks change.
package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/tasktracker/internal/models"
)

// DefaultKeepAlive is how long an unused query stays cached after its last
// subscriber leaves.
const DefaultKeepAlive = 5 * time.Second

// ErrHubClosed is returned by Subscribe after Close.
var ErrHubClosed = errors.New("live hub is closed")

// FetchFunc runs the query and returns the current snapshot.
type FetchFunc func(ctx context.Context) ([]models.Task, error)

type entryKey struct {
	query string
	owner int64
}

// entry - одна активная выборка, общая для всех подписчиков с тем же ключом
type entry struct {
	err      error
	fetch    FetchFunc
	subs     map[string]*Subscription
	ready    chan struct{}
	release  *time.Timer
	snapshot []models.Task
	key      entryKey
	gen      uint64 // номер последнего запущенного обновления
	applied  uint64 // номер последнего примененного обновления
}

func (e *entry) isReady() bool {
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

// Hub shares query results between subscribers and refreshes them on Invalidate.
type Hub struct {
	logger    *slog.Logger
	entries   map[entryKey]*entry
	keepAlive time.Duration
	mu        sync.Mutex
	closed    bool
}

// NewHub creates a hub. keepAlive <= 0 selects DefaultKeepAlive
func NewHub(keepAlive time.Duration, logger *slog.Logger) *Hub {
	if keepAlive <= 0 {
		keepAlive = DefaultKeepAlive
	}
	return &Hub{
		logger:    logger,
		entries:   make(map[entryKey]*entry),
		keepAlive: keepAlive,
	}
}

// Subscribe starts receiving snapshots of the query identified by owner and
// query. Subscribers with the same key share one entry and fetch is only run
// when no entry exists yet. The current snapshot is available on Updates as
// soon as Subscribe returns. Cancelling ctx cancels the subscription.
func (h *Hub) Subscribe(ctx context.Context, owner int64, query string, fetch FetchFunc) (*Subscription, error) {
	key := entryKey{owner: owner, query: query}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrHubClosed
	}

	e, exists := h.entries[key]
	if !exists {
		e = &entry{
			key:   key,
			fetch: fetch,
			subs:  make(map[string]*Subscription),
			ready: make(chan struct{}),
		}
		h.entries[key] = e
	}

	// Подписчик вернулся в окне keep-alive
	if e.release != nil {
		e.release.Stop()
		e.release = nil
	}

	sub := newSubscription(h, e)
	e.subs[sub.id] = sub

	ready := e.isReady()
	if ready {
		sub.push(e.snapshot)
	}
	h.mu.Unlock()

	switch {
	case !exists:
		if err := h.load(ctx, e); err != nil {
			return nil, err
		}
	case !ready:
		// Первую выборку уже выполняет другой подписчик
		select {
		case <-e.ready:
		case <-ctx.Done():
			sub.Cancel()
			return nil, ctx.Err()
		}

		h.mu.Lock()
		err := e.err
		h.mu.Unlock()
		if err != nil {
			return nil, err
		}
	}

	go func() {
		select {
		case <-ctx.Done():
			sub.Cancel()
		case <-sub.done:
		}
	}()

	h.logger.Debug("Live query subscribed", "owner", owner, "query", query, "subscription", sub.id)

	return sub, nil
}

// load выполняет первую выборку для новой записи. Если данные изменились,
// пока она шла, снимок сразу перечитывается
func (h *Hub) load(ctx context.Context, e *entry) error {
	h.mu.Lock()
	started := e.gen
	h.mu.Unlock()

	snapshot, err := e.fetch(ctx)

	h.mu.Lock()
	if err != nil {
		e.err = fmt.Errorf("failed to load live query: %w", err)
		if h.entries[e.key] == e {
			delete(h.entries, e.key)
		}
		for _, sub := range e.subs {
			sub.closeLocked()
		}
		e.subs = map[string]*Subscription{}
		close(e.ready)
		h.mu.Unlock()
		return e.err
	}

	e.applied = started
	e.broadcastLocked(snapshot)
	close(e.ready)
	stale := e.gen > started
	gen := e.gen
	h.mu.Unlock()

	if stale {
		h.refresh(context.WithoutCancel(ctx), e, gen)
	}
	return nil
}

// Invalidate re-runs every query of the owner, including queries kept alive
// without subscribers, and pushes the results. It returns once the new
// snapshots are queued. Queries still running their first fetch are marked
// stale and re-read by load.
func (h *Hub) Invalidate(ctx context.Context, owner int64) {
	h.mu.Lock()
	type job struct {
		e   *entry
		gen uint64
	}
	var jobs []job
	for key, e := range h.entries {
		if key.owner != owner || e.err != nil {
			continue
		}
		e.gen++
		if !e.isReady() {
			continue
		}
		jobs = append(jobs, job{e: e, gen: e.gen})
	}
	h.mu.Unlock()

	// Обновление не должно обрываться вместе с запросом, который изменил данные
	ctx = context.WithoutCancel(ctx)

	for _, j := range jobs {
		h.refresh(ctx, j.e, j.gen)
	}
}

// refresh перечитывает выборку и публикует ее, если более новое обновление
// еще не применено
func (h *Hub) refresh(ctx context.Context, e *entry, gen uint64) {
	snapshot, err := e.fetch(ctx)
	if err != nil {
		h.logger.Error("Failed to refresh live query", "owner", e.key.owner, "query", e.key.query, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if gen > e.applied {
		e.applied = gen
		e.broadcastLocked(snapshot)
	}
}

// Close cancels every subscription and drops all cached queries
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for key, e := range h.entries {
		if e.release != nil {
			e.release.Stop()
		}
		for _, sub := range e.subs {
			sub.closeLocked()
		}
		delete(h.entries, key)
	}
}

func (e *entry) broadcastLocked(snapshot []models.Task) {
	e.snapshot = snapshot
	for _, sub := range e.subs {
		sub.push(snapshot)
	}
}

// unsubscribe вызывается из Subscription.Cancel
func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := sub.entry
	if _, ok := e.subs[sub.id]; !ok {
		return
	}
	delete(e.subs, sub.id)
	sub.closeLocked()

	if len(e.subs) > 0 || h.closed || h.entries[e.key] != e {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(h.keepAlive, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		// Таймер могли остановить или заменить
		if e.release != timer || len(e.subs) > 0 {
			return
		}
		e.release = nil
		if h.entries[e.key] == e {
			delete(h.entries, e.key)
			h.logger.Debug("Live query released", "owner", e.key.owner, "query", e.key.query)
		}
	})
	e.release = timer
}
