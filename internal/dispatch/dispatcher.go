// SPDX-License-Identifier: MIT

// Package dispatch routes published events to subscribed handlers by event
// type, synchronously on the publishing goroutine, and appends every
// published event to the event store as the final step of Publish.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dayflow/dayflow/internal/event"
	"github.com/dayflow/dayflow/internal/log"
	"github.com/dayflow/dayflow/internal/metrics"
)

// Handler consumes a published event. A returned error is logged and
// counted; it never stops delivery to later handlers or the store append.
type Handler func(ctx context.Context, e event.Event) error

// Appender is the slice of the event store the dispatcher needs.
type Appender interface {
	Save(ctx context.Context, e event.Event) (event.Event, error)
}

// Dispatcher is an in-process pub/sub hub. Safe for concurrent use; the
// registry is snapshotted before delivery so subscribe/unsubscribe during a
// publish never corrupts iteration.
type Dispatcher struct {
	mu       sync.RWMutex
	registry map[event.Type][]*Subscription

	store  Appender // optional; nil means dispatch-only
	logger zerolog.Logger
}

// Subscription identifies one registration. Cancelling it removes exactly
// this registration, even when the same handler was subscribed twice.
type Subscription struct {
	kind    event.Type
	handler Handler
	d       *Dispatcher
	once    sync.Once
}

// New creates a dispatcher. The store may be nil, in which case published
// events are delivered but not recorded.
func New(store Appender) *Dispatcher {
	return &Dispatcher{
		registry: make(map[event.Type][]*Subscription),
		store:    store,
		logger:   log.WithComponent("dispatch"),
	}
}

// Subscribe registers handler for every future publish of events of the
// given type. Handlers run in registration order. Duplicate registrations
// of the same handler are independent deliveries.
func (d *Dispatcher) Subscribe(kind event.Type, handler Handler) *Subscription {
	sub := &Subscription{kind: kind, handler: handler, d: d}
	d.mu.Lock()
	d.registry[kind] = append(d.registry[kind], sub)
	d.mu.Unlock()
	d.logger.Debug().Str(log.FieldEventType, string(kind)).Msg("listener subscribed")
	return sub
}

// Cancel removes the registration. Safe to call more than once; a no-op if
// the dispatcher was cleared in the meantime.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.d.remove(s)
	})
}

// Unsubscribe cancels the given subscription. Provided for symmetry with
// Subscribe; identical to sub.Cancel().
func (d *Dispatcher) Unsubscribe(sub *Subscription) {
	if sub != nil {
		sub.Cancel()
	}
}

func (d *Dispatcher) remove(sub *Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()

	lst := d.registry[sub.kind]
	out := lst[:0]
	for _, s := range lst {
		if s != sub {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		delete(d.registry, sub.kind)
	} else {
		d.registry[sub.kind] = out
	}
	d.logger.Debug().Str(log.FieldEventType, string(sub.kind)).Msg("listener unsubscribed")
}

// Publish delivers e to every handler currently registered for its type, in
// registration order, then appends e to the store. Handler failures are
// isolated: a panic or returned error is logged and counted but never
// blocks later handlers or the append. A store append failure is returned
// to the caller; dropping audit data silently is not acceptable.
func (d *Dispatcher) Publish(ctx context.Context, e event.Event) error {
	d.mu.RLock()
	subs := append([]*Subscription(nil), d.registry[e.Type()]...)
	d.mu.RUnlock()

	d.logger.Debug().
		Str(log.FieldEventType, string(e.Type())).
		Str(log.FieldEventID, e.ID().String()).
		Int(log.FieldListeners, len(subs)).
		Msg("publishing event")
	metrics.IncPublished(string(e.Type()))

	for _, sub := range subs {
		d.deliver(ctx, sub, e)
	}

	if d.store != nil {
		if _, err := d.store.Save(ctx, e); err != nil {
			metrics.IncStoreAppendFailure(string(e.Type()))
			return fmt.Errorf("append %s to event store: %w", e.Type(), err)
		}
	}
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, sub *Subscription, e event.Event) {
	defer func() {
		if r := recover(); r != nil {
			metrics.IncListenerFailure(string(e.Type()))
			d.logger.Error().
				Str(log.FieldEventType, string(e.Type())).
				Str(log.FieldEventID, e.ID().String()).
				Interface("panic", r).
				Msg("listener panicked during publish")
		}
	}()
	if err := sub.handler(ctx, e); err != nil {
		metrics.IncListenerFailure(string(e.Type()))
		d.logger.Error().
			Err(err).
			Str(log.FieldEventType, string(e.Type())).
			Str(log.FieldEventID, e.ID().String()).
			Msg("listener failed during publish")
	}
}

// ListenerCount reports the number of currently registered handlers for the
// given event type.
func (d *Dispatcher) ListenerCount(kind event.Type) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.registry[kind])
}

// ClearAllListeners removes every handler for every event type. Already
// stored events are unaffected.
func (d *Dispatcher) ClearAllListeners() {
	d.mu.Lock()
	d.registry = make(map[event.Type][]*Subscription)
	d.mu.Unlock()
	d.logger.Debug().Msg("cleared all event listeners")
}
