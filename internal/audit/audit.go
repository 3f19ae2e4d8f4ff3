// SPDX-License-Identifier: MIT

// Package audit provides the read surface for review and statistics
// features on top of the event store, and a catch-all subscriber that
// writes one structured audit line per published event.
package audit

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dayflow/dayflow/internal/dispatch"
	"github.com/dayflow/dayflow/internal/event"
	"github.com/dayflow/dayflow/internal/log"
	"github.com/dayflow/dayflow/internal/store"
)

// Trail is a thin query facade over the event store. All results come back
// in chronological order per the store contract.
type Trail struct {
	store store.EventStore
}

func NewTrail(s store.EventStore) *Trail {
	return &Trail{store: s}
}

// Recent returns the n most recent events, oldest first.
func (t *Trail) Recent(ctx context.Context, n int) ([]event.Event, error) {
	if n <= 0 {
		return nil, nil
	}
	all, err := t.store.FindByTimestampBetween(ctx, time.Time{}, maxTime())
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

// ActivityBetween returns every event in the inclusive [start, end] window.
func (t *Trail) ActivityBetween(ctx context.Context, start, end time.Time) ([]event.Event, error) {
	return t.store.FindByTimestampBetween(ctx, start, end)
}

// TypeActivity returns events of one type in the inclusive window, e.g.
// all TaskCreatedEvents this week.
func (t *Trail) TypeActivity(ctx context.Context, kind event.Type, start, end time.Time) ([]event.Event, error) {
	return t.store.FindByEventTypeAndTimestampBetween(ctx, kind, start, end)
}

// CountsByType returns per-type event counts across the whole log.
func (t *Trail) CountsByType(ctx context.Context) (map[event.Type]int, error) {
	out := make(map[event.Type]int)
	for _, kind := range event.Types() {
		n, err := t.store.CountByEventType(ctx, kind)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			out[kind] = n
		}
	}
	return out, nil
}

func maxTime() time.Time {
	return time.Unix(1<<62, 0)
}

// Sink writes one structured audit line per event. Attach it to a
// dispatcher as a catch-all listener; it never fails.
type Sink struct {
	logger zerolog.Logger
}

func NewSink() *Sink {
	return &Sink{
		logger: log.WithComponent("audit").With().
			Str("log_type", "audit").
			Logger(),
	}
}

// Handle logs the event. Always returns nil.
func (s *Sink) Handle(ctx context.Context, e event.Event) error {
	s.logger.Info().
		Str(log.FieldEventType, string(e.Type())).
		Str(log.FieldEventID, e.ID().String()).
		Time("event_time", e.Timestamp()).
		Str(log.FieldDetails, e.Details()).
		Msg("audit event")
	return nil
}

// AttachAll subscribes the sink to every known event type and returns the
// subscriptions for lifecycle cleanup.
func (s *Sink) AttachAll(d *dispatch.Dispatcher) []*dispatch.Subscription {
	subs := make([]*dispatch.Subscription, 0, len(event.Types()))
	for _, kind := range event.Types() {
		subs = append(subs, d.Subscribe(kind, s.Handle))
	}
	return subs
}
