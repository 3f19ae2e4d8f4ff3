// SPDX-License-Identifier: MIT

// Package store provides the durable, append-only, queryable log of every
// published event. Three backends exist behind one interface: an in-memory
// store for tests and local iteration, and bolt/badger embedded stores for
// durability across process restarts.
//
// Queries run along exactly two dimensions, event type and time, because
// those are the only axes the audit and review features need. Every backend
// keeps a secondary index from event type to the stored sequence so typed
// queries avoid full scans.
package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dayflow/dayflow/internal/event"
)

// EventStore is the append-only audit log contract.
//
// Ordering: chronological queries sort ascending by event timestamp with
// ties broken by insertion order. FindAll carries no ordering guarantee
// beyond being stable across calls with no intervening writes. Inverted
// ranges (end before start) yield empty results, not errors.
type EventStore interface {
	// Save appends the event. Saving the same event value twice appends
	// twice; the dispatcher calls Save exactly once per published event.
	Save(ctx context.Context, e event.Event) (event.Event, error)

	// FindByID returns the stored event, or nil without error when absent.
	FindByID(ctx context.Context, id uuid.UUID) (event.Event, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	FindAll(ctx context.Context) ([]event.Event, error)
	FindByEventType(ctx context.Context, t event.Type) ([]event.Event, error)
	FindByTimestampBetween(ctx context.Context, start, end time.Time) ([]event.Event, error)
	FindByEventTypeAndTimestampBetween(ctx context.Context, t event.Type, start, end time.Time) ([]event.Event, error)
	FindAfterTimestamp(ctx context.Context, ts time.Time) ([]event.Event, error)
	FindBeforeTimestamp(ctx context.Context, ts time.Time) ([]event.Event, error)

	Count(ctx context.Context) (int, error)
	CountByEventType(ctx context.Context, t event.Type) (int, error)

	// DeleteAll clears the store. Test/reset facility, not part of normal
	// operation.
	DeleteAll(ctx context.Context) error

	Close() error
}

// record pairs a stored event with its insertion sequence, the tiebreak for
// equal timestamps.
type record struct {
	seq uint64
	ev  event.Event
}

// chronological sorts records ascending by timestamp, insertion order on
// ties, and unwraps the events.
func chronological(recs []record) []event.Event {
	sort.Slice(recs, func(i, j int) bool {
		ti, tj := recs[i].ev.Timestamp(), recs[j].ev.Timestamp()
		if ti.Equal(tj) {
			return recs[i].seq < recs[j].seq
		}
		return ti.Before(tj)
	})
	out := make([]event.Event, len(recs))
	for i, r := range recs {
		out[i] = r.ev
	}
	return out
}

// inRange reports whether ts lies in the inclusive [start, end] interval.
func inRange(ts, start, end time.Time) bool {
	return !ts.Before(start) && !ts.After(end)
}
