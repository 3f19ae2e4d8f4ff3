// SPDX-License-Identifier: MIT

package audit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflow/dayflow/internal/dispatch"
	"github.com/dayflow/dayflow/internal/event"
	"github.com/dayflow/dayflow/internal/model"
	"github.com/dayflow/dayflow/internal/store"
)

var base = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func completedAt(ts time.Time) *event.TaskCompleted {
	return &event.TaskCompleted{
		Meta:        event.Meta{EventID: uuid.New(), Kind: event.TypeTaskCompleted, CreatedAt: ts},
		TaskID:      uuid.New(),
		CompletedAt: ts,
	}
}

func TestTrailActivityBetween(t *testing.T) {
	s := store.NewMemoryStore()
	trail := NewTrail(s)
	ctx := context.Background()

	inside := completedAt(base.Add(time.Minute))
	outside := completedAt(base.Add(2 * time.Hour))
	for _, e := range []event.Event{inside, outside} {
		_, err := s.Save(ctx, e)
		require.NoError(t, err)
	}

	got, err := trail.ActivityBetween(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID(), got[0].ID())
}

func TestTrailRecent(t *testing.T) {
	s := store.NewMemoryStore()
	trail := NewTrail(s)
	ctx := context.Background()

	var last event.Event
	for i := 0; i < 5; i++ {
		last = completedAt(base.Add(time.Duration(i) * time.Minute))
		_, err := s.Save(ctx, last)
		require.NoError(t, err)
	}

	got, err := trail.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, last.ID(), got[1].ID())

	none, err := trail.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTrailCountsByType(t *testing.T) {
	s := store.NewMemoryStore()
	trail := NewTrail(s)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Save(ctx, completedAt(base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}
	_, err := s.Save(ctx, event.NewTaskCreated(model.Task{ID: uuid.New(), Title: "counted"}))
	require.NoError(t, err)

	counts, err := trail.CountsByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[event.Type]int{
		event.TypeTaskCompleted: 3,
		event.TypeTaskCreated:   1,
	}, counts)
}

func TestTrailTypeActivity(t *testing.T) {
	s := store.NewMemoryStore()
	trail := NewTrail(s)
	ctx := context.Background()

	match := completedAt(base.Add(time.Minute))
	_, err := s.Save(ctx, match)
	require.NoError(t, err)
	_, err = s.Save(ctx, completedAt(base.Add(2*time.Hour)))
	require.NoError(t, err)

	got, err := trail.TypeActivity(ctx, event.TypeTaskCompleted, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, match.ID(), got[0].ID())
}

func TestSinkHandlesEveryVariant(t *testing.T) {
	sink := NewSink()
	ctx := context.Background()

	// The sink never fails, whatever the variant.
	require.NoError(t, sink.Handle(ctx, event.NewTaskCreated(model.Task{ID: uuid.New(), Title: "logged"})))
	require.NoError(t, sink.Handle(ctx, event.NewFocusModeDisabled(true)))
}

func TestSinkAttachAllCoversEveryType(t *testing.T) {
	d := dispatch.New(nil)
	sink := NewSink()

	subs := sink.AttachAll(d)
	assert.Len(t, subs, len(event.Types()))
	for _, kind := range event.Types() {
		assert.Equal(t, 1, d.ListenerCount(kind), "missing catch-all listener for %s", kind)
	}

	for _, sub := range subs {
		sub.Cancel()
	}
	for _, kind := range event.Types() {
		assert.Equal(t, 0, d.ListenerCount(kind))
	}
}
