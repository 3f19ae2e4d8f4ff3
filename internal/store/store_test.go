// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflow/dayflow/internal/event"
	"github.com/dayflow/dayflow/internal/model"
)

var backends = []string{"memory", "bolt", "badger"}

func openStore(t *testing.T, backend string) EventStore {
	t.Helper()
	path := ""
	switch backend {
	case "bolt":
		path = filepath.Join(t.TempDir(), "events.db")
	case "badger":
		path = t.TempDir()
	}
	s, err := Open(backend, path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

// completedAt builds a TaskCompleted event with a pinned event timestamp so
// ordering tests are deterministic.
func completedAt(ts time.Time) *event.TaskCompleted {
	return &event.TaskCompleted{
		Meta:        event.Meta{EventID: uuid.New(), Kind: event.TypeTaskCompleted, CreatedAt: ts},
		TaskID:      uuid.New(),
		CompletedAt: ts,
	}
}

func createdAt(ts time.Time, title string) *event.TaskCreated {
	return &event.TaskCreated{
		Meta: event.Meta{EventID: uuid.New(), Kind: event.TypeTaskCreated, CreatedAt: ts},
		Task: model.Task{ID: uuid.New(), Title: title},
	}
}

var base = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func TestSaveAndFindByID(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			e := event.NewTaskCreated(model.Task{ID: uuid.New(), Title: "persist me"})
			saved, err := s.Save(ctx, e)
			require.NoError(t, err)
			assert.Equal(t, e.ID(), saved.ID())

			found, err := s.FindByID(ctx, e.ID())
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, e.ID(), found.ID())
			assert.Equal(t, event.TypeTaskCreated, found.Type())
			assert.Equal(t, e.Details(), found.Details())

			ok, err := s.ExistsByID(ctx, e.ID())
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestFindByIDMissing(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			found, err := s.FindByID(ctx, uuid.New())
			require.NoError(t, err)
			assert.Nil(t, found)

			ok, err := s.ExistsByID(ctx, uuid.New())
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFindAllIsStable(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			for i := 0; i < 5; i++ {
				_, err := s.Save(ctx, completedAt(base.Add(time.Duration(i)*time.Minute)))
				require.NoError(t, err)
			}

			first, err := s.FindAll(ctx)
			require.NoError(t, err)
			second, err := s.FindAll(ctx)
			require.NoError(t, err)

			require.Len(t, first, 5)
			for i := range first {
				assert.Equal(t, first[i].ID(), second[i].ID())
			}
		})
	}
}

func TestFindByEventTypeChronological(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			// Insert out of chronological order.
			late := completedAt(base.Add(2 * time.Hour))
			early := completedAt(base)
			middle := completedAt(base.Add(time.Hour))
			other := createdAt(base.Add(30*time.Minute), "noise")

			for _, e := range []event.Event{late, other, early, middle} {
				_, err := s.Save(ctx, e)
				require.NoError(t, err)
			}

			got, err := s.FindByEventType(ctx, event.TypeTaskCompleted)
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, early.ID(), got[0].ID())
			assert.Equal(t, middle.ID(), got[1].ID())
			assert.Equal(t, late.ID(), got[2].ID())
		})
	}
}

func TestEqualTimestampsOrderedByInsertion(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			first := completedAt(base)
			second := completedAt(base)
			third := completedAt(base)
			for _, e := range []event.Event{first, second, third} {
				_, err := s.Save(ctx, e)
				require.NoError(t, err)
			}

			got, err := s.FindByEventType(ctx, event.TypeTaskCompleted)
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, first.ID(), got[0].ID())
			assert.Equal(t, second.ID(), got[1].ID())
			assert.Equal(t, third.ID(), got[2].ID())
		})
	}
}

func TestFindByTimestampBetweenInclusive(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			before := completedAt(base.Add(-time.Minute))
			atStart := completedAt(base)
			inside := completedAt(base.Add(30 * time.Minute))
			atEnd := completedAt(base.Add(time.Hour))
			after := completedAt(base.Add(61 * time.Minute))

			for _, e := range []event.Event{before, atStart, inside, atEnd, after} {
				_, err := s.Save(ctx, e)
				require.NoError(t, err)
			}

			got, err := s.FindByTimestampBetween(ctx, base, base.Add(time.Hour))
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, atStart.ID(), got[0].ID())
			assert.Equal(t, inside.ID(), got[1].ID())
			assert.Equal(t, atEnd.ID(), got[2].ID())
		})
	}
}

func TestInvertedRangeYieldsEmpty(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			_, err := s.Save(ctx, completedAt(base))
			require.NoError(t, err)

			got, err := s.FindByTimestampBetween(ctx, base.Add(time.Hour), base)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestFindByEventTypeAndTimestampBetween(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			wrongType := createdAt(base.Add(10*time.Minute), "other kind")
			tooEarly := completedAt(base.Add(-time.Hour))
			match := completedAt(base.Add(10 * time.Minute))
			tooLate := completedAt(base.Add(2 * time.Hour))

			for _, e := range []event.Event{wrongType, tooEarly, match, tooLate} {
				_, err := s.Save(ctx, e)
				require.NoError(t, err)
			}

			got, err := s.FindByEventTypeAndTimestampBetween(ctx, event.TypeTaskCompleted, base, base.Add(time.Hour))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, match.ID(), got[0].ID())
		})
	}
}

func TestFindAfterAndBeforeAreStrict(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			earlier := completedAt(base.Add(-time.Minute))
			exact := completedAt(base)
			later := completedAt(base.Add(time.Minute))

			for _, e := range []event.Event{earlier, exact, later} {
				_, err := s.Save(ctx, e)
				require.NoError(t, err)
			}

			after, err := s.FindAfterTimestamp(ctx, base)
			require.NoError(t, err)
			require.Len(t, after, 1)
			assert.Equal(t, later.ID(), after[0].ID())

			before, err := s.FindBeforeTimestamp(ctx, base)
			require.NoError(t, err)
			require.Len(t, before, 1)
			assert.Equal(t, earlier.ID(), before[0].ID())
		})
	}
}

func TestCounts(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			for i := 0; i < 3; i++ {
				_, err := s.Save(ctx, completedAt(base.Add(time.Duration(i)*time.Second)))
				require.NoError(t, err)
			}
			_, err := s.Save(ctx, createdAt(base, "one of these"))
			require.NoError(t, err)

			total, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 4, total)

			completed, err := s.CountByEventType(ctx, event.TypeTaskCompleted)
			require.NoError(t, err)
			assert.Equal(t, 3, completed)

			none, err := s.CountByEventType(ctx, event.TypeBreakReminder)
			require.NoError(t, err)
			assert.Equal(t, 0, none)
		})
	}
}

func TestSaveSameEventTwiceAppendsTwice(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			e := completedAt(base)
			for i := 0; i < 2; i++ {
				_, err := s.Save(ctx, e)
				require.NoError(t, err)
			}

			total, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, total)

			byType, err := s.CountByEventType(ctx, event.TypeTaskCompleted)
			require.NoError(t, err)
			assert.Equal(t, 2, byType)
		})
	}
}

func TestDeleteAll(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			e := completedAt(base)
			_, err := s.Save(ctx, e)
			require.NoError(t, err)
			_, err = s.Save(ctx, createdAt(base, "bye"))
			require.NoError(t, err)

			require.NoError(t, s.DeleteAll(ctx))

			total, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, total)

			found, err := s.FindByID(ctx, e.ID())
			require.NoError(t, err)
			assert.Nil(t, found)

			byType, err := s.CountByEventType(ctx, event.TypeTaskCompleted)
			require.NoError(t, err)
			assert.Equal(t, 0, byType)

			// The store keeps working after a reset.
			_, err = s.Save(ctx, completedAt(base.Add(time.Minute)))
			require.NoError(t, err)
			total, err = s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, total)
		})
	}
}

func TestRoundTripPreservesPayload(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			ctx := context.Background()

			e := event.NewTaskPriorityChanged(uuid.New(), model.PriorityLow, model.PriorityHigh)
			_, err := s.Save(ctx, e)
			require.NoError(t, err)

			found, err := s.FindByID(ctx, e.ID())
			require.NoError(t, err)
			require.NotNil(t, found)
			got, ok := found.(*event.TaskPriorityChanged)
			require.True(t, ok)
			assert.Equal(t, e.TaskID, got.TaskID)
			assert.Equal(t, model.PriorityLow, got.OldPriority)
			assert.Equal(t, model.PriorityHigh, got.NewPriority)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("cassandra", "")
	require.Error(t, err)
}
