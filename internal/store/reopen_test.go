// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflow/dayflow/internal/event"
)

// Durable backends must serve the full query contract across a close/reopen
// cycle.
func TestReopenSeesSavedEvents(t *testing.T) {
	for _, backend := range []string{"bolt", "badger"} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			path := dir
			if backend == "bolt" {
				path = filepath.Join(dir, "events.db")
			}
			ctx := context.Background()

			s, err := Open(backend, path)
			require.NoError(t, err)

			first := completedAt(base)
			second := completedAt(base.Add(time.Minute))
			_, err = s.Save(ctx, first)
			require.NoError(t, err)
			_, err = s.Save(ctx, second)
			require.NoError(t, err)
			require.NoError(t, s.Close())

			s, err = Open(backend, path)
			require.NoError(t, err)
			defer func() {
				require.NoError(t, s.Close())
			}()

			total, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, total)

			found, err := s.FindByID(ctx, first.ID())
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, first.Details(), found.Details())

			ordered, err := s.FindByEventType(ctx, event.TypeTaskCompleted)
			require.NoError(t, err)
			require.Len(t, ordered, 2)
			assert.Equal(t, first.ID(), ordered[0].ID())
			assert.Equal(t, second.ID(), ordered[1].ID())

			// Appends after reopen keep extending the same log.
			third := completedAt(base.Add(2 * time.Minute))
			_, err = s.Save(ctx, third)
			require.NoError(t, err)

			ordered, err = s.FindByEventType(ctx, event.TypeTaskCompleted)
			require.NoError(t, err)
			require.Len(t, ordered, 3)
			assert.Equal(t, third.ID(), ordered[2].ID())
		})
	}
}
