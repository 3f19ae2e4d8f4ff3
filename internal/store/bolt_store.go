// SPDX-License-Identifier: MIT

package store

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/dayflow/dayflow/internal/event"
	"github.com/dayflow/dayflow/internal/log"
)

var (
	bucketEvents = []byte("b_events")
	bucketByType = []byte("b_by_type")
	bucketIDs    = []byte("b_ids")
	bucketMeta   = []byte("b_meta")

	metaLastSeq = []byte("last_seq")
)

// BoltStore is a bbolt-backed EventStore. Layout:
//   - b_events:  big-endian sequence -> event JSON (insertion order)
//   - b_by_type: type + 0x00 + sequence -> sequence (secondary index)
//   - b_ids:     event UUID -> sequence
//   - b_meta:    last_seq, kept across DeleteAll so sequences stay monotonic
type BoltStore struct {
	db *bolt.DB
}

func OpenBoltStore(path string) (*BoltStore, error) {
	if path == "" {
		return nil, errors.New("bolt store path required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketEvents, bucketByType, bucketIDs, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init bolt buckets: %w", err)
	}

	s := &BoltStore{db: db}
	if n, err := s.Count(context.Background()); err == nil {
		logger := log.WithComponent("store")
		logger.Info().
			Str(log.FieldBackend, "bolt").
			Str(log.FieldPath, path).
			Int(log.FieldEvents, n).
			Msg("event store opened")
	}
	return s, nil
}

func (s *BoltStore) Close() error { return s.db.Close() }

func seqKey(seq uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], seq)
	return k[:]
}

func typeKey(t event.Type, seq uint64) []byte {
	k := make([]byte, 0, len(t)+9)
	k = append(k, t...)
	k = append(k, 0x00)
	return append(k, seqKey(seq)...)
}

func typePrefix(t event.Type) []byte {
	k := make([]byte, 0, len(t)+1)
	k = append(k, t...)
	return append(k, 0x00)
}

func (s *BoltStore) Save(ctx context.Context, e event.Event) (event.Event, error) {
	buf, err := event.Encode(e)
	if err != nil {
		return nil, err
	}
	id := e.ID()

	err = s.db.Update(func(tx *bolt.Tx) error {
		meta := tx.Bucket(bucketMeta)
		seq := uint64(1)
		if prev := meta.Get(metaLastSeq); prev != nil {
			seq = binary.BigEndian.Uint64(prev) + 1
		}
		if err := meta.Put(metaLastSeq, seqKey(seq)); err != nil {
			return err
		}
		if err := tx.Bucket(bucketEvents).Put(seqKey(seq), buf); err != nil {
			return err
		}
		if err := tx.Bucket(bucketByType).Put(typeKey(e.Type(), seq), seqKey(seq)); err != nil {
			return err
		}
		return tx.Bucket(bucketIDs).Put(id[:], seqKey(seq))
	})
	if err != nil {
		return nil, fmt.Errorf("save event %s: %w", id, err)
	}
	return e, nil
}

func decodeRecord(key, val []byte) (record, error) {
	ev, err := event.Decode(val)
	if err != nil {
		return record{}, err
	}
	return record{seq: binary.BigEndian.Uint64(key), ev: ev}, nil
}

func (s *BoltStore) FindByID(ctx context.Context, id uuid.UUID) (event.Event, error) {
	var out event.Event
	err := s.db.View(func(tx *bolt.Tx) error {
		seq := tx.Bucket(bucketIDs).Get(id[:])
		if seq == nil {
			return nil
		}
		val := tx.Bucket(bucketEvents).Get(seq)
		if val == nil {
			return nil
		}
		ev, err := event.Decode(val)
		if err != nil {
			return err
		}
		out = ev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BoltStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := s.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket(bucketIDs).Get(id[:]) != nil
		return nil
	})
	return ok, err
}

func (s *BoltStore) FindAll(ctx context.Context) ([]event.Event, error) {
	var out []event.Event
	err := s.scan(ctx, func(r record) {
		out = append(out, r.ev)
	})
	return out, err
}

func (s *BoltStore) FindByEventType(ctx context.Context, t event.Type) ([]event.Event, error) {
	var recs []record
	prefix := typePrefix(t)
	err := s.db.View(func(tx *bolt.Tx) error {
		events := tx.Bucket(bucketEvents)
		c := tx.Bucket(bucketByType).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			val := events.Get(v)
			if val == nil {
				continue
			}
			rec, err := decodeRecord(v, val)
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chronological(recs), nil
}

func (s *BoltStore) FindByTimestampBetween(ctx context.Context, start, end time.Time) ([]event.Event, error) {
	return s.filter(ctx, func(r record) bool {
		return inRange(r.ev.Timestamp(), start, end)
	})
}

func (s *BoltStore) FindByEventTypeAndTimestampBetween(ctx context.Context, t event.Type, start, end time.Time) ([]event.Event, error) {
	all, err := s.FindByEventType(ctx, t)
	if err != nil {
		return nil, err
	}
	var out []event.Event
	for _, ev := range all {
		if inRange(ev.Timestamp(), start, end) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *BoltStore) FindAfterTimestamp(ctx context.Context, ts time.Time) ([]event.Event, error) {
	return s.filter(ctx, func(r record) bool {
		return r.ev.Timestamp().After(ts)
	})
}

func (s *BoltStore) FindBeforeTimestamp(ctx context.Context, ts time.Time) ([]event.Event, error) {
	return s.filter(ctx, func(r record) bool {
		return r.ev.Timestamp().Before(ts)
	})
}

func (s *BoltStore) filter(ctx context.Context, keep func(record) bool) ([]event.Event, error) {
	var recs []record
	err := s.scan(ctx, func(r record) {
		if keep(r) {
			recs = append(recs, r)
		}
	})
	if err != nil {
		return nil, err
	}
	return chronological(recs), nil
}

// scan walks the primary bucket in insertion order.
func (s *BoltStore) scan(ctx context.Context, fn func(record)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketEvents).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rec, err := decodeRecord(k, v)
			if err != nil {
				return err
			}
			fn(rec)
		}
		return nil
	})
}

func (s *BoltStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketEvents).Stats().KeyN
		return nil
	})
	return n, err
}

func (s *BoltStore) CountByEventType(ctx context.Context, t event.Type) (int, error) {
	var n int
	prefix := typePrefix(t)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketByType).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func (s *BoltStore) DeleteAll(ctx context.Context) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		// last_seq stays so sequences remain monotonic across resets.
		for _, name := range [][]byte{bucketEvents, bucketByType, bucketIDs} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete all events: %w", err)
	}
	logger := log.WithComponent("store")
	logger.Warn().Str(log.FieldBackend, "bolt").Msg("deleted all events from event store")
	return nil
}

// Ensure interface compliance at compile time.
var _ EventStore = (*BoltStore)(nil)
