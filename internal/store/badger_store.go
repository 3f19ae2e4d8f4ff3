// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/dayflow/dayflow/internal/event"
	"github.com/dayflow/dayflow/internal/log"
)

const (
	prefixEvent = "evt:"
	prefixType  = "typ:"
	prefixID    = "id:"
	keySeq      = "meta:seq"
)

// BadgerStore is a badger-backed EventStore. Layout:
//   - evt:<seq>         event JSON, zero-padded sequence so key order is
//     insertion order
//   - typ:<type>:<seq>  secondary index, value is the primary key
//   - id:<uuid>         value is the primary key
//   - meta:seq          last assigned sequence, survives DeleteAll
//
// Appends serialise on an internal mutex to keep the sequence counter and
// key order consistent; reads run concurrently on snapshot transactions.
type BadgerStore struct {
	db *badger.DB

	mu  sync.Mutex // guards seq and the append path
	seq uint64
}

func OpenBadgerStore(path string) (*BadgerStore, error) {
	if path == "" {
		return nil, errors.New("badger store path required")
	}
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}

	s := &BadgerStore{db: db}
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySeq))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			s.seq = binary.BigEndian.Uint64(val)
			return nil
		})
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load store sequence: %w", err)
	}

	logger := log.WithComponent("store")
	logger.Info().
		Str(log.FieldBackend, "badger").
		Str(log.FieldPath, path).
		Msg("event store opened")
	return s, nil
}

func (s *BadgerStore) Close() error { return s.db.Close() }

func eventKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefixEvent, seq))
}

func eventKeySeq(key []byte) uint64 {
	seq, _ := strconv.ParseUint(string(key[len(prefixEvent):]), 10, 64)
	return seq
}

func (s *BadgerStore) Save(ctx context.Context, e event.Event) (event.Event, error) {
	buf, err := event.Encode(e)
	if err != nil {
		return nil, err
	}
	id := e.ID()

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq + 1
	primary := eventKey(seq)
	var seqVal [8]byte
	binary.BigEndian.PutUint64(seqVal[:], seq)

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primary, buf); err != nil {
			return err
		}
		typKey := []byte(fmt.Sprintf("%s%s:%020d", prefixType, e.Type(), seq))
		if err := txn.Set(typKey, primary); err != nil {
			return err
		}
		if err := txn.Set([]byte(prefixID+id.String()), primary); err != nil {
			return err
		}
		return txn.Set([]byte(keySeq), seqVal[:])
	})
	if err != nil {
		return nil, fmt.Errorf("save event %s: %w", id, err)
	}
	s.seq = seq
	return e, nil
}

// resolve follows an index value to the primary record.
func resolve(txn *badger.Txn, primary []byte) (record, error) {
	item, err := txn.Get(primary)
	if err != nil {
		return record{}, err
	}
	var rec record
	err = item.Value(func(val []byte) error {
		ev, err := event.Decode(val)
		if err != nil {
			return err
		}
		rec = record{seq: eventKeySeq(primary), ev: ev}
		return nil
	})
	return rec, err
}

func (s *BadgerStore) FindByID(ctx context.Context, id uuid.UUID) (event.Event, error) {
	var out event.Event
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixID + id.String()))
		if err != nil {
			return err
		}
		var primary []byte
		if err := item.Value(func(val []byte) error {
			primary = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}
		rec, err := resolve(txn, primary)
		if err != nil {
			return err
		}
		out = rec.ev
		return nil
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil // not found, no error
		}
		return nil, err
	}
	return out, nil
}

func (s *BadgerStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(prefixID + id.String()))
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *BadgerStore) FindAll(ctx context.Context) ([]event.Event, error) {
	var out []event.Event
	err := s.scan(ctx, func(r record) {
		out = append(out, r.ev)
	})
	return out, err
}

func (s *BadgerStore) FindByEventType(ctx context.Context, t event.Type) ([]event.Event, error) {
	var recs []record
	prefix := []byte(prefixType + string(t) + ":")
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			var primary []byte
			if err := it.Item().Value(func(val []byte) error {
				primary = append([]byte(nil), val...)
				return nil
			}); err != nil {
				return err
			}
			rec, err := resolve(txn, primary)
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

func (s *BadgerStore) FindByTimestampBetween(ctx context.Context, start, end time.Time) ([]event.Event, error) {
	return s.filter(ctx, func(r record) bool {
		return inRange(r.ev.Timestamp(), start, end)
	})
}

func (s *BadgerStore) FindByEventTypeAndTimestampBetween(ctx context.Context, t event.Type, start, end time.Time) ([]event.Event, error) {
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

func (s *BadgerStore) FindAfterTimestamp(ctx context.Context, ts time.Time) ([]event.Event, error) {
	return s.filter(ctx, func(r record) bool {
		return r.ev.Timestamp().After(ts)
	})
}

func (s *BadgerStore) FindBeforeTimestamp(ctx context.Context, ts time.Time) ([]event.Event, error) {
	return s.filter(ctx, func(r record) bool {
		return r.ev.Timestamp().Before(ts)
	})
}

func (s *BadgerStore) filter(ctx context.Context, keep func(record) bool) ([]event.Event, error) {
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

// scan walks the primary log in insertion order.
func (s *BadgerStore) scan(ctx context.Context, fn func(record)) error {
	prefix := []byte(prefixEvent)
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			item := it.Item()
			seq := eventKeySeq(item.Key())
			err := item.Value(func(val []byte) error {
				ev, err := event.Decode(val)
				if err != nil {
					return err
				}
				fn(record{seq: seq, ev: ev})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BadgerStore) Count(ctx context.Context) (int, error) {
	n := 0
	prefix := []byte(prefixEvent)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func (s *BadgerStore) CountByEventType(ctx context.Context, t event.Type) (int, error) {
	n := 0
	prefix := []byte(prefixType + string(t) + ":")
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func (s *BadgerStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// meta:seq stays so sequences remain monotonic across resets.
	err := s.db.DropPrefix([]byte(prefixEvent), []byte(prefixType), []byte(prefixID))
	if err != nil {
		return fmt.Errorf("delete all events: %w", err)
	}
	logger := log.WithComponent("store")
	logger.Warn().Str(log.FieldBackend, "badger").Msg("deleted all events from event store")
	return nil
}

// Ensure interface compliance at compile time.
var _ EventStore = (*BadgerStore)(nil)
