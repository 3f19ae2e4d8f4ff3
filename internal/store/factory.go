// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
)

// Open creates an EventStore for the given backend. An empty backend falls
// back to memory; path is ignored for the memory backend.
func Open(backend, path string) (EventStore, error) {
	switch backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "bolt":
		return OpenBoltStore(path)
	case "badger":
		return OpenBadgerStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}
