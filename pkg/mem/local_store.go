// pkg/mem/local_store.go
package mem

import (
	"sort"
	"sync"
	"time"
)

// LocalTripStore is the in-process fallback used when postgres is not
// configured: a single namespace of itinerary snapshots keyed by itinerary id
// and owner. Contents do not survive a restart.
type LocalTripStore struct {
	mu   sync.RWMutex
	data map[string]localEntry
}

type localEntry struct {
	ownerID   string
	payload   []byte
	updatedAt time.Time
}

func NewLocalTripStore() *LocalTripStore {
	return &LocalTripStore{
		data: make(map[string]localEntry),
	}
}

func (s *LocalTripStore) Upsert(itineraryID, ownerID string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[itineraryID] = localEntry{
		ownerID:   ownerID,
		payload:   payload,
		updatedAt: time.Now(),
	}
}

// ListByOwner returns payloads most recently updated first.
func (s *LocalTripStore) ListByOwner(ownerID string) [][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type stamped struct {
		payload   []byte
		updatedAt time.Time
	}
	var entries []stamped
	for _, e := range s.data {
		if e.ownerID == ownerID {
			entries = append(entries, stamped{e.payload, e.updatedAt})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].updatedAt.After(entries[j].updatedAt)
	})

	out := make([][]byte, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.payload)
	}
	return out
}
