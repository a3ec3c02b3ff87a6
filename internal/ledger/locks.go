package ledger

import (
	"bytes"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// lockRegistry hands out one mutex per wallet. All mutations touching a
// wallet serialize on its mutex, reads do not take it.
//
// Mutexes are kept for the lifetime of the process. Wallets come and go
// rarely enough that this does not matter.
type lockRegistry struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (r *lockRegistry) get(id uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[id]
	if !ok {
		l = &sync.Mutex{}
		r.locks[id] = l
	}

	return l
}

// lock acquires the mutexes for the given wallets in a stable order so
// that two transfers touching the same wallets cannot deadlock. The
// returned function releases them again.
func (r *lockRegistry) lock(ids ...uuid.UUID) func() {
	ids = slices.Clone(ids)
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	ids = slices.Compact(ids)

	locked := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		m := r.get(id)
		m.Lock()
		locked = append(locked, m)
	}

	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}
