package usecase

import "sync"

// storeLocks hands out one mutex per store id.
//
// Every balance mutation and the eligibility-then-payout pair run inside the
// owning store's critical section, so read-modify-write sequences against the
// same store never interleave. Operations on different stores proceed
// independently.
type storeLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newStoreLocks() *storeLocks {
	return &storeLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *storeLocks) get(storeID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[storeID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[storeID] = m
	}
	return m
}
