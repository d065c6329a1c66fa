package service

import (
	"slices"
	"sync"
)

// lockTable hands out one mutex per key. Multi-key acquisition always
// happens in sorted key order so two callers locking the same pair in
// opposite order cannot deadlock.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

func (t *lockTable) get(key string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	m, ok := t.locks[key]
	if !ok {
		m = &sync.Mutex{}
		t.locks[key] = m
	}
	return m
}

// lock acquires every key and returns the matching unlock func.
// Duplicate keys are locked once.
func (t *lockTable) lock(keys ...string) func() {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, key := range sorted {
		m := t.get(key)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func accountKey(id string) string { return "account:" + id }
func linkedKey(id string) string  { return "linked:" + id }
