package probemap

import (
	"fmt"
	"iter"
	"sync"
)

// Manager is the shared context for SyncMap instances. It co-locates the
// single lock that serializes every operation of every map built on it, so
// two maps sharing a manager never interleave their mutations.
type Manager struct {
	mu sync.Mutex
}

func NewManager() *Manager {
	return &Manager{}
}

// DefaultManager returns the lazily created process-wide manager used when a
// SyncMap is constructed without an explicit one.
var DefaultManager = sync.OnceValue(NewManager)

// SyncMap is the shared variant of Map. Every public operation acquires the
// manager's lock for its full duration, so each operation is observed as
// atomic by all goroutines; reads are serialized too. Correctness over
// parallelism.
type SyncMap[K comparable, V any] struct {
	mgr *Manager

	table table[K, V]
}

// NewSync returns an empty shared map bound to mgr. A nil mgr selects
// DefaultManager. Capacity and loadFactor are validated as in New.
func NewSync[K comparable, V any](mgr *Manager, capacity int, loadFactor float64, opts ...Option[K, V]) (*SyncMap[K, V], error) {
	if mgr == nil {
		mgr = DefaultManager()
	}

	m := &SyncMap[K, V]{mgr: mgr}
	if err := m.table.init(capacity, loadFactor, opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *SyncMap[K, V]) Get(key K) (V, error) {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	v, ok := m.table.get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return v, nil
}

// Lookup is the comma-ok variant of Get.
func (m *SyncMap[K, V]) Lookup(key K) (V, bool) {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	return m.table.get(key)
}

// Set inserts the pair or overwrites the value of an existing key.
//
// Between locating a free slot and committing the write, the slot is
// re-checked: if another writer consumed it the table is grown and the
// location retried. Under the coarse lock the re-check can never fire, but
// it keeps Set correct if locking ever becomes finer-grained.
func (m *SyncMap[K, V]) Set(key K, value V) {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	m.table.grow()

	index, found := m.table.locate(key)
	if !found && m.table.slots[index].state == slotOccupied {
		m.table.resize(2*len(m.table.slots) + 1)
		index, found = m.table.locate(key)
	}

	m.table.write(index, found, key, value)
}

// Delete removes the key, leaving a tombstone until the next resize.
// Returns ErrKeyNotFound for an absent key.
func (m *SyncMap[K, V]) Delete(key K) error {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	if !m.table.delete(key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return nil
}

// Contains reports whether key is present.
func (m *SyncMap[K, V]) Contains(key K) bool {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	return m.table.contains(key)
}

// Len returns the number of live entries.
func (m *SyncMap[K, V]) Len() int {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	return m.table.size
}

// Capacity returns the current length of the backing store.
func (m *SyncMap[K, V]) Capacity() int {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	return m.table.capacity()
}

// Clear removes every entry, keeping the current capacity.
func (m *SyncMap[K, V]) Clear() {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	m.table.clear()
}

// All yields every key-value pair in backing-store order. The lock is held
// for the entire iteration, so the walk observes one consistent snapshot and
// blocks all other operations until it finishes or the caller breaks out.
func (m *SyncMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.mgr.mu.Lock()
		defer m.mgr.mu.Unlock()

		for k, v := range m.table.all() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys yields every key in backing-store order, under the lock as in All.
func (m *SyncMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.mgr.mu.Lock()
		defer m.mgr.mu.Unlock()

		for k := range m.table.all() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *SyncMap[K, V]) Stats() Stats {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	return newStats(&m.table)
}

// Tx is an unlocked view of a SyncMap handed to Atomic callbacks. It must
// not escape the callback.
type Tx[K comparable, V any] struct {
	t *table[K, V]
}

func (tx Tx[K, V]) Get(key K) (V, error) {
	v, ok := tx.t.get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return v, nil
}

func (tx Tx[K, V]) Lookup(key K) (V, bool) {
	return tx.t.get(key)
}

func (tx Tx[K, V]) Set(key K, value V) {
	tx.t.set(key, value)
}

func (tx Tx[K, V]) Delete(key K) error {
	if !tx.t.delete(key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return nil
}

func (tx Tx[K, V]) Contains(key K) bool {
	return tx.t.contains(key)
}

func (tx Tx[K, V]) Len() int {
	return tx.t.size
}

// Atomic runs fn while holding the shared lock, so a multi-step sequence
// like read-modify-write is observed as a single operation by every other
// goroutine. The Tx view operates on the table directly; calling SyncMap
// methods from inside fn would deadlock.
func (m *SyncMap[K, V]) Atomic(fn func(tx Tx[K, V])) {
	m.mgr.mu.Lock()
	defer m.mgr.mu.Unlock()

	fn(Tx[K, V]{t: &m.table})
}
