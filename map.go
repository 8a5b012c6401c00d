package probemap

import (
	"fmt"
	"iter"
)

// Map is an open-addressing hash table with double-hashing collision
// resolution and tombstone deletes. It grows by 2*capacity+1 whenever the
// next insert would reach the load factor, rehashing every live entry and
// dropping tombstones.
//
// Map is owned by a single goroutine; for shared access use SyncMap.
type Map[K comparable, V any] struct {
	table[K, V]
}

// New returns an empty map. Capacity must be positive and loadFactor must be
// in the open interval (0, 1), otherwise ErrInvalidConfig is returned.
func New[K comparable, V any](capacity int, loadFactor float64, opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(capacity, loadFactor, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return v, nil
}

// Lookup is the comma-ok variant of Get.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return m.get(key)
}

// GetOr returns the value stored under key, or fallback if the key is absent.
func (m *Map[K, V]) GetOr(key K, fallback V) V {
	if v, ok := m.get(key); ok {
		return v
	}

	return fallback
}

// Set inserts the pair or overwrites the value of an existing key.
func (m *Map[K, V]) Set(key K, value V) {
	m.set(key, value)
}

// Delete removes the key, leaving a tombstone until the next resize.
// Returns ErrKeyNotFound for an absent key.
func (m *Map[K, V]) Delete(key K) error {
	if !m.delete(key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.contains(key)
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Capacity returns the current length of the backing store.
func (m *Map[K, V]) Capacity() int {
	return m.capacity()
}

// Clear removes every entry, keeping the current capacity.
func (m *Map[K, V]) Clear() {
	m.clear()
}

// All yields every key-value pair in backing-store order. The order is not
// meaningful and changes across resizes.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all()
}

// Keys yields every key in backing-store order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in backing-store order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.all() {
			if !yield(v) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Stats() Stats {
	return newStats(&m.table)
}
