package probemap

import (
	"fmt"
	"hash/maphash"
	"iter"
)

const (
	DefaultCapacity   = 13
	DefaultLoadFactor = 0.75
)

// table is the open-addressing engine shared by Map and SyncMap. It is not
// safe for concurrent use on its own; SyncMap serializes access to it.
type table[K comparable, V any] struct {
	slots      store[K, V]
	size       int
	loadFactor float64

	hashFunc HashFunc[K]
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(capacity int, loadFactor float64, opts ...Option[K, V]) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, capacity)
	}
	if loadFactor <= 0 || loadFactor >= 1 {
		return fmt.Errorf("%w: load factor must be in (0, 1), got %v", ErrInvalidConfig, loadFactor)
	}

	t.slots = newStore[K, V](capacity)
	t.size = 0
	t.loadFactor = loadFactor

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	return nil
}

func (t *table[K, V]) capacity() int {
	return len(t.slots)
}

// locate walks the probe sequence for key and returns the matching Occupied
// slot (found=true), or the insertion point for it (found=false). The
// insertion point is the first Tombstone seen along the sequence if any,
// otherwise the terminating Empty slot.
//
// If the sequence exhausts all capacity probes without hitting the key or an
// Empty slot, any Empty slot left in the store is used as a fallback; with
// none left the table is grown and the walk restarts. The new store always
// has room, so the recursion terminates after one resize.
func (t *table[K, V]) locate(key K) (int, bool) {
	seq := newProbeSeq(t.hashFunc(key), len(t.slots))
	firstTombstone := -1

	for range t.slots {
		index := seq.next()
		s := &t.slots[index]

		switch s.state {
		case slotEmpty:
			if firstTombstone != -1 {
				return firstTombstone, false
			}

			return index, false

		case slotTombstone:
			if firstTombstone == -1 {
				firstTombstone = index
			}

		case slotOccupied:
			if s.key == key {
				return index, true
			}
		}
	}

	if firstTombstone != -1 {
		return firstTombstone, false
	}

	// The step was not coprime with the capacity, so the sequence missed
	// part of the store. Fall back to any free slot before growing.
	for i := range t.slots {
		if t.slots[i].state == slotEmpty {
			return i, false
		}
	}

	t.resize(2*len(t.slots) + 1)

	return t.locate(key)
}

// grow resizes ahead of an insert once the next entry would push occupancy
// to the load factor.
func (t *table[K, V]) grow() {
	if float64(t.size+1)/float64(len(t.slots)) >= t.loadFactor {
		t.resize(2*len(t.slots) + 1)
	}
}

// resize replaces the store and re-inserts every live entry. Tombstones are
// dropped here, which is the only compaction the table does.
func (t *table[K, V]) resize(newCapacity int) {
	old := t.slots

	t.slots = newStore[K, V](newCapacity)
	t.size = 0

	for i := range old {
		if old[i].state == slotOccupied {
			t.set(old[i].key, old[i].value)
		}
	}
}

func (t *table[K, V]) set(key K, value V) {
	t.grow()

	index, found := t.locate(key)
	t.write(index, found, key, value)
}

// write commits a located slot. Split out of set so SyncMap can re-check the
// slot state between locate and commit.
func (t *table[K, V]) write(index int, found bool, key K, value V) {
	s := &t.slots[index]
	s.key = key
	s.value = value

	if !found {
		s.state = slotOccupied
		t.size++
	}
}

func (t *table[K, V]) get(key K) (V, bool) {
	index, found := t.locate(key)
	if !found {
		var zero V
		return zero, false
	}

	return t.slots[index].value, true
}

func (t *table[K, V]) delete(key K) bool {
	index, found := t.locate(key)
	if !found {
		return false
	}

	// Zero the pair so the table does not pin the old key and value.
	var zero slot[K, V]
	zero.state = slotTombstone
	t.slots[index] = zero
	t.size--

	return true
}

func (t *table[K, V]) contains(key K) bool {
	_, found := t.locate(key)
	return found
}

// clear drops everything but keeps the current capacity.
func (t *table[K, V]) clear() {
	t.slots = newStore[K, V](len(t.slots))
	t.size = 0
}

// all yields every live pair in store order. Mutating the table during the
// walk is the caller's problem, same as ranging over a plain map.
func (t *table[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.slots {
			if t.slots[i].state != slotOccupied {
				continue
			}

			if !yield(t.slots[i].key, t.slots[i].value) {
				return
			}
		}
	}
}
