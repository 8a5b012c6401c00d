package probemap

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

// slot is a single cell of the backing store. A Tombstone keeps probe
// sequences intact after a delete until the next resize drops it.
type slot[K comparable, V any] struct {
	key   K
	value V
	state slotState
}

// store is the fixed-length backing array. Its length never changes between
// resizes; a resize replaces the store wholesale.
type store[K comparable, V any] []slot[K, V]

func newStore[K comparable, V any](capacity int) store[K, V] {
	return make(store[K, V], capacity)
}

// occupied counts live entries. Used by Stats and by invariant checks in
// tests; the hot path tracks size incrementally instead.
func (s store[K, V]) occupied() int {
	n := 0
	for i := range s {
		if s[i].state == slotOccupied {
			n++
		}
	}

	return n
}

func (s store[K, V]) tombstones() int {
	n := 0
	for i := range s {
		if s[i].state == slotTombstone {
			n++
		}
	}

	return n
}
