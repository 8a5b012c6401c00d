package probemap

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc builds a hash function on top of the runtime's
// maphash, bound to the given seed. Two tables with different seeds hash
// the same key differently.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
