package probemap

type Stats struct {
	Size       int
	Capacity   int
	Tombstones int
	Load       float64
}

func newStats[K comparable, V any](t *table[K, V]) Stats {
	return Stats{
		Size:       t.size,
		Capacity:   len(t.slots),
		Tombstones: t.slots.tombstones(),
		Load:       float64(t.size) / float64(len(t.slots)),
	}
}
