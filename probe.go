package probemap

// probeSeq walks the double-hashing probe sequence
//
//	index_i = (hash % capacity + i * step) % capacity
//	step    = 1 + hash % (capacity - 1)
//
// The step is never 0, so the sequence always advances. It covers every slot
// exactly once only when step and capacity are coprime; callers cap the walk
// at capacity probes and treat exhaustion as a miss.
type probeSeq struct {
	index    int
	step     int
	capacity int
}

func newProbeSeq(hash uint64, capacity int) probeSeq {
	step := 1
	if capacity > 1 {
		step = 1 + int(hash%uint64(capacity-1))
	}

	return probeSeq{
		index:    int(hash % uint64(capacity)),
		step:     step,
		capacity: capacity,
	}
}

// next returns the current candidate index and advances the sequence.
func (p *probeSeq) next() int {
	index := p.index
	p.index = (p.index + p.step) % p.capacity

	return index
}
