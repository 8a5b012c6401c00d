package probemap

import (
	"fmt"
	"testing"
)

func BenchmarkMap_Set(b *testing.B) {
	m, _ := New[int, int](1024, 0.75)

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		m.Set(i&0xFFFF, i)
	}
}

func BenchmarkMap_Get(b *testing.B) {
	m, _ := New[int, int](1024, 0.75)
	for i := range 10_000 {
		m.Set(i, i)
	}

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		m.Lookup(i % 10_000)
	}
}

func BenchmarkSyncMap_Set(b *testing.B) {
	m, _ := NewSync[int, int](NewManager(), 1024, 0.75)

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		m.Set(i&0xFFFF, i)
	}
}

func BenchmarkSyncMap_Get_Parallel(b *testing.B) {
	m, _ := NewSync[int, int](NewManager(), 1024, 0.75)
	for i := range 10_000 {
		m.Set(i, i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			m.Lookup(i % 10_000)
			i++
		}
	})
}

func BenchmarkMap_SetGrow(b *testing.B) {
	for b.Loop() {
		m, _ := New[string, int](13, 0.75)
		for i := range 1000 {
			m.Set(fmt.Sprintf("key-%d", i), i)
		}
	}
}
