package funcs

import (
	"errors"
	"fmt"

	"github.com/homier/probemap"
)

// ErrInvalidBudget is returned by Cached for a negative replay budget.
var ErrInvalidBudget = errors.New("funcs: replay budget must be non-negative")

type cacheEntry[V any] struct {
	value     V
	remaining int
}

// Cached wraps fn with bounded memoization. Each computed result is served
// from the cache at most times further calls, then recomputed; the cache
// never holds more than times entries, evicting the oldest first. A budget
// of 0 disables caching entirely.
//
// The returned function is not safe for concurrent use.
func Cached[K comparable, V any](times int, fn func(K) V) (func(K) V, error) {
	if times < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidBudget, times)
	}
	if times == 0 {
		return fn, nil
	}

	cache, err := probemap.New[K, cacheEntry[V]](probemap.DefaultCapacity, probemap.DefaultLoadFactor)
	if err != nil {
		return nil, err
	}

	// Insertion order for FIFO eviction. Keys whose replay budget ran out
	// linger here and are skipped when evicting.
	var order []K

	return func(key K) V {
		if entry, ok := cache.Lookup(key); ok {
			if entry.remaining > 1 {
				entry.remaining--
				cache.Set(key, entry)
			} else {
				_ = cache.Delete(key)
			}

			return entry.value
		}

		value := fn(key)
		cache.Set(key, cacheEntry[V]{value: value, remaining: times})
		order = append(order, key)

		for cache.Len() > times && len(order) > 0 {
			oldest := order[0]
			order = order[1:]

			if cache.Contains(oldest) {
				_ = cache.Delete(oldest)
				break
			}
		}

		return value
	}, nil
}
