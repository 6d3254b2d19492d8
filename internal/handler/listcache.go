package handler

import (
	"github.com/patrickmn/go-cache"
)

// cachedList serves public listings from the short-lived cache when
// possible. Any content mutation flushes the whole cache; content changes
// are rare enough that per-key invalidation is not worth the bookkeeping.
func cachedList[T any](store *cache.Cache, key string, fetch func() ([]T, error)) ([]T, error) {
	if store == nil {
		return fetch()
	}
	if data, found := store.Get(key); found {
		if items, ok := data.([]T); ok {
			return items, nil
		}
	}
	items, err := fetch()
	if err != nil {
		return nil, err
	}
	store.Set(key, items, cache.DefaultExpiration)
	return items, nil
}

func flushListCache(store *cache.Cache) {
	if store != nil {
		store.Flush()
	}
}
