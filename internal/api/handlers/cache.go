package handlers

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Public content reads dominate traffic, so list endpoints are served
// through a short-lived in-process cache. Writes invalidate their key.
var listCache = cache.New(5*time.Minute, 10*time.Minute)

func cached[T any](key string, fetch func() (T, error)) (T, error) {
	if data, found := listCache.Get(key); found {
		if v, ok := data.(T); ok {
			return v, nil
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	listCache.Set(key, v, cache.DefaultExpiration)
	return v, nil
}

func invalidate(key string) {
	listCache.Delete(key)
}
