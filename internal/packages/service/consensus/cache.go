package consensus

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

// responseCache is a small TTL cache over computed views. Concurrent misses
// for the same key collapse into a single computation.
type responseCache struct {
	lru   *expirable.LRU[string, model.Response]
	group singleflight.Group
}

func newResponseCache(size int, ttl time.Duration) *responseCache {
	return &responseCache{
		lru: expirable.NewLRU[string, model.Response](size, nil, ttl),
	}
}

// getOrCompute returns the cached response for key, computing and storing it
// on a miss. The hit flag reports whether the value came from the cache.
func (c *responseCache) getOrCompute(key string, compute func() (model.Response, error)) (model.Response, bool, error) {
	if resp, ok := c.lru.Get(key); ok {
		return resp, true, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if resp, ok := c.lru.Get(key); ok {
			return resp, nil
		}
		resp, err := compute()
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, resp)
		return resp, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(model.Response), false, nil
}
