package filter

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cometbrowser/comet/internal/shell/domain"
)

// decisionCache memoizes match outcomes per (url, source, type) triple.
// Only the pipeline result is cached; the running counters are applied on
// every check, hit or miss, so statistics stay per-check accurate.
type decisionCache interface {
	get(url, sourceURL string, rt domain.ResourceType) (domain.BlockResult, bool)
	put(url, sourceURL string, rt domain.ResourceType, res domain.BlockResult)
	purge()
}

// newDecisionCache returns an LRU-backed cache, or a disabled no-op cache
// when size <= 0.
func newDecisionCache(size int) (decisionCache, error) {
	if size <= 0 {
		return disabledCache{}, nil
	}
	c, err := lru.New[string, domain.BlockResult](size)
	if err != nil {
		return nil, err
	}
	return &lruCache{lru: c}, nil
}

type lruCache struct {
	lru *lru.Cache[string, domain.BlockResult]
}

func cacheKey(url, sourceURL string, rt domain.ResourceType) string {
	return url + "\x00" + sourceURL + "\x00" + rt.String()
}

func (c *lruCache) get(url, sourceURL string, rt domain.ResourceType) (domain.BlockResult, bool) {
	return c.lru.Get(cacheKey(url, sourceURL, rt))
}

func (c *lruCache) put(url, sourceURL string, rt domain.ResourceType, res domain.BlockResult) {
	c.lru.Add(cacheKey(url, sourceURL, rt), res)
}

func (c *lruCache) purge() { c.lru.Purge() }

type disabledCache struct{}

func (disabledCache) get(string, string, domain.ResourceType) (domain.BlockResult, bool) {
	return domain.BlockResult{}, false
}

func (disabledCache) put(string, string, domain.ResourceType, domain.BlockResult) {}

func (disabledCache) purge() {}
