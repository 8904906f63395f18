package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Options{Enabled: true, CacheSize: 100})
	require.NoError(t, err)
	return e
}

func TestCheck_BuiltinDomainFastPath(t *testing.T) {
	e := newTestEngine(t)

	res := e.Check("https://doubleclick.net/ad.js", "https://example.com", "script")
	assert.True(t, res.Matched)
	assert.Equal(t, "domain:doubleclick.net", res.MatchingRule)
	assert.False(t, res.IsException)
}

func TestCheck_UnlistedHostAllowed(t *testing.T) {
	e := newTestEngine(t)

	res := e.Check("https://example.com/app.js", "https://example.com", "script")
	assert.False(t, res.Matched)
	assert.Empty(t, res.MatchingRule)
}

func TestCheck_ExceptionPrecedesBlock(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddFilterList("||example.com^\n@@||example.com^\n"))

	res := e.Check("https://example.com/a", "https://other.org", "script")
	assert.False(t, res.Matched, "exception rules must win over block rules")
	assert.True(t, res.IsException)
	assert.Equal(t, "||example.com", res.MatchingRule)
}

func TestCheck_DisabledCountsButNeverBlocks(t *testing.T) {
	e := newTestEngine(t)
	e.SetEnabled(false)

	res := e.Check("https://doubleclick.net/ad.js", "https://example.com", "script")
	assert.False(t, res.Matched, "a disabled engine must never block")

	stats := e.Stats()
	assert.Equal(t, uint64(1), stats.TotalChecked)
	assert.Equal(t, uint64(0), stats.TotalBlocked)

	e.SetEnabled(true)
	assert.True(t, e.Enabled())
	res = e.Check("https://doubleclick.net/ad.js", "https://example.com", "script")
	assert.True(t, res.Matched)
	assert.Equal(t, uint64(2), e.Stats().TotalChecked)
}

func TestCheck_StatsAccounting(t *testing.T) {
	e := newTestEngine(t)

	e.Check("https://doubleclick.net/ad.js", "https://example.com", "script")
	e.Check("https://doubleclick.net/pixel.gif", "https://example.com", "image")
	e.Check("https://example.com/app.js", "https://example.com", "script")

	stats := e.Stats()
	assert.Equal(t, uint64(3), stats.TotalChecked)
	assert.Equal(t, uint64(2), stats.TotalBlocked)
	// script 50k + image 30k heuristic
	assert.Equal(t, uint64(80_000), stats.BytesSaved)
	assert.InDelta(t, 66.67, stats.BlockRate(), 0.01)
}

func TestCheck_CachedDecisionsKeepCounting(t *testing.T) {
	e := newTestEngine(t)

	for i := 0; i < 5; i++ {
		res := e.Check("https://doubleclick.net/ad.js", "https://example.com", "script")
		assert.True(t, res.Matched)
	}

	stats := e.Stats()
	assert.Equal(t, uint64(5), stats.TotalChecked, "every check counts, cached or not")
	assert.Equal(t, uint64(5), stats.TotalBlocked)
	assert.Equal(t, uint64(5*50_000), stats.BytesSaved)
}

func TestCheck_CacheDisabled(t *testing.T) {
	e, err := NewEngine(Options{Enabled: true, CacheSize: 0})
	require.NoError(t, err)

	// Same outcomes with and without a cache.
	res := e.Check("https://doubleclick.net/ad.js", "https://example.com", "script")
	assert.True(t, res.Matched)
	res = e.Check("https://doubleclick.net/ad.js", "https://example.com", "script")
	assert.True(t, res.Matched)
	assert.Equal(t, uint64(2), e.Stats().TotalBlocked)
}

func TestAddBlockedDomains(t *testing.T) {
	e := newTestEngine(t)

	res := e.Check("https://ads.internal.example", "https://example.com", "script")
	require.False(t, res.Matched)

	e.AddBlockedDomains([]string{"ads.internal.example"})

	// The decision cache was purged, so the new entry takes effect.
	res = e.Check("https://ads.internal.example", "https://example.com", "script")
	assert.True(t, res.Matched)
	assert.Equal(t, "domain:ads.internal.example", res.MatchingRule)
}

func TestResetStats_PreservesFilterCount(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddFilterList("||ads.example.com^\n"))

	e.Check("https://doubleclick.net/ad.js", "https://example.com", "script")
	e.ResetStats()

	stats := e.Stats()
	assert.Equal(t, uint64(0), stats.TotalChecked)
	assert.Equal(t, uint64(0), stats.TotalBlocked)
	assert.Equal(t, uint64(0), stats.BytesSaved)
	assert.Equal(t, 1, stats.FilterCount)
}

func TestDefaultFilters_Load(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddFilterList(DefaultFilters))

	assert.Greater(t, e.Stats().FilterCount, 30)

	// A path rule from the default list.
	res := e.Check("https://cdn.example.com/ads/banner.png", "https://example.com", "image")
	assert.True(t, res.Matched)

	// The same path with a type outside the rule's restriction.
	res = e.Check("https://cdn.example.com/ads/banner.png", "https://example.com", "font")
	assert.False(t, res.Matched)
}
