// Package filter decides whether a prospective network request should be
// blocked, using EasyList-style rules and a fast exact-match domain
// blocklist. Rule order is semantically meaningful: exception rules are
// consulted before block rules, each list in insertion order, first match
// wins.
//
// The engine has no internal locking; like the tab manager it expects a
// single serialized caller.
package filter

import (
	"github.com/cometbrowser/comet/internal/shell/common/log"
	"github.com/cometbrowser/comet/internal/shell/domain"
)

// Engine is the content filter engine.
type Engine struct {
	blockRules     []domain.FilterRule
	exceptionRules []domain.FilterRule
	blocklist      *domainSet
	stats          domain.BlockerStats
	enabled        bool
	cache          decisionCache
	logger         log.Logger
}

// Options configures an Engine.
type Options struct {
	// Enabled gates blocking. A disabled engine still counts checks but
	// never blocks.
	Enabled bool

	// CacheSize is the decision cache capacity; 0 or negative disables it.
	CacheSize int

	// BloomFPRate is the domain blocklist bloom pre-filter's target
	// false-positive rate. Zero selects a 1% default.
	BloomFPRate float64

	Logger log.Logger
}

// NewEngine constructs a filter engine preloaded with the builtin
// ad/tracker domain blocklist.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	if opts.BloomFPRate <= 0 {
		opts.BloomFPRate = 0.01
	}

	cache, err := newDecisionCache(opts.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Engine{
		blocklist: newDomainSet(BuiltinBlockedDomains, opts.BloomFPRate),
		enabled:   opts.Enabled,
		cache:     cache,
		logger:    opts.Logger,
	}, nil
}

// Check decides whether the request for url (issued by the document at
// sourceURL, fetching the given resource type) should be blocked.
//
// Evaluation order: checked counter, enabled gate, domain-blocklist fast
// path, exception rules, block rules. Every check increments the checked
// counter exactly once regardless of outcome.
func (e *Engine) Check(url, sourceURL, resourceType string) domain.BlockResult {
	e.stats.TotalChecked++

	if !e.enabled {
		return domain.BlockResult{}
	}

	rt := domain.ParseResourceType(resourceType)

	if res, ok := e.cache.get(url, sourceURL, rt); ok {
		e.recordOutcome(res, rt)
		return res
	}

	res := e.evaluate(url, sourceURL, rt)
	e.cache.put(url, sourceURL, rt, res)
	e.recordOutcome(res, rt)
	return res
}

// evaluate runs the match pipeline without touching counters or cache.
func (e *Engine) evaluate(url, sourceURL string, rt domain.ResourceType) domain.BlockResult {
	// Fast path: exact host lookup against the domain blocklist, no rule
	// list scan.
	if host := extractHost(url); host != "" && e.blocklist.contains(host) {
		return domain.BlockResult{
			Matched:      true,
			MatchingRule: "domain:" + host,
		}
	}

	for _, rule := range e.exceptionRules {
		if ruleMatches(rule, url, sourceURL, rt) {
			return domain.BlockResult{
				MatchingRule: rule.Pattern,
				IsException:  true,
			}
		}
	}

	for _, rule := range e.blockRules {
		if ruleMatches(rule, url, sourceURL, rt) {
			return domain.BlockResult{
				Matched:      true,
				MatchingRule: rule.Pattern,
			}
		}
	}

	return domain.BlockResult{}
}

// recordOutcome applies a decided result to the running counters.
func (e *Engine) recordOutcome(res domain.BlockResult, rt domain.ResourceType) {
	if res.Matched {
		e.stats.TotalBlocked++
		e.stats.BytesSaved += rt.EstimatedSize()
	}
}

// AddBlockedDomains extends the fast-path domain blocklist.
func (e *Engine) AddBlockedDomains(domains []string) {
	e.blocklist.add(domains)
	e.cache.purge()
}

// SetEnabled enables or disables blocking.
func (e *Engine) SetEnabled(enabled bool) { e.enabled = enabled }

// Enabled reports whether blocking is enabled.
func (e *Engine) Enabled() bool { return e.enabled }

// Stats returns a snapshot of the running counters.
func (e *Engine) Stats() domain.BlockerStats { return e.stats }

// ResetStats zeroes the counters, preserving the filter count.
func (e *Engine) ResetStats() {
	e.stats.TotalChecked = 0
	e.stats.TotalBlocked = 0
	e.stats.BytesSaved = 0
}
