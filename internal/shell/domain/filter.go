package domain

// FilterRule is one compiled filter directive from an EasyList-style list.
//
// Notes:
// - Pattern is the raw matcher string with any option suffix stripped.
// - ResourceTypes empty means the rule applies to every resource type.
// - Domains empty means the rule applies on every source domain. Exclusion
//   markers (~domain) are normalized away at parse time; negative matching
//   is not implemented.
type FilterRule struct {
	Pattern        string
	IsBlock        bool
	ResourceTypes  map[ResourceType]struct{}
	Domains        map[string]struct{}
	ThirdPartyOnly bool
}

// AppliesTo reports whether the rule's resource-type restriction, when
// non-empty, includes rt.
func (r FilterRule) AppliesTo(rt ResourceType) bool {
	if len(r.ResourceTypes) == 0 {
		return true
	}
	_, ok := r.ResourceTypes[rt]
	return ok
}

// BlockResult is the outcome of checking one request against the filter
// engine.
type BlockResult struct {
	// Matched is true when the request should be blocked.
	Matched bool
	// MatchingRule identifies the rule that decided the outcome, if any.
	MatchingRule string
	// IsException is true when an allow rule decided the outcome.
	IsException bool
}

// BlockerStats carries the filter engine's running counters.
type BlockerStats struct {
	TotalChecked uint64 `json:"total_checked"`
	TotalBlocked uint64 `json:"total_blocked"`
	// BytesSaved is a fixed per-resource-type heuristic, not a measurement.
	BytesSaved  uint64 `json:"bytes_saved"`
	FilterCount int    `json:"filter_count"`
}

// BlockRate returns the blocked fraction of checked requests as a percentage.
func (s BlockerStats) BlockRate() float64 {
	if s.TotalChecked == 0 {
		return 0
	}
	return float64(s.TotalBlocked) / float64(s.TotalChecked) * 100.0
}

// BytesSavedMB returns the bytes-saved estimate in megabytes.
func (s BlockerStats) BytesSavedMB() float64 {
	return float64(s.BytesSaved) / (1024.0 * 1024.0)
}
