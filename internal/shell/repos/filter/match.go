package filter

import (
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/cometbrowser/comet/internal/shell/domain"
)

// extractHost pulls the host out of a URL without full parsing: strip the
// scheme, cut at the first '/', then drop any ':port'.
func extractHost(url string) string {
	if idx := strings.Index(url, "://"); idx >= 0 {
		url = url[idx+len("://"):]
	}
	host, _, _ := strings.Cut(url, "/")
	host, _, _ = strings.Cut(host, ":")
	return host
}

// registrableDomain returns the eTLD+1 for a host, falling back to the host
// itself when the public suffix list cannot place it.
func registrableDomain(host string) string {
	apex, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return apex
}

// isThirdParty reports whether the request host and the source document's
// host belong to different registrable domains. An empty source is treated
// as first-party, so third-party-only rules never fire without provenance.
func isThirdParty(url, sourceURL string) bool {
	src := extractHost(sourceURL)
	if src == "" {
		return false
	}
	return registrableDomain(extractHost(url)) != registrableDomain(src)
}

// ruleMatches reports whether rule matches the request. A rule matches only
// if its resource-type restriction (when non-empty) includes rt, its domain
// scope (when non-empty) covers the source host, and its third-party flag
// (when set) holds for the request.
func ruleMatches(rule domain.FilterRule, url, sourceURL string, rt domain.ResourceType) bool {
	if !rule.AppliesTo(rt) {
		return false
	}
	if rule.ThirdPartyOnly && !isThirdParty(url, sourceURL) {
		return false
	}
	if len(rule.Domains) > 0 && !domainScopeCovers(rule.Domains, sourceURL) {
		return false
	}

	pattern := rule.Pattern
	switch {
	case strings.HasPrefix(pattern, "||"):
		// Domain anchor: the request host or the raw URL contains the
		// remainder as a substring.
		rest := pattern[2:]
		return strings.Contains(extractHost(url), rest) || strings.Contains(url, rest)
	case len(pattern) >= 2 && strings.HasPrefix(pattern, "|") && strings.HasSuffix(pattern, "|"):
		// Exact match on the full URL.
		return url == pattern[1:len(pattern)-1]
	case strings.Contains(pattern, "*"):
		return wildcardMatch(pattern, url)
	default:
		return strings.Contains(url, pattern)
	}
}

// domainScopeCovers reports whether the source document's host, or its
// registrable domain, appears in the rule's domain scope.
func domainScopeCovers(domains map[string]struct{}, sourceURL string) bool {
	host := extractHost(sourceURL)
	if host == "" {
		return false
	}
	if _, ok := domains[host]; ok {
		return true
	}
	_, ok := domains[registrableDomain(host)]
	return ok
}

// wildcardMatch matches a '*' pattern against text with a greedy forward
// scan: each non-empty fragment must occur left to right, and a leading
// fragment is anchored at position 0 unless the pattern starts with '*'.
func wildcardMatch(pattern, text string) bool {
	parts := strings.Split(pattern, "*")

	pos := 0
	for i, part := range parts {
		if part == "" {
			continue
		}
		found := strings.Index(text[pos:], part)
		if found < 0 {
			return false
		}
		if i == 0 && found != 0 && !strings.HasPrefix(pattern, "*") {
			return false
		}
		pos += found + len(part)
	}
	return true
}
