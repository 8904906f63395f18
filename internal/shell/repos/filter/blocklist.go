package filter

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// domainSet is the fast-path blocklist: an exact-match hostname set fronted
// by a bloom filter so the common case (a host nobody blocks) costs a few
// hash probes and no map lookup.
type domainSet struct {
	set    map[string]struct{}
	bloom  *bloom.BloomFilter
	fpRate float64
}

func newDomainSet(domains []string, fpRate float64) *domainSet {
	s := &domainSet{fpRate: fpRate}
	s.rebuild(domains)
	return s
}

// contains reports whether host is exactly on the blocklist.
func (s *domainSet) contains(host string) bool {
	if !s.bloom.TestString(host) {
		return false
	}
	_, ok := s.set[host]
	return ok
}

// add extends the set, rebuilding the bloom filter sized for the new total.
func (s *domainSet) add(domains []string) {
	all := make([]string, 0, len(s.set)+len(domains))
	for d := range s.set {
		all = append(all, d)
	}
	all = append(all, domains...)
	s.rebuild(all)
}

func (s *domainSet) rebuild(domains []string) {
	s.set = make(map[string]struct{}, len(domains))
	for _, d := range domains {
		s.set[d] = struct{}{}
	}

	n := uint(len(s.set))
	if n == 0 {
		n = 1
	}
	s.bloom = bloom.NewWithEstimates(n, s.fpRate)
	for d := range s.set {
		s.bloom.AddString(d)
	}
}

func (s *domainSet) len() int { return len(s.set) }
