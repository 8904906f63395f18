package filter

import "testing"

func TestDomainSet_Contains(t *testing.T) {
	s := newDomainSet([]string{"doubleclick.net", "taboola.com"}, 0.01)

	if !s.contains("doubleclick.net") {
		t.Error("expected listed host to be contained")
	}
	if s.contains("example.com") {
		t.Error("expected unlisted host to be absent")
	}
	// Exact match only: subdomains are handled by filter rules, not here.
	if s.contains("ad.doubleclick.net") {
		t.Error("expected subdomain of a listed host to be absent")
	}
	if s.len() != 2 {
		t.Errorf("expected len 2, got %d", s.len())
	}
}

func TestDomainSet_Add(t *testing.T) {
	s := newDomainSet([]string{"a.example"}, 0.01)
	s.add([]string{"b.example", "c.example"})

	for _, d := range []string{"a.example", "b.example", "c.example"} {
		if !s.contains(d) {
			t.Errorf("expected %q contained after add", d)
		}
	}
	if s.len() != 3 {
		t.Errorf("expected len 3, got %d", s.len())
	}
}

func TestDomainSet_Empty(t *testing.T) {
	s := newDomainSet(nil, 0.01)
	if s.contains("anything.example") {
		t.Error("empty set must contain nothing")
	}
}

func TestDomainSet_AddDeduplicates(t *testing.T) {
	s := newDomainSet([]string{"a.example"}, 0.01)
	s.add([]string{"a.example"})
	if s.len() != 1 {
		t.Errorf("expected len 1 after duplicate add, got %d", s.len())
	}
}
