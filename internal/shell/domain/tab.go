package domain

import (
	"fmt"
	"strings"
	"time"
)

// TabState describes where a tab sits in its resource lifecycle.
//
//	Loading    - the engine is loading the document
//	Active     - loaded and focused
//	Background - loaded but not focused
//	Suspended  - engine resources released, metadata retained
//	Error      - engine-reported failure (error semantics owned by the engine)
type TabState uint8

const (
	TabLoading TabState = iota
	TabActive
	TabBackground
	TabSuspended
	TabError
)

// String returns a stable string representation of the tab state.
func (s TabState) String() string {
	switch s {
	case TabLoading:
		return "loading"
	case TabActive:
		return "active"
	case TabBackground:
		return "background"
	case TabSuspended:
		return "suspended"
	case TabError:
		return "error"
	default:
		return fmt.Sprintf("TabState(%d)", uint8(s))
	}
}

// ParseTabState converts a string into a TabState (case-insensitive).
func ParseTabState(s string) (TabState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "loading":
		return TabLoading, nil
	case "active":
		return TabActive, nil
	case "background":
		return TabBackground, nil
	case "suspended":
		return TabSuspended, nil
	case "error":
		return TabError, nil
	default:
		return 0, fmt.Errorf("unsupported TabState: %q", s)
	}
}

// SuspendedCapture holds the minimal data needed to restore a suspended tab
// without any engine resources. It is present on a tab exactly while the tab
// is suspended, and is the payload persisted by the session store.
type SuspendedCapture struct {
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	ScrollX     float64 `json:"scroll_x"`
	ScrollY     float64 `json:"scroll_y"`
	SuspendedAt int64   `json:"suspended_at"` // seconds since epoch
	Favicon     []byte  `json:"favicon,omitempty"`
}

// SuspensionConfig carries the tab suspension policy parameters.
type SuspensionConfig struct {
	// InactiveThreshold is how long a background tab may stay untouched
	// before the periodic sweep considers it for suspension.
	InactiveThreshold time.Duration

	// Enabled gates the periodic sweep. Pressure-driven suspension ignores it.
	Enabled bool

	// MaxActiveTabs caps the number of non-suspended tabs.
	MaxActiveTabs int

	// SuspendPinned permits suspension of pinned tabs.
	SuspendPinned bool
}

// DefaultSuspensionConfig returns the stock suspension policy:
// sweep enabled, five minute threshold, ten active tabs, pinned exempt.
func DefaultSuspensionConfig() SuspensionConfig {
	return SuspensionConfig{
		InactiveThreshold: 5 * time.Minute,
		Enabled:           true,
		MaxActiveTabs:     10,
		SuspendPinned:     false,
	}
}
