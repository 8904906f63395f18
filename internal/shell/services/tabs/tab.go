package tabs

import (
	"time"

	"github.com/cometbrowser/comet/internal/shell/domain"
)

// Tab is one open document slot. The manager is its single owner; callers
// must not retain Tab pointers across manager operations.
//
// Invariant: State == TabSuspended exactly when Suspended != nil.
type Tab struct {
	// ViewID is stable for the tab's lifetime and never reused.
	ViewID domain.ViewID

	State domain.TabState

	// URL and Title mirror engine-reported metadata.
	URL   string
	Title string

	// LastActive is the last time the tab held focus; CreatedAt is set once.
	LastActive time.Time
	CreatedAt  time.Time

	// Suspended holds the restore payload while the tab is suspended.
	Suspended *domain.SuspendedCapture

	// Pinned tabs are exempt from suspension unless policy overrides.
	Pinned bool

	Favicon []byte
}

func newTab(id domain.ViewID, now time.Time) *Tab {
	return &Tab{
		ViewID:     id,
		State:      domain.TabLoading,
		URL:        "about:blank",
		Title:      "New Tab",
		LastActive: now,
		CreatedAt:  now,
	}
}

// InactiveFor returns how long the tab has been without focus as of now.
func (t *Tab) InactiveFor(now time.Time) time.Duration {
	return now.Sub(t.LastActive)
}

// markActive refreshes the activity timestamp and promotes a background tab
// to active. Other states are left alone.
func (t *Tab) markActive(now time.Time) {
	t.LastActive = now
	if t.State == domain.TabBackground {
		t.State = domain.TabActive
	}
}

// markBackground demotes an active tab. No-op in any other state.
func (t *Tab) markBackground() {
	if t.State == domain.TabActive {
		t.State = domain.TabBackground
	}
}
