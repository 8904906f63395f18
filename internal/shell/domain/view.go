package domain

import "fmt"

// ViewID identifies one engine-side view (the resource backing a tab).
// IDs are allocated monotonically by the tab manager, are stable for the
// lifetime of the tab, and are never reused.
type ViewID uint64

// String returns a stable string representation of the view identifier.
func (v ViewID) String() string {
	return fmt.Sprintf("View(%d)", uint64(v))
}
