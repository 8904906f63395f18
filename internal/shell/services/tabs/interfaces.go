package tabs

import "github.com/cometbrowser/comet/internal/shell/domain"

// Engine is the slice of the engine capability the tab manager consumes.
// It is passed into every resource-affecting operation by exclusive
// reference, so no two manager operations can reach the engine at once.
type Engine interface {
	CreateView(id domain.ViewID) error
	DestroyView(id domain.ViewID) error
	LoadURL(id domain.ViewID, url string) error
	SuspendView(id domain.ViewID) error
	ResumeView(id domain.ViewID) error
}

// SessionStore persists suspended-tab captures so a crashed shell can offer
// to restore them. All writes from the manager are best-effort: failures are
// logged and never affect tab state.
type SessionStore interface {
	Put(id domain.ViewID, capture domain.SuspendedCapture) error
	Delete(id domain.ViewID) error
}
