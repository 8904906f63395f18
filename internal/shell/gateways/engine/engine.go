// Package engine defines the capability contract the shell core uses to
// reach the rendering engine. The core only ever consumes this contract;
// concrete engines live behind it and are constructed explicitly by the
// surrounding application. There is no process-wide engine registry.
package engine

import "github.com/cometbrowser/comet/internal/shell/domain"

// Capability is the abstract engine surface, keyed by opaque view
// identifiers. Every fallible operation reports failure as a
// *domain.EngineError, keyed to the view that was not found or categorized
// by failure kind.
type Capability interface {
	// CreateView materializes the engine-side resources for a new view.
	CreateView(id domain.ViewID) error

	// DestroyView releases all resources for a view.
	DestroyView(id domain.ViewID) error

	// LoadURL starts a navigation in the view.
	LoadURL(id domain.ViewID, url string) error

	// SuspendView releases the view's resources while keeping the view
	// identifier valid. Safe to call only on non-suspended views.
	SuspendView(id domain.ViewID) error

	// ResumeView reacquires resources for a suspended view. The caller is
	// expected to follow up with LoadURL; no document state is restored.
	ResumeView(id domain.ViewID) error

	// TrimMemory releases cached or pooled memory at the given
	// aggressiveness level.
	TrimMemory(level domain.TrimLevel) error

	// MemoryUsage reports the engine's aggregate and per-category usage.
	MemoryUsage() domain.EngineMemoryStats

	// NavigationState reports where the view stands in its navigation.
	NavigationState(id domain.ViewID) (domain.NavigationState, error)

	// PollEvents drains the engine's queue of asynchronous events.
	PollEvents() []domain.EngineEvent
}
