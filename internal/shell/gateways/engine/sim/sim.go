// Package sim provides an in-memory engine capability used by tests and by
// cometd when no real rendering engine is wired in. It models just enough
// view lifecycle (create, load, suspend, resume, destroy) to exercise the
// tab manager and pressure controller end to end.
package sim

import (
	"fmt"

	"github.com/cometbrowser/comet/internal/shell/domain"
	"github.com/cometbrowser/comet/internal/shell/gateways/engine"
)

// Op names used for failure injection.
const (
	OpCreate  = "create"
	OpDestroy = "destroy"
	OpLoad    = "load"
	OpSuspend = "suspend"
	OpResume  = "resume"
	OpTrim    = "trim"
)

type view struct {
	url       string
	title     string
	suspended bool
	loading   bool
}

// Engine is an in-memory engine.Capability. It is not safe for concurrent
// use; like the real capability it expects a single serialized caller.
type Engine struct {
	views  map[domain.ViewID]*view
	events []domain.EngineEvent
	trims  []domain.TrimLevel
	memory domain.EngineMemoryStats

	// FailOn, when non-nil, is consulted before every fallible operation
	// and its non-nil result returned verbatim. Tests use it to inject
	// engine-boundary failures.
	FailOn func(op string, id domain.ViewID) error
}

// New returns an empty simulated engine.
func New() *Engine {
	return &Engine{views: make(map[domain.ViewID]*view)}
}

var _ engine.Capability = (*Engine)(nil)

func (e *Engine) fail(op string, id domain.ViewID) error {
	if e.FailOn == nil {
		return nil
	}
	return e.FailOn(op, id)
}

// CreateView registers a new view and queues a load-started event.
func (e *Engine) CreateView(id domain.ViewID) error {
	if err := e.fail(OpCreate, id); err != nil {
		return err
	}
	if _, ok := e.views[id]; ok {
		return domain.NewEngineError(domain.ErrInitializationFailed, fmt.Sprintf("duplicate view %s", id))
	}
	e.views[id] = &view{url: "about:blank", loading: true}
	e.events = append(e.events, domain.EngineEvent{Kind: domain.EventLoadStarted, ViewID: id})
	return nil
}

// DestroyView removes a view.
func (e *Engine) DestroyView(id domain.ViewID) error {
	if err := e.fail(OpDestroy, id); err != nil {
		return err
	}
	if _, ok := e.views[id]; !ok {
		return domain.NewViewNotFound(id)
	}
	delete(e.views, id)
	return nil
}

// LoadURL starts a navigation and queues the corresponding events.
func (e *Engine) LoadURL(id domain.ViewID, url string) error {
	if err := e.fail(OpLoad, id); err != nil {
		return err
	}
	v, ok := e.views[id]
	if !ok {
		return domain.NewViewNotFound(id)
	}
	if v.suspended {
		return domain.NewEngineError(domain.ErrNavigation, fmt.Sprintf("load on suspended view %s", id))
	}
	v.url = url
	v.loading = true
	e.events = append(e.events,
		domain.EngineEvent{Kind: domain.EventLoadStarted, ViewID: id},
		domain.EngineEvent{Kind: domain.EventURLChanged, ViewID: id, Text: url},
	)
	return nil
}

// FinishLoad marks a view loaded and queues title and finish events.
// Title is the simulated document title. Test helper.
func (e *Engine) FinishLoad(id domain.ViewID, title string) {
	v, ok := e.views[id]
	if !ok {
		return
	}
	v.loading = false
	v.title = title
	e.events = append(e.events,
		domain.EngineEvent{Kind: domain.EventTitleChanged, ViewID: id, Text: title},
		domain.EngineEvent{Kind: domain.EventLoadFinished, ViewID: id},
	)
}

// SuspendView releases the view's simulated resources.
func (e *Engine) SuspendView(id domain.ViewID) error {
	if err := e.fail(OpSuspend, id); err != nil {
		return err
	}
	v, ok := e.views[id]
	if !ok {
		return domain.NewViewNotFound(id)
	}
	if v.suspended {
		return domain.NewEngineError(domain.ErrMemory, fmt.Sprintf("view %s already suspended", id))
	}
	v.suspended = true
	return nil
}

// ResumeView reacquires the view's simulated resources.
func (e *Engine) ResumeView(id domain.ViewID) error {
	if err := e.fail(OpResume, id); err != nil {
		return err
	}
	v, ok := e.views[id]
	if !ok {
		return domain.NewViewNotFound(id)
	}
	if !v.suspended {
		return domain.NewEngineError(domain.ErrMemory, fmt.Sprintf("view %s not suspended", id))
	}
	v.suspended = false
	return nil
}

// TrimMemory records the requested trim level.
func (e *Engine) TrimMemory(level domain.TrimLevel) error {
	if err := e.fail(OpTrim, 0); err != nil {
		return err
	}
	e.trims = append(e.trims, level)
	return nil
}

// Trims returns the trim levels requested so far. Test helper.
func (e *Engine) Trims() []domain.TrimLevel { return e.trims }

// SetMemoryUsage sets the stats MemoryUsage reports. Test helper.
func (e *Engine) SetMemoryUsage(stats domain.EngineMemoryStats) { e.memory = stats }

// MemoryUsage reports the configured memory stats.
func (e *Engine) MemoryUsage() domain.EngineMemoryStats { return e.memory }

// NavigationState reports the simulated navigation state for a view.
func (e *Engine) NavigationState(id domain.ViewID) (domain.NavigationState, error) {
	v, ok := e.views[id]
	if !ok {
		return domain.NavigationState{}, domain.NewViewNotFound(id)
	}
	return domain.NavigationState{
		URL:       v.url,
		Title:     v.title,
		IsLoading: v.loading,
	}, nil
}

// PollEvents drains and returns the queued events.
func (e *Engine) PollEvents() []domain.EngineEvent {
	evs := e.events
	e.events = nil
	return evs
}

// ViewCount returns the number of live views. Test helper.
func (e *Engine) ViewCount() int { return len(e.views) }

// IsSuspended reports whether the engine holds the view in suspended state.
// Test helper.
func (e *Engine) IsSuspended(id domain.ViewID) bool {
	v, ok := e.views[id]
	return ok && v.suspended
}
