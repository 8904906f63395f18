package domain

import "fmt"

// TrimLevel is an engine-defined aggressiveness tier for releasing cached or
// pooled memory. Levels are monotonically increasing in aggressiveness.
type TrimLevel uint8

const (
	// TrimLight frees unused caches.
	TrimLight TrimLevel = iota
	// TrimModerate reduces caches and frees pooled memory.
	TrimModerate
	// TrimAggressive minimizes the engine's memory footprint.
	TrimAggressive
)

// String returns a stable string representation of the trim level.
func (l TrimLevel) String() string {
	switch l {
	case TrimLight:
		return "light"
	case TrimModerate:
		return "moderate"
	case TrimAggressive:
		return "aggressive"
	default:
		return fmt.Sprintf("TrimLevel(%d)", uint8(l))
	}
}

// EngineMemoryStats reports the engine's aggregate memory usage plus a
// per-category breakdown.
type EngineMemoryStats struct {
	TotalBytes        uint64
	JSHeapBytes       uint64
	ImageCacheBytes   uint64
	DOMBytes          uint64
	LayoutBytes       uint64
	NetworkCacheBytes uint64
}

// TotalMB returns the aggregate engine memory usage in megabytes.
func (s EngineMemoryStats) TotalMB() float64 {
	return float64(s.TotalBytes) / (1024.0 * 1024.0)
}

// NavigationState describes where a view stands in its navigation history
// and current load.
type NavigationState struct {
	CanGoBack    bool
	CanGoForward bool
	IsLoading    bool
	URL          string
	Title        string
	Progress     float64 // 0.0 - 1.0
}

// EventKind discriminates the asynchronous events an engine emits.
type EventKind uint8

const (
	EventTitleChanged EventKind = iota
	EventURLChanged
	EventLoadProgress
	EventLoadStarted
	EventLoadFinished
	EventFaviconReady
	EventNavigationStateChanged
	EventConsoleMessage
	EventCertificateError
)

// String returns a stable string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTitleChanged:
		return "title_changed"
	case EventURLChanged:
		return "url_changed"
	case EventLoadProgress:
		return "load_progress"
	case EventLoadStarted:
		return "load_started"
	case EventLoadFinished:
		return "load_finished"
	case EventFaviconReady:
		return "favicon_ready"
	case EventNavigationStateChanged:
		return "navigation_state_changed"
	case EventConsoleMessage:
		return "console_message"
	case EventCertificateError:
		return "certificate_error"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// EngineEvent is one asynchronous notification from the engine, keyed to the
// view that produced it. Only the fields relevant to Kind are populated:
// Text for titles, URLs, console messages and certificate errors; Progress
// for load progress; Favicon for favicon payloads; Navigation for
// navigation-state changes.
type EngineEvent struct {
	Kind       EventKind
	ViewID     ViewID
	Text       string
	Progress   float64
	Favicon    []byte
	Navigation NavigationState
}
