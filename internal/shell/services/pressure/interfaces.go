package pressure

import (
	"github.com/cometbrowser/comet/internal/shell/domain"
	"github.com/cometbrowser/comet/internal/shell/services/tabs"
)

// Sampler reads system memory. Implementations must degrade to a zero
// sample on failure rather than returning an error; a zero available-bytes
// reading classifies below any positive threshold, which is the safe side.
type Sampler interface {
	Sample() domain.MemorySample
}

// Engine is the slice of the engine capability the controller consumes: the
// tab manager's slice, plus memory trimming.
type Engine interface {
	tabs.Engine
	TrimMemory(level domain.TrimLevel) error
}

// TabManager is the suspension policy surface the controller drives.
type TabManager interface {
	CheckSuspensions(engine tabs.Engine)
	SuspendAllInactive(engine tabs.Engine)
	SuspendOldestInactive(engine tabs.Engine, n int)
}
