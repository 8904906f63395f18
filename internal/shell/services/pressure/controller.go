// Package pressure samples system memory on a timer, classifies scarcity,
// and drives the tab manager's suspension policy plus engine-wide memory
// trimming. Under pressure the engine is best effort: a failed trim never
// blocks suspension and vice versa.
package pressure

import (
	"context"
	"time"

	"github.com/cometbrowser/comet/internal/shell/common/log"
	"github.com/cometbrowser/comet/internal/shell/domain"
)

// lowPressureSuspendCount is how many of the oldest background tabs are
// suspended on a Low classification.
const lowPressureSuspendCount = 3

// Controller runs the sample → classify → respond cycle.
type Controller struct {
	cfg     Config
	sampler Sampler
	tabs    TabManager
	engine  Engine
	logger  log.Logger
}

// Options configures a Controller. Logger defaults to a no-op logger.
type Options struct {
	Config  Config
	Sampler Sampler
	Tabs    TabManager
	Engine  Engine
	Logger  log.Logger
}

// NewController constructs a pressure controller.
func NewController(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Controller{
		cfg:     opts.Config,
		sampler: opts.Sampler,
		tabs:    opts.Tabs,
		engine:  opts.Engine,
		logger:  opts.Logger,
	}
}

// RunOnce executes a single monitor cycle synchronously and returns the
// classification it acted on.
func (c *Controller) RunOnce() domain.MemoryPressure {
	sample := c.sampler.Sample()
	p := Classify(sample, c.cfg)

	if p != domain.PressureNormal {
		c.logger.Warn(map[string]any{
			"pressure":     p.String(),
			"available_mb": sample.AvailableMB(),
		}, "memory pressure detected")
	}

	c.Respond(p)
	return p
}

// Respond dispatches the policy response for a pressure level. Engine trim
// failures are logged, never escalated: trimming is an optimization, not a
// correctness requirement.
func (c *Controller) Respond(p domain.MemoryPressure) {
	switch p {
	case domain.PressureCritical:
		c.tabs.SuspendAllInactive(c.engine)
		c.trim(domain.TrimAggressive)
	case domain.PressureLow:
		c.tabs.SuspendOldestInactive(c.engine, lowPressureSuspendCount)
		c.trim(domain.TrimModerate)
	default:
		c.tabs.CheckSuspensions(c.engine)
	}
}

func (c *Controller) trim(level domain.TrimLevel) {
	if err := c.engine.TrimMemory(level); err != nil {
		c.logger.Error(map[string]any{
			"level": level.String(),
			"error": err.Error(),
		}, "failed to trim engine memory")
	}
}

// Monitor runs cycles on the configured interval until ctx is cancelled.
// Cycles never overlap: each completes before the ticker is consulted
// again, and a tick that fires mid-cycle is dropped (time.Ticker semantics)
// rather than queued. Cancellation is observed only between cycles so a
// shutdown never leaves a tab half-suspended.
func (c *Controller) Monitor(ctx context.Context) {
	if !c.cfg.Enabled {
		c.logger.Info(nil, "memory monitoring disabled")
		return
	}

	c.logger.Info(map[string]any{
		"interval":    c.cfg.Interval.String(),
		"low_mb":      c.cfg.LowThresholdBytes / (1024 * 1024),
		"critical_mb": c.cfg.CriticalThresholdBytes / (1024 * 1024),
	}, "memory monitor started")

	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info(nil, "memory monitor stopped")
			return
		case <-ticker.C:
			c.RunOnce()
		}
	}
}
