package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cometbrowser/comet/internal/shell/common/clock"
	"github.com/cometbrowser/comet/internal/shell/common/log"
	"github.com/cometbrowser/comet/internal/shell/config"
	"github.com/cometbrowser/comet/internal/shell/domain"
	"github.com/cometbrowser/comet/internal/shell/gateways/engine/sim"
	"github.com/cometbrowser/comet/internal/shell/gateways/sysmem"
	"github.com/cometbrowser/comet/internal/shell/gateways/update"
	"github.com/cometbrowser/comet/internal/shell/repos/filter"
	"github.com/cometbrowser/comet/internal/shell/repos/session"
	"github.com/cometbrowser/comet/internal/shell/services/pressure"
	"github.com/cometbrowser/comet/internal/shell/services/tabs"
)

const (
	version = "0.1.0"
	appName = "cometd"

	// eventPollInterval paces the engine event pump.
	eventPollInterval = 50 * time.Millisecond
)

// Application wires the shell core together. The run loop is the single
// owner of the tab manager and the engine: memory cycles and event pumping
// are interleaved on one goroutine, which is the serialization the core
// components require.
type Application struct {
	cfg        *config.AppConfig
	engine     *sim.Engine
	tabManager *tabs.Manager
	blocker    *filter.Engine
	controller *pressure.Controller
	sessions   session.Store
	updates    *update.Checker
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":   version,
		"env":       cfg.Env,
		"log_level": cfg.LogLevel,
	}, "starting comet shell core")

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "failed to build application")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "shutdown signal received")
		cancel()
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatal(map[string]any{"error": err}, "shell core failed")
	}

	log.Info(nil, "comet shell core stopped gracefully")
}

// buildApplication constructs all components and wires them together. The
// engine capability is built once, explicitly, and handed to the consumers
// by reference; there is no engine registry.
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	logger := log.GetLogger()
	clk := clock.RealClock{}

	eng := sim.New()

	blocker, err := filter.NewEngine(filter.Options{
		Enabled:     cfg.Filter.Enabled,
		CacheSize:   cfg.Filter.CacheSize,
		BloomFPRate: cfg.Filter.BloomFPRate,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build content filter: %w", err)
	}
	if err := blocker.AddFilterList(filter.DefaultFilters); err != nil {
		return nil, fmt.Errorf("failed to load default filters: %w", err)
	}

	var sessions session.Store = session.NoopStore{}
	if cfg.Session.DB != "" {
		sessions, err = session.Open(cfg.Session.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
		log.Info(map[string]any{"db": cfg.Session.DB}, "session store opened")

		// Captures left behind by a previous run are restorable tabs. The
		// shell surfaces them; the core only reports they exist.
		if restorable, err := sessions.All(); err != nil {
			log.Warn(map[string]any{"error": err.Error()}, "failed to read persisted session")
		} else if len(restorable) > 0 {
			log.Info(map[string]any{"tabs": len(restorable)}, "suspended tabs available to restore")
		}
	}

	tabManager := tabs.NewManager(tabs.Options{
		Config: domain.SuspensionConfig{
			InactiveThreshold: time.Duration(cfg.Tabs.InactiveSeconds) * time.Second,
			Enabled:           cfg.Tabs.Enabled,
			MaxActiveTabs:     int(cfg.Tabs.MaxActive),
			SuspendPinned:     cfg.Tabs.SuspendPinned,
		},
		Clock:  clk,
		Logger: logger,
		Store:  sessions,
	})

	controller := pressure.NewController(pressure.Options{
		Config: pressure.Config{
			Interval:               time.Duration(cfg.Memory.IntervalSeconds) * time.Second,
			LowThresholdBytes:      cfg.Memory.LowBytes,
			CriticalThresholdBytes: cfg.Memory.CriticalBytes,
			Enabled:                cfg.Memory.Enabled,
		},
		Sampler: sysmem.NewProcSampler(logger),
		Tabs:    tabManager,
		Engine:  eng,
		Logger:  logger,
	})

	updates := update.NewChecker(update.Options{
		Current: version,
		Repo:    cfg.Update.Repo,
		Logger:  logger,
	})

	return &Application{
		cfg:        cfg,
		engine:     eng,
		tabManager: tabManager,
		blocker:    blocker,
		controller: controller,
		sessions:   sessions,
		updates:    updates,
	}, nil
}

// Run drives the shell core until ctx is cancelled. Memory cycles and
// engine event pumping share this goroutine so tab manager access stays
// serialized; the update checker runs independently since it touches
// neither the manager nor the engine.
func (app *Application) Run(ctx context.Context) error {
	if app.cfg.Update.Enabled {
		go app.updates.Run(ctx,
			time.Duration(app.cfg.Update.IntervalSeconds)*time.Second,
			func(info update.Info) {
				log.Info(map[string]any{
					"version": info.Version,
					"url":     info.ReleaseURL,
				}, "a newer comet release is available")
			})
	}

	memTicker := time.NewTicker(time.Duration(app.cfg.Memory.IntervalSeconds) * time.Second)
	defer memTicker.Stop()
	eventTicker := time.NewTicker(eventPollInterval)
	defer eventTicker.Stop()

	log.Info(map[string]any{
		"memory_interval_s": app.cfg.Memory.IntervalSeconds,
		"filters":           app.blocker.Stats().FilterCount,
	}, "shell core running")

	for {
		select {
		case <-ctx.Done():
			if err := app.sessions.Close(); err != nil {
				log.Warn(map[string]any{"error": err.Error()}, "error closing session store")
			}
			return nil
		case <-memTicker.C:
			if app.cfg.Memory.Enabled {
				app.controller.RunOnce()
			}
		case <-eventTicker.C:
			for _, ev := range app.engine.PollEvents() {
				app.tabManager.ApplyEvent(ev)
			}
		}
	}
}
