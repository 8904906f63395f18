package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
// The surrounding application reads it once at startup and hands plain
// structs to the core components; no config file persistence is involved.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	Tabs    TabsConfig    `koanf:"tabs"`
	Memory  MemoryConfig  `koanf:"memory"`
	Filter  FilterConfig  `koanf:"filter"`
	Session SessionConfig `koanf:"session"`
	Update  UpdateConfig  `koanf:"update"`
}

// TabsConfig carries the tab suspension policy knobs.
type TabsConfig struct {
	// Enabled gates the periodic inactivity sweep.
	Enabled bool `koanf:"enabled"`

	// InactiveSeconds is the background inactivity threshold before a tab
	// becomes eligible for suspension.
	InactiveSeconds uint `koanf:"inactive_seconds" validate:"required,gte=1"`

	// MaxActive caps the number of non-suspended tabs.
	MaxActive uint `koanf:"max_active" validate:"required,gte=1"`

	// SuspendPinned permits suspending pinned tabs.
	SuspendPinned bool `koanf:"suspend_pinned"`
}

// MemoryConfig carries the memory pressure monitor knobs. Thresholds are
// absolute byte counts. An inverted pair (critical > low) is a caller error
// and is deliberately not validated here.
type MemoryConfig struct {
	Enabled         bool   `koanf:"enabled"`
	IntervalSeconds uint   `koanf:"interval_seconds" validate:"required,gte=1"`
	LowBytes        uint64 `koanf:"low_bytes" validate:"required,gte=1"`
	CriticalBytes   uint64 `koanf:"critical_bytes" validate:"required,gte=1"`
}

// FilterConfig carries the content filter knobs.
type FilterConfig struct {
	Enabled bool `koanf:"enabled"`

	// CacheSize is the decision cache capacity; 0 disables the cache.
	CacheSize int `koanf:"cache_size" validate:"gte=0"`

	// BloomFPRate is the target false-positive rate for the domain
	// blocklist's bloom pre-filter.
	BloomFPRate float64 `koanf:"bloom_fp_rate" validate:"required,gt=0,lt=1"`
}

// SessionConfig carries the suspended-tab session store knobs.
type SessionConfig struct {
	// DB is the bolt database path; empty disables persistence.
	DB string `koanf:"db"`
}

// UpdateConfig carries the update checker knobs.
type UpdateConfig struct {
	Enabled         bool   `koanf:"enabled"`
	Repo            string `koanf:"repo" validate:"required,contains=/"`
	IntervalSeconds uint   `koanf:"interval_seconds" validate:"required,gte=60"`
}

// DEFAULT_APP_CONFIG defines the default application configuration.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:      "prod",
	LogLevel: "info",
	Tabs: TabsConfig{
		Enabled:         true,
		InactiveSeconds: 300,
		MaxActive:       10,
		SuspendPinned:   false,
	},
	Memory: MemoryConfig{
		Enabled:         true,
		IntervalSeconds: 10,
		LowBytes:        512 * 1024 * 1024,
		CriticalBytes:   256 * 1024 * 1024,
	},
	Filter: FilterConfig{
		Enabled:     true,
		CacheSize:   1000,
		BloomFPRate: 0.01,
	},
	Session: SessionConfig{
		DB: "",
	},
	Update: UpdateConfig{
		Enabled:         true,
		Repo:            "cometbrowser/comet",
		IntervalSeconds: 86400,
	},
}

// sections are the env key prefixes that map to nested config structs.
var sections = []string{"tabs", "memory", "filter", "session", "update"}

// envLoader loads environment variables prefixed with "COMET_". Keys are
// lowercased, the prefix stripped, and a leading section name converted to a
// koanf path (COMET_TABS_MAX_ACTIVE -> tabs.max_active). It is a var so
// tests can swap it out.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "COMET_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "COMET_"))
			for _, s := range sections {
				if strings.HasPrefix(key, s+"_") {
					key = s + "." + strings.TrimPrefix(key, s+"_")
					break
				}
			}
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader seeds the koanf instance with DEFAULT_APP_CONFIG.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
