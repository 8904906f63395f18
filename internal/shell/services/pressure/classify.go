package pressure

import (
	"time"

	"github.com/cometbrowser/comet/internal/shell/domain"
)

// Config carries the pressure monitor parameters. Thresholds are absolute
// byte counts. Sane configs keep CriticalThresholdBytes <= LowThresholdBytes;
// an inverted pair is a caller error and is not validated here.
type Config struct {
	Interval               time.Duration
	LowThresholdBytes      uint64
	CriticalThresholdBytes uint64
	Enabled                bool
}

// DefaultConfig returns the stock monitor parameters: a ten second interval
// with 512 MiB low and 256 MiB critical thresholds.
func DefaultConfig() Config {
	return Config{
		Interval:               10 * time.Second,
		LowThresholdBytes:      512 * 1024 * 1024,
		CriticalThresholdBytes: 256 * 1024 * 1024,
		Enabled:                true,
	}
}

// Classify maps a memory sample onto a pressure level. The critical check
// runs first, so it wins whenever the thresholds overlap.
func Classify(sample domain.MemorySample, cfg Config) domain.MemoryPressure {
	switch {
	case sample.AvailableBytes < cfg.CriticalThresholdBytes:
		return domain.PressureCritical
	case sample.AvailableBytes < cfg.LowThresholdBytes:
		return domain.PressureLow
	default:
		return domain.PressureNormal
	}
}
