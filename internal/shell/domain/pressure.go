package domain

import "fmt"

// MemoryPressure is a coarse, ordered classification of system memory
// scarcity. Higher values demand more aggressive conservation.
type MemoryPressure uint8

const (
	// PressureNormal means memory is plentiful; only routine sweeps run.
	PressureNormal MemoryPressure = iota
	// PressureLow means memory is getting scarce; start conserving.
	PressureLow
	// PressureCritical means memory is nearly exhausted; conserve aggressively.
	PressureCritical
)

// String returns a stable string representation of the pressure level.
func (p MemoryPressure) String() string {
	switch p {
	case PressureNormal:
		return "normal"
	case PressureLow:
		return "low"
	case PressureCritical:
		return "critical"
	default:
		return fmt.Sprintf("MemoryPressure(%d)", uint8(p))
	}
}

// MemorySample is one point-in-time reading of system memory. A failed or
// partially unavailable read leaves fields at zero; a zero AvailableBytes
// sits below any positive threshold, so the failure path classifies toward
// the conservative end rather than masking scarcity.
type MemorySample struct {
	TotalBytes     uint64
	AvailableBytes uint64
	UsedBytes      uint64
	SwapTotalBytes uint64
	SwapUsedBytes  uint64
}

// AvailableMB returns available memory in megabytes.
func (m MemorySample) AvailableMB() float64 {
	return float64(m.AvailableBytes) / (1024.0 * 1024.0)
}

// UsagePercent returns the used fraction of total memory as a percentage.
// Returns 0 when total is unknown.
func (m MemorySample) UsagePercent() float64 {
	if m.TotalBytes == 0 {
		return 0
	}
	return float64(m.UsedBytes) / float64(m.TotalBytes) * 100.0
}
