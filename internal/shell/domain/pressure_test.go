package domain

import "testing"

func TestMemoryPressure_String(t *testing.T) {
	tests := []struct {
		p    MemoryPressure
		want string
	}{
		{PressureNormal, "normal"},
		{PressureLow, "low"},
		{PressureCritical, "critical"},
		{MemoryPressure(9), "MemoryPressure(9)"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("MemoryPressure(%d).String() = %q; want %q", tt.p, got, tt.want)
		}
	}
}

func TestMemoryPressure_Ordering(t *testing.T) {
	if !(PressureNormal < PressureLow && PressureLow < PressureCritical) {
		t.Error("pressure levels must be ordered normal < low < critical")
	}
}

func TestMemorySample_AvailableMB(t *testing.T) {
	s := MemorySample{AvailableBytes: 512 * 1024 * 1024}
	if got := s.AvailableMB(); got != 512.0 {
		t.Errorf("AvailableMB() = %f; want 512", got)
	}

	var zero MemorySample
	if got := zero.AvailableMB(); got != 0 {
		t.Errorf("zero sample AvailableMB() = %f; want 0", got)
	}
}

func TestMemorySample_UsagePercent(t *testing.T) {
	tests := []struct {
		name   string
		sample MemorySample
		want   float64
	}{
		{"half used", MemorySample{TotalBytes: 1000, UsedBytes: 500}, 50.0},
		{"all used", MemorySample{TotalBytes: 1000, UsedBytes: 1000}, 100.0},
		{"unknown total", MemorySample{UsedBytes: 500}, 0},
	}

	for _, tt := range tests {
		if got := tt.sample.UsagePercent(); got != tt.want {
			t.Errorf("%s: UsagePercent() = %f; want %f", tt.name, got, tt.want)
		}
	}
}
