package domain

import (
	"testing"
	"time"
)

func TestTabState_String(t *testing.T) {
	tests := []struct {
		state TabState
		want  string
	}{
		{TabLoading, "loading"},
		{TabActive, "active"},
		{TabBackground, "background"},
		{TabSuspended, "suspended"},
		{TabError, "error"},
		{TabState(42), "TabState(42)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("TabState(%d).String() = %q; want %q", tt.state, got, tt.want)
		}
	}
}

func TestParseTabState(t *testing.T) {
	tests := []struct {
		in      string
		want    TabState
		wantErr bool
	}{
		{"loading", TabLoading, false},
		{"active", TabActive, false},
		{"background", TabBackground, false},
		{"suspended", TabSuspended, false},
		{"error", TabError, false},
		{"  Active ", TabActive, false},
		{"SUSPENDED", TabSuspended, false},
		{"hibernated", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTabState(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTabState(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTabState(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTabState(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultSuspensionConfig(t *testing.T) {
	cfg := DefaultSuspensionConfig()

	if cfg.InactiveThreshold != 5*time.Minute {
		t.Errorf("expected InactiveThreshold=5m, got %v", cfg.InactiveThreshold)
	}
	if !cfg.Enabled {
		t.Error("expected Enabled=true")
	}
	if cfg.MaxActiveTabs != 10 {
		t.Errorf("expected MaxActiveTabs=10, got %d", cfg.MaxActiveTabs)
	}
	if cfg.SuspendPinned {
		t.Error("expected SuspendPinned=false")
	}
}
