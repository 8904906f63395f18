package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := RealClock{}

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	if now.Before(before) {
		t.Errorf("Clock time %v is before measurement time %v", now, before)
	}
	if now.After(after) {
		t.Errorf("Clock time %v is after measurement time %v", now, after)
	}
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := &MockClock{CurrentTime: fixedTime}

	if got := clock.Now(); !got.Equal(fixedTime) {
		t.Errorf("Expected %v, got %v", fixedTime, got)
	}

	// Repeated calls return the same instant until advanced.
	if got := clock.Now(); !got.Equal(fixedTime) {
		t.Errorf("Expected %v on second call, got %v", fixedTime, got)
	}
}

func TestMockClock_Advance(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := &MockClock{CurrentTime: start}

	clock.Advance(90 * time.Second)

	want := start.Add(90 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("Expected %v after advance, got %v", want, got)
	}
}
