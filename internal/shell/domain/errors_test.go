package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestEngineError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *EngineError
		want string
	}{
		{"view not found", NewViewNotFound(7), "view not found: View(7)"},
		{"with message", NewEngineError(ErrNavigation, "load failed"), "engine error (navigation): load failed"},
		{"without message", &EngineError{Kind: ErrMemory}, "engine error: memory"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s: Error() = %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsViewNotFound(t *testing.T) {
	if !IsViewNotFound(NewViewNotFound(3)) {
		t.Error("expected IsViewNotFound=true for a direct ErrViewNotFound")
	}
	if !IsViewNotFound(fmt.Errorf("closing tab: %w", NewViewNotFound(3))) {
		t.Error("expected IsViewNotFound=true for a wrapped ErrViewNotFound")
	}
	if IsViewNotFound(NewEngineError(ErrScript, "boom")) {
		t.Error("expected IsViewNotFound=false for another engine error kind")
	}
	if IsViewNotFound(errors.New("plain error")) {
		t.Error("expected IsViewNotFound=false for a non-engine error")
	}
	if IsViewNotFound(nil) {
		t.Error("expected IsViewNotFound=false for nil")
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrViewNotFound, "view_not_found"},
		{ErrInitializationFailed, "initialization_failed"},
		{ErrNavigation, "navigation"},
		{ErrScript, "script"},
		{ErrMemory, "memory"},
		{ErrVideo, "video"},
		{ErrOther, "other"},
		{ErrorKind(77), "ErrorKind(77)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q; want %q", tt.kind, got, tt.want)
		}
	}
}
