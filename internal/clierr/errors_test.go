package clierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRange, "Range Error"},
		{KindConfiguration, "Configuration Error"},
		{KindIO, "IO Error"},
		{KindUnknown, "Error"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestError_Message(t *testing.T) {
	cause := errors.New("reference not found")

	err := Range(cause, "cannot resolve %q", "v9.9.9")
	if err.Error() != `cannot resolve "v9.9.9": reference not found` {
		t.Errorf("Error() = %q", err.Error())
	}

	bare := Configuration(nil, "unknown format %q", "toml")
	if bare.Error() != `unknown format "toml"` {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := fmt.Errorf("generate: %w", IO(cause, "write CHANGELOG.md"))

	if got := KindOf(wrapped); got != KindIO {
		t.Errorf("KindOf() = %v, want %v", got, KindIO)
	}
	if !Is(wrapped, KindIO) {
		t.Error("Is(wrapped, KindIO) = false")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if KindOf(cause) != KindUnknown {
		t.Error("plain error should have unknown kind")
	}
	if Is(nil, KindUnknown) {
		t.Error("Is(nil, ...) should be false")
	}
}
