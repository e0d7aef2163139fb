package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(errors.New("habit not found")); got != "Error: habit not found" {
		t.Errorf("Format() = %q", got)
	}
	if got := Formatf("invalid date %q", "2026-13-01"); got != `Error: invalid date "2026-13-01"` {
		t.Errorf("Formatf() = %q", got)
	}
}
