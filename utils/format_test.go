package utils

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	if got := FormatTime(1500 * time.Millisecond); got != "1.50s" {
		t.Errorf("Expected 1.50s. Got %s", got)
	}
	if got := FormatTime(90 * time.Second); got != "1m 30.00s" {
		t.Errorf("Expected 1m 30.00s. Got %s", got)
	}
	if got := FormatTime(time.Hour + time.Minute + time.Second); got != "1h 1m 1.00s" {
		t.Errorf("Expected 1h 1m 1.00s. Got %s", got)
	}
}

func TestDecorateText(t *testing.T) {
	if got := DecorateText("done", SuccessMessage); got != SuccessColor+"done"+DefaultColor {
		t.Errorf("Success message expected to be wrapped in color codes. Got %q", got)
	}
	if got := DecorateText("plain", MessageType(99)); got != "plain" {
		t.Errorf("Unknown message type expected to pass through. Got %q", got)
	}
}
