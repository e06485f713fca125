package web

import (
	"strings"
	"testing"
	"time"
)

func TestLastSyncFormatter(t *testing.T) {
	if got := lastSyncFormatter(time.Time{}); got != "nunca" {
		t.Errorf("zero time incorrect, wanted 'nunca', got '%s'", got)
	}

	ts := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	if got := lastSyncFormatter(ts); got != "28-08-2026 10:30:00" {
		t.Errorf("timestamp incorrect, got '%s'", got)
	}
}

func TestSnippetFormatter(t *testing.T) {
	short := "un mensaje corto"
	if got := snippetFormatter(short); got != short {
		t.Errorf("short text should pass through, got '%s'", got)
	}

	long := strings.Repeat("á", 400)
	got := snippetFormatter(long)
	if runes := []rune(got); len(runes) != 301 {
		t.Errorf("truncated length incorrect, wanted 301 runes, got %d", len(runes))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated text should end with an ellipsis, got '%s'", got)
	}
}
