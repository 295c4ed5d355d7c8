package identity

import (
	"testing"
	"time"
)

func TestParseClientTimestamp(t *testing.T) {
	t.Parallel()

	fallback := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	got := ParseClientTimestamp("2025-08-31T10:15:30.123Z", fallback)
	want := time.Date(2025, 8, 31, 10, 15, 30, 123000000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("RFC3339Nano: got %v, want %v", got, want)
	}

	got = ParseClientTimestamp("2025-08-31T10:15:30+05:30", fallback)
	if got.Format("2006-01-02") != "2025-08-31" || got.Location() != time.UTC {
		t.Fatalf("RFC3339 with offset: got %v", got)
	}

	got = ParseClientTimestamp("2025-08-31", fallback)
	if got.Format("2006-01-02") != "2025-08-31" {
		t.Fatalf("bare date: got %v", got)
	}

	if got := ParseClientTimestamp("not-a-time", fallback); !got.Equal(fallback) {
		t.Fatalf("garbage should fall back, got %v", got)
	}
	if got := ParseClientTimestamp("", fallback); !got.Equal(fallback) {
		t.Fatalf("empty should fall back, got %v", got)
	}
	if got := ParseClientTimestamp("", time.Time{}); got.IsZero() {
		t.Fatalf("zero fallback should default to now")
	}
}

func TestClientDay(t *testing.T) {
	t.Parallel()

	fallback := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := ClientDay("2025-08-31T23:59:59Z", fallback); got != "2025-08-31" {
		t.Fatalf("expected 2025-08-31, got %q", got)
	}
	if got := ClientDay("bogus", fallback); got != "2025-01-02" {
		t.Fatalf("expected fallback day, got %q", got)
	}
}
