package identity

import (
	"strings"
	"time"
)

// ParseClientTimestamp parses the timestamp string a tracking snippet
// reported. Snippets send `new Date().toISOString()` so RFC3339 variants
// cover the normal case; anything else falls back to the supplied
// server-side time so a bad client clock string never drops a record.
func ParseClientTimestamp(s string, fallback time.Time) time.Time {
	if fallback.IsZero() {
		fallback = time.Now().UTC()
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback.UTC()
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts.UTC()
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC()
	}
	// Tolerate a plain or truncated date ("2025-08-31", "2025-08-31 10:00").
	if len(s) >= 10 {
		if ts, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return ts.UTC()
		}
	}
	return fallback.UTC()
}

// ClientDay is the calendar-date bucket key for a client-reported
// timestamp, in UTC.
func ClientDay(s string, fallback time.Time) string {
	return ParseClientTimestamp(s, fallback).Format("2006-01-02")
}
