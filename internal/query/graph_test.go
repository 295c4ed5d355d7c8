package query

import (
	"testing"
	"time"
)

func TestWindowStart_AnchorsToDayBoundaries(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 31, 17, 45, 12, 0, time.UTC)

	if got := WindowStart(now, 1); !got.Equal(time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("days=1: got %v", got)
	}
	if got := WindowStart(now, 5); !got.Equal(time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("days=5: got %v", got)
	}
	// Below the practical minimum clamps to a single day.
	if got := WindowStart(now, 0); !got.Equal(time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("days=0: got %v", got)
	}
}

func TestDailySeries_ZeroFillsEmptyWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	series := DailySeries(nil, 3, now)

	want := []string{"2025-08-29", "2025-08-30", "2025-08-31"}
	if len(series) != 3 {
		t.Fatalf("expected exactly 3 entries, got %d", len(series))
	}
	for i, p := range series {
		if p.Date != want[i] {
			t.Fatalf("entry %d: expected date %s, got %s", i, want[i], p.Date)
		}
		if p.Count != 0 {
			t.Fatalf("entry %d: expected zero count, got %d", i, p.Count)
		}
	}
}

func TestDailySeries_CountsAndGaps(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	counts := map[string]int64{
		"2025-08-31": 2,
		"2025-08-29": 1,
		"2025-08-20": 7, // outside the window, must not leak in
	}
	series := DailySeries(counts, 3, now)

	if len(series) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(series))
	}
	if series[0].Date != "2025-08-29" || series[0].Count != 1 {
		t.Fatalf("oldest entry wrong: %+v", series[0])
	}
	if series[1].Date != "2025-08-30" || series[1].Count != 0 {
		t.Fatalf("gap day must be zero-filled: %+v", series[1])
	}
	if series[2].Date != "2025-08-31" || series[2].Count != 2 {
		t.Fatalf("today entry wrong: %+v", series[2])
	}
}

func TestDailySeries_SpansMonthBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 0, 30, 0, 0, time.UTC)
	series := DailySeries(map[string]int64{"2025-08-31": 4}, 2, now)

	if len(series) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(series))
	}
	if series[0].Date != "2025-08-31" || series[0].Count != 4 {
		t.Fatalf("month-boundary entry wrong: %+v", series[0])
	}
	if series[1].Date != "2025-09-01" || series[1].Count != 0 {
		t.Fatalf("today entry wrong: %+v", series[1])
	}
}
