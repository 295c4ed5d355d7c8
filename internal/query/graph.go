package query

import "time"

// DatePoint is one day of the visit-count series.
type DatePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// WindowStart is the lower bound for the N-day graph window: the start of
// the UTC calendar day days-1 days before now. The window is anchored to
// day boundaries, not a rolling 24h multiple, so "today" is always the
// last bucket.
func WindowStart(now time.Time, days int) time.Time {
	if days < 1 {
		days = 1
	}
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -(days - 1))
}

// DailySeries turns per-day counts into a dense series covering the whole
// window, oldest first. Every date in the window appears exactly once;
// days without visits carry an explicit zero. The result is always exactly
// days entries long no matter how sparse the counts are.
func DailySeries(counts map[string]int64, days int, now time.Time) []DatePoint {
	if days < 1 {
		days = 1
	}
	now = now.UTC()
	last := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	out := make([]DatePoint, 0, days)
	for cur := WindowStart(now, days); !cur.After(last); cur = cur.AddDate(0, 0, 1) {
		date := cur.Format("2006-01-02")
		out = append(out, DatePoint{Date: date, Count: counts[date]})
	}
	return out
}
