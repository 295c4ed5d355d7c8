package obs

import (
	"sync/atomic"
	"time"
)

// Stats is a process-local counter set surfaced on /api/status. Everything
// durable lives in the database; these only describe the running process.
type Stats struct {
	start time.Time

	httpRequests     atomic.Int64
	httpErrors       atomic.Int64
	httpLatencyUS    atomic.Int64
	httpLatencyCount atomic.Int64

	rateLimited atomic.Int64

	visitsStored atomic.Int64
	visitsFailed atomic.Int64

	scriptsIssued atomic.Int64
}

func New() *Stats {
	return &Stats{start: time.Now()}
}

func (s *Stats) ObserveHTTP(status int, dur time.Duration) {
	if s == nil {
		return
	}
	s.httpRequests.Add(1)
	if status >= 500 {
		s.httpErrors.Add(1)
	}
	s.httpLatencyUS.Add(dur.Microseconds())
	s.httpLatencyCount.Add(1)
}

func (s *Stats) ObserveRateLimited() {
	if s == nil {
		return
	}
	s.rateLimited.Add(1)
}

func (s *Stats) ObserveVisitStored(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.visitsFailed.Add(1)
		return
	}
	s.visitsStored.Add(1)
}

func (s *Stats) ObserveScriptIssued() {
	if s == nil {
		return
	}
	s.scriptsIssued.Add(1)
}

type Snapshot struct {
	UptimeSeconds int64 `json:"uptime_seconds"`

	HTTPRequests     int64 `json:"http_requests"`
	HTTPErrors       int64 `json:"http_errors"`
	HTTPAvgLatencyUS int64 `json:"http_avg_latency_us"`

	RateLimited int64 `json:"rate_limited"`

	VisitsStored int64 `json:"visits_stored"`
	VisitsFailed int64 `json:"visits_failed"`

	ScriptsIssued int64 `json:"scripts_issued"`
}

func (s *Stats) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	out := Snapshot{
		UptimeSeconds: int64(time.Since(s.start).Seconds()),
		HTTPRequests:  s.httpRequests.Load(),
		HTTPErrors:    s.httpErrors.Load(),
		RateLimited:   s.rateLimited.Load(),
		VisitsStored:  s.visitsStored.Load(),
		VisitsFailed:  s.visitsFailed.Load(),
		ScriptsIssued: s.scriptsIssued.Load(),
	}
	if n := s.httpLatencyCount.Load(); n > 0 {
		out.HTTPAvgLatencyUS = s.httpLatencyUS.Load() / n
	}
	return out
}
