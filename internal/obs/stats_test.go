package obs

import (
	"errors"
	"testing"
	"time"
)

func TestStats_CountersAndSnapshot(t *testing.T) {
	t.Parallel()

	s := New()
	s.ObserveHTTP(200, 100*time.Microsecond)
	s.ObserveHTTP(500, 300*time.Microsecond)
	s.ObserveRateLimited()
	s.ObserveVisitStored(nil)
	s.ObserveVisitStored(errors.New("store down"))
	s.ObserveScriptIssued()

	snap := s.Snapshot()
	if snap.HTTPRequests != 2 || snap.HTTPErrors != 1 {
		t.Fatalf("http counters: %+v", snap)
	}
	if snap.HTTPAvgLatencyUS != 200 {
		t.Fatalf("expected avg latency 200us, got %d", snap.HTTPAvgLatencyUS)
	}
	if snap.RateLimited != 1 {
		t.Fatalf("rate limited: %+v", snap)
	}
	if snap.VisitsStored != 1 || snap.VisitsFailed != 1 {
		t.Fatalf("visit counters: %+v", snap)
	}
	if snap.ScriptsIssued != 1 {
		t.Fatalf("script counter: %+v", snap)
	}
}

func TestStats_NilSafe(t *testing.T) {
	t.Parallel()

	var s *Stats
	s.ObserveHTTP(200, time.Millisecond)
	s.ObserveRateLimited()
	s.ObserveVisitStored(nil)
	s.ObserveScriptIssued()
	if snap := s.Snapshot(); snap != (Snapshot{}) {
		t.Fatalf("nil stats snapshot should be zero, got %+v", snap)
	}
}
