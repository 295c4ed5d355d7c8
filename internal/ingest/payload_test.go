package ingest

import (
	"encoding/json"
	"testing"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var s struct {
		V FlexString `json:"v"`
	}

	cases := []struct {
		in   string
		want string
	}{
		{`{"v":"12.5"}`, "12.5"},
		{`{"v":12.5}`, "12.5"},
		{`{"v":3}`, "3"},
		{`{"v":null}`, ""},
		{`{"v":true}`, "true"},
		{`{"v":false}`, ""},
		{`{"v":0}`, ""},
		{`{"v":0.0}`, ""},
		{`{"v":"0"}`, "0"},
		{`{}`, ""},
	}
	for _, tc := range cases {
		s.V = ""
		if err := json.Unmarshal([]byte(tc.in), &s); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if s.V.String() != tc.want {
			t.Fatalf("unmarshal %s: expected %q, got %q", tc.in, tc.want, s.V)
		}
	}

	if err := json.Unmarshal([]byte(`{"v":{"nested":1}}`), &s); err == nil {
		t.Fatalf("expected error for object value")
	}
}

func TestTrackPayload_Validate(t *testing.T) {
	t.Parallel()

	zero := FlexString("0")
	valid := TrackPayload{
		ScriptID:  "s1",
		UserID:    "u1",
		IPAddress: "blog.example.com",
		Timestamp: "2025-08-31T10:00:00.000Z",
		UserAgent: "Mozilla/5.0",
		TimeSpent: &zero,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	missing := []func(p *TrackPayload){
		func(p *TrackPayload) { p.ScriptID = "" },
		func(p *TrackPayload) { p.UserID = " " },
		func(p *TrackPayload) { p.IPAddress = "" },
		func(p *TrackPayload) { p.Timestamp = "" },
		func(p *TrackPayload) { p.UserAgent = "" },
		func(p *TrackPayload) { p.TimeSpent = nil },
	}
	for i, mutate := range missing {
		p := valid
		mutate(&p)
		if err := p.Validate(); err != ErrMissingFields {
			t.Fatalf("case %d: expected ErrMissingFields, got %v", i, err)
		}
	}
}

func TestTrackPayload_NormalizeDefaults(t *testing.T) {
	t.Parallel()

	empty := FlexString("")
	p := TrackPayload{
		ScriptID:  " s1 ",
		UserID:    "u1",
		IPAddress: "blog.example.com",
		Timestamp: "2025-08-31T10:00:00.000Z",
		UserAgent: "Mozilla/5.0",
		TimeSpent: &empty,
	}
	row := p.Normalize()
	if row.ScriptID != "s1" {
		t.Fatalf("expected trimmed scriptId, got %q", row.ScriptID)
	}
	if row.TimeSpent != "0" {
		t.Fatalf("expected timeSpent default 0, got %q", row.TimeSpent)
	}
	if row.City != "Unknown" || row.Latitude != "0" || row.Longitude != "0" || row.PageViews != "1" {
		t.Fatalf("expected optional defaults, got %+v", row)
	}
}

func TestTrackPayload_FalsyNumbersPickUpFieldDefaults(t *testing.T) {
	t.Parallel()

	// Senders report falsy counters as the number 0; each field falls
	// back to its own default, while the string "0" passes through.
	var p TrackPayload
	body := `{
		"scriptId": "s1",
		"userId": "u1",
		"ipAddress": "blog.example.com",
		"timestamp": "2025-08-31T10:00:00.000Z",
		"userAgent": "Mozilla/5.0",
		"timeSpent": 0,
		"latitude": 0,
		"longitude": "0",
		"pageViews": 0
	}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("zero timeSpent must still count as present: %v", err)
	}
	row := p.Normalize()
	if row.TimeSpent != "0" || row.Latitude != "0" || row.Longitude != "0" {
		t.Fatalf("unexpected zero-field normalization: %+v", row)
	}
	if row.PageViews != "1" {
		t.Fatalf("expected pageViews default 1 for falsy zero, got %q", row.PageViews)
	}
}

func TestTrackPayload_NormalizeKeepsStringifiedNumbers(t *testing.T) {
	t.Parallel()

	ts := FlexString("42.37")
	p := TrackPayload{
		ScriptID:  "s1",
		UserID:    "u1",
		IPAddress: "blog.example.com",
		Timestamp: "2025-08-31T10:00:00.000Z",
		UserAgent: "Mozilla/5.0",
		TimeSpent: &ts,
		City:      "Jaipur",
		Latitude:  "26.9124",
		Longitude: "75.7873",
		PageViews: "3",
	}
	row := p.Normalize()
	if row.TimeSpent != "42.37" || row.City != "Jaipur" || row.Latitude != "26.9124" ||
		row.Longitude != "75.7873" || row.PageViews != "3" {
		t.Fatalf("normalization altered provided values: %+v", row)
	}
}
