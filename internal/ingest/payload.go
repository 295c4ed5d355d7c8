package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/huamanraj/visitLogger-backend/internal/model"
)

// FlexString decodes a JSON string, number or bool into its text form.
// Snippets in the wild send geolocation and counters either way; the
// stored schema keeps them as strings.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		// A zero number is falsy on the sending side and picks up the
		// field default, same as an absent value. The string "0" does not.
		if v, err := n.Float64(); err == nil && v == 0 {
			*f = ""
			return nil
		}
		*f = FlexString(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*f = "true"
		} else {
			*f = ""
		}
		return nil
	}
	return errors.New("unsupported JSON value")
}

func (f FlexString) String() string { return string(f) }

// TrackPayload is one beacon from the injected snippet.
type TrackPayload struct {
	ScriptID  string      `json:"scriptId"`
	UserID    string      `json:"userId"`
	IPAddress string      `json:"ipAddress"`
	Timestamp string      `json:"timestamp"`
	UserAgent string      `json:"userAgent"`
	TimeSpent *FlexString `json:"timeSpent"`
	City      FlexString  `json:"city"`
	Latitude  FlexString  `json:"latitude"`
	Longitude FlexString  `json:"longitude"`
	PageViews FlexString  `json:"pageViews"`
}

var ErrMissingFields = errors.New("missing required fields")

// Validate enforces the required beacon fields. timeSpent must be present
// in the payload (a falsy value is fine, absence is not), matching the
// contract the dashboard frontend was built against.
func (p *TrackPayload) Validate() error {
	if strings.TrimSpace(p.ScriptID) == "" ||
		strings.TrimSpace(p.UserID) == "" ||
		strings.TrimSpace(p.IPAddress) == "" ||
		strings.TrimSpace(p.Timestamp) == "" ||
		strings.TrimSpace(p.UserAgent) == "" ||
		p.TimeSpent == nil {
		return ErrMissingFields
	}
	return nil
}

// Normalize coerces the optional fields to their stored string form,
// substituting the documented defaults for anything absent or falsy.
func (p *TrackPayload) Normalize() model.VisitEvent {
	return model.VisitEvent{
		ScriptID:  strings.TrimSpace(p.ScriptID),
		UserID:    strings.TrimSpace(p.UserID),
		IPAddress: strings.TrimSpace(p.IPAddress),
		Timestamp: strings.TrimSpace(p.Timestamp),
		UserAgent: p.UserAgent,
		TimeSpent: defaultString(deref(p.TimeSpent), "0"),
		City:      defaultString(p.City.String(), "Unknown"),
		Latitude:  defaultString(p.Latitude.String(), "0"),
		Longitude: defaultString(p.Longitude.String(), "0"),
		PageViews: defaultString(p.PageViews.String(), "1"),
	}
}

func deref(f *FlexString) string {
	if f == nil {
		return ""
	}
	return f.String()
}

func defaultString(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
