package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func DoJSON(t testing.TB, client *http.Client, method, rawURL string, body any, headers map[string]string) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, rawURL, rd)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("client.Do: %v", err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return res.StatusCode, b
}

// Decode unmarshals a response body, failing the test on malformed JSON.
func Decode(t testing.TB, body []byte, into any) {
	t.Helper()

	if err := json.Unmarshal(body, into); err != nil {
		t.Fatalf("decode response: %v (body=%s)", err, string(body))
	}
}

// Beacon returns a complete valid track payload with the given script id.
func Beacon(scriptID string) map[string]any {
	return map[string]any{
		"scriptId":  scriptID,
		"userId":    "user-1",
		"ipAddress": "203.0.113.9",
		"timestamp": "2026-08-30T12:00:00.000Z",
		"userAgent": "Mozilla/5.0 (integration)",
		"timeSpent": "42",
		"city":      "Lima",
		"latitude":  "-12.04",
		"longitude": "-77.03",
		"pageViews": "1",
	}
}
