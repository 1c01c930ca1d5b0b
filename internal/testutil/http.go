package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Envelope is the body shape shared by every API response.
type Envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Hint      string          `json:"hint,omitempty"`
	Details   map[string]any  `json:"details,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

// Serve executes a request against the provided handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ServeRequest executes the given request against the handler.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AuthedRequest builds a request carrying token as a bearer session.
func AuthedRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// AssertStatus verifies the response status code, printing the body on mismatch.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rr.Code, rr.Body.String())
	}
}

// DecodeJSON decodes the recorder body into dest, failing the test on error.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// DecodeEnvelope decodes the response envelope and, when data is non-nil, its payload.
func DecodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) Envelope {
	t.Helper()
	var env Envelope
	DecodeJSON(t, rr, &env)
	if data != nil {
		if len(env.Data) == 0 {
			t.Fatalf("expected data in envelope, got %+v", env)
		}
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("failed to decode envelope data: %v", err)
		}
	}
	return env
}
