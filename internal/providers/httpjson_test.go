package providers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func clientReturning(status int, body string, header http.Header) *http.Client {
	return &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if header == nil {
			header = http.Header{}
		}
		return &http.Response{
			StatusCode: status,
			Header:     header,
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		}, nil
	})}
}

func TestDoJSONDecodesOK(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://example.com/x", nil)
	var out struct {
		Name string `json:"name"`
	}
	if err := DoJSON(clientReturning(http.StatusOK, `{"name":"ok"}`, nil), req, "p", "op", &out); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.Name != "ok" {
		t.Fatalf("expected decoded body, got %+v", out)
	}
}

func TestDoJSONMapsStatuses(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://example.com/x", nil)
	var out any

	err := DoJSON(clientReturning(http.StatusTooManyRequests, "", http.Header{"Retry-After": []string{"2"}}), req, "p", "op", &out)
	rl, ok := AsRateLimitError(err)
	if !ok || rl.RetryAfter != 2*time.Second {
		t.Fatalf("expected rate limit with 2s retry-after, got %v", err)
	}

	err = DoJSON(clientReturning(http.StatusNotFound, "", nil), req, "p", "op", &out)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	err = DoJSON(clientReturning(http.StatusServiceUnavailable, "down", nil), req, "p", "op", &out)
	upErr, ok := AsUpstreamError(err)
	if !ok || upErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected upstream error with status, got %v", err)
	}
	if !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected body snippet in error, got %q", err.Error())
	}

	err = DoJSON(clientReturning(http.StatusOK, "{", nil), req, "p", "op", &out)
	if _, ok := AsUpstreamError(err); !ok || !Retryable(err) {
		t.Fatalf("expected retryable decode error, got %v", err)
	}
}

func TestDoJSONWrapsTransportErrors(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://example.com/x", nil)
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})}
	var out any
	err := DoJSON(client, req, "p", "op", &out)
	if _, ok := AsUpstreamError(err); !ok {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	if got := ParseRetryAfter("5", now); got != 5*time.Second {
		t.Fatalf("expected 5s, got %s", got)
	}
	if got := ParseRetryAfter(now.Add(10*time.Second).Format(http.TimeFormat), now); got != 10*time.Second {
		t.Fatalf("expected 10s from http date, got %s", got)
	}
	for _, raw := range []string{"", "-3", "soon", now.Add(-time.Minute).Format(http.TimeFormat)} {
		if got := ParseRetryAfter(raw, now); got != 0 {
			t.Fatalf("expected 0 for %q, got %s", raw, got)
		}
	}
}
