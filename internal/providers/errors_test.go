package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestUpstreamErrorString(t *testing.T) {
	err := &UpstreamError{Provider: "sleeper", Op: "rosters", StatusCode: 503}
	if got := err.Error(); got != "sleeper: rosters: unexpected status 503" {
		t.Fatalf("unexpected message %q", got)
	}
	wrapped := &UpstreamError{Provider: "sleeper", Op: "league", StatusCode: 404, Err: ErrNotFound}
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("expected ErrNotFound to unwrap")
	}
	if _, ok := AsUpstreamError(fmt.Errorf("x: %w", wrapped)); !ok {
		t.Fatalf("expected AsUpstreamError to match")
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("wrap: %w", context.DeadlineExceeded), false},
		{"not found", &UpstreamError{StatusCode: http.StatusNotFound, Err: ErrNotFound}, false},
		{"unavailable", ErrProviderUnavailable, false},
		{"rate limit", &RateLimitError{StatusCode: http.StatusTooManyRequests}, true},
		{"server error", &UpstreamError{StatusCode: http.StatusBadGateway}, true},
		{"client error", &UpstreamError{StatusCode: http.StatusBadRequest}, false},
		{"decode failure", &UpstreamError{Err: errors.New("bad json")}, true},
		{"transport", errors.New("connection reset"), true},
	}
	for _, tc := range cases {
		if got := Retryable(tc.err); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
