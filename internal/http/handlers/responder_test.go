package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/store"
	"github.com/preston-bernstein/endzone-trade-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	env := testutil.DecodeEnvelope(t, rr, nil)
	if env.Success || env.Error != "boom" || env.RequestID != "abc123" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(buf.String(), "failed to encode response") {
		t.Fatalf("expected logger to record encode error, got %s", buf.String())
	}
}

func TestWriteDataWrapsPayload(t *testing.T) {
	rr := httptest.NewRecorder()
	writeData(rr, map[string]int{"n": 1}, nil)

	var data map[string]int
	if env := testutil.DecodeEnvelope(t, rr, &data); !env.Success || data["n"] != 1 {
		t.Fatalf("unexpected envelope %+v data %v", env, data)
	}
}

func TestWriteFailureLogLevels(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		level  string
		status int
	}{
		{"client error", store.ErrLeagueNotFound, "level=WARN", http.StatusBadRequest},
		{"upstream", fmt.Errorf("%w: users: %w", apptrades.ErrUpstream, errors.New("timeout")), "level=ERROR", http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, buf := testutil.NewBufferLogger()
			rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeFailure(w, r, tc.err, logger)
			}), http.MethodGet, "/leagues/x/trades", nil)

			testutil.AssertStatus(t, rr, tc.status)
			if !strings.Contains(buf.String(), tc.level) {
				t.Fatalf("expected %s in log, got %s", tc.level, buf.String())
			}
		})
	}
}
