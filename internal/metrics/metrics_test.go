package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("sleeper", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("sleeper", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("sleeper"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("sleeper"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("sleeper"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("sleeper")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimitsAndBreakers(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("sleeper", 5*time.Second)
	rec.RecordRateLimit("sleeper", 0)
	rec.RecordBreakerTrip("sleeper")

	if got := rec.RateLimitHits("sleeper"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("sleeper"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
	if got := rec.BreakerTrips("sleeper"); got != 1 {
		t.Fatalf("expected 1 breaker trip, got %d", got)
	}
}

func TestRecorderTracksRecommendations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRecommendation("redraft", 4, 20*time.Millisecond, nil)
	rec.RecordRecommendation("redraft", 3, 5*time.Millisecond, errors.New("upstream"))

	snap := rec.Recommendations()
	if snap.Runs != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected run counts %+v", snap)
	}
	if snap.Proposals != 4 {
		t.Fatalf("expected failed runs to not count proposals, got %d", snap.Proposals)
	}
	if snap.LastRun != 5*time.Millisecond {
		t.Fatalf("expected last run 5ms, got %s", snap.LastRun)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordBreakerTrip("x")
	rec.RecordRecommendation("redraft", 1, time.Millisecond, nil)
	rec.RecordCandidates("1v1", 1)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if rec.ProviderCalls("x") != 0 || rec.Recommendations().Runs != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
