package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	breakerTrips    int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type recommendationStats struct {
	runs      int
	errors    int
	proposals int
	lastRun   time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// recommendation runs, mirrored to OpenTelemetry instruments when configured.
type Recorder struct {
	mu              sync.Mutex
	stats           map[string]*providerStats
	recommendations recommendationStats
	otel            *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(provider, func(stats *providerStats) {
		stats.calls++
		stats.lastCallLatency = duration
		if err != nil {
			stats.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.update(provider, func(stats *providerStats) {
		stats.rateLimitHits++
		if retryAfter > 0 {
			stats.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordBreakerTrip tracks a circuit breaker transitioning to open for a provider.
func (r *Recorder) RecordBreakerTrip(provider string) {
	if r == nil {
		return
	}
	r.update(provider, func(stats *providerStats) { stats.breakerTrips++ })
	if r.otel != nil {
		r.otel.recordBreakerTrip(provider)
	}
}

// RecordRecommendation tracks one trade recommendation run.
func (r *Recorder) RecordRecommendation(leagueType string, proposals int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.recommendations.runs++
	r.recommendations.lastRun = duration
	if err != nil {
		r.recommendations.errors++
	} else {
		r.recommendations.proposals += proposals
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRecommendation(leagueType, proposals, duration, err)
	}
}

// RecordCandidates tracks how many candidate trades of a shape survived generation.
func (r *Recorder) RecordCandidates(tradeType string, count int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordCandidates(tradeType, count)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// BreakerTrips returns how often the provider's breaker opened.
func (r *Recorder) BreakerTrips(provider string) int {
	return r.Snapshot(provider).BreakerTrips
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	BreakerTrips    int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		BreakerTrips:    stats.breakerTrips,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecommendationSnapshot summarizes recommendation runs.
type RecommendationSnapshot struct {
	Runs      int
	Errors    int
	Proposals int
	LastRun   time.Duration
}

func (r *Recorder) Recommendations() RecommendationSnapshot {
	if r == nil {
		return RecommendationSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return RecommendationSnapshot{
		Runs:      r.recommendations.runs,
		Errors:    r.recommendations.errors,
		Proposals: r.recommendations.proposals,
		LastRun:   r.recommendations.lastRun,
	}
}

func (r *Recorder) update(provider string, fn func(*providerStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	fn(stats)
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
