package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
	"github.com/preston-bernstein/endzone-trade-service/internal/metrics"
)

const (
	defaultGuardRate        = 10
	defaultGuardBurst       = 5
	defaultGuardAttempts    = 1
	defaultInitialBackoff   = 200 * time.Millisecond
	defaultMaxBackoff       = 5 * time.Second
	defaultBreakerTimeout   = 30 * time.Second
	defaultBreakerThreshold = 5
)

// GuardConfig tunes the protections wrapped around one upstream.
type GuardConfig struct {
	Name             string
	RatePerSecond    float64
	Burst            int
	MaxAttempts      int
	InitialBackoff   time.Duration
	MaxBackoff       time.Duration
	BreakerTimeout   time.Duration
	BreakerThreshold uint32
}

// Guard applies client-side rate limiting, a circuit breaker, and retry with backoff to upstream calls.
type Guard struct {
	name        string
	maxAttempts int
	limiter     *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
	logger      *slog.Logger
	metrics     *metrics.Recorder
	newBackOff  func() backoff.BackOff
}

// NewGuard builds a guard; zero config values take defaults.
func NewGuard(cfg GuardConfig, logger *slog.Logger, recorder *metrics.Recorder) *Guard {
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = defaultGuardRate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultGuardBurst
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultGuardAttempts
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = defaultInitialBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = defaultBreakerTimeout
	}
	if cfg.BreakerThreshold == 0 {
		cfg.BreakerThreshold = defaultBreakerThreshold
	}

	g := &Guard{
		name:        cfg.Name,
		maxAttempts: cfg.MaxAttempts,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		logger:      logger,
		metrics:     recorder,
	}
	g.newBackOff = func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = cfg.InitialBackoff
		b.MaxInterval = cfg.MaxBackoff
		b.MaxElapsedTime = 0
		return b
	}
	threshold := cfg.BreakerThreshold
	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !Retryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logWithProvider(context.Background(), g.logger, slog.LevelWarn, name, "circuit breaker state change",
				slog.String("from", from.String()), slog.String("to", to.String()))
			if to == gobreaker.StateOpen {
				g.metrics.RecordBreakerTrip(name)
			}
		},
	})
	return g
}

// Name returns the upstream name the guard protects.
func (g *Guard) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

// Call runs fn under g. A nil guard calls fn directly.
func Call[T any](ctx context.Context, g *Guard, op string, fn func(context.Context) (T, error)) (T, error) {
	if g == nil {
		return fn(ctx)
	}

	var out T
	hinted := &retryAfterBackOff{next: g.newBackOff()}
	policy := backoff.WithContext(backoff.WithMaxRetries(hinted, uint64(g.maxAttempts-1)), ctx)

	attempt := func() error {
		if err := g.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		start := time.Now()
		res, err := g.breaker.Execute(func() (interface{}, error) {
			return fn(ctx)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(fmt.Errorf("%w: %s circuit open", ErrProviderUnavailable, g.name))
		}
		g.metrics.RecordProviderAttempt(g.name, time.Since(start), err)
		if err != nil {
			if rl, ok := AsRateLimitError(err); ok {
				g.metrics.RecordRateLimit(g.name, rl.RetryAfter)
				hinted.hint(rl.RetryAfter)
			}
			if !Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out, _ = res.(T)
		return nil
	}

	err := backoff.RetryNotify(attempt, policy, func(err error, wait time.Duration) {
		logWithProvider(ctx, g.logger, slog.LevelWarn, g.name, "upstream call retry",
			slog.String(logging.FieldOperation, op), slog.Duration("wait", wait), slog.Any(logging.FieldError, err))
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// retryAfterBackOff lets an upstream Retry-After replace the next computed delay.
type retryAfterBackOff struct {
	next     backoff.BackOff
	override time.Duration
}

func (b *retryAfterBackOff) hint(d time.Duration) {
	if d > 0 {
		b.override = d
	}
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	if b.override > 0 {
		d := b.override
		b.override = 0
		return d
	}
	return b.next.NextBackOff()
}

func (b *retryAfterBackOff) Reset() {
	b.override = 0
	b.next.Reset()
}
