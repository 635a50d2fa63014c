// Package mockapi simulates the backend the dashboard would talk to: a
// randomized delay followed by either a canned payload or a network error.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tinytelemetry/dashshell/internal/model"
)

// NetworkErrorMessage is the message carried by simulated failures.
const NetworkErrorMessage = "Network error occurred"

// Config controls the simulated latency and failure rate.
type Config struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	FailureRate float64
}

// DefaultConfig returns 500ms-1500ms latency with a 10% failure rate.
func DefaultConfig() Config {
	return Config{
		MinDelay:    model.DefaultMinDelay,
		MaxDelay:    model.DefaultMaxDelay,
		FailureRate: model.DefaultFailureRate,
	}
}

// Validate rejects configs that cannot produce a delay or probability.
func (c Config) Validate() error {
	if c.MinDelay < 0 || c.MaxDelay < 0 {
		return errors.New("mockapi: delays must not be negative")
	}
	if c.MaxDelay < c.MinDelay {
		return fmt.Errorf("mockapi: max delay %s below min delay %s", c.MaxDelay, c.MinDelay)
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("mockapi: failure rate %v outside [0,1]", c.FailureRate)
	}
	return nil
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithRand replaces the random source. Tests pass a seeded one.
func WithRand(r *rand.Rand) Option {
	return func(f *Fetcher) { f.rng = r }
}

// WithSleep replaces the delay implementation.
func WithSleep(fn SleepFunc) Option {
	return func(f *Fetcher) { f.sleep = fn }
}

// WithClock replaces the timestamp source for errors.
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) { f.now = now }
}

// Fetcher resolves resource keys to mock payloads. It is safe for concurrent
// use; calls are neither coalesced nor cancelled by one another.
type Fetcher struct {
	cfg   Config
	mu    sync.Mutex // guards rng
	rng   *rand.Rand
	sleep SleepFunc
	now   func() time.Time
}

// New builds a Fetcher. An invalid config is replaced by DefaultConfig.
func New(cfg Config, opts ...Option) *Fetcher {
	if cfg.Validate() != nil {
		cfg = DefaultConfig()
	}
	f := &Fetcher{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sleep: sleepCtx,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Config returns the active configuration.
func (f *Fetcher) Config() Config { return f.cfg }

// Fetch waits a random delay in [MinDelay, MaxDelay) and then either fails
// with an API_ERROR or returns PayloadFor(key). A cancelled ctx aborts the
// wait and returns ctx.Err().
func (f *Fetcher) Fetch(ctx context.Context, key string) (any, error) {
	delay, fail := f.roll()
	if err := f.sleep(ctx, delay); err != nil {
		return nil, err
	}
	if fail {
		return nil, model.NewAppError(model.CodeAPIError, NetworkErrorMessage, f.now())
	}
	return PayloadFor(key), nil
}

// FetchAs is Fetch followed by Decode.
func FetchAs[T any](ctx context.Context, f *Fetcher, key string) (T, error) {
	payload, err := f.Fetch(ctx, key)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](payload)
}

// Resolve turns a fetch outcome into an AsyncResult. Errors that are not
// AppErrors are wrapped as API errors.
func Resolve[T any](v T, err error, at time.Time) AsyncResult[T] {
	if err == nil {
		return Succeeded(v)
	}
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return Failed[T](appErr)
	}
	return Failed[T](model.NewAppError(model.CodeAPIError, err.Error(), at))
}

func (f *Fetcher) roll() (time.Duration, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delay := f.cfg.MinDelay
	if span := f.cfg.MaxDelay - f.cfg.MinDelay; span > 0 {
		delay += time.Duration(f.rng.Int64N(int64(span)))
	}
	return delay, f.rng.Float64() < f.cfg.FailureRate
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
