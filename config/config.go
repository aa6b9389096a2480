// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"sync/atomic"
	"time"

	"github.com/gogama/respx/decode"
	"github.com/gogama/respx/status"
	"github.com/rs/zerolog"
)

// A Config holds process-wide defaults. It must not be modified after
// construction, and may be read by any number of goroutines.
type Config struct {
	// DateStrategy is the default date strategy for structured
	// decoding. Nil means the built-in default, decode.ISO8601.
	DateStrategy decode.DateStrategy
	// SuccessCodes is the default set of codes delivered as success.
	SuccessCodes status.Set
	// RetryCodes is the default set of codes that trigger a retry.
	RetryCodes status.Set
	// RetryAttempts is the default retry ceiling.
	RetryAttempts int
	// RetryWait is the pause before each retry when the client has no
	// retry policy of its own.
	RetryWait time.Duration
	// LatencyFloor is the default minimum latency of a successful
	// call.
	LatencyFloor time.Duration
	// Timeout is the default per-attempt transport timeout. Zero
	// defers to the transport's timeout policy.
	Timeout time.Duration
	// HTTP2 enables HTTP/2 on the default HTTP transport.
	HTTP2 bool
	// MaxIdleConns caps idle connections on the default HTTP transport.
	MaxIdleConns int
	// Logger receives all log output. The zero value discards it.
	Logger zerolog.Logger
	// SuccessHook, if not nil, is invoked with the target host and
	// endpoint before every success delivery.
	SuccessHook func(host, endpoint string)
	// UnauthorizedHook, if not nil, is invoked on every 401 response,
	// before the call's own unauthorized handling.
	UnauthorizedHook func()
}

// An Option customizes a Config under construction.
type Option func(*Config)

// WithDateStrategy sets the default date strategy.
func WithDateStrategy(ds decode.DateStrategy) Option {
	return func(c *Config) { c.DateStrategy = ds }
}

// WithSuccessCodes sets the default success codes.
func WithSuccessCodes(s status.Set) Option {
	return func(c *Config) { c.SuccessCodes = s }
}

// WithRetryCodes sets the default retry codes.
func WithRetryCodes(s status.Set) Option {
	return func(c *Config) { c.RetryCodes = s }
}

// WithRetryAttempts sets the default retry ceiling.
func WithRetryAttempts(n int) Option {
	return func(c *Config) { c.RetryAttempts = n }
}

// WithRetryWait sets the pause before each retry.
func WithRetryWait(d time.Duration) Option {
	return func(c *Config) { c.RetryWait = d }
}

// WithLatencyFloor sets the default latency floor.
func WithLatencyFloor(d time.Duration) Option {
	return func(c *Config) { c.LatencyFloor = d }
}

// WithTimeout sets the default per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithSuccessHook sets the global success hook.
func WithSuccessHook(f func(host, endpoint string)) Option {
	return func(c *Config) { c.SuccessHook = f }
}

// WithUnauthorizedHook sets the global unauthorized hook.
func WithUnauthorizedHook(f func()) Option {
	return func(c *Config) { c.UnauthorizedHook = f }
}

// New returns a Config built from the default settings with opts
// applied in order. Its logger discards output unless WithLogger is
// given.
func New(opts ...Option) *Config {
	c, err := fromSettings(DefaultSettings(), zerolog.Nop())
	if err != nil {
		panic("respx/config: invalid default settings: " + err.Error())
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConfig = New()

// Default returns the shared Config built from the default settings.
func Default() *Config {
	return defaultConfig
}

// A Holder publishes the current Config. The zero value holds
// Default().
type Holder struct {
	p atomic.Pointer[Config]
}

// NewHolder returns a holder publishing c.
func NewHolder(c *Config) *Holder {
	h := &Holder{}
	h.Store(c)
	return h
}

// Load returns the current Config.
func (h *Holder) Load() *Config {
	if c := h.p.Load(); c != nil {
		return c
	}
	return defaultConfig
}

// Store atomically replaces the current Config. A nil c reverts to
// Default().
func (h *Holder) Store(c *Config) {
	h.p.Store(c)
}
