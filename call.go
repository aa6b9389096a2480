// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gogama/respx/config"
	"github.com/gogama/respx/decode"
	"github.com/gogama/respx/failure"
	"github.com/gogama/respx/request"
	"github.com/gogama/respx/status"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader is the request header carrying the call ID.
const RequestIDHeader = "X-Request-ID"

// A State is the resolution state of a call.
type State int

const (
	// Pending means no transmission has been resolved yet.
	Pending State = iota
	// Retrying means the latest transmission will be repeated. It is
	// never a final state.
	Retrying
	// Delivered means exactly one delivery callback has been chosen
	// and invoked.
	Delivered
	// Abandoned means the call ended without invoking any delivery
	// callback, either because it was cancelled or because of a
	// transport failure which is not a timeout.
	Abandoned
)

var stateNames = []string{"Pending", "Retrying", "Delivered", "Abandoned"}

// String returns the name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// A Success is a successfully decoded response.
type Success struct {
	// Value is the decoded value. Its dynamic type depends on the
	// call's shape: decode.Nothing, []byte, string, int64, float64,
	// bool, or the pointer returned by the structured factory.
	Value interface{}
	// Body is the raw response body.
	Body []byte
	// Header is the response header.
	Header http.Header
	// Status is the response status code.
	Status status.Code
}

// An Outcome is the final result of a call.
type Outcome struct {
	// State is Delivered or Abandoned once the call has ended.
	State State
	// Success is set if a success was delivered.
	Success *Success
	// Err is set if an error was composed for the final transmission,
	// whichever callback it was delivered to.
	Err *failure.Error
	// Attempts is the number of transmissions made.
	Attempts int
}

// A Call is one logical request together with its expected result
// shape, its resolved configuration, and its delivery callbacks.
//
// Set the callbacks before passing the call to Client.Do. A call may
// be executed only once.
type Call struct {
	// Attempt holds the plan, the resolved configuration and the
	// counters of the call.
	Attempt *request.Attempt
	// Shape is the expected shape of a successful response body.
	Shape decode.Shape

	// OnSuccess receives the decoded value of a successful response.
	// See Typed for a type-safe adapter.
	OnSuccess func(value interface{})
	// OnSuccessExtended receives the decoded value together with the
	// raw body, header and status. It runs after OnSuccess.
	OnSuccessExtended func(s *Success)
	// OnError receives every composed error which is not routed to
	// OnUnauthorized or OnTimeout. A timed out transmission reaches it
	// even when the call goes on to retry.
	OnError func(err *failure.Error)
	// OnUnauthorized, if set, exclusively receives 401 responses.
	OnUnauthorized func()
	// OnTimeout, if set, exclusively receives every timed out
	// transmission, including ones which are then retried.
	OnTimeout func()
	// OnFlatten receives the decoded value once, after the success
	// callbacks.
	OnFlatten func(value interface{})

	cfg      *config.Config
	dates    decode.DateStrategy
	dateOver decode.DateStrategy
	decoder  decode.StructuredDecoder
	logger   zerolog.Logger
	outcome  Outcome
	started  atomic.Bool
}

// A CallOption overrides a process-wide default for one call.
type CallOption func(*Call)

// WithSuccessCodes overrides the success codes.
func WithSuccessCodes(s status.Set) CallOption {
	return func(c *Call) { c.Attempt.SuccessCodes = s }
}

// WithRetryCodes overrides the retry codes.
func WithRetryCodes(s status.Set) CallOption {
	return func(c *Call) { c.Attempt.RetryCodes = s }
}

// WithRetryAttempts overrides the retry ceiling.
func WithRetryAttempts(n int) CallOption {
	return func(c *Call) { c.Attempt.RetryAttempts = n }
}

// WithLatencyFloor overrides the latency floor.
func WithLatencyFloor(d time.Duration) CallOption {
	return func(c *Call) { c.Attempt.LatencyFloor = d }
}

// WithTimeout overrides the per-attempt timeout.
func WithTimeout(d time.Duration) CallOption {
	return func(c *Call) { c.Attempt.Timeout = d }
}

// WithDates overrides the date strategy for structured decoding.
func WithDates(ds decode.DateStrategy) CallOption {
	return func(c *Call) { c.dateOver = ds }
}

// WithDecoder replaces decode.JSON as the structured decoder.
func WithDecoder(sd decode.StructuredDecoder) CallOption {
	return func(c *Call) { c.decoder = sd }
}

// WithRequestID sets the call ID instead of generating one.
func WithRequestID(id string) CallOption {
	return func(c *Call) { c.Attempt.ID = id }
}

// NewCall creates a call for plan p expecting a body of the given
// shape. Its configuration is resolved once, here: opts override the
// defaults in cfg, and a nil cfg means config.Default().
//
// Unless the plan already carries one, NewCall sets the X-Request-ID
// header of p to the call ID.
func NewCall(cfg *config.Config, p *request.Plan, shape decode.Shape, opts ...CallOption) *Call {
	if p == nil {
		panic("respx: nil plan")
	}
	if cfg == nil {
		cfg = config.Default()
	}

	a := request.NewAttempt(p)
	a.RetryAttempts = cfg.RetryAttempts
	a.Timeout = cfg.Timeout
	a.LatencyFloor = cfg.LatencyFloor
	a.SuccessCodes = cfg.SuccessCodes
	a.RetryCodes = cfg.RetryCodes

	c := &Call{
		Attempt: a,
		Shape:   shape,
		cfg:     cfg,
		decoder: decode.JSON,
	}
	for _, opt := range opts {
		opt(c)
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if p.Header == nil {
		p.Header = make(http.Header)
	}
	if p.Header.Get(RequestIDHeader) == "" {
		p.Header.Set(RequestIDHeader, a.ID)
	}
	c.dates = decode.ResolveDates(c.dateOver, cfg.DateStrategy)
	c.logger = cfg.Logger.With().Str("request_id", a.ID).Logger()
	return c
}

// ID returns the call ID.
func (c *Call) ID() string {
	return c.Attempt.ID
}

// Config returns the configuration the call was created from.
func (c *Call) Config() *config.Config {
	return c.cfg
}

// Dates returns the resolved date strategy.
func (c *Call) Dates() decode.DateStrategy {
	return c.dates
}

// Logger returns the call's logger, which tags every entry with the
// call ID.
func (c *Call) Logger() *zerolog.Logger {
	return &c.logger
}

// Outcome returns the call's outcome so far. Event handlers may read
// it; its State is Pending until the call ends.
func (c *Call) Outcome() *Outcome {
	return &c.outcome
}

// Cancel cancels the call. No further processing or delivery takes
// place once Cancel returns, except for a callback already running.
// Cancel is safe to call from any goroutine.
func (c *Call) Cancel() {
	c.Attempt.Cancel()
}

// Cancelled reports whether Cancel has been called.
func (c *Call) Cancelled() bool {
	return c.Attempt.Cancelled()
}

// Typed adapts a function taking a T to the OnSuccess signature. It
// panics if the delivered value is not a T, which means T does not
// match the call's shape.
//
//	call := respx.NewCall(cfg, plan, decode.StructuredOf[User]())
//	call.OnSuccess = respx.Typed(func(u *User) { ... })
func Typed[T any](f func(T)) func(interface{}) {
	return func(v interface{}) {
		t, ok := v.(T)
		if !ok {
			var zero T
			panic(fmt.Sprintf("respx: success value is %T, not %T", v, zero))
		}
		f(t)
	}
}
