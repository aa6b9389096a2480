// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogama/respx/status"
)

// An Attempt represents one execution cycle of a Plan, from
// transmission to either retry or terminal delivery.
//
// A retry conceptually creates the next attempt, sharing the identity
// and configuration of the previous one but with Count incremented.
// Since the configuration never changes, the same Attempt value is
// reused and only its counters move.
//
// The configuration fields are resolved once, when the call is
// created, from per-call overrides over process-wide defaults. Timeout
// policies, retry deciders and event handlers should treat them as
// read-only.
type Attempt struct {
	// Plan is the request sent on every attempt. It is never nil.
	Plan *Plan
	// ID identifies the logical call across all of its attempts.
	ID string
	// Count is the zero-based number of the current attempt: zero on
	// the initial attempt, one on the first retry, and so on.
	Count int
	// Timeouts is the number of attempts which ended in a transport
	// timeout so far.
	Timeouts int
	// RetryAttempts is the retry ceiling: a retry is only allowed
	// while Count is less than RetryAttempts.
	RetryAttempts int
	// Timeout is the per-attempt transport timeout. Zero means the
	// transport's own timeout policy applies.
	Timeout time.Duration
	// LatencyFloor is the minimum duration a successful attempt must
	// appear to take before its result is delivered.
	LatencyFloor time.Duration
	// SuccessCodes is the set of status codes that are decoded and
	// delivered as success.
	SuccessCodes status.Set
	// RetryCodes is the set of codes that trigger a retry. It may
	// contain the synthetic status.TimedOut code.
	RetryCodes status.Set
	// Start is the time the first attempt started.
	Start time.Time
	// Raw is the raw outcome of the most recent transmission. It is nil
	// before the first transmission completes.
	Raw *Raw

	cancelled atomic.Bool
	mu        sync.Mutex
	done      chan struct{}
	data      context.Context
}

// NewAttempt returns the initial attempt for a plan, with Count zero
// and an empty configuration.
func NewAttempt(p *Plan) *Attempt {
	return &Attempt{
		Plan: p,
	}
}

// Cancel sets the cancellation flag. Once set, no further processing
// of the attempt takes place: no classification, decoding, retry or
// delivery. Cancel does not abort an in-flight transmission; cancel
// the plan context for that.
//
// Cancel is safe to call from any goroutine, any number of times.
func (a *Attempt) Cancel() {
	a.cancelled.Store(true)
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done == nil {
		a.done = make(chan struct{})
	}
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

// Cancelled reports whether Cancel has been called.
func (a *Attempt) Cancelled() bool {
	return a.cancelled.Load()
}

// Done returns a channel that is closed when Cancel is called.
func (a *Attempt) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done == nil {
		a.done = make(chan struct{})
	}
	return a.done
}

// Elapsed returns the time since the first attempt started, or zero
// if it has not started.
func (a *Attempt) Elapsed() time.Duration {
	if a.Start.IsZero() {
		return 0
	}
	return time.Since(a.Start)
}

// SetValue allows event handlers to store arbitrary data on the
// attempt. The key must follow the same rules as the key parameter in
// context.WithValue.
func (a *Attempt) SetValue(key, value interface{}) {
	ctx := a.data
	if ctx == nil {
		ctx = context.Background()
	}
	a.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with key, or nil.
func (a *Attempt) Value(key interface{}) interface{} {
	if a.data == nil {
		return nil
	}
	return a.data.Value(key)
}
