// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gogama/respx/request"
	"github.com/gogama/respx/status"
)

// A Reason is what prompted a retry question.
type Reason int

const (
	// StatusTrigger means an HTTP response was received.
	StatusTrigger Reason = iota
	// TimeoutTrigger means the transport timed out without a response.
	TimeoutTrigger
)

// String returns the name of the reason.
func (r Reason) String() string {
	if r == TimeoutTrigger {
		return "TimeoutTrigger"
	}
	return "StatusTrigger"
}

// A Trigger describes the outcome being considered for retry.
type Trigger struct {
	Reason Reason
	// Status is the classified status for a StatusTrigger, and
	// status.TimedOut for a TimeoutTrigger.
	Status status.Code
}

// ShouldRetry is the retry rule. It is pure.
//
// For StatusTrigger it returns true iff attempt < max and code is in
// triggers. For TimeoutTrigger it returns true iff attempt < max and
// triggers contains both status.TimedOut and status.RequestTimeout.
func ShouldRetry(reason Reason, attempt, max int, triggers status.Set, code status.Code) bool {
	if attempt >= max {
		return false
	}
	switch reason {
	case StatusTrigger:
		return triggers.Contains(code)
	case TimeoutTrigger:
		return triggers.ContainsAll(status.TimedOut, status.RequestTimeout)
	default:
		return false
	}
}

// A Decider decides if a retry should be done.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
type Decider interface {
	Decide(a *request.Attempt, t Trigger) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It also provides the logical
// composition methods And and Or.
type DeciderFunc func(a *request.Attempt, t Trigger) bool

// Decide returns f(a, t).
func (f DeciderFunc) Decide(a *request.Attempt, t Trigger) bool {
	return f(a, t)
}

// And composes two deciders into one which returns true only if both
// do. g is not evaluated if f returns false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(a *request.Attempt, t Trigger) bool {
		return f(a, t) && g(a, t)
	}
}

// Or composes two deciders into one which returns true if either does.
// g is not evaluated if f returns true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(a *request.Attempt, t Trigger) bool {
		return f(a, t) || g(a, t)
	}
}

// Configured applies ShouldRetry to the attempt's own count, retry
// ceiling and retry set. It is the default decider.
var Configured DeciderFunc = func(a *request.Attempt, t Trigger) bool {
	return ShouldRetry(t.Reason, a.Count, a.RetryAttempts, a.RetryCodes, t.Status)
}

// DefaultDecider is the decider used when none is given.
var DefaultDecider = Configured

// Never is a decider which never retries.
var Never DeciderFunc = func(*request.Attempt, Trigger) bool {
	return false
}

// Times returns a decider which allows retries while the attempt count
// is less than n, regardless of the attempt's own ceiling. Compose it
// with Configured using And to impose a stricter ceiling.
func Times(n int) DeciderFunc {
	return func(a *request.Attempt, _ Trigger) bool {
		return a.Count < n
	}
}

// Before returns a decider which allows retries until d has elapsed
// since the first attempt started.
func Before(d time.Duration) DeciderFunc {
	return func(a *request.Attempt, _ Trigger) bool {
		return a.Elapsed() < d
	}
}
