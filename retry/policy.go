// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gogama/respx/request"
)

// A Policy decides whether to retry, and how long to wait first.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	Decider
	Waiter
}

// DefaultPolicy retries according to each attempt's own configuration
// and does not wait between attempts.
var DefaultPolicy Policy = policy{DefaultDecider, DefaultWaiter}

// NoRetry is a policy which never retries.
var NoRetry Policy = policy{Never, DefaultWaiter}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy constructs a policy from a decider and a waiter.
func NewPolicy(d Decider, w Waiter) Policy {
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(a *request.Attempt, t Trigger) bool {
	return p.decider.Decide(a, t)
}

func (p policy) Wait(a *request.Attempt) time.Duration {
	return p.waiter.Wait(a)
}
