// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/respx/request"
)

// A Policy decides the timeout for the next transmission of an attempt.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	Timeout(a *request.Attempt) time.Duration
}

// DefaultPolicy is the policy used when none is given: a fixed timeout
// of 15 seconds.
var DefaultPolicy Policy = Fixed(15 * time.Second)

// Infinite is a policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed returns a policy which always uses the same timeout.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive returns a policy which uses the usual timeout unless the
// previous transmission timed out. After the n-th consecutive timeout
// it uses after[n-1], or the last entry of after once they run out.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

// Resolve returns the timeout for the next transmission of a: the
// attempt's own Timeout if positive, otherwise the one chosen by p.
// A nil p means DefaultPolicy.
func Resolve(p Policy, a *request.Attempt) time.Duration {
	if a.Timeout > 0 {
		return a.Timeout
	}
	if p == nil {
		p = DefaultPolicy
	}
	return p.Timeout(a)
}

type policy []time.Duration

func (p policy) Timeout(a *request.Attempt) time.Duration {
	if a.Raw == nil || !a.Raw.Timeout() {
		return p[0]
	}

	i := a.Timeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}

	return p[i]
}
