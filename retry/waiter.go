// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gogama/respx/request"
)

// A Waiter specifies how long to wait before re-executing an attempt.
//
// Implementations of Waiter must be safe for concurrent use by multiple
// goroutines.
type Waiter interface {
	Wait(a *request.Attempt) time.Duration
}

// Immediate is a waiter which never waits. It is the default.
var Immediate Waiter = fixedWaiter(0)

// DefaultWaiter is the waiter used when none is given.
var DefaultWaiter = Immediate

// NewFixedWaiter returns a waiter which always waits d.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.Attempt) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter returns a waiter which waits exponentially longer after
// each attempt, starting from base and capped at max.
//
// The jitter parameter may be nil, for no jitter, or one of time.Time,
// int, int64, rand.Source or *rand.Rand to seed full jitter: each wait
// is then a random duration in [0, ceiling).
func NewExpWaiter(base, max time.Duration, jitter interface{}) Waiter {
	if base < 1 {
		panic("respx/retry: base must be positive")
	}
	if max < base {
		panic("respx/retry: max must be at least base")
	}
	return &expWaiter{
		base: base,
		max:  max,
		rand: jitterToRand(jitter),
	}
}

type expWaiter struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (w *expWaiter) Wait(a *request.Attempt) time.Duration {
	ceil := w.max
	if a.Count < 63 {
		exp := int64(1) << a.Count
		c := int64(w.base) * exp
		if c/exp == int64(w.base) && c < int64(w.max) {
			ceil = time.Duration(c)
		}
	}

	if w.rand == nil {
		return ceil
	}

	w.lock.Lock()
	defer w.lock.Unlock()
	return time.Duration(w.rand.Int63n(int64(ceil)))
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("respx/retry: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("respx/retry: invalid jitter type")
	}
	return rand.New(s)
}
