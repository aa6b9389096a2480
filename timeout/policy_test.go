// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"errors"
	"math"
	"syscall"
	"testing"
	"time"

	"github.com/gogama/respx/request"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, 15*time.Second, DefaultPolicy.Timeout(&request.Attempt{}))
	timedOut := &request.Attempt{Timeouts: 3, Raw: &request.Raw{Err: syscall.ETIMEDOUT}}
	assert.Equal(t, 15*time.Second, DefaultPolicy.Timeout(timedOut))
}

func TestInfinite(t *testing.T) {
	assert.Equal(t, time.Duration(math.MaxInt64), Infinite.Timeout(&request.Attempt{}))
}

func TestFixed(t *testing.T) {
	p := Fixed(33 * time.Hour)
	assert.Equal(t, 33*time.Hour, p.Timeout(&request.Attempt{}))
	assert.Equal(t, 33*time.Hour, p.Timeout(&request.Attempt{Count: 2, Timeouts: 2, Raw: &request.Raw{Err: syscall.ETIMEDOUT}}))
}

func TestAdaptive(t *testing.T) {
	p := Adaptive(5*time.Millisecond, 10*time.Millisecond, 100*time.Millisecond)
	a := &request.Attempt{}
	assert.Equal(t, 5*time.Millisecond, p.Timeout(a))
	a.Raw = &request.Raw{Err: syscall.ETIMEDOUT}
	a.Timeouts = 1
	assert.Equal(t, 10*time.Millisecond, p.Timeout(a))
	a.Raw = &request.Raw{Err: errors.New("just a routine problem")}
	assert.Equal(t, 5*time.Millisecond, p.Timeout(a))
	a.Raw = &request.Raw{Err: syscall.ETIMEDOUT}
	a.Timeouts = 2
	assert.Equal(t, 100*time.Millisecond, p.Timeout(a))
	a.Timeouts = 7
	assert.Equal(t, 100*time.Millisecond, p.Timeout(a))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, 15*time.Second, Resolve(nil, &request.Attempt{}))
	assert.Equal(t, time.Second, Resolve(Fixed(time.Second), &request.Attempt{}))
	assert.Equal(t, time.Minute, Resolve(Fixed(time.Second), &request.Attempt{Timeout: time.Minute}))
}
