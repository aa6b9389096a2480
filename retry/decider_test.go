// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"fmt"
	"testing"
	"time"

	"github.com/gogama/respx/request"
	"github.com/gogama/respx/status"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	t.Run("status trigger", func(t *testing.T) {
		triggers := status.NewSet(status.ServiceUnavailable, status.TooManyRequests)
		for attempt := 0; attempt < 3; attempt++ {
			assert.True(t, ShouldRetry(StatusTrigger, attempt, 3, triggers, status.ServiceUnavailable))
			assert.False(t, ShouldRetry(StatusTrigger, attempt, 3, triggers, status.InternalServerError))
		}
		assert.False(t, ShouldRetry(StatusTrigger, 3, 3, triggers, status.ServiceUnavailable))
		assert.False(t, ShouldRetry(StatusTrigger, 4, 3, triggers, status.ServiceUnavailable))
		assert.False(t, ShouldRetry(StatusTrigger, 0, 0, triggers, status.ServiceUnavailable))
	})
	t.Run("raw status in trigger set", func(t *testing.T) {
		triggers := status.Ints(599)
		assert.True(t, ShouldRetry(StatusTrigger, 0, 1, triggers, status.Classify(599)))
	})
	t.Run("timeout trigger needs both timeout codes", func(t *testing.T) {
		testCases := []struct {
			triggers status.Set
			expected bool
		}{
			{status.NewSet(), false},
			{status.NewSet(status.TimedOut), false},
			{status.NewSet(status.RequestTimeout), false},
			{status.NewSet(status.TimedOut, status.RequestTimeout), true},
			{status.NewSet(status.TimedOut, status.RequestTimeout, status.BadGateway), true},
		}
		for _, testCase := range testCases {
			t.Run(testCase.triggers.String(), func(t *testing.T) {
				assert.Equal(t, testCase.expected, ShouldRetry(TimeoutTrigger, 0, 2, testCase.triggers, status.TimedOut))
				assert.False(t, ShouldRetry(TimeoutTrigger, 2, 2, testCase.triggers, status.TimedOut))
			})
		}
	})
	t.Run("unknown reason", func(t *testing.T) {
		assert.False(t, ShouldRetry(Reason(7), 0, 2, status.NewSet(status.OK), status.OK))
	})
}

func TestConfigured(t *testing.T) {
	a := &request.Attempt{
		RetryAttempts: 2,
		RetryCodes:    status.NewSet(status.BadGateway, status.TimedOut, status.RequestTimeout),
	}
	st := Trigger{Reason: StatusTrigger, Status: status.BadGateway}
	to := Trigger{Reason: TimeoutTrigger, Status: status.TimedOut}
	for a.Count = 0; a.Count < 2; a.Count++ {
		assert.True(t, Configured.Decide(a, st), fmt.Sprintf("status attempt %d", a.Count))
		assert.True(t, DefaultDecider(a, to), fmt.Sprintf("timeout attempt %d", a.Count))
	}
	assert.False(t, Configured(a, st))
	assert.False(t, Configured(a, to))
	a.Count = 0
	assert.False(t, Configured(a, Trigger{Reason: StatusTrigger, Status: status.OK}))
}

func TestDeciderFunc_And_Or(t *testing.T) {
	yes := DeciderFunc(func(*request.Attempt, Trigger) bool { return true })
	calls := 0
	counting := DeciderFunc(func(*request.Attempt, Trigger) bool {
		calls++
		return true
	})
	a := &request.Attempt{}
	assert.False(t, Never.And(counting)(a, Trigger{}))
	assert.Equal(t, 0, calls)
	assert.True(t, yes.Or(counting)(a, Trigger{}))
	assert.Equal(t, 0, calls)
	assert.True(t, Never.Or(counting)(a, Trigger{}))
	assert.Equal(t, 1, calls)
	assert.True(t, yes.And(counting)(a, Trigger{}))
	assert.Equal(t, 2, calls)
}

func TestTimes(t *testing.T) {
	d := Times(2)
	assert.True(t, d(&request.Attempt{Count: 0}, Trigger{}))
	assert.True(t, d(&request.Attempt{Count: 1}, Trigger{}))
	assert.False(t, d(&request.Attempt{Count: 2}, Trigger{}))
	stricter := Configured.And(Times(1))
	a := &request.Attempt{RetryAttempts: 5, RetryCodes: status.NewSet(status.BadGateway)}
	st := Trigger{Reason: StatusTrigger, Status: status.BadGateway}
	assert.True(t, stricter(a, st))
	a.Count = 1
	assert.False(t, stricter(a, st))
}

func TestBefore(t *testing.T) {
	d := Before(time.Hour)
	assert.True(t, d(&request.Attempt{Start: time.Now()}, Trigger{}))
	assert.False(t, d(&request.Attempt{Start: time.Now().Add(-2 * time.Hour)}, Trigger{}))
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "StatusTrigger", StatusTrigger.String())
	assert.Equal(t, "TimeoutTrigger", TimeoutTrigger.String())
}
