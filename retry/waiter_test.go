// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gogama/respx/request"
	"github.com/stretchr/testify/assert"
)

func TestDefaultWaiter(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, time.Duration(0), DefaultWaiter.Wait(&request.Attempt{Count: i}))
	}
}

func TestNewFixedWaiter(t *testing.T) {
	w := NewFixedWaiter(3 * time.Second)
	assert.Equal(t, 3*time.Second, w.Wait(&request.Attempt{}))
	assert.Equal(t, 3*time.Second, w.Wait(&request.Attempt{Count: 10}))
}

func TestNewExpWaiter(t *testing.T) {
	base, max := time.Millisecond, time.Hour
	t.Run("invalid", func(t *testing.T) {
		assert.Panics(t, func() { NewExpWaiter(0, max, nil) }, "zero base")
		assert.Panics(t, func() { NewExpWaiter(2, 1, nil) }, "max less than base")
		assert.Panics(t, func() { NewExpWaiter(base, max, float64(1)) }, "float64 jitter")
		var nilRand *rand.Rand
		assert.Panics(t, func() { NewExpWaiter(base, max, nilRand) }, "nil *rand.Rand")
	})
	t.Run("no jitter", func(t *testing.T) {
		w := NewExpWaiter(50*time.Millisecond, time.Second, nil)
		expected := []time.Duration{
			50 * time.Millisecond,
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
			800 * time.Millisecond,
			time.Second,
			time.Second,
		}
		for i, e := range expected {
			assert.Equal(t, e, w.Wait(&request.Attempt{Count: i}))
		}
		assert.Equal(t, time.Second, w.Wait(&request.Attempt{Count: 62}))
		assert.Equal(t, time.Second, w.Wait(&request.Attempt{Count: math.MaxInt32}))
	})
	t.Run("jitter", func(t *testing.T) {
		jitters := []interface{}{time.Now(), 1, int64(2), rand.NewSource(3), rand.New(rand.NewSource(4))}
		for _, jitter := range jitters {
			w := NewExpWaiter(base, 8*time.Millisecond, jitter)
			for i := 0; i < 10; i++ {
				wait := w.Wait(&request.Attempt{Count: i})
				assert.GreaterOrEqual(t, wait, time.Duration(0))
				assert.Less(t, wait, 8*time.Millisecond)
			}
		}
	})
}

func TestPolicy(t *testing.T) {
	p := NewPolicy(Times(1), NewFixedWaiter(time.Minute))
	assert.True(t, p.Decide(&request.Attempt{}, Trigger{}))
	assert.False(t, p.Decide(&request.Attempt{Count: 1}, Trigger{}))
	assert.Equal(t, time.Minute, p.Wait(&request.Attempt{}))
	assert.False(t, NoRetry.Decide(&request.Attempt{RetryAttempts: 3}, Trigger{}))
	assert.Equal(t, time.Duration(0), DefaultPolicy.Wait(&request.Attempt{}))
}
