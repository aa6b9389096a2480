// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"net/url"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/gogama/respx/status"
	"github.com/stretchr/testify/assert"
)

func TestAttempt_Cancel(t *testing.T) {
	t.Run("not cancelled", func(t *testing.T) {
		a := NewAttempt(&Plan{})
		assert.False(t, a.Cancelled())
		select {
		case <-a.Done():
			t.Fatal("Done closed before Cancel")
		default:
		}
	})
	t.Run("cancelled", func(t *testing.T) {
		a := NewAttempt(&Plan{})
		done := a.Done()
		a.Cancel()
		assert.True(t, a.Cancelled())
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Done not closed after Cancel")
		}
	})
	t.Run("concurrent", func(t *testing.T) {
		a := NewAttempt(&Plan{})
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				a.Cancel()
				<-a.Done()
			}()
		}
		wg.Wait()
		assert.True(t, a.Cancelled())
	})
}

func TestAttempt_Elapsed(t *testing.T) {
	a := &Attempt{}
	assert.Equal(t, time.Duration(0), a.Elapsed())
	a.Start = time.Now().Add(-time.Second)
	assert.GreaterOrEqual(t, a.Elapsed(), time.Second)
}

func TestAttempt_Value(t *testing.T) {
	a := &Attempt{}
	assert.Nil(t, a.Value(ctxKey{}))
	a.SetValue(ctxKey{}, "foo")
	assert.Equal(t, "foo", a.Value(ctxKey{}))
	a.SetValue(ctxKey{}, "bar")
	assert.Equal(t, "bar", a.Value(ctxKey{}))
}

func TestRaw(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		r := &Raw{StatusCode: 503}
		assert.True(t, r.HasStatus())
		assert.Equal(t, status.ServiceUnavailable, r.Status())
		assert.False(t, r.Timeout())
	})
	t.Run("transport timeout", func(t *testing.T) {
		r := &Raw{Err: &url.Error{Op: "Get", URL: "http://x", Err: syscall.ETIMEDOUT}}
		assert.False(t, r.HasStatus())
		assert.Equal(t, status.Unknown, r.Status())
		assert.True(t, r.Timeout())
	})
	t.Run("transport error", func(t *testing.T) {
		r := &Raw{Err: errors.New("connection refused")}
		assert.False(t, r.HasStatus())
		assert.False(t, r.Timeout())
	})
}
