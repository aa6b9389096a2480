// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

import (
	"testing"

	"github.com/gogama/respx/config"
	"github.com/gogama/respx/decode"
	"github.com/gogama/respx/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGo(t *testing.T) {
	expected := &Outcome{State: Delivered}
	call := newTestCall(t, nil, decode.Empty())
	m := newMockDoer(t)
	m.On("Do", call).Return(expected).Once()

	ch := Go(m, call)
	actual, ok := <-ch
	assert.True(t, ok)
	assert.Same(t, expected, actual)
	_, ok = <-ch
	assert.False(t, ok)
	m.AssertExpectations(t)
}

func TestGet(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		expected := &Outcome{State: Delivered}
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(c *Call) bool {
			p := c.Attempt.Plan
			return p.Method == "GET" && p.URL.String() == "foo" &&
				c.Shape.Kind() == decode.KindRaw &&
				c.Attempt.RetryAttempts == 3 &&
				p.Header.Get(RequestIDHeader) == c.ID()
		})).Return(expected).Once()
		cfg := config.New(config.WithRetryAttempts(3))
		o, err := Get(m, cfg, "foo", decode.Raw())
		assert.Same(t, expected, o)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("error invalid URL", func(t *testing.T) {
		m := newMockDoer(t)
		o, err := Get(m, nil, ":::", decode.Raw())
		assert.Nil(t, o)
		assert.Error(t, err)
		m.AssertNotCalled(t, "Do", mock.Anything)
	})
}

func TestInflate(t *testing.T) {
	t.Run("Inflate", func(t *testing.T) {
		t.Run("nil doer", func(t *testing.T) {
			assert.PanicsWithValue(t, "respx: nil doer", func() {
				Inflate(nil)
			})
		})
		t.Run("already an Executor", func(t *testing.T) {
			cl := &Client{}
			x := Inflate(cl)
			assert.Same(t, cl, x)
		})
		t.Run("not yet an Executor", func(t *testing.T) {
			m := newMockDoer(t)
			x := Inflate(m)
			assert.NotSame(t, m, x)
		})
	})
	expected := &Outcome{State: Abandoned}
	t.Run("Do", func(t *testing.T) {
		call := newTestCall(t, nil, decode.Empty())
		m := newMockDoer(t)
		m.On("Do", call).Return(expected).Once()
		x := Inflate(m)
		assert.Same(t, expected, x.Do(call))
		m.AssertExpectations(t)
	})
	t.Run("Go", func(t *testing.T) {
		call := newTestCall(t, nil, decode.Empty())
		m := newMockDoer(t)
		m.On("Do", call).Return(expected).Once()
		x := Inflate(m)
		assert.Same(t, expected, <-x.Go(call))
		m.AssertExpectations(t)
	})
	t.Run("CloseIdleConnections", func(t *testing.T) {
		t.Run("Doer does not implement IdleCloser", func(t *testing.T) {
			m := newMockDoer(t)
			x := Inflate(m)
			x.CloseIdleConnections()
			m.AssertNotCalled(t, "CloseIdleConnections")
		})
		t.Run("Doer implements IdleCloser", func(t *testing.T) {
			m := newMockDoerWithCloseIdleConnections(t)
			m.On("CloseIdleConnections").Once()
			x := Inflate(m)
			x.CloseIdleConnections()
			m.AssertExpectations(t)
		})
	})
}

func newTestCall(t *testing.T, cfg *config.Config, shape decode.Shape, opts ...CallOption) *Call {
	p, err := request.NewPlan("GET", "http://example.com/users/1", nil)
	require.NoError(t, err)
	return NewCall(cfg, p, shape, opts...)
}

type mockDoer struct {
	mock.Mock
}

func newMockDoer(t *testing.T) *mockDoer {
	m := &mockDoer{}
	m.Test(t)
	return m
}

func (m *mockDoer) Do(c *Call) *Outcome {
	args := m.Called(c)
	if o, ok := args.Get(0).(*Outcome); ok {
		return o
	}
	return nil
}

type mockDoerWithCloseIdleConnections struct {
	mockDoer
}

func newMockDoerWithCloseIdleConnections(t *testing.T) *mockDoerWithCloseIdleConnections {
	m := &mockDoerWithCloseIdleConnections{}
	m.Test(t)
	return m
}

func (m *mockDoerWithCloseIdleConnections) CloseIdleConnections() {
	m.Called()
}
