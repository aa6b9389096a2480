// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

import (
	"github.com/gogama/respx/config"
	"github.com/gogama/respx/decode"
	"github.com/gogama/respx/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes a call, delivers its result to at most one of the call's
// callbacks, and returns its outcome. Client implements the Doer
// interface, and any other Doer implementation must behave
// substantially the same as Client.Do.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Doer interface {
	Do(call *Call) *Outcome
}

// Goer is the interface that wraps the basic Go method.
//
// Go executes a call asynchronously and returns a channel which yields
// its outcome. Client implements the Goer interface.
//
// Any Doer can be used to emulate a Goer via the Go function.
type Goer interface {
	Go(call *Call) <-chan *Outcome
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any idle which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the basic Do, Go, and
// CloseIdleConnections methods.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Executor interface {
	Doer
	Goer
	IdleCloser
}

// Go uses the specified Doer to execute a call in a new goroutine. The
// returned channel is buffered, yields the outcome exactly once, and
// is then closed.
func Go(d Doer, call *Call) <-chan *Outcome {
	ch := make(chan *Outcome, 1)
	go func() {
		defer close(ch)
		ch <- d.Do(call)
	}()
	return ch
}

// Get uses the specified Doer to issue a GET to the specified URL,
// expecting a body of the given shape. The call is created from cfg,
// or config.Default() if cfg is nil.
//
// To set callbacks or custom headers, use NewCall and d.Do.
func Get(d Doer, cfg *config.Config, url string, shape decode.Shape, opts ...CallOption) (*Outcome, error) {
	p, err := request.NewPlan("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return d.Do(NewCall(cfg, p, shape, opts...)), nil
}

// Inflate converts any non-nil Doer into an Executor. This may be
// helpful for interop across library boundaries, i.e. if code that only
// has access to a Doer needs to call a function that requires an
// Executor.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("respx: nil doer")
	}

	if e, ok := d.(Executor); ok {
		return e
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(call *Call) *Outcome {
	return i.doer.Do(call)
}

func (i inflated) Go(call *Call) <-chan *Outcome {
	return Go(i.doer, call)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
