// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

import (
	"time"

	"github.com/gogama/respx/config"
	"github.com/gogama/respx/decode"
	"github.com/gogama/respx/request"
	"github.com/gogama/respx/retry"
)

var emptyHandlers = HandlerGroup{}

// A Client executes calls and resolves their responses. Its zero value
// is a valid configuration.
//
// The zero value client uses an HTTPTransport over http.DefaultClient,
// config.Default() as the process-wide configuration,
// retry.DefaultPolicy as the retry policy, and an empty handler group
// (no event handlers/plug-ins).
//
// Client is safe for concurrent use by multiple goroutines. Each call
// is driven by the goroutine running Do.
//
// On top of transmitting requests, Client adds the following features:
//
// • Client classifies each response against the call's success and
// retry codes, and decodes successful bodies into the call's shape;
//
// • Client retries timeouts and retryable statuses, never exceeding
// the call's retry ceiling;
//
// • Client holds successful deliveries until the call's latency floor
// has passed;
//
// • Client delivers each call's result to exactly one callback, or to
// none if the call is cancelled; and
//
// • Client invokes user-provided handler functions at designated plug-in
// points within the attempt/retry loop, allowing new features to be
// mixed in from outside libraries.
type Client struct {
	// Transport transmits attempts.
	//
	// If Transport is nil, an HTTPTransport using http.DefaultClient
	// is used.
	Transport Transport
	// Config publishes the process-wide configuration used by
	// NewCall.
	//
	// If Config is nil, config.Default() is used.
	Config *config.Holder
	// RetryPolicy decides whether to retry within each call's retry
	// ceiling, and how long to wait before retrying.
	//
	// If RetryPolicy is nil, retry.DefaultDecider is used with a fixed
	// wait of the call's configured RetryWait.
	RetryPolicy retry.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a call.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

var defaultTransport = &HTTPTransport{}

// NewCall creates a call using the client's current configuration.
func (c *Client) NewCall(p *request.Plan, shape decode.Shape, opts ...CallOption) *Call {
	return NewCall(c.config(), p, shape, opts...)
}

// Do executes a call and returns its outcome, after any callback has
// returned.
//
// Do transmits the call's plan, then resolves the raw outcome: it
// either retries, delivers a success or an error to exactly one of
// the call's callbacks, or abandons the call. The returned Outcome is
// never nil and its State is either Delivered or Abandoned.
//
// Do panics if the call has already been executed.
func (c *Client) Do(call *Call) *Outcome {
	if !call.started.CompareAndSwap(false, true) {
		panic("respx: call already executed")
	}

	transport := c.Transport
	if transport == nil {
		transport = defaultTransport
	}

	retryPolicy := c.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = retry.NewPolicy(retry.DefaultDecider, retry.NewFixedWaiter(call.Config().RetryWait))
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	a := call.Attempt
	ctx := a.Plan.Context()
	handlers.run(BeforeCall, call)
	a.Start = time.Now()

	state := Abandoned
RetryLoop:
	for {
		if a.Cancelled() || ctx.Err() != nil {
			break
		}
		handlers.run(BeforeAttempt, call)
		a.Raw = transport.Execute(ctx, a)
		call.outcome.Attempts++
		logRaw(call)
		if !a.Raw.HasStatus() && a.Raw.Timeout() {
			a.Timeouts++
			handlers.run(AfterAttemptTimeout, call)
		}
		handlers.run(AfterAttempt, call)

		state = resolve(call, retryPolicy, a.Raw)
		if state != Retrying {
			break
		}

		call.outcome.State = Retrying
		handlers.run(BeforeRetry, call)
		if wait := retryPolicy.Wait(a); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-a.Done():
				timer.Stop()
				state = Abandoned
				break RetryLoop
			case <-ctx.Done():
				timer.Stop()
				state = Abandoned
				break RetryLoop
			}
		}
		a.Count++
		state = Abandoned
	}

	call.outcome.State = state
	if state == Delivered {
		handlers.run(AfterDelivery, call)
	} else {
		call.logger.Debug().Int("attempts", call.outcome.Attempts).Msg("call abandoned")
		handlers.run(AfterAbandon, call)
	}
	handlers.run(AfterCallEnd, call)
	return &call.outcome
}

// Go executes a call in a new goroutine. The returned channel yields
// the outcome once the call has ended.
func (c *Client) Go(call *Call) <-chan *Outcome {
	return Go(c, call)
}

// CloseIdleConnections invokes the same method on the client's
// transport.
//
// If the transport has no CloseIdleConnections method, this method
// does nothing.
func (c *Client) CloseIdleConnections() {
	transport := c.Transport
	if transport == nil {
		transport = defaultTransport
	}
	if ic, ok := transport.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) config() *config.Config {
	if c.Config == nil {
		return config.Default()
	}
	return c.Config.Load()
}

func logRaw(call *Call) {
	a := call.Attempt
	raw := a.Raw
	if !raw.HasStatus() {
		return
	}
	call.logger.Info().
		Str("method", a.Plan.Method).
		Str("url", a.Plan.URL.String()).
		Int("status", raw.StatusCode).
		Dur("elapsed", raw.Elapsed).
		Int("attempt", a.Count).
		Msg("response")
	call.logger.Debug().
		Int("headers", len(raw.Header)).
		Int("body_bytes", len(raw.Body)).
		Msg("response detail")
}
