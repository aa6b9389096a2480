// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

import (
	"time"

	"github.com/gogama/respx/decode"
	"github.com/gogama/respx/failure"
	"github.com/gogama/respx/request"
	"github.com/gogama/respx/retry"
	"github.com/gogama/respx/status"
	"github.com/gogama/respx/transient"
)

// resolve turns the raw outcome of the latest transmission into a
// state. A Delivered state means exactly one delivery callback family
// has been invoked. Retrying never delivers, except that a timed out
// transmission is always reported through OnTimeout or OnError before
// the retry decision.
func resolve(c *Call, policy retry.Policy, raw *request.Raw) State {
	a := c.Attempt
	if c.Cancelled() {
		c.logger.Debug().Msg("cancelled, dropping response")
		return Abandoned
	}

	if !raw.HasStatus() {
		if !raw.Timeout() {
			c.logger.Error().
				Err(raw.Err).
				Stringer("category", transient.Categorize(raw.Err)).
				Msg("transport failure, dropping")
			return Abandoned
		}
		// Every timed out transmission is reported, including ones
		// which go on to be retried.
		err := failure.Compose(c.logger, status.TimedOut, raw.Err, nil, failure.TimeoutMessage)
		c.outcome.Err = err
		if c.OnTimeout != nil {
			c.OnTimeout()
		} else {
			deliverError(c, err)
		}
		if shouldRetry(c, policy, retry.Trigger{Reason: retry.TimeoutTrigger, Status: status.TimedOut}) {
			return Retrying
		}
		return Delivered
	}

	code := raw.Status()
	if shouldRetry(c, policy, retry.Trigger{Reason: retry.StatusTrigger, Status: code}) {
		return Retrying
	}

	switch {
	case a.SuccessCodes.Contains(code):
		return resolveSuccess(c, raw, code)
	case code == status.Unauthorized:
		if hook := c.cfg.UnauthorizedHook; hook != nil {
			hook()
		}
		err := failure.Compose(c.logger, code, raw.Err, raw.Body, failure.UnauthorizedMessage)
		c.outcome.Err = err
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		} else {
			deliverError(c, err)
		}
		return Delivered
	default:
		deliverError(c, failure.Compose(c.logger, code, raw.Err, raw.Body, failure.GenericMessage))
		return Delivered
	}
}

// shouldRetry applies the retry policy within the attempt's retry
// ceiling, which no policy can lift.
func shouldRetry(c *Call, policy retry.Policy, t retry.Trigger) bool {
	a := c.Attempt
	if a.Count >= a.RetryAttempts || !policy.Decide(a, t) {
		return false
	}
	c.logger.Debug().
		Str("reason", t.Reason.String()).
		Int("status", t.Status.Int()).
		Int("attempt", a.Count).
		Int("max", a.RetryAttempts).
		Msg("retrying")
	return true
}

func resolveSuccess(c *Call, raw *request.Raw, code status.Code) State {
	if raw.Err != nil {
		deliverError(c, failure.Compose(c.logger, status.Undecodable, raw.Err, raw.Body, failure.GenericMessage))
		return Delivered
	}
	v, err := decode.Decode(c.Shape, raw.Body, c.dates, c.decoder)
	if err != nil {
		deliverError(c, failure.Compose(c.logger, status.Undecodable, err, raw.Body, failure.GenericMessage))
		return Delivered
	}

	if !holdFloor(c, raw.Elapsed) {
		c.logger.Debug().Msg("cancelled during latency floor, dropping response")
		return Abandoned
	}

	c.outcome.Err = nil
	s := &Success{
		Value:  v,
		Body:   raw.Body,
		Header: raw.Header,
		Status: code,
	}
	c.outcome.Success = s
	if hook := c.cfg.SuccessHook; hook != nil {
		hook(c.Attempt.Plan.Host(), c.Attempt.Plan.Endpoint())
	}
	if c.OnSuccess != nil {
		c.OnSuccess(v)
	}
	if c.OnSuccessExtended != nil {
		c.OnSuccessExtended(s)
	}
	if c.OnFlatten != nil {
		c.OnFlatten(v)
	}
	return Delivered
}

// holdFloor waits out the rest of the latency floor and reports
// whether delivery may proceed.
func holdFloor(c *Call, elapsed time.Duration) bool {
	a := c.Attempt
	wait := a.LatencyFloor - elapsed
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-a.Done():
		case <-a.Plan.Context().Done():
			return false
		}
	}
	return !a.Cancelled()
}

func deliverError(c *Call, err *failure.Error) {
	c.outcome.Err = err
	if c.OnError != nil {
		c.OnError(err)
	}
}
