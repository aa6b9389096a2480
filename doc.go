// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package respx resolves HTTP responses on the client side: it decides
whether a response succeeded, should be retried, timed out, or failed,
decodes successful bodies into the shape the caller expects, and
delivers the result to exactly one callback.

Create a Client, then create and execute a Call for each request.

	client := &respx.Client{}
	plan, err := request.NewPlan("GET", "https://api.example.com/users/1", nil)
	...
	call := client.NewCall(plan, decode.StructuredOf[User]())
	call.OnSuccess = respx.Typed(func(u *User) { ... })
	call.OnError = func(err *failure.Error) { ... }
	outcome := client.Do(call)

Process-wide defaults (success and retry codes, retry ceiling, latency
floor, attempt timeout, date strategy, logger and global hooks) come
from package config. Every call resolves them once, at creation, and
per-call options override them:

	holder := config.NewHolder(config.New(
		config.WithRetryCodes(status.NewSet(status.TimedOut, status.RequestTimeout)),
		config.WithRetryAttempts(2),
	))
	client := &respx.Client{Config: holder}
	call := client.NewCall(plan, decode.Scalar(decode.Int),
		respx.WithLatencyFloor(400*time.Millisecond))

For control over how attempts are transmitted, use a custom Transport,
or an HTTPTransport with a custom HTTPDoer:

	doer, err := respx.NewHTTPClient(holder.Load(), nil)
	...
	client := &respx.Client{
		Transport: &respx.HTTPTransport{Doer: doer},
	}

For control over the client's retry decisions and timing, create a
custom retry policy using components from package retry. No policy can
retry beyond a call's retry ceiling.

	retryWaiter := retry.NewExpWaiter(250*time.Millisecond, 5*time.Second, time.Now())
	retryPolicy := retry.NewPolicy(retry.DefaultDecider, retryWaiter)
	client := respx.Client{
		RetryPolicy: retryPolicy,
	}

To hook into the fine-grained details of the client's resolution
logic, install a handler into the appropriate handler chain:

	handlers := &respx.HandlerGroup{}
	handlers.PushBack(respx.BeforeRetry, respx.HandlerFunc(
		func(_ respx.Event, c *respx.Call) {
			log.Printf("Retrying %s after attempt %d", c.ID(), c.Attempt.Count)
		}),
	)
	client := &respx.Client{
		Handlers: handlers,
	}

Package observe provides a ready-made handler group recording
OpenTelemetry metrics.
*/
package respx
