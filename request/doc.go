// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (describes the HTTP request
to send), Attempt (one execution cycle of a Plan) and Raw (the raw
result of transmitting an attempt).

A Plan is a stripped-down http.Request with a pre-buffered body, so that
the same logical request can be sent again when a retry is needed:

	p, err := request.NewPlan("GET", "https://example.com/users/1", nil)

An Attempt carries the per-call configuration the response dispatcher
needs (retry ceiling, success and retry codes, latency floor, timeout)
together with the mutable attempt counter and a cooperative
cancellation flag:

	a := request.NewAttempt(p)
	...
	a.Cancel() // suppresses any further processing and delivery

A Raw is produced by the transport after each transmission. It either
has a status code (with headers, body and elapsed time) or only a
transport error.
*/
package request
