// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"time"

	"github.com/gogama/respx/status"
	"github.com/gogama/respx/transient"
)

// A Raw is the raw outcome of one transmission.
//
// Exactly one of the following holds: StatusCode is positive, and
// Header, Body and Elapsed describe the response; or StatusCode is zero
// and Err holds the transport failure. If the body could not be read
// completely after a status was received, both StatusCode and Err are
// set.
type Raw struct {
	// StatusCode is the wire status code, or zero if no HTTP response
	// was received.
	StatusCode int
	// Header is the response header.
	Header http.Header
	// Body is the fully buffered response body, possibly empty.
	Body []byte
	// Elapsed is the measured duration of the transmission.
	Elapsed time.Duration
	// Err is the transport error, if any.
	Err error
}

// HasStatus indicates whether an HTTP response was received.
func (r *Raw) HasStatus() bool {
	return r.StatusCode > 0
}

// Status returns the classified status code. It returns status.Unknown
// if there is no HTTP response.
func (r *Raw) Status() status.Code {
	if !r.HasStatus() {
		return status.Unknown
	}
	return status.Classify(r.StatusCode)
}

// Timeout indicates whether Err reports a transport timeout.
func (r *Raw) Timeout() bool {
	return transient.Categorize(r.Err) == transient.Timeout
}
