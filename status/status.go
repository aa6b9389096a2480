// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package status

import (
	"net/http"
	"strconv"
)

// A Code is a classified HTTP status code.
//
// Non-negative values carry the raw wire status code, whether or not
// the code is one of the standard codes listed below. Negative values
// are reserved for the synthetic codes Undecodable and TimedOut.
type Code int

// Unknown is the classification of an integer which cannot be an HTTP
// status code.
const Unknown Code = 0

// Synthetic codes. These are never produced by Classify.
const (
	// Undecodable indicates the response had a success status code but
	// its body could not be decoded into the expected result shape.
	Undecodable Code = -1
	// TimedOut indicates the transport timed out before any HTTP
	// response was received.
	TimedOut Code = -1001
)

// Standard HTTP status codes.
const (
	Continue           Code = 100
	SwitchingProtocols Code = 101
	Processing         Code = 102
	EarlyHints         Code = 103

	OK                   Code = 200
	Created              Code = 201
	Accepted             Code = 202
	NonAuthoritativeInfo Code = 203
	NoContent            Code = 204
	ResetContent         Code = 205
	PartialContent       Code = 206
	MultiStatus          Code = 207
	AlreadyReported      Code = 208
	IMUsed               Code = 226

	MultipleChoices   Code = 300
	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	UseProxy          Code = 305
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest                   Code = 400
	Unauthorized                 Code = 401
	PaymentRequired              Code = 402
	Forbidden                    Code = 403
	NotFound                     Code = 404
	MethodNotAllowed             Code = 405
	NotAcceptable                Code = 406
	ProxyAuthRequired            Code = 407
	RequestTimeout               Code = 408
	Conflict                     Code = 409
	Gone                         Code = 410
	LengthRequired               Code = 411
	PreconditionFailed           Code = 412
	RequestEntityTooLarge        Code = 413
	RequestURITooLong            Code = 414
	UnsupportedMediaType         Code = 415
	RequestedRangeNotSatisfiable Code = 416
	ExpectationFailed            Code = 417
	Teapot                       Code = 418
	MisdirectedRequest           Code = 421
	UnprocessableEntity          Code = 422
	Locked                       Code = 423
	FailedDependency             Code = 424
	TooEarly                     Code = 425
	UpgradeRequired              Code = 426
	PreconditionRequired         Code = 428
	TooManyRequests              Code = 429
	RequestHeaderFieldsTooLarge  Code = 431
	UnavailableForLegalReasons   Code = 451

	InternalServerError           Code = 500
	NotImplemented                Code = 501
	BadGateway                    Code = 502
	ServiceUnavailable            Code = 503
	GatewayTimeout                Code = 504
	HTTPVersionNotSupported       Code = 505
	VariantAlsoNegotiates         Code = 506
	InsufficientStorage           Code = 507
	LoopDetected                  Code = 508
	NotExtended                   Code = 510
	NetworkAuthenticationRequired Code = 511
)

// Classify maps a raw status code integer, as received on the wire, to
// a Code. It is pure and total.
//
// Integers outside the standard table pass through unchanged so they
// still compare equal to the same integer configured in a Set. Negative
// integers classify to Unknown.
func Classify(code int) Code {
	if code < 0 {
		return Unknown
	}
	return Code(code)
}

// Int returns the raw integer value of the code.
func (c Code) Int() int {
	return int(c)
}

// Synthetic indicates whether c is one of the codes that never appear
// on the wire.
func (c Code) Synthetic() bool {
	return c == Undecodable || c == TimedOut
}

// Known indicates whether c is a standard HTTP status code or one of
// the synthetic codes.
func (c Code) Known() bool {
	if c.Synthetic() {
		return true
	}
	return c > 0 && http.StatusText(int(c)) != ""
}

// Success indicates whether c is in the 2XX class.
func (c Code) Success() bool {
	return c >= 200 && c <= 299
}

// String returns the reason phrase for known codes, and "Status(n)"
// for any other value.
func (c Code) String() string {
	switch c {
	case Undecodable:
		return "Undecodable"
	case TimedOut:
		return "Timed Out"
	case Unknown:
		return "Unknown"
	}
	if text := http.StatusText(int(c)); text != "" {
		return text
	}
	return "Status(" + strconv.Itoa(int(c)) + ")"
}
