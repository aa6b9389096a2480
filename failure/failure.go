// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package failure

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gogama/respx/status"
	"github.com/rs/zerolog"
)

// Fallback messages.
const (
	GenericMessage      = "Something went wrong"
	UnauthorizedMessage = "Not authorized"
	TimeoutMessage      = "Connection timeout"
)

// A Kind is the kind of a delivered error.
type Kind int

const (
	// Server is any non-success, non-retried, non-401 status.
	Server Kind = iota
	// Undecodable is a success status whose body could not be decoded.
	Undecodable
	// Unauthorized is status 401.
	Unauthorized
	// TimedOut is a transport timeout with no HTTP response.
	TimedOut
)

var kindNames = []string{"Server", "Undecodable", "Unauthorized", "TimedOut"}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// KindOf returns the error kind corresponding to a classified status.
func KindOf(code status.Code) Kind {
	switch code {
	case status.Undecodable:
		return Undecodable
	case status.Unauthorized:
		return Unauthorized
	case status.TimedOut:
		return TimedOut
	default:
		return Server
	}
}

// An Error is the payload delivered through a call's error channel.
type Error struct {
	// Kind is the kind of error.
	Kind Kind
	// Status is the classified status. It is one of the synthetic codes
	// for Undecodable and TimedOut errors.
	Status status.Code
	// Err is the transport error, if any.
	Err error
	// Body is the raw response body, if any, for caller inspection.
	Body []byte
	// Message is the server-supplied message when one could be
	// extracted, otherwise a fallback message.
	Message string
}

// Error returns the status and message, followed by the transport
// error if there is one.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("respx: ")
	b.WriteString(e.Status.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the transport error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Compose builds the error payload for a classified status and logs it
// at error level. It never fails.
//
// For Server errors the message is extracted from the body when
// possible (see Message). All other kinds use fallback as-is.
func Compose(logger zerolog.Logger, code status.Code, err error, body []byte, fallback string) *Error {
	kind := KindOf(code)
	msg := fallback
	if kind == Server {
		msg = Message(body, fallback)
	}
	e := &Error{
		Kind:    kind,
		Status:  code,
		Err:     err,
		Body:    body,
		Message: msg,
	}
	logger.Error().
		Err(err).
		Str("kind", kind.String()).
		Int("status", code.Int()).
		Int("body_bytes", len(body)).
		Msg(msg)
	return e
}

// Message extracts a human-readable message from a response body. It
// returns the "message" string of a JSON object, or the only element
// of a JSON array holding exactly one string. Otherwise it returns
// fallback.
func Message(body []byte, fallback string) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return fallback
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err == nil {
		if m, ok := obj["message"].(string); ok {
			return m
		}
		return fallback
	}

	var arr []interface{}
	if err := json.Unmarshal(body, &arr); err == nil && len(arr) == 1 {
		if m, ok := arr[0].(string); ok {
			return m
		}
	}

	return fallback
}
