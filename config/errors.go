// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"strings"

	"github.com/gogama/respx/decode"
	"github.com/rs/zerolog"
)

// ErrInvalid is matched, via errors.Is, by every *Error.
var ErrInvalid = errors.New("invalid configuration")

// An Error describes one invalid setting. Messages are lowercase.
type Error struct {
	// Category is "invalid" or "missing".
	Category string
	// Field is the settings key path, e.g. "retry.attempts".
	Field string
	// Value is the offending value, if any.
	Value string
	// Message says what is wrong.
	Message string
	// Action says how to fix it.
	Action string
}

// Error formats the category, field, value, message and action.
func (e *Error) Error() string {
	parts := []string{"config_" + e.Category + ":"}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, strings.TrimSpace(e.Value))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Action != "" {
		parts = append(parts, "("+e.Action+")")
	}
	return strings.Join(parts, " ")
}

// Is reports whether target is ErrInvalid.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Validate checks s and returns all problems found, joined.
func Validate(s Settings) error {
	var errs []error

	if _, err := decode.ParseDateStrategy(s.Dates.Strategy); err != nil {
		errs = append(errs, &Error{
			Category: "invalid",
			Field:    "dates.strategy",
			Value:    s.Dates.Strategy,
			Message:  "unknown date strategy",
			Action:   `use iso8601, rfc1123, seconds, milliseconds or layout:<layout>`,
		})
	}
	if len(s.Success.Codes) == 0 {
		errs = append(errs, &Error{
			Category: "missing",
			Field:    "success.codes",
			Message:  "at least one success code is required",
		})
	}
	errs = append(errs, fieldErrs("success.codes", s.Success.Codes)...)
	errs = append(errs, fieldErrs("retry.codes", s.Retry.Codes)...)
	if s.Retry.Attempts < 0 {
		errs = append(errs, negative("retry.attempts"))
	}
	if s.Retry.Wait < 0 {
		errs = append(errs, negative("retry.wait"))
	}
	if s.Latency.Floor < 0 {
		errs = append(errs, negative("latency.floor"))
	}
	if s.Timeout.Attempt < 0 {
		errs = append(errs, negative("timeout.attempt"))
	}
	if s.Transport.MaxIdleConns < 0 {
		errs = append(errs, negative("transport.maxidleconns"))
	}
	if s.Log.Level != "" {
		if _, err := zerolog.ParseLevel(s.Log.Level); err != nil {
			errs = append(errs, &Error{
				Category: "invalid",
				Field:    "log.level",
				Value:    s.Log.Level,
				Message:  "unknown log level",
				Action:   "use trace, debug, info, warn, error, fatal, panic or disabled",
			})
		}
	}

	return errors.Join(errs...)
}

func fieldErrs(field string, codes []string) []error {
	var errs []error
	for _, raw := range codes {
		if _, err := parseCode(raw); err != nil {
			var ce *Error
			if errors.As(err, &ce) {
				ce.Field = field
			}
			errs = append(errs, err)
		}
	}
	return errs
}

func negative(field string) *Error {
	return &Error{
		Category: "invalid",
		Field:    field,
		Message:  "must not be negative",
	}
}
