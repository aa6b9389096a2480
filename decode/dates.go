// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// A DateStrategy converts a JSON value into a time.Time during
// structured decoding.
//
// Implementations must be safe for concurrent use.
type DateStrategy interface {
	// DecodeTime converts v, which is a string, json.Number or
	// float64, into a time.
	DecodeTime(v interface{}) (time.Time, error)
	String() string
}

// Built-in date strategies.
var (
	// ISO8601 parses RFC 3339 strings, with or without fractional
	// seconds. It is the built-in default.
	ISO8601 DateStrategy = layout{time.RFC3339Nano, "iso8601"}
	// RFC1123 parses HTTP-date style strings.
	RFC1123 DateStrategy = layout{time.RFC1123, "rfc1123"}
	// UnixSeconds parses numbers of seconds since the Unix epoch.
	UnixSeconds DateStrategy = unix{time.Second, "seconds"}
	// UnixMillis parses numbers of milliseconds since the Unix epoch.
	UnixMillis DateStrategy = unix{time.Millisecond, "milliseconds"}
)

// Layout returns a strategy which parses strings with the given
// time.Parse layout.
func Layout(l string) DateStrategy {
	return layout{l, "layout:" + l}
}

// ParseDateStrategy parses a strategy name as written in configuration:
// "iso8601", "rfc1123", "seconds", "milliseconds", or "layout:<layout>".
// An empty name yields a nil strategy and no error.
func ParseDateStrategy(name string) (DateStrategy, error) {
	switch n := strings.TrimSpace(name); {
	case n == "":
		return nil, nil
	case strings.EqualFold(n, "iso8601"):
		return ISO8601, nil
	case strings.EqualFold(n, "rfc1123"):
		return RFC1123, nil
	case strings.EqualFold(n, "seconds"):
		return UnixSeconds, nil
	case strings.EqualFold(n, "milliseconds"):
		return UnixMillis, nil
	case strings.HasPrefix(n, "layout:") && len(n) > len("layout:"):
		return Layout(n[len("layout:"):]), nil
	default:
		return nil, fmt.Errorf("respx/decode: unknown date strategy %q", name)
	}
}

// ResolveDates returns the first non-nil strategy, in precedence order
// per-call override, process-wide default. If both are nil, ISO8601 is
// returned.
func ResolveDates(override, process DateStrategy) DateStrategy {
	if override != nil {
		return override
	}
	if process != nil {
		return process
	}
	return ISO8601
}

type layout struct {
	layout string
	name   string
}

func (l layout) DecodeTime(v interface{}) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("date strategy %s: expected string, got %T", l.name, v)
	}
	return time.Parse(l.layout, s)
}

func (l layout) String() string {
	return l.name
}

type unix struct {
	unit time.Duration
	name string
}

func (u unix) DecodeTime(v interface{}) (time.Time, error) {
	var f float64
	var err error
	switch x := v.(type) {
	case json.Number:
		f, err = x.Float64()
	case float64:
		f = x
	case string:
		f, err = strconv.ParseFloat(x, 64)
	default:
		err = fmt.Errorf("expected number, got %T", v)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("date strategy %s: %w", u.name, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1<<62 {
		return time.Time{}, fmt.Errorf("date strategy %s: %v out of range", u.name, v)
	}
	whole, frac := math.Modf(f)
	perSec := int64(time.Second / u.unit)
	n := int64(whole)
	nsec := (n%perSec)*int64(u.unit) + int64(frac*float64(u.unit))
	return time.Unix(n/perSec, nsec).UTC(), nil
}

func (u unix) String() string {
	return u.name
}
