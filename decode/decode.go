// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrUndecodable is wrapped by every error returned from Decode.
var ErrUndecodable = errors.New("respx/decode: undecodable body")

// Decode decodes body according to shape.
//
// The Empty shape always succeeds with Nothing{}, and the Raw shape
// always succeeds with body itself. A primitive shape parses a bare
// scalar. A structured shape delegates to sd (JSON if nil), passing
// dates (ISO8601 if nil), and yields the pointer created by the shape's
// factory.
//
// On failure the returned value is always nil and the error wraps
// ErrUndecodable.
func Decode(shape Shape, body []byte, dates DateStrategy, sd StructuredDecoder) (interface{}, error) {
	switch shape.kind {
	case KindEmpty:
		return Nothing{}, nil
	case KindRaw:
		return body, nil
	case KindPrimitive:
		v, err := decodePrimitive(shape.primitive, body)
		if err != nil {
			return nil, fmt.Errorf("%w as %s: %v", ErrUndecodable, shape, err)
		}
		return v, nil
	case KindStructured:
		if sd == nil {
			sd = JSON
		}
		target := shape.factory()
		if err := sd.DecodeStructured(body, target, dates); err != nil {
			return nil, fmt.Errorf("%w as %s: %v", ErrUndecodable, shape, err)
		}
		return target, nil
	default:
		return nil, fmt.Errorf("%w: unknown shape kind %d", ErrUndecodable, shape.kind)
	}
}

func decodePrimitive(p Primitive, body []byte) (interface{}, error) {
	if !utf8.Valid(body) {
		return nil, errors.New("body is not valid UTF-8")
	}
	s := strings.TrimSpace(string(body))
	switch p {
	case String:
		if len(s) >= 2 && s[0] == '"' {
			var unquoted string
			if err := json.Unmarshal([]byte(s), &unquoted); err == nil {
				return unquoted, nil
			}
		}
		return string(body), nil
	case Int:
		return strconv.ParseInt(s, 10, 64)
	case Float:
		return strconv.ParseFloat(s, 64)
	case Bool:
		return strconv.ParseBool(s)
	default:
		return nil, fmt.Errorf("unknown primitive %d", p)
	}
}
