// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// A StructuredDecoder decodes a structured document into target, which
// is a non-nil pointer, converting dates with the given strategy.
//
// Implementations must be safe for concurrent use.
type StructuredDecoder interface {
	DecodeStructured(body []byte, target interface{}, dates DateStrategy) error
}

// The StructuredDecoderFunc type is an adapter to allow the use of
// ordinary functions as structured decoders.
type StructuredDecoderFunc func(body []byte, target interface{}, dates DateStrategy) error

// DecodeStructured calls f(body, target, dates).
func (f StructuredDecoderFunc) DecodeStructured(body []byte, target interface{}, dates DateStrategy) error {
	return f(body, target, dates)
}

// JSON is the built-in structured decoder.
//
// It parses the body as a single JSON value, then maps the generic
// value onto target following `json` struct tags (field names match
// case-insensitively, embedded structs are flattened, unknown fields
// are ignored). Values whose destination is a time.Time are converted
// with the date strategy. Type mismatches are errors, including a JSON
// number bound to a string and a top-level null.
var JSON StructuredDecoder = jsonDecoder{}

var timeType = reflect.TypeOf(time.Time{})

type jsonDecoder struct{}

func (jsonDecoder) DecodeStructured(body []byte, target interface{}, dates DateStrategy) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("malformed JSON: trailing data after top-level value")
	}
	if tree == nil {
		return errors.New("schema mismatch: null document")
	}

	if dates == nil {
		dates = ISO8601
	}
	md, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    "json",
		Squash:     true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(dateHook(dates), numberHook),
	})
	if err != nil {
		return err
	}
	if err = md.Decode(tree); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}
	return nil
}

func dateHook(dates DateStrategy) mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != timeType {
			return data, nil
		}
		switch data.(type) {
		case string, json.Number, float64:
			return dates.DecodeTime(data)
		default:
			return data, nil
		}
	}
}

// numberHook rejects JSON numbers bound to string destinations, which
// mapstructure would otherwise copy because json.Number is a string.
func numberHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if n, ok := data.(json.Number); ok && to.Kind() == reflect.String {
		return nil, fmt.Errorf("expected string, got number %s", n)
	}
	return data, nil
}
