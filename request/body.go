// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
)

const badBodyTypeMsg = "respx/request: invalid body type (use nil, string, []byte or io.Reader)"

// BodyBytes converts a generic body parameter to a byte slice for use
// as a plan body.
//
// A nil body yields a nil slice. A string or []byte is converted
// directly. An io.Reader is read to the end, and closed afterward if it
// implements io.Closer; any read or close error is returned with a nil
// slice. Any other type is an error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.Reader:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		if c, ok := x.(io.Closer); ok {
			if err = c.Close(); err != nil {
				return nil, err
			}
		}
		return b, nil
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}
