// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package decode turns response body bytes into the value a caller
expects.

The expected result is described by a Shape, chosen once when the call
is built: Empty (no payload), Raw (the bytes themselves), Primitive (a
bare string, integer, float or boolean) or Structured (a JSON document
decoded into a value produced by a factory):

	shape := decode.StructuredOf[User]()
	v, err := decode.Decode(shape, body, decode.ISO8601, decode.JSON)
	user := v.(*User)

Structured decoding is delegated to a StructuredDecoder. The built-in
JSON decoder converts time.Time fields using a DateStrategy, resolved
per call by ResolveDates.

Every decode failure returns a nil value and an error wrapping
ErrUndecodable.
*/
package decode
