// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

// A Kind identifies which decode strategy a Shape selects.
type Kind int

const (
	// KindEmpty expects no payload.
	KindEmpty Kind = iota
	// KindRaw expects the body bytes unchanged.
	KindRaw
	// KindPrimitive expects a bare scalar.
	KindPrimitive
	// KindStructured expects a structured document.
	KindStructured
)

var kindNames = []string{"Empty", "Raw", "Primitive", "Structured"}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// A Primitive identifies the scalar type expected by a primitive Shape.
type Primitive int

const (
	// String decodes to a Go string.
	String Primitive = iota
	// Int decodes to an int64.
	Int
	// Float decodes to a float64.
	Float
	// Bool decodes to a bool.
	Bool
)

var primitiveNames = []string{"String", "Int", "Float", "Bool"}

// String returns the name of the primitive.
func (p Primitive) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return "Primitive(?)"
	}
	return primitiveNames[p]
}

// Nothing is the value produced by the Empty shape.
type Nothing struct{}

// A Shape describes the result a caller expects decoded from a response
// body. The zero value is the Empty shape.
//
// A Shape is fixed for the lifetime of a call.
type Shape struct {
	kind      Kind
	primitive Primitive
	factory   func() interface{}
}

// Empty returns the shape for calls which expect no payload.
func Empty() Shape {
	return Shape{kind: KindEmpty}
}

// Raw returns the shape for calls which expect the body bytes.
func Raw() Shape {
	return Shape{kind: KindRaw}
}

// Scalar returns the shape for calls which expect a bare scalar of the
// given primitive type.
func Scalar(p Primitive) Shape {
	return Shape{kind: KindPrimitive, primitive: p}
}

// Structured returns the shape for calls which expect a structured
// document. The factory must return a fresh non-nil pointer on every
// call; the decoded value is that pointer.
func Structured(factory func() interface{}) Shape {
	if factory == nil {
		panic("respx/decode: nil factory")
	}
	return Shape{kind: KindStructured, factory: factory}
}

// StructuredOf returns a structured shape which decodes into a new *T.
func StructuredOf[T any]() Shape {
	return Structured(func() interface{} { return new(T) })
}

// Kind returns the kind of the shape.
func (s Shape) Kind() Kind {
	return s.kind
}

// Primitive returns the primitive type of a primitive shape.
func (s Shape) Primitive() Primitive {
	return s.primitive
}

// String describes the shape, for logging.
func (s Shape) String() string {
	if s.kind == KindPrimitive {
		return "Primitive(" + s.primitive.String() + ")"
	}
	return s.kind.String()
}
