package abi

import (
	"fmt"
	"strings"
)

// Pair is the binary-layout form handed to the dispatcher's descriptor
// factory: a scalar tag plus the container shape it appears in. For buffer
// shapes the scalar is the element type.
type Pair struct {
	Scalar Scalar
	Shape  Shape
}

// Type is the declarant-facing argument type: a bare scalar or one of the
// three buffer containers parameterized by an element scalar. Construct
// values only through the functions below; the zero value is Void.
type Type struct {
	scalar Scalar
	shape  Shape
}

func Void() Type        { return Type{scalar: ScalarVoid} }
func Bool() Type        { return Type{scalar: ScalarBool} }
func Int32() Type       { return Type{scalar: ScalarInt32} }
func Uint32() Type      { return Type{scalar: ScalarUint32} }
func Int64() Type       { return Type{scalar: ScalarInt64} }
func Uint64() Type      { return Type{scalar: ScalarUint64} }
func Float32() Type     { return Type{scalar: ScalarFloat32} }
func Float64() Type     { return Type{scalar: ScalarFloat64} }
func EngineValue() Type { return Type{scalar: ScalarEngineValue} }

// CallbackOptions declares the trailing callback-options parameter. It may
// appear at most once, as the last declared argument.
func CallbackOptions() Type { return Type{scalar: ScalarCallbackOptions} }

// SequenceOf declares a growable sequence with the given element type.
func SequenceOf(elem Scalar) Type { return Type{scalar: elem, shape: ShapeSequence} }

// TypedArrayOf declares a typed-array view with the given element type.
func TypedArrayOf(elem Scalar) Type { return Type{scalar: elem, shape: ShapeTypedArray} }

// ArrayBufferOf declares a raw array buffer with the given element type.
func ArrayBufferOf(elem Scalar) Type { return Type{scalar: elem, shape: ShapeArrayBuffer} }

// Scalar returns the scalar tag: the value's own kind for bare scalars, the
// element kind for buffer shapes.
func (t Type) Scalar() Scalar { return t.scalar }

// Shape returns the container shape.
func (t Type) Shape() Shape { return t.shape }

// Pair returns the (scalar, shape) translation. It is total: every Type has
// exactly one.
func (t Type) Pair() Pair { return Pair{Scalar: t.scalar, Shape: t.shape} }

// IsOptions reports whether this is the callback-options marker.
func (t Type) IsOptions() bool {
	return t.shape == ShapeScalar && t.scalar == ScalarCallbackOptions
}

func (t Type) String() string {
	if t.shape == ShapeScalar {
		return t.scalar.String()
	}
	return fmt.Sprintf("%s<%s>", t.shape, t.scalar)
}

// Pairs translates an ordered argument list into its descriptor pairs.
func Pairs(types []Type) []Pair {
	out := make([]Pair, len(types))
	for i, t := range types {
		out[i] = t.Pair()
	}
	return out
}

// ParseType resolves a declared type from its manifest form: a bare scalar
// name ("int32", "options") or a parameterized container
// ("typedarray<uint8>", "sequence<float64>", "arraybuffer<uint8>").
func ParseType(name string) (Type, bool) {
	open := strings.IndexByte(name, '<')
	if open < 0 {
		s, ok := ParseScalar(name)
		if !ok {
			return Type{}, false
		}
		return Type{scalar: s}, true
	}
	if !strings.HasSuffix(name, ">") {
		return Type{}, false
	}
	elem, ok := ParseScalar(name[open+1 : len(name)-1])
	if !ok || elem == ScalarCallbackOptions {
		return Type{}, false
	}
	switch name[:open] {
	case "sequence":
		return SequenceOf(elem), true
	case "typedarray":
		return TypedArrayOf(elem), true
	case "arraybuffer":
		return ArrayBufferOf(elem), true
	}
	return Type{}, false
}
