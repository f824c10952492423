package abi

// Scalar identifies the ABI-primitive kind of a fast-call value.
// The numeric encoding is fixed: it is part of the descriptor wire layout
// the dispatcher interprets.
type Scalar uint8

const (
	ScalarVoid Scalar = iota
	ScalarBool
	ScalarUint8
	ScalarInt32
	ScalarUint32
	ScalarInt64
	ScalarUint64
	ScalarFloat32
	ScalarFloat64
	ScalarEngineValue

	// ScalarCallbackOptions marks the trailing callback-options parameter.
	// The dispatcher keeps it out of its public enumeration, so it is pinned
	// at the highest encodable value and cannot collide with a real scalar
	// tag as new ones are appended.
	ScalarCallbackOptions Scalar = 255
)

var scalarNames = [...]string{
	ScalarVoid:        "void",
	ScalarBool:        "bool",
	ScalarUint8:       "uint8",
	ScalarInt32:       "int32",
	ScalarUint32:      "uint32",
	ScalarInt64:       "int64",
	ScalarUint64:      "uint64",
	ScalarFloat32:     "float32",
	ScalarFloat64:     "float64",
	ScalarEngineValue: "value",
}

func (s Scalar) String() string {
	if s == ScalarCallbackOptions {
		return "options"
	}
	if int(s) < len(scalarNames) {
		return scalarNames[s]
	}
	return "unknown"
}

// Scalars lists every defined scalar tag in encoding order.
func Scalars() []Scalar {
	out := make([]Scalar, 0, len(scalarNames)+1)
	for i := range scalarNames {
		out = append(out, Scalar(i))
	}
	return append(out, ScalarCallbackOptions)
}

// ParseScalar resolves a scalar tag from its wire name.
func ParseScalar(name string) (Scalar, bool) {
	if name == "options" {
		return ScalarCallbackOptions, true
	}
	for i, n := range scalarNames {
		if n == name {
			return Scalar(i), true
		}
	}
	return 0, false
}

// Shape tells the dispatcher how to interpret a scalar tag: as a bare value
// or as the element type of one of the three buffer containers.
type Shape uint8

const (
	ShapeScalar Shape = iota
	ShapeSequence
	ShapeTypedArray
	ShapeArrayBuffer
)

var shapeNames = [...]string{
	ShapeScalar:      "scalar",
	ShapeSequence:    "sequence",
	ShapeTypedArray:  "typedarray",
	ShapeArrayBuffer: "arraybuffer",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// IsBuffer reports whether the shape carries a length and a base pointer
// rather than a single machine value.
func (s Shape) IsBuffer() bool {
	return s != ShapeScalar
}
