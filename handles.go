package fastcall

import (
	"unsafe"

	"github.com/wippyai/fastcall/abi"
)

// TypeDescriptor is a non-owning handle to an engine-owned type record.
// The engine allocates and reclaims the record; this library never frees it
// and never looks inside it.
type TypeDescriptor struct {
	ptr unsafe.Pointer
}

// NewTypeDescriptor wraps a raw engine pointer. Factory implementations call
// this; everyone else receives handles already built.
func NewTypeDescriptor(ptr unsafe.Pointer) TypeDescriptor {
	return TypeDescriptor{ptr: ptr}
}

// Raw returns the underlying engine pointer.
func (d TypeDescriptor) Raw() unsafe.Pointer { return d.ptr }

// IsNil reports whether the handle carries no record.
func (d TypeDescriptor) IsNil() bool { return d.ptr == nil }

// SignatureDescriptor is a non-owning handle to an engine-owned call
// signature: one return type plus the ordered argument types.
type SignatureDescriptor struct {
	ptr unsafe.Pointer
}

// NewSignatureDescriptor wraps a raw engine pointer.
func NewSignatureDescriptor(ptr unsafe.Pointer) SignatureDescriptor {
	return SignatureDescriptor{ptr: ptr}
}

// Raw returns the underlying engine pointer.
func (d SignatureDescriptor) Raw() unsafe.Pointer { return d.ptr }

// IsNil reports whether the handle carries no record.
func (d SignatureDescriptor) IsNil() bool { return d.ptr == nil }

// Value is a non-owning handle to an engine-opaque value, such as the data
// value an embedder attached at template construction.
type Value struct {
	ptr unsafe.Pointer
}

// NewValue wraps a raw engine pointer.
func NewValue(ptr unsafe.Pointer) Value { return Value{ptr: ptr} }

// Raw returns the underlying engine pointer.
func (v Value) Raw() unsafe.Pointer { return v.ptr }

// IsNil reports whether the handle carries no value.
func (v Value) IsNil() bool { return v.ptr == nil }

// DescriptorFactory is the host engine's descriptor factory boundary.
// Implementations allocate engine-owned records and hand back non-owning
// handles. A fresh handle may be allocated on every call; handle identity is
// not guaranteed for equal inputs. Returning a nil handle is a defect in the
// implementation, not a recoverable condition.
type DescriptorFactory interface {
	// TypeDescriptor builds the descriptor for one bare scalar tag.
	TypeDescriptor(tag abi.Scalar) TypeDescriptor

	// TypeDescriptorList builds one descriptor covering an ordered argument
	// list, each entry a (scalar, shape) pair.
	TypeDescriptorList(pairs []abi.Pair) TypeDescriptor

	// SignatureDescriptor combines one return descriptor with ordered
	// argument descriptors. Arity is the length of args.
	SignatureDescriptor(ret TypeDescriptor, args []TypeDescriptor) SignatureDescriptor
}
