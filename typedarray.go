package fastcall

import (
	"fmt"
	"unsafe"
)

// Element constrains typed-array views to the fixed-width kinds a fast call
// can carry.
type Element interface {
	~bool | ~uint8 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// TypedArray is a non-owning view over an engine-owned buffer, valid for the
// duration of one call. The base pointer is guaranteed only 4-byte aligned
// regardless of T's natural alignment, so element reads must not assume an
// aligned load. All unsafe pointer arithmetic of the library lives here.
type TypedArray[T Element] struct {
	// Element count, not bytes. The name byte length survives from the
	// engine's own record layout.
	length int
	data   unsafe.Pointer
}

// NewTypedArray wraps a raw base pointer and element count handed over by
// the engine.
func NewTypedArray[T Element](data unsafe.Pointer, length int) TypedArray[T] {
	return TypedArray[T]{length: length, data: data}
}

// ViewOf wraps an existing Go slice without copying. The view borrows the
// slice's backing array.
func ViewOf[T Element](s []T) TypedArray[T] {
	return TypedArray[T]{length: len(s), data: unsafe.Pointer(unsafe.SliceData(s))}
}

// Len returns the element count.
func (a TypedArray[T]) Len() int { return a.length }

// Raw returns the base pointer.
func (a TypedArray[T]) Raw() unsafe.Pointer { return a.data }

// Get reads element i through a byte-wise copy, never a typed load, so a
// misaligned base cannot fault. Indexes out of [0, Len()) are registrant
// bugs and panic.
func (a TypedArray[T]) Get(i int) T {
	if i < 0 || i >= a.length {
		panic(fmt.Sprintf("fastcall: typed array index %d out of range (len %d)", i, a.length))
	}
	var v T
	size := unsafe.Sizeof(v)
	src := unsafe.Slice((*byte)(unsafe.Add(a.data, uintptr(i)*size)), size)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	copy(dst, src)
	return v
}

// Storage returns the buffer as a zero-copy mutable slice when the base
// address satisfies T's natural alignment, with length Len()/alignof(T).
// Otherwise ok is false and callers must fall back to Get element-wise.
func (a TypedArray[T]) Storage() (s []T, ok bool) {
	var v T
	align := unsafe.Alignof(v)
	if uintptr(a.data)%align != 0 {
		return nil, false
	}
	return unsafe.Slice((*T)(a.data), a.length/int(align)), true
}
