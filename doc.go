// Package fastcall provides the descriptor and marshaling layer for host
// engines that call native Go functions over a direct, low-overhead path,
// bypassing the engine's generic boxed call machinery.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	fastcall/            Root package with handles, the registrant contract,
//	                     callback options and typed memory views
//	├── abi/             Closed scalar/shape tag enumerations and logical types
//	├── descriptor/      Type and signature descriptor builders
//	├── registry/        Registration-time storage of fast functions
//	├── manifest/        TOML-declared fast-call signatures
//	├── wasmmem/         Linear-memory views over a wazero module's memory
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Declare and register a fast function:
//
//	type sumBytes struct{ fastcall.VoidFunction }
//
//	func (sumBytes) Args() []abi.Type {
//	    return []abi.Type{abi.Int32(), abi.TypedArrayOf(abi.ScalarUint8), abi.CallbackOptions()}
//	}
//	func (sumBytes) ReturnType() abi.Scalar { return abi.ScalarFloat64 }
//	func (sumBytes) Callback() any {
//	    return func(base int32, view fastcall.TypedArray[uint8], opts *fastcall.CallbackOptions) float64 {
//	        sum := float64(base)
//	        for i := 0; i < view.Len(); i++ {
//	            sum += float64(view.Get(i))
//	        }
//	        return sum
//	    }
//	}
//
//	reg := registry.New(factory)
//	err := reg.Register("host:math", "sum-bytes", sumBytes{})
//
// The factory is the host engine's descriptor factory; the engine consumes
// the built descriptors to generate the direct machine call.
//
// # Fallback
//
// A fast callback that needs to allocate, raise a host-visible error, or
// otherwise leave the fast contract sets the fallback flag on its
// CallbackOptions and returns immediately. The engine discards the fast
// return value and re-executes the operation on its generic slow path.
// Callbacks must stay idempotent up to that decision point: the slow path
// re-runs the whole operation, and a side effect performed twice is a bug in
// the registrant.
//
// # Thread Safety
//
// Descriptors are built once at registration and are immutable afterwards;
// any number of concurrent calls may share them without locking.
// CallbackOptions and TypedArray values are call-scoped: they are owned by
// the calling engine frame and must never be retained past the call's return.
//
// # Memory Model
//
// Typed-array buffers are owned by the host engine. The base pointer handed
// to a view is guaranteed only 4-byte aligned regardless of the element
// width; TypedArray.Get reads through an alignment-agnostic byte copy, and
// TypedArray.Storage exposes the buffer as a Go slice only when the address
// really satisfies the element type's natural alignment.
package fastcall
