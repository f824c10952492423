package fastcall

import "github.com/wippyai/fastcall/abi"

// Function is the contract every fast-callable registrant implements. The
// dispatcher builds descriptors from Args and ReturnType once at
// registration time and stores Callback for direct invocation thereafter.
//
// The callback's real parameter list must match the declaration exactly:
// scalars in their natural machine width, buffer arguments as a TypedArray
// of the declared element type, and a trailing *CallbackOptions when the
// declaration ends with abi.CallbackOptions(). This library cannot verify
// that correspondence; a mismatch is undefined behavior at call time.
type Function interface {
	// Args returns the ordered logical argument types.
	Args() []abi.Type

	// ReturnType returns the scalar tag of the return value.
	ReturnType() abi.Scalar

	// Callback returns the type-erased native entry: a Go func value the
	// dispatcher invokes directly.
	Callback() any
}

// VoidFunction supplies the Function defaults: no arguments, void return.
// Embed it and override what differs.
type VoidFunction struct{}

func (VoidFunction) Args() []abi.Type       { return nil }
func (VoidFunction) ReturnType() abi.Scalar { return abi.ScalarVoid }
