// Package errors provides structured error types for the fastcall library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, Go type and
// declared fast-call type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
//		Path("host:math", "sum-bytes").
//		GoType("string").
//		DeclType("int32").
//		Detail("callback must be a function").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidInput(errors.PhaseRegister, "namespace cannot be empty")
//	err := errors.OutOfBounds(errors.PhaseMemory, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Fallback is deliberately not an error: a fast callback signals it through
// its CallbackOptions record and the dispatcher re-runs the slow path.
// Invariant violations (a nil handle out of the dispatcher factory, an
// out-of-range view index) are panics, not errors; they are collaborator or
// registrant defects with no defined recovery.
package errors
