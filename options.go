package fastcall

import "unsafe"

type callbackDataKind uint8

const (
	dataEmbedder callbackDataKind = iota
	dataEngine
)

// CallbackData is the data slot of CallbackOptions: either a raw embedder
// pointer or an engine-opaque value. The two cases are mutually exclusive;
// the dispatcher picks one at construction and the callee must not
// reinterpret it. The zero value is an embedder case holding nil.
type CallbackData struct {
	kind  callbackDataKind
	ptr   unsafe.Pointer
	value Value
}

// EmbedderData makes a data slot carrying a raw embedder pointer.
func EmbedderData(p unsafe.Pointer) CallbackData {
	return CallbackData{kind: dataEmbedder, ptr: p}
}

// EngineData makes a data slot carrying an engine-opaque value.
func EngineData(v Value) CallbackData {
	return CallbackData{kind: dataEngine, value: v}
}

// Embedder returns the raw pointer case, if that is what was constructed.
func (d CallbackData) Embedder() (unsafe.Pointer, bool) {
	return d.ptr, d.kind == dataEmbedder
}

// Engine returns the engine-value case, if that is what was constructed.
func (d CallbackData) Engine() (Value, bool) {
	return d.value, d.kind == dataEngine
}

// CallbackOptions is the call-scoped record the dispatcher hands to a fast
// callback that declared a trailing abi.CallbackOptions() parameter. It
// lives on the calling engine frame: callbacks borrow it for the duration of
// the call and must not retain any reference past their return.
type CallbackOptions struct {
	fallback bool
	data     CallbackData
	memory   *TypedArray[uint8]
}

// NewCallbackOptions builds a fresh record with the fallback flag clear. The
// dispatcher constructs one per call, before the call begins; nothing
// mutates data or memory afterwards.
func NewCallbackOptions(data CallbackData, memory *TypedArray[uint8]) *CallbackOptions {
	return &CallbackOptions{data: data, memory: memory}
}

// RequestFallback signals that the fast path cannot complete: the callback
// must return immediately afterwards, its return value is discarded, and the
// dispatcher re-executes the operation on the generic slow path. The flag is
// one-way within a call; nothing clears it. Because the slow path re-runs
// the whole operation, callbacks must make this decision before any
// externally visible side effect.
func (o *CallbackOptions) RequestFallback() { o.fallback = true }

// FallbackRequested reports the flag. The dispatcher reads it after the
// callback returns.
func (o *CallbackOptions) FallbackRequested() bool { return o.fallback }

// Data returns the data slot chosen by the record's creator.
func (o *CallbackOptions) Data() CallbackData { return o.data }

// Memory returns a view of the calling module's linear memory when the call
// originated from an embedded module, and ok=false otherwise.
func (o *CallbackOptions) Memory() (mem *TypedArray[uint8], ok bool) {
	return o.memory, o.memory != nil
}
