package fastcall

import (
	"testing"
	"unsafe"
)

func TestCallbackOptionsFallbackIsOneWay(t *testing.T) {
	opts := NewCallbackOptions(CallbackData{}, nil)

	if opts.FallbackRequested() {
		t.Fatal("fresh record must start with the fallback flag clear")
	}

	opts.RequestFallback()
	if !opts.FallbackRequested() {
		t.Fatal("RequestFallback did not set the flag")
	}

	// Setting again must not clear it; there is no clearing operation.
	opts.RequestFallback()
	if !opts.FallbackRequested() {
		t.Error("flag was reset within the call")
	}
}

func TestCallbackDataEmbedder(t *testing.T) {
	payload := 7
	d := EmbedderData(unsafe.Pointer(&payload))

	p, ok := d.Embedder()
	if !ok {
		t.Fatal("embedder case not reported")
	}
	if *(*int)(p) != 7 {
		t.Error("embedder pointer does not reach the payload")
	}
	if _, ok := d.Engine(); ok {
		t.Error("engine case reported on an embedder slot")
	}
}

func TestCallbackDataEngine(t *testing.T) {
	var backing int
	v := NewValue(unsafe.Pointer(&backing))
	d := EngineData(v)

	got, ok := d.Engine()
	if !ok {
		t.Fatal("engine case not reported")
	}
	if got.Raw() != v.Raw() {
		t.Error("engine value handle changed")
	}
	if _, ok := d.Embedder(); ok {
		t.Error("embedder case reported on an engine slot")
	}
}

func TestCallbackDataZeroValue(t *testing.T) {
	// The zero value mirrors a default-constructed record: an embedder slot
	// holding nil.
	var d CallbackData
	p, ok := d.Embedder()
	if !ok || p != nil {
		t.Errorf("zero value = (%v, %v), want (nil, true)", p, ok)
	}
}

func TestCallbackOptionsMemory(t *testing.T) {
	opts := NewCallbackOptions(CallbackData{}, nil)
	if _, ok := opts.Memory(); ok {
		t.Error("memory view reported on a non-wasm call")
	}

	view := ViewOf([]uint8{1, 2, 3})
	opts = NewCallbackOptions(CallbackData{}, &view)
	mem, ok := opts.Memory()
	if !ok {
		t.Fatal("memory view missing on a wasm call")
	}
	if mem.Len() != 3 || mem.Get(2) != 3 {
		t.Error("memory view does not reach the module memory")
	}
}

func TestHandles(t *testing.T) {
	var d TypeDescriptor
	if !d.IsNil() {
		t.Error("zero TypeDescriptor should be nil")
	}
	var s SignatureDescriptor
	if !s.IsNil() {
		t.Error("zero SignatureDescriptor should be nil")
	}

	backing := 1
	td := NewTypeDescriptor(unsafe.Pointer(&backing))
	if td.IsNil() || td.Raw() != unsafe.Pointer(&backing) {
		t.Error("TypeDescriptor does not preserve its pointer")
	}
	sd := NewSignatureDescriptor(unsafe.Pointer(&backing))
	if sd.IsNil() || sd.Raw() != unsafe.Pointer(&backing) {
		t.Error("SignatureDescriptor does not preserve its pointer")
	}
}
