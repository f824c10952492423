package registry_test

import (
	"errors"
	"testing"

	"github.com/wippyai/fastcall"
	"github.com/wippyai/fastcall/abi"
	fcerrors "github.com/wippyai/fastcall/errors"
	"github.com/wippyai/fastcall/internal/dispatch"
	"github.com/wippyai/fastcall/registry"
)

type sumBytes struct{ fastcall.VoidFunction }

func (sumBytes) Args() []abi.Type {
	return []abi.Type{abi.Int32(), abi.TypedArrayOf(abi.ScalarUint8), abi.CallbackOptions()}
}

func (sumBytes) ReturnType() abi.Scalar { return abi.ScalarFloat64 }

func (sumBytes) Callback() any {
	return func(base int32, view fastcall.TypedArray[uint8], opts *fastcall.CallbackOptions) float64 {
		sum := float64(base)
		for i := 0; i < view.Len(); i++ {
			sum += float64(view.Get(i))
		}
		return sum
	}
}

type noop struct{ fastcall.VoidFunction }

func (noop) Callback() any { return func() {} }

func TestRegisterAndLookup(t *testing.T) {
	reg := registry.New(dispatch.New())

	if err := reg.Register("host:math", "sum-bytes", sumBytes{}); err != nil {
		t.Fatal(err)
	}

	e, ok := reg.Func("host:math", "sum-bytes")
	if !ok {
		t.Fatal("registered function not found")
	}
	if e.Descriptors.Signature.IsNil() {
		t.Error("signature descriptor not built")
	}
	if got := dispatch.Arity(e.Descriptors.Signature); got != 3 {
		t.Errorf("arity = %d, want 3", got)
	}
	if got := dispatch.ReturnTag(e.Descriptors.Signature); got != abi.ScalarFloat64 {
		t.Errorf("return tag = %v, want float64", got)
	}
	if e.CodePointer() == nil {
		t.Error("code pointer not exposed")
	}

	if _, ok := reg.Func("host:math", "missing"); ok {
		t.Error("lookup of an unregistered name succeeded")
	}
	if _, ok := reg.Func("other", "sum-bytes"); ok {
		t.Error("lookup in an unregistered namespace succeeded")
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := registry.New(dispatch.New())

	tests := []struct {
		name      string
		namespace string
		fnName    string
		fn        fastcall.Function
		kind      fcerrors.Kind
	}{
		{"empty namespace", "", "x", noop{}, fcerrors.KindInvalidInput},
		{"empty name", "ns", "", noop{}, fcerrors.KindInvalidInput},
		{"non-function callback", "ns", "x", brokenCallback{}, fcerrors.KindTypeMismatch},
		{"options not last", "ns", "x", optionsFirst{}, fcerrors.KindInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := reg.Register(tc.namespace, tc.fnName, tc.fn)
			if !errors.Is(err, &fcerrors.Error{Phase: fcerrors.PhaseRegister, Kind: tc.kind}) {
				t.Errorf("want %s error, got %v", tc.kind, err)
			}
		})
	}

	if reg.Len() != 0 {
		t.Errorf("rejected registrations were stored, Len = %d", reg.Len())
	}
}

type brokenCallback struct{ fastcall.VoidFunction }

func (brokenCallback) Callback() any { return "not a func" }

type optionsFirst struct{ fastcall.VoidFunction }

func (optionsFirst) Args() []abi.Type {
	return []abi.Type{abi.CallbackOptions(), abi.Int32()}
}

func (optionsFirst) Callback() any {
	return func(opts *fastcall.CallbackOptions, x int32) {}
}

func TestRegisterReplaces(t *testing.T) {
	reg := registry.New(dispatch.New())

	if err := reg.Register("ns", "fn", noop{}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("ns", "fn", sumBytes{}); err != nil {
		t.Fatal(err)
	}

	e, ok := reg.Func("ns", "fn")
	if !ok {
		t.Fatal("entry missing after replacement")
	}
	if got := dispatch.Arity(e.Descriptors.Signature); got != 3 {
		t.Errorf("replacement did not take effect, arity = %d", got)
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRange(t *testing.T) {
	reg := registry.New(dispatch.New())
	if err := reg.Register("a", "one", noop{}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("b", "two", noop{}); err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	reg.Range(func(ns, name string, e *registry.Entry) bool {
		seen[ns+"#"+name] = true
		return true
	})
	if !seen["a#one"] || !seen["b#two"] {
		t.Errorf("Range missed entries: %v", seen)
	}

	// Early exit.
	count := 0
	reg.Range(func(ns, name string, e *registry.Entry) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("Range visited %d entries after stop, want 1", count)
	}
}

// Registered entries are reused across calls: the dispatcher invokes through
// the stored callback with the descriptors built at registration.
func TestRegisteredEntryIsCallable(t *testing.T) {
	d := dispatch.New()
	reg := registry.New(d)
	if err := reg.Register("host:math", "sum-bytes", sumBytes{}); err != nil {
		t.Fatal(err)
	}

	e, _ := reg.Func("host:math", "sum-bytes")
	view := fastcall.ViewOf([]uint8{10, 20, 30})
	res, err := d.Call(e.Function, nil, int32(42), view)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Value.(float64); got != 102.0 {
		t.Errorf("result = %v, want 102.0", got)
	}
}
