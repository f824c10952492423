package descriptor_test

import (
	"testing"

	"github.com/wippyai/fastcall"
	"github.com/wippyai/fastcall/abi"
	"github.com/wippyai/fastcall/descriptor"
	"github.com/wippyai/fastcall/internal/dispatch"
)

type sumBytes struct{ fastcall.VoidFunction }

func (sumBytes) Args() []abi.Type {
	return []abi.Type{abi.Int32(), abi.TypedArrayOf(abi.ScalarUint8)}
}

func (sumBytes) ReturnType() abi.Scalar { return abi.ScalarFloat64 }

func (sumBytes) Callback() any {
	return func(base int32, view fastcall.TypedArray[uint8]) float64 { return 0 }
}

func TestBuilderType(t *testing.T) {
	b := descriptor.NewBuilder(dispatch.New())

	tests := []struct {
		name string
		typ  abi.Type
		want abi.Scalar
	}{
		{"scalar", abi.Int32(), abi.ScalarInt32},
		{"options", abi.CallbackOptions(), abi.ScalarCallbackOptions},
		{"buffer reports element tag", abi.TypedArrayOf(abi.ScalarUint8), abi.ScalarUint8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := b.Type(tc.typ)
			if d.IsNil() {
				t.Fatal("nil handle")
			}
			if got := dispatch.Tag(d); got != tc.want {
				t.Errorf("stored tag = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuilderTypeList(t *testing.T) {
	b := descriptor.NewBuilder(dispatch.New())

	d := b.TypeList([]abi.Type{abi.Int32(), abi.TypedArrayOf(abi.ScalarUint8)})
	if d.IsNil() {
		t.Fatal("nil handle")
	}

	pairs := dispatch.Pairs(d)
	want := []abi.Pair{
		{Scalar: abi.ScalarInt32, Shape: abi.ShapeScalar},
		{Scalar: abi.ScalarUint8, Shape: abi.ShapeTypedArray},
	}
	if len(pairs) != len(want) {
		t.Fatalf("pair count = %d, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair[%d] = %+v, want %+v", i, pairs[i], want[i])
		}
	}
}

func TestBuilderSignature(t *testing.T) {
	b := descriptor.NewBuilder(dispatch.New())

	// Zero arguments and void return is a legal, non-degenerate signature.
	void := b.Signature(b.Scalar(abi.ScalarVoid), nil)
	if void.IsNil() {
		t.Fatal("nil signature handle")
	}
	if got := dispatch.Arity(void); got != 0 {
		t.Errorf("arity = %d, want 0", got)
	}
	if got := dispatch.ReturnTag(void); got != abi.ScalarVoid {
		t.Errorf("return tag = %v, want void", got)
	}

	oneArg := b.Signature(b.Scalar(abi.ScalarFloat64), []fastcall.TypeDescriptor{
		b.Type(abi.Int32()),
	})
	if oneArg.IsNil() {
		t.Fatal("nil signature handle")
	}
	if got := dispatch.Arity(oneArg); got != 1 {
		t.Errorf("arity = %d, want 1", got)
	}
	if void.Raw() == oneArg.Raw() {
		t.Error("distinct signatures share a handle")
	}
}

func TestBuilderForFunction(t *testing.T) {
	b := descriptor.NewBuilder(dispatch.New())

	ds := b.ForFunction(sumBytes{})
	if ds.Signature.IsNil() || ds.Return.IsNil() {
		t.Fatal("nil handle in descriptor set")
	}
	if got := dispatch.Arity(ds.Signature); got != 2 {
		t.Errorf("arity = %d, want 2", got)
	}
	if got := dispatch.ReturnTag(ds.Signature); got != abi.ScalarFloat64 {
		t.Errorf("return tag = %v, want float64", got)
	}
	if len(ds.Args) != 2 {
		t.Fatalf("arg descriptors = %d, want 2", len(ds.Args))
	}
	if got := dispatch.Tag(ds.Args[1]); got != abi.ScalarUint8 {
		t.Errorf("buffer arg stored tag = %v, want uint8 element", got)
	}
}

type nilFactory struct{}

func (nilFactory) TypeDescriptor(abi.Scalar) fastcall.TypeDescriptor {
	return fastcall.TypeDescriptor{}
}
func (nilFactory) TypeDescriptorList([]abi.Pair) fastcall.TypeDescriptor {
	return fastcall.TypeDescriptor{}
}
func (nilFactory) SignatureDescriptor(fastcall.TypeDescriptor, []fastcall.TypeDescriptor) fastcall.SignatureDescriptor {
	return fastcall.SignatureDescriptor{}
}

func TestBuilderPanicsOnNilHandle(t *testing.T) {
	b := descriptor.NewBuilder(nilFactory{})

	defer func() {
		if recover() == nil {
			t.Error("nil factory handle did not panic")
		}
	}()
	b.Scalar(abi.ScalarVoid)
}

func TestNewBuilderPanicsOnNilFactory(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nil factory did not panic")
		}
	}()
	descriptor.NewBuilder(nil)
}
