package dispatch

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/fastcall"
	"github.com/wippyai/fastcall/abi"
	"github.com/wippyai/fastcall/errors"
)

// typeRecord is the dispatcher-owned storage behind a type descriptor
// handle: either one bare scalar tag or an ordered pair list.
type typeRecord struct {
	pairs []abi.Pair
	tag   abi.Scalar
	list  bool
}

// signatureRecord is the storage behind a signature descriptor handle.
type signatureRecord struct {
	ret  *typeRecord
	args []*typeRecord
}

// Dispatcher implements fastcall.DescriptorFactory and drives calls against
// registered fast functions. Data and Memory seed the CallbackOptions record
// built for each call; set them before Call, never during one.
type Dispatcher struct {
	Memory *fastcall.TypedArray[uint8]
	Data   fastcall.CallbackData
}

func New() *Dispatcher { return &Dispatcher{} }

// TypeDescriptor allocates a record for one bare scalar tag.
func (d *Dispatcher) TypeDescriptor(tag abi.Scalar) fastcall.TypeDescriptor {
	return fastcall.NewTypeDescriptor(unsafe.Pointer(&typeRecord{tag: tag}))
}

// TypeDescriptorList allocates a record for an ordered pair list.
func (d *Dispatcher) TypeDescriptorList(pairs []abi.Pair) fastcall.TypeDescriptor {
	rec := &typeRecord{list: true, pairs: append([]abi.Pair(nil), pairs...)}
	return fastcall.NewTypeDescriptor(unsafe.Pointer(rec))
}

// SignatureDescriptor allocates a record combining the return and argument
// records.
func (d *Dispatcher) SignatureDescriptor(ret fastcall.TypeDescriptor, args []fastcall.TypeDescriptor) fastcall.SignatureDescriptor {
	rec := &signatureRecord{ret: (*typeRecord)(ret.Raw())}
	for _, a := range args {
		rec.args = append(rec.args, (*typeRecord)(a.Raw()))
	}
	return fastcall.NewSignatureDescriptor(unsafe.Pointer(rec))
}

// Tag reads the scalar tag back out of a type descriptor handle.
func Tag(d fastcall.TypeDescriptor) abi.Scalar {
	return (*typeRecord)(d.Raw()).tag
}

// Pairs reads the ordered pair list back out of a list descriptor handle.
// It returns nil for a single-tag descriptor.
func Pairs(d fastcall.TypeDescriptor) []abi.Pair {
	rec := (*typeRecord)(d.Raw())
	if !rec.list {
		return nil
	}
	return rec.pairs
}

// Arity reads the argument count out of a signature descriptor handle.
func Arity(s fastcall.SignatureDescriptor) int {
	return len((*signatureRecord)(s.Raw()).args)
}

// ReturnTag reads the return scalar tag out of a signature descriptor handle.
func ReturnTag(s fastcall.SignatureDescriptor) abi.Scalar {
	return (*signatureRecord)(s.Raw()).ret.tag
}

// Result is what the engine observes after one invocation.
type Result struct {
	Value    any
	FellBack bool
}

// SlowHandler is the generic slow path the dispatcher re-executes when the
// callback requests fallback. It receives the original logical arguments.
type SlowHandler func(args ...any) any

// Call invokes fn's callback the way the generated fast path would: scalars
// by value, buffer arguments as typed views, and a fresh CallbackOptions
// record appended when the declaration ends with the options marker. If the
// callback requests fallback its return value is discarded and slow runs
// instead. The callback's real Go signature must match the declaration; a
// mismatch panics inside reflect, which mirrors the undefined behavior of a
// mismatched native signature.
func (d *Dispatcher) Call(fn fastcall.Function, slow SlowHandler, callArgs ...any) (Result, error) {
	cb := reflect.ValueOf(fn.Callback())
	if cb.Kind() != reflect.Func {
		return Result{}, errors.New(errors.PhaseDispatch, errors.KindTypeMismatch).
			GoType(reflect.TypeOf(fn.Callback()).String()).
			Detail("callback must be a function").
			Build()
	}

	declared := fn.Args()
	wantsOptions := len(declared) > 0 && declared[len(declared)-1].IsOptions()
	valueArgs := declared
	if wantsOptions {
		valueArgs = declared[:len(declared)-1]
	}
	if len(callArgs) != len(valueArgs) {
		return Result{}, errors.Arity(errors.PhaseDispatch, nil, len(callArgs), len(valueArgs))
	}

	in := make([]reflect.Value, 0, len(callArgs)+1)
	for _, a := range callArgs {
		in = append(in, reflect.ValueOf(a))
	}

	var opts *fastcall.CallbackOptions
	if wantsOptions {
		opts = fastcall.NewCallbackOptions(d.Data, d.Memory)
		in = append(in, reflect.ValueOf(opts))
	}

	out := cb.Call(in)

	var fast any
	if len(out) == 1 {
		fast = out[0].Interface()
	}

	if opts != nil && opts.FallbackRequested() {
		if slow == nil {
			return Result{FellBack: true}, errors.InvalidData(errors.PhaseDispatch, nil,
				"fallback requested with no slow path registered")
		}
		return Result{Value: slow(callArgs...), FellBack: true}, nil
	}
	return Result{Value: fast}, nil
}
