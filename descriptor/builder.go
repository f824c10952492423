package descriptor

import (
	"github.com/wippyai/fastcall"
	"github.com/wippyai/fastcall/abi"
)

// Builder translates logical argument types into engine-owned descriptors.
// Translation is total: every abi.Type has exactly one (scalar, shape) pair,
// so none of the build operations has a failure mode. A nil handle out of
// the factory is a defect in the engine, not a runtime condition, and
// panics.
type Builder struct {
	factory fastcall.DescriptorFactory
}

// NewBuilder returns a builder over the engine's descriptor factory.
func NewBuilder(factory fastcall.DescriptorFactory) *Builder {
	if factory == nil {
		panic("fastcall: nil descriptor factory")
	}
	return &Builder{factory: factory}
}

// Type builds the descriptor for a single logical type. Only the scalar tag
// crosses the boundary here; for buffer shapes that is the element tag, the
// form the engine expects for return types.
func (b *Builder) Type(t abi.Type) fastcall.TypeDescriptor {
	d := b.factory.TypeDescriptor(t.Scalar())
	if d.IsNil() {
		panic("fastcall: descriptor factory returned a nil type descriptor")
	}
	return d
}

// Scalar builds the descriptor for one bare scalar tag.
func (b *Builder) Scalar(tag abi.Scalar) fastcall.TypeDescriptor {
	d := b.factory.TypeDescriptor(tag)
	if d.IsNil() {
		panic("fastcall: descriptor factory returned a nil type descriptor")
	}
	return d
}

// TypeList builds one descriptor covering an ordered argument list,
// translating each type into its (scalar, shape) pair first.
func (b *Builder) TypeList(types []abi.Type) fastcall.TypeDescriptor {
	d := b.factory.TypeDescriptorList(abi.Pairs(types))
	if d.IsNil() {
		panic("fastcall: descriptor factory returned a nil type descriptor")
	}
	return d
}

// Signature combines one return descriptor with ordered argument
// descriptors. Arity is implicit in the length of args; no separate count is
// carried that could fall out of sync with the list.
func (b *Builder) Signature(ret fastcall.TypeDescriptor, args []fastcall.TypeDescriptor) fastcall.SignatureDescriptor {
	d := b.factory.SignatureDescriptor(ret, args)
	if d.IsNil() {
		panic("fastcall: descriptor factory returned a nil signature descriptor")
	}
	return d
}

// Descriptors is the registration-time output for one fast function.
type Descriptors struct {
	Signature fastcall.SignatureDescriptor
	Return    fastcall.TypeDescriptor
	Args      []fastcall.TypeDescriptor
}

// ForFunction builds the full descriptor set for a registrant: one
// descriptor per declared argument, the return descriptor, and the signature
// combining them.
func (b *Builder) ForFunction(f fastcall.Function) Descriptors {
	declared := f.Args()
	args := make([]fastcall.TypeDescriptor, len(declared))
	for i, t := range declared {
		args[i] = b.Type(t)
	}
	ret := b.Scalar(f.ReturnType())
	return Descriptors{
		Signature: b.Signature(ret, args),
		Return:    ret,
		Args:      args,
	}
}
