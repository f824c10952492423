package registry

import (
	"reflect"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/fastcall"
	"github.com/wippyai/fastcall/descriptor"
	"github.com/wippyai/fastcall/errors"
)

// Entry is one registered fast function together with the descriptors built
// for it. Entries never change after Register returns.
type Entry struct {
	Function    fastcall.Function
	Descriptors descriptor.Descriptors
	callback    reflect.Value
}

// Callback returns the type-erased native entry.
func (e *Entry) Callback() any { return e.callback.Interface() }

// CodePointer returns the raw code pointer of the callback, for engines that
// store it across a foreign-function boundary. It is not callable from Go.
func (e *Entry) CodePointer() unsafe.Pointer { return e.callback.UnsafePointer() }

// Registry maps namespace/name to registered fast functions. Register calls
// may race with each other and with lookups; entries themselves are
// immutable shared-read-only data.
type Registry struct {
	builder *descriptor.Builder
	funcs   map[string]map[string]*Entry
	mu      sync.RWMutex
}

// New returns a registry building descriptors through the engine's factory.
func New(factory fastcall.DescriptorFactory) *Registry {
	return &Registry{
		builder: descriptor.NewBuilder(factory),
		funcs:   make(map[string]map[string]*Entry),
	}
}

// Register validates the registrant, builds its descriptors once, and stores
// the entry. Registering the same namespace/name again replaces the previous
// entry.
func (r *Registry) Register(namespace, name string, fn fastcall.Function) error {
	if namespace == "" {
		return errors.InvalidInput(errors.PhaseRegister, "namespace cannot be empty")
	}
	if name == "" {
		return errors.InvalidInput(errors.PhaseRegister, "function name cannot be empty")
	}

	cb := reflect.ValueOf(fn.Callback())
	if cb.Kind() != reflect.Func {
		return errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
			Path(namespace, name).
			GoType(reflect.TypeOf(fn.Callback()).String()).
			Detail("callback must be a function").
			Build()
	}

	declared := fn.Args()
	for i, t := range declared {
		if t.IsOptions() && i != len(declared)-1 {
			return errors.New(errors.PhaseRegister, errors.KindInvalidInput).
				Path(namespace, name).
				Detail("callback options must be the last declared argument").
				Build()
		}
	}

	entry := &Entry{
		Function:    fn,
		Descriptors: r.builder.ForFunction(fn),
		callback:    cb,
	}

	r.mu.Lock()
	if r.funcs[namespace] == nil {
		r.funcs[namespace] = make(map[string]*Entry)
	}
	r.funcs[namespace][name] = entry
	r.mu.Unlock()

	Logger().Debug("registered fast function",
		zap.String("namespace", namespace),
		zap.String("name", name),
		zap.Int("arity", len(declared)),
		zap.Stringer("return", fn.ReturnType()),
	)
	return nil
}

// Func returns the entry registered under namespace and name.
func (r *Registry) Func(namespace, name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.funcs[namespace][name]
	return e, ok
}

// Range calls visit for every registered entry until it returns false.
// Iteration order is unspecified.
func (r *Registry) Range(visit func(namespace, name string, e *Entry) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for ns, funcs := range r.funcs {
		for name, e := range funcs {
			if !visit(ns, name, e) {
				return
			}
		}
	}
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, funcs := range r.funcs {
		n += len(funcs)
	}
	return n
}
