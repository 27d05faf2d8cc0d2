package grove

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// TypeRegistry maps type names, as written in a descriptor's class, to
// zero-argument constructors. Go has no runtime class loader, so every type
// a descriptor set may name has to be registered before [New] is called.
//
// A TypeRegistry is safe for concurrent use.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]TypeHandle
}

// TypeHandle is a resolved registry entry.
type TypeHandle struct {
	name    string
	typ     reflect.Type
	factory reflect.Value
}

// Name returns the name the handle was registered under.
func (h TypeHandle) Name() string { return h.name }

// Type returns the type the handle constructs. For types registered by
// [Register] or [TypeRegistry.RegisterType] instances are pointers to it.
func (h TypeHandle) Type() reflect.Type { return h.typ }

// NewTypeRegistry creates an empty [TypeRegistry].
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]TypeHandle)}
}

// TypeName returns the default registration name of t: its package-qualified
// name with pointer indirections dropped, e.g. "petshop.Dog".
func TypeName(t reflect.Type) string {
	return strings.TrimLeft(t.String(), "*")
}

// Register records T under each of names, or under [TypeName] of T when no
// name is given. Instances are created with new(T); when T is itself a
// pointer type its element is allocated instead.
//
//	grove.Register[Dog](types)
//	grove.Register[Dog](types, "dog", "com.example.Dog")
func Register[T any](r *TypeRegistry, names ...string) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if len(names) == 0 {
		names = []string{TypeName(t)}
	}
	for _, name := range names {
		if err := r.RegisterType(name, t); err != nil {
			return err
		}
	}
	return nil
}

// RegisterType records t under name. Types without a meaningful zero value
// to allocate (interfaces, functions, channels) are accepted here but fail
// at construction with [ErrConstructorUnavailable].
func (r *TypeRegistry) RegisterType(name string, t reflect.Type) error {
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return r.add(TypeHandle{name: name, typ: t})
}

// RegisterFactory records a constructor function under name. The factory
// must take no arguments and have the signature func() T or
// func() (T, error).
func (r *TypeRegistry) RegisterFactory(name string, factory interface{}) error {
	if factory == nil {
		return errors.New("factory must be a function")
	}
	val := reflect.ValueOf(factory)
	typ := val.Type()

	if typ.Kind() != reflect.Func {
		return errors.New("factory must be a function")
	}

	if typ.NumIn() != 0 {
		return errors.New("factory must take no arguments")
	}

	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return errors.New("factory must return (T) or (T, error)")
	}

	if typ.NumOut() == 2 {
		errType := reflect.TypeOf((*error)(nil)).Elem()
		if !typ.Out(1).Implements(errType) {
			return errors.New("second return value must implement error")
		}
	}

	return r.add(TypeHandle{name: name, typ: typ.Out(0), factory: val})
}

func (r *TypeRegistry) add(h TypeHandle) error {
	if h.name == "" {
		return fmt.Errorf("%w: type name", ErrEmptyName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[h.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, h.name)
	}
	r.types[h.name] = h
	return nil
}

// Resolve looks up the handle registered under name.
func (r *TypeRegistry) Resolve(name string) (TypeHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.types[name]
	if !ok {
		return TypeHandle{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return h, nil
}

// Names returns the registered type names in no particular order.
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	return names
}

// Construct creates a new default instance for h.
func (r *TypeRegistry) Construct(h TypeHandle) (instance any, err error) {
	if h.factory.IsValid() {
		return callFactory(h.factory)
	}

	switch {
	case h.typ == nil:
		return nil, fmt.Errorf("%w: nil type", ErrConstructorUnavailable)
	case h.typ.Kind() == reflect.Interface, h.typ.Kind() == reflect.Func, h.typ.Kind() == reflect.Chan:
		return nil, fmt.Errorf("%w: %s cannot be allocated", ErrConstructorUnavailable, h.typ)
	}
	return reflect.New(h.typ).Interface(), nil
}

func callFactory(factory reflect.Value) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrConstructorFailed, r)
		}
	}()

	results := factory.Call(nil)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, fmt.Errorf("%w: %w", ErrConstructorFailed, results[1].Interface().(error))
	}

	out := results[0]
	if isNil(out) {
		return nil, fmt.Errorf("%w: factory returned nil", ErrConstructorUnavailable)
	}
	return out.Interface(), nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
