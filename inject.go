package grove

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// MutatorPrefix is prepended to the capitalized property name to derive
// the setter a property is injected through.
const MutatorPrefix = "Set"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// MutatorName derives the setter name for a property: "age" -> "SetAge".
// Only the first character is changed; "dbURL" -> "SetDbURL".
func MutatorName(property string) string {
	return MutatorPrefix + capitalize(property)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// setter is a property's resolved mutator together with the declared type
// of the field it writes.
type setter struct {
	fieldType reflect.Type
	method    reflect.Value
	name      string
}

// lookupSetter finds the field named property on the instance's struct
// type, exactly or capitalized, and the derived setter taking that field's
// declared type. The instance must be a pointer so the setter writes to
// the bean itself rather than a copy.
func lookupSetter(instance reflect.Value, property string) (setter, error) {
	if instance.Kind() != reflect.Ptr {
		return setter{}, fmt.Errorf("%w: %s is not addressable", ErrMutatorNotFound, instance.Type())
	}
	st := instance.Type().Elem()
	if st.Kind() != reflect.Struct {
		return setter{}, fmt.Errorf("%w: %s is not a struct", ErrFieldNotFound, instance.Type())
	}

	field, ok := st.FieldByName(property)
	if !ok {
		field, ok = st.FieldByName(capitalize(property))
	}
	if !ok {
		return setter{}, fmt.Errorf("%w: %s has no field %q", ErrFieldNotFound, st, property)
	}

	name := MutatorName(property)
	m := instance.MethodByName(name)
	if !m.IsValid() {
		return setter{}, fmt.Errorf("%w: %s has no method %s", ErrMutatorNotFound, instance.Type(), name)
	}

	mt := m.Type()
	if mt.NumIn() != 1 || mt.In(0) != field.Type {
		return setter{}, fmt.Errorf("%w: %s must take exactly one %s", ErrMutatorNotFound, name, field.Type)
	}
	if mt.NumOut() > 1 || (mt.NumOut() == 1 && mt.Out(0) != errorType) {
		return setter{}, fmt.Errorf("%w: %s must return nothing or error", ErrMutatorNotFound, name)
	}

	return setter{fieldType: field.Type, method: m, name: name}, nil
}

func (s setter) call(arg reflect.Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s panicked: %v", ErrMutatorFailed, s.name, r)
		}
	}()

	out := s.method.Call([]reflect.Value{arg})
	if len(out) == 1 && !out[0].IsNil() {
		return fmt.Errorf("%w: %s: %w", ErrMutatorFailed, s.name, out[0].Interface().(error))
	}
	return nil
}

// referenceArg prepares bean for a setter whose parameter has type t.
func referenceArg(bean any, t reflect.Type) (reflect.Value, error) {
	if bean == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(bean)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrReferenceMismatch, v.Type(), t)
	}
	return v, nil
}
