package grove

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnknownType is returned when a descriptor names a class that was
	// never registered with the [TypeRegistry].
	ErrUnknownType = errors.New("unknown type")

	// ErrConstructorUnavailable is returned when a registered type has no
	// usable zero-argument constructor, or the constructor returned nil.
	ErrConstructorUnavailable = errors.New("constructor unavailable")

	// ErrConstructorFailed is returned when a constructor returns an error
	// or panics.
	ErrConstructorFailed = errors.New("constructor failed")

	// ErrFieldNotFound is returned when a property names a field the bean's
	// type does not declare.
	ErrFieldNotFound = errors.New("field not found")

	// ErrMutatorNotFound is returned when the derived setter is absent or
	// its signature does not match the field's declared type.
	ErrMutatorNotFound = errors.New("mutator not found")

	// ErrMutatorFailed is returned when a setter returns an error or panics.
	ErrMutatorFailed = errors.New("mutator failed")

	// ErrReferenceMismatch is returned when a referenced bean cannot be
	// passed to the setter's parameter type.
	ErrReferenceMismatch = errors.New("reference type mismatch")

	// ErrUnsupportedLiteralType is returned when a literal targets a field
	// whose type is outside the coercion table.
	ErrUnsupportedLiteralType = errors.New("unsupported literal type")

	// ErrMalformedLiteral is returned when literal text does not parse as
	// the field's declared type.
	ErrMalformedLiteral = errors.New("malformed literal")

	// ErrUnresolvedReference is returned when a property references an
	// identifier that is not part of the descriptor set.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrMalformedDirective is returned when a property sets both or neither
	// of value and ref, or has no name.
	ErrMalformedDirective = errors.New("malformed directive")

	// ErrDuplicateBean is returned when two descriptors share an identifier.
	ErrDuplicateBean = errors.New("duplicate bean")

	// ErrEmptyName is returned for empty bean identifiers and type names.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrDuplicateType is returned when a type name is registered twice.
	ErrDuplicateType = errors.New("duplicate type")

	// ErrBeanNotFound is returned by [GetBean] for unregistered names.
	ErrBeanNotFound = errors.New("bean not found")
)

// ConstructionError reports a failure to instantiate the bean ID.
type ConstructionError struct {
	ID    string
	Class string
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("constructing bean %q (%s): %v", e.ID, e.Class, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// InjectionError reports a failure to inject property Field into bean ID.
// An empty Field means the problem concerns the descriptor itself.
type InjectionError struct {
	ID    string
	Field string
	Err   error
}

func (e *InjectionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("bean %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("bean %q, property %q: %v", e.ID, e.Field, e.Err)
}

func (e *InjectionError) Unwrap() error { return e.Err }

// CoercionError reports literal text that could not become a value of Type.
type CoercionError struct {
	Type    reflect.Type
	Literal string
	Err     error
}

func (e *CoercionError) Error() string {
	if errors.Is(e.Err, ErrUnsupportedLiteralType) {
		return fmt.Sprintf("%v: %s", e.Err, e.Type)
	}
	return fmt.Sprintf("%v: %q as %s", e.Err, e.Literal, e.Type)
}

func (e *CoercionError) Unwrap() error { return e.Err }
