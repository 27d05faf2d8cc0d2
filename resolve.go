package grove

import (
	"fmt"
	"slices"
)

// ---------------------------------------------------------------------------
// Container methods
// ---------------------------------------------------------------------------

func (c *container) GetBean(name string) (any, bool) {
	bean, ok := c.beans[name]
	return bean, ok
}

func (c *container) Names() []string {
	return slices.Clone(c.order)
}

// ---------------------------------------------------------------------------
// Generic helpers
// ---------------------------------------------------------------------------

// GetBean is a generic helper that looks up a bean and asserts its type:
//
//	dog, err := grove.GetBean[*Dog](c, "rex")
//
// It returns [ErrBeanNotFound] for unknown names.
func GetBean[T any](c Container, name string) (T, error) {
	var zero T

	bean, ok := c.GetBean(name)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrBeanNotFound, name)
	}

	out, ok := bean.(T)
	if !ok {
		return zero, fmt.Errorf("bean %q: cannot convert %T to %T", name, bean, zero)
	}

	return out, nil
}

// MustGetBean is like [GetBean] but panics on error. It is intended for
// program setup where a missing bean is a configuration bug.
func MustGetBean[T any](c Container, name string) T {
	out, err := GetBean[T](c, name)
	if err != nil {
		panic(err)
	}
	return out
}
