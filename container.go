package grove

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Container holds the beans built from a descriptor set. Use [New] to
// create one. A Container is never mutated after New returns, so its
// methods are safe for concurrent use without locking.
type Container interface {
	// GetBean returns the bean registered under name. The second result is
	// false when no descriptor declared name. Prefer the generic [GetBean]
	// helper when the bean's type is known.
	GetBean(name string) (any, bool)

	// Names returns the bean identifiers in descriptor order.
	Names() []string
}

type container struct {
	beans map[string]any
	order []string
}

// New builds a container from descriptors. Types named by the descriptors
// are resolved through types.
//
// The build runs in three passes over the set, each in descriptor order:
// [Validate] the structure, construct every bean with its type's
// zero-argument constructor, then inject every property through its
// derived setter (see [MutatorName]). Since all beans exist before any
// injection, references may point forward in the set.
//
// The first failure aborts the build and is returned as a
// [*ConstructionError] or [*InjectionError]; a partially wired container
// is never returned.
func New(types *TypeRegistry, descriptors []BeanDescriptor, opts ...Option) (Container, error) {
	o := newOptions(opts)

	if err := Validate(descriptors); err != nil {
		return nil, err
	}

	c := &container{
		beans: make(map[string]any, len(descriptors)),
		order: make([]string, 0, len(descriptors)),
	}

	if err := c.construct(types, descriptors, o.logger); err != nil {
		return nil, err
	}

	b := builder{beans: c.beans, logger: o.logger, lenientBooleans: o.lenientBooleans}
	for _, d := range descriptors {
		if err := b.inject(d); err != nil {
			return nil, err
		}
	}

	o.logger.Debug("Container built.", "beans", len(c.order))
	return c, nil
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func (c *container) construct(types *TypeRegistry, descriptors []BeanDescriptor, logger *slog.Logger) error {
	if types == nil && len(descriptors) > 0 {
		types = NewTypeRegistry()
	}

	for _, d := range descriptors {
		h, err := types.Resolve(d.Class)
		if err != nil {
			return &ConstructionError{ID: d.ID, Class: d.Class, Err: err}
		}

		instance, err := types.Construct(h)
		if err != nil {
			return &ConstructionError{ID: d.ID, Class: d.Class, Err: err}
		}

		c.beans[d.ID] = instance
		c.order = append(c.order, d.ID)
		logger.Debug("Bean constructed.", "id", d.ID, "class", d.Class, "type", fmt.Sprintf("%T", instance))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Injection
// ---------------------------------------------------------------------------

type builder struct {
	beans           map[string]any
	logger          *slog.Logger
	lenientBooleans bool
}

func (b *builder) inject(d BeanDescriptor) error {
	instance := reflect.ValueOf(b.beans[d.ID])

	for _, p := range d.Properties {
		if err := b.injectProperty(instance, p); err != nil {
			return &InjectionError{ID: d.ID, Field: p.Name, Err: err}
		}
		b.logger.Debug("Property injected.", "id", d.ID, "property", p.Name, "ref", p.IsReference())
	}
	return nil
}

// injectProperty resolves the setter and prepares its argument before
// calling it, so a failing directive leaves the instance untouched.
func (b *builder) injectProperty(instance reflect.Value, p PropertyDirective) error {
	if err := p.validate(); err != nil {
		return err
	}

	s, err := lookupSetter(instance, p.Name)
	if err != nil {
		return err
	}

	var arg reflect.Value
	if p.Ref != nil {
		bean, ok := b.beans[*p.Ref]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnresolvedReference, *p.Ref)
		}
		arg, err = referenceArg(bean, s.fieldType)
	} else {
		arg, err = coerce(*p.Value, s.fieldType, b.lenientBooleans)
	}
	if err != nil {
		return err
	}

	return s.call(arg)
}
