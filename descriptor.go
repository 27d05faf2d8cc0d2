package grove

import "fmt"

// BeanDescriptor declares one bean: its identifier, the registered name of
// its type and the properties to inject after construction.
type BeanDescriptor struct {
	ID         string
	Class      string
	Properties []PropertyDirective
}

// PropertyDirective injects one field. Exactly one of Value and Ref must be
// set: Value is a literal coerced to the field's type, Ref names another
// bean in the same descriptor set.
type PropertyDirective struct {
	Name  string
	Value *string
	Ref   *string
}

// Literal returns a directive injecting the literal value into field name.
func Literal(name, value string) PropertyDirective {
	return PropertyDirective{Name: name, Value: &value}
}

// Reference returns a directive injecting the bean id into field name.
func Reference(name, id string) PropertyDirective {
	return PropertyDirective{Name: name, Ref: &id}
}

// IsReference reports whether p injects another bean.
func (p PropertyDirective) IsReference() bool {
	return p.Ref != nil
}

func (p PropertyDirective) validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: property has no name", ErrMalformedDirective)
	case p.Value != nil && p.Ref != nil:
		return fmt.Errorf("%w: both value and ref set", ErrMalformedDirective)
	case p.Value == nil && p.Ref == nil:
		return fmt.Errorf("%w: neither value nor ref set", ErrMalformedDirective)
	case p.Ref != nil && *p.Ref == "":
		return fmt.Errorf("%w: empty ref", ErrMalformedDirective)
	}
	return nil
}

// Validate checks the structure of a descriptor set without resolving any
// type: identifiers are present and unique, every directive sets exactly
// one of value and ref, and every reference names a bean in the set.
// Errors are [*InjectionError] values locating the offending descriptor.
func Validate(descriptors []BeanDescriptor) error {
	ids := make(map[string]struct{}, len(descriptors))
	for i, d := range descriptors {
		if d.ID == "" {
			return &InjectionError{ID: fmt.Sprintf("#%d", i), Err: fmt.Errorf("%w: bean id", ErrEmptyName)}
		}
		if _, exists := ids[d.ID]; exists {
			return &InjectionError{ID: d.ID, Err: ErrDuplicateBean}
		}
		ids[d.ID] = struct{}{}
	}

	for _, d := range descriptors {
		for _, p := range d.Properties {
			if err := p.validate(); err != nil {
				return &InjectionError{ID: d.ID, Field: p.Name, Err: err}
			}
			if p.Ref == nil {
				continue
			}
			if _, ok := ids[*p.Ref]; !ok {
				return &InjectionError{ID: d.ID, Field: p.Name, Err: fmt.Errorf("%w: %q", ErrUnresolvedReference, *p.Ref)}
			}
		}
	}
	return nil
}
