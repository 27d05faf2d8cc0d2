// Package grove provides a small, declarative inversion-of-control
// container for Go.
//
// A container is described by an ordered set of [BeanDescriptor] values.
// Each names a bean, the registered name of its type, and the properties
// to inject into it, either as literal text or as a reference to another
// bean. [New] constructs every bean with its zero-argument constructor and
// then injects properties through setter methods, so references may point
// anywhere in the set.
//
// # Quick Start
//
//	types := grove.NewTypeRegistry()
//	grove.Register[Dog](types, "Dog")
//	grove.Register[Person](types, "Person")
//
//	c, err := grove.New(types, []grove.BeanDescriptor{
//		{ID: "a", Class: "Dog", Properties: []grove.PropertyDirective{
//			grove.Literal("name", "Rex"),
//		}},
//		{ID: "b", Class: "Person", Properties: []grove.PropertyDirective{
//			grove.Reference("pet", "a"),
//		}},
//	})
//
//	owner, err := grove.GetBean[*Person](c, "b")
//
// # Setters
//
// A property named "pet" is injected by calling SetPet on the bean. The
// bean's struct must declare a field "pet" (or "Pet"), and SetPet must take
// exactly one argument of that field's type. It may return an error.
//
// # Literals
//
// Literal text is converted to the field's type by [Coerce]: signed
// integers, floats, booleans, [Char], strings and pointers to those. Fields
// of any other type must be injected by reference.
//
// # Singletons
//
// Every bean is created exactly once and lives as long as the container.
// Descriptor files in XML, HCL or YAML are read by the config subpackage.
package grove
