package grove

import (
	"errors"
	"testing"
)

// Shared test types and helpers used across test files.

// mustNew calls t.Fatal if the build fails.
func mustNew(t *testing.T, types *TypeRegistry, descriptors []BeanDescriptor, opts ...Option) Container {
	t.Helper()
	c, err := New(types, descriptors, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// mustRegisterFactory calls t.Fatal if registration fails.
func mustRegisterFactory(t *testing.T, r *TypeRegistry, name string, factory interface{}) {
	t.Helper()
	if err := r.RegisterFactory(name, factory); err != nil {
		t.Fatalf("RegisterFactory(%q): %v", name, err)
	}
}

// newTestTypes returns a registry with every test type under its short name.
func newTestTypes(t *testing.T) *TypeRegistry {
	t.Helper()
	r := NewTypeRegistry()
	for _, err := range []error{
		Register[testDog](r, "Dog"),
		Register[testPerson](r, "Person"),
		Register[testOwner](r, "Owner"),
		Register[testSettings](r, "Settings"),
		Register[testBroken](r, "Broken"),
		r.RegisterFactory("ValueDog", func() testValueDog { return testValueDog{} }),
	} {
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
	}
	return r
}

type testAnimal interface {
	Sound() string
}

type testDog struct {
	name string
	age  int
}

func (d *testDog) SetName(name string) { d.name = name }
func (d *testDog) SetAge(age int)      { d.age = age }
func (d *testDog) Sound() string       { return d.name + ": woof" }

// testValueDog is built by value, so its setter can only reach a copy.
type testValueDog struct {
	name string
}

func (d testValueDog) SetName(name string) { d.name = name }

type testPerson struct {
	name string
	pet  *testDog
}

func (p *testPerson) SetName(name string) { p.name = name }
func (p *testPerson) SetPet(pet *testDog) { p.pet = pet }

// testOwner holds its pet behind an interface.
type testOwner struct {
	Pet testAnimal
}

func (o *testOwner) SetPet(pet testAnimal) { o.Pet = pet }

type testPort int

// testSettings has one field per row of the literal table.
type testSettings struct {
	i    int
	i8   int8
	i16  int16
	i32  int32
	i64  int64
	f32  float32
	f64  float64
	on   bool
	c    Char
	s    string
	port testPort
	ptr  *int
	bptr *bool
}

func (s *testSettings) SetI(v int)         { s.i = v }
func (s *testSettings) SetI8(v int8)       { s.i8 = v }
func (s *testSettings) SetI16(v int16)     { s.i16 = v }
func (s *testSettings) SetI32(v int32)     { s.i32 = v }
func (s *testSettings) SetI64(v int64)     { s.i64 = v }
func (s *testSettings) SetF32(v float32)   { s.f32 = v }
func (s *testSettings) SetF64(v float64)   { s.f64 = v }
func (s *testSettings) SetOn(v bool)       { s.on = v }
func (s *testSettings) SetC(v Char)        { s.c = v }
func (s *testSettings) SetS(v string)      { s.s = v }
func (s *testSettings) SetPort(v testPort) { s.port = v }
func (s *testSettings) SetPtr(v *int)      { s.ptr = v }
func (s *testSettings) SetBptr(v *bool)    { s.bptr = v }

// testBroken exercises every way a setter can be wrong.
type testBroken struct {
	count   int
	label   string
	note    string
	failing string
	panicky string
	tags    []string
}

func (b *testBroken) SetCount(v string)    {}
func (b *testBroken) SetNote(v string) int { return 0 }
func (b *testBroken) SetPanicky(v string)  { panic("boom") }
func (b *testBroken) SetTags(v []string)   { b.tags = v }
func (b *testBroken) SetExtra(v string)    {}

func (b *testBroken) SetFailing(v string) error {
	if v == "bad" {
		return errTestSetter
	}
	b.failing = v
	return nil
}

var errTestSetter = errors.New("setter rejected value")
