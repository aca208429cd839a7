package value

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Class is a runtime class value: a name, an optional superclass, and
// a method table. Calling a Class constructs an Instance and, if an
// "init" method exists, runs it (§4.6).
type Class struct {
	Name       string
	Superclass *Class
	Methods    *swiss.Map[string, *Function]
}

var _ Callable = (*Class)(nil)

// NewClass builds a class from its declared methods.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	m := swiss.NewMap[string, *Function](uint32(len(methods)))
	for name, fn := range methods {
		m.Put(name, fn)
	}
	return &Class{Name: name, Superclass: superclass, Methods: m}
}

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }
func (*Class) Type() string     { return "class" }

// FindMethod looks up name on c, then walks the superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods.Get(name); ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init", or 0 if the class declares none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class (or an ancestor)
// declares an "init" method, runs it bound to the new instance before
// returning it.
func (c *Class) Call(caller Caller, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(inst).Call(caller, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Instance is a runtime object: a reference to its class plus a field
// table. Grounded on the swiss.Map usage in
// github.com/mna/nenuphar/lang/machine/map.go.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
}

func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return fmt.Sprintf("<%s object>", i.Class.Name) }
func (*Instance) Type() string     { return "instance" }

// Get implements property access (§4.6): fields shadow methods, and a
// method lookup miss on the instance's own class (and its ancestors)
// is reported by the caller as a runtime error naming prop.
func (i *Instance) Get(prop string) (Value, bool) {
	if v, ok := i.Fields.Get(prop); ok {
		return v, true
	}
	if fn, ok := i.Class.FindMethod(prop); ok {
		return fn.Bind(i), true
	}
	return nil, false
}

// Set assigns a field on the instance, creating it if absent — Willow
// has no declared-field list, so any property name may be set.
func (i *Instance) Set(prop string, v Value) {
	i.Fields.Put(prop, v)
}
