// Package value defines Willow's runtime value universe and the
// objects (environments, functions, classes, instances) the evaluator
// in lang/interp manipulates.
//
// The Value/Callable interface shapes below are grounded on
// github.com/mna/nenuphar/lang/machine/value.go, narrowed from the
// teacher's open, capability-interface style (HasBinary, HasAttrs,
// Iterable, etc. — built for an extensible, embeddable language) down
// to the closed value universe §3 and §9 of the language spec call
// for: Nil, Bool, Number, String, Callable, Class, Instance. Operators
// in lang/interp pattern-match on concrete Go types with a type switch
// rather than dispatching through capability interfaces.
package value

// Value is implemented by every runtime value.
type Value interface {
	// String returns the value's representation for `print`, per the
	// stringification rules in §6 of the language spec.
	String() string
	// Type returns a short name for the value's kind.
	Type() string
}

// Caller is the thin seam lang/interp's Interpreter implements so that
// lang/value's Function and Class can invoke user-defined code without
// lang/value importing lang/interp (which would cycle, since
// lang/interp must import lang/value for the types it evaluates).
type Caller interface {
	// CallFunction executes fn's body with args bound to its parameters
	// in a fresh environment enclosed by fn's closure, honoring a return
	// escape and the isInitializer early-return rule.
	CallFunction(fn *Function, args []Value) (Value, error)
}

// Callable is implemented by every value that may appear as the callee
// of a Call expression: user functions, native functions, and classes
// (a class call constructs an instance).
type Callable interface {
	Value
	Arity() int
	Call(c Caller, args []Value) (Value, error)
}

// Truthy implements the language's truthiness rule: only Nil and
// Bool(false) are falsy; everything else, including Number(0) and the
// empty String, is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case NilType:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal implements `==`/`!=`: cross-tag values are never equal, Nil
// equals only Nil, and otherwise comparison is by payload.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case NilType:
		_, ok := b.(NilType)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case String:
		bb, ok := b.(String)
		return ok && a == bb
	default:
		// Callables, classes and instances compare by identity.
		return a == b
	}
}
