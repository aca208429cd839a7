package value

import "fmt"

// NativeFunction wraps a Go function as a callable value, for builtins
// such as `clock`. It never needs a Caller, since it has no user-level
// body to execute.
type NativeFunction struct {
	FnName string
	Arty   int
	Fn     func(args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) String() string { return fmt.Sprintf("<native fn %s>", n.FnName) }
func (*NativeFunction) Type() string     { return "function" }
func (n *NativeFunction) Arity() int     { return n.Arty }

func (n *NativeFunction) Call(_ Caller, args []Value) (Value, error) {
	return n.Fn(args)
}
