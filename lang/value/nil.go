package value

// NilType is the type of Nil, the language's single null value.
type NilType struct{}

// Nil is the only NilType value.
var Nil = NilType{}

func (NilType) String() string { return "nil" }
func (NilType) Type() string   { return "nil" }
