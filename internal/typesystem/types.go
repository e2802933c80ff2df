package typesystem

// Type is the interface for all types in our system.
type Type interface {
	String() string
	typeNode()
}

// TBool is the type of the constants true and false.
type TBool struct{}

func (TBool) typeNode()      {}
func (TBool) String() string { return "bool" }

// TFunc is the type of an abstraction, Param -> Result.
type TFunc struct {
	Param  Type
	Result Type
}

func (TFunc) typeNode() {}

// String renders arrows right-associatively, parenthesizing a function domain.
func (t TFunc) String() string {
	param := "<nil>"
	if t.Param != nil {
		param = t.Param.String()
		if _, ok := t.Param.(TFunc); ok {
			param = "(" + param + ")"
		}
	}
	result := "<nil>"
	if t.Result != nil {
		result = t.Result.String()
	}
	return param + " -> " + result
}

// Bool is the shared boolean type value.
var Bool Type = TBool{}

// Func builds a right-nested function type: Func(a, b, c) is a -> b -> c.
func Func(first Type, rest ...Type) Type {
	if len(rest) == 0 {
		return first
	}
	return TFunc{Param: first, Result: Func(rest[0], rest[1:]...)}
}

// Equal reports structural equality. There is no subtyping.
func Equal(a, b Type) bool {
	switch ta := a.(type) {
	case TBool:
		_, ok := b.(TBool)
		return ok
	case TFunc:
		tb, ok := b.(TFunc)
		return ok && Equal(ta.Param, tb.Param) && Equal(ta.Result, tb.Result)
	}
	return a == nil && b == nil
}
