package types

// Default is the default value of a field. It is either a Literal, used
// as-is, or a Generator, invoked each time the default is applied.
type Default interface {
	resolve() any
}

// Literal is a fixed default value.
type Literal struct {
	Value any
}

func (l Literal) resolve() any { return l.Value }

// Generator produces a default value at the moment it is applied, for
// defaults such as "current timestamp".
type Generator func() any

func (g Generator) resolve() any { return g() }

// ResolveDefault returns the value of d. Generators are invoked on every
// call; a nil Default or nil Generator resolves to nil.
func ResolveDefault(d Default) any {
	switch v := d.(type) {
	case nil:
		return nil
	case Generator:
		if v == nil {
			return nil
		}
		return v()
	default:
		return d.resolve()
	}
}
