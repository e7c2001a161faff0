// Package context defines the pluggable variable/function lookup the
// evaluator consults (spec section 4.5): an interface plus two concrete
// implementations, a refuse-everything EmptyContext and a type-stable
// in-memory HashMapContext. Mirrors the option-function construction style
// go-dws uses for its Lexer (LexerOption), adapted to context construction.
package context

import "github.com/cwbudde/go-evalx/internal/value"

// Function is a callable exposed to FunctionIdentifier nodes, either
// user-registered on a Context or drawn from internal/builtins.
type Function struct {
	// Arity is the function's fixed argument count, or nil if the function
	// (or the registering caller) does not want arity enforced at the
	// Context layer — internal/builtins enforces its own arity rules
	// (exact or variadic) independently of this field.
	Arity *int
	Call  func(args []value.Value) (value.Value, error)
}

// Context is the semantic mapping consulted by VariableIdentifier and
// FunctionIdentifier evaluation, and the target of Assign/OpAssign.
type Context interface {
	GetValue(name string) (value.Value, bool)
	GetFunction(name string) (Function, bool)
	SetValue(name string, v value.Value) error
	SetFunction(name string, fn Function) error
}

// EmptyContext has no bindings and refuses every write. It is the context
// the CLI's eval subcommand evaluates against; one-shot Eval uses whatever
// context its caller passes and supplies none of its own.
type EmptyContext struct{}

func (EmptyContext) GetValue(string) (value.Value, bool)    { return nil, false }
func (EmptyContext) GetFunction(string) (Function, bool)    { return Function{}, false }
func (EmptyContext) SetValue(string, value.Value) error     { return errNotMutable() }
func (EmptyContext) SetFunction(string, Function) error     { return errNotMutable() }

var _ Context = EmptyContext{}
