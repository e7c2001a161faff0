// Package evalx is the public façade over the internal lexer/parser/tree
// engine: a one-shot Eval, a pre-compiled Expression for repeated
// evaluation, and re-exports of the Value/Context types embedders need,
// the way a library wraps its internal/ engine behind a small pkg/ surface
// for external callers (the CWBudde-go-dws split this module follows).
package evalx

import (
	"github.com/cwbudde/go-evalx/internal/builtins"
	"github.com/cwbudde/go-evalx/internal/config"
	"github.com/cwbudde/go-evalx/internal/context"
	"github.com/cwbudde/go-evalx/internal/lexer"
	"github.com/cwbudde/go-evalx/internal/parser"
	"github.com/cwbudde/go-evalx/internal/serde"
	"github.com/cwbudde/go-evalx/internal/tree"
	"github.com/cwbudde/go-evalx/internal/value"
)

// Value is the evaluated result type: one of *String, *Float, *Int,
// *Boolean, *Tuple or Empty.
type Value = value.Value

// Context is the pluggable variable/function lookup consulted during
// evaluation and the target of assignment.
type Context = context.Context

// Function is a callable exposed to FunctionIdentifier nodes.
type Function = context.Function

// EmptyContext has no bindings and refuses every write.
var EmptyContext Context = context.EmptyContext{}

// HashMapContext is the default in-memory, type-stable, mutable Context.
type HashMapContext = context.HashMapContext

// ContextOption configures a new HashMapContext.
type ContextOption = context.Option

// WithValue pre-binds name to v on a new HashMapContext.
func WithValue(name string, v Value) ContextOption { return context.WithValue(name, v) }

// WithFunction pre-binds name to fn on a new HashMapContext.
func WithFunction(name string, fn Function) ContextOption { return context.WithFunction(name, fn) }

// NewContext builds a fresh, mutable, type-stable Context.
func NewContext(opts ...ContextOption) *HashMapContext { return context.NewHashMapContext(opts...) }

// Config governs the engine policy (random() availability and source,
// recursion-depth ceiling) shared by Compile and Eval.
type Config = config.Config

// Option configures a Config.
type Option = config.Option

// WithRandEnabled toggles random().
func WithRandEnabled(enabled bool) Option { return config.WithRandEnabled(enabled) }

// WithMaxDepth overrides the recursion-depth ceiling.
func WithMaxDepth(depth int) Option { return config.WithMaxDepth(depth) }

// Tree is the parsed operator tree backing an Expression, exposed for
// callers (and the CLI's --debug-tree) that want to inspect the actual
// parsed structure rather than its rendered display form.
type Tree = tree.Tree

// Expression is a parsed, reusable operator tree: parsing (lexing included)
// happens once in Compile, so repeated evaluation against different
// Contexts pays only the evaluation cost.
type Expression struct {
	tree   *tree.Tree
	reg    *builtins.Registry
	maxDep int
}

// Compile lexes and parses src into a reusable Expression.
func Compile(src string, opts ...Option) (*Expression, error) {
	cfg := config.New(opts...)
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	t, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	reg := builtins.NewRegistry(builtins.Config{RandEnabled: cfg.RandEnabled, Rand: cfg.Rand})
	return &Expression{tree: t, reg: reg, maxDep: cfg.MaxDepth}, nil
}

// Eval evaluates the expression against ctx.
func (e *Expression) Eval(ctx Context) (Value, error) {
	return e.tree.EvalWithMaxDepth(ctx, e.reg, e.maxDep)
}

// EvalString evaluates the expression, requiring a *String result.
func (e *Expression) EvalString(ctx Context) (string, error) { return e.tree.EvalString(ctx, e.reg) }

// EvalInt evaluates the expression, requiring an *Int result.
func (e *Expression) EvalInt(ctx Context) (int64, error) { return e.tree.EvalInt(ctx, e.reg) }

// EvalFloat evaluates the expression, requiring a *Float result.
func (e *Expression) EvalFloat(ctx Context) (float64, error) { return e.tree.EvalFloat(ctx, e.reg) }

// EvalNumber evaluates the expression, requiring an Int or Float result,
// coercing Int to float64.
func (e *Expression) EvalNumber(ctx Context) (float64, error) { return e.tree.EvalNumber(ctx, e.reg) }

// EvalBoolean evaluates the expression, requiring a *Boolean result.
func (e *Expression) EvalBoolean(ctx Context) (bool, error) { return e.tree.EvalBoolean(ctx, e.reg) }

// EvalTuple evaluates the expression, requiring a *Tuple result.
func (e *Expression) EvalTuple(ctx Context) ([]Value, error) { return e.tree.EvalTuple(ctx, e.reg) }

// String renders the expression as source-equivalent text.
func (e *Expression) String() string { return e.tree.String() }

// Tree returns the expression's parsed operator tree, the same type
// cmd/evalx's parse subcommand pretty-prints with --dump-tree.
func (e *Expression) Tree() *Tree { return e.tree }

// Variables lists every VariableIdentifier occurrence in source order.
func (e *Expression) Variables() []string { return e.tree.Variables() }

// Functions lists every FunctionIdentifier occurrence in source order.
func (e *Expression) Functions() []string { return e.tree.Functions() }

// MarshalValueJSON encodes an evaluated Value to its JSON wire form.
func MarshalValueJSON(v Value) (string, error) { return serde.EncodeValue(v) }

// UnmarshalValueJSON decodes a Value from its JSON wire form.
func UnmarshalValueJSON(json string) (Value, error) { return serde.DecodeValue(json) }

// Eval lexes, parses and evaluates src in one call against ctx. Prefer
// Compile for expressions evaluated more than once.
func Eval(src string, ctx Context, opts ...Option) (Value, error) {
	expr, err := Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	return expr.Eval(ctx)
}
