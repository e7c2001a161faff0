package context

import (
	"fmt"

	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/value"
)

func errNotMutable() error { return evalerr.NewContextNotMutable() }

// HashMapContext is the default in-memory Context: independent name->Value
// and name->Function tables, with the value table enforcing type
// stability — once a name is bound to a Value of some Type, later
// SetValue calls for that name must carry the same Type or fail. Not safe
// for concurrent mutation without external synchronization (spec section
// 5, "a mutable context must not be shared across concurrent evaluations
// without external mutual exclusion").
type HashMapContext struct {
	values    map[string]value.Value
	functions map[string]Function
}

// Option configures a HashMapContext at construction time.
type Option func(*HashMapContext)

// WithValue pre-binds name to v.
func WithValue(name string, v value.Value) Option {
	return func(c *HashMapContext) { c.values[name] = v }
}

// WithFunction pre-binds name to fn.
func WithFunction(name string, fn Function) Option {
	return func(c *HashMapContext) { c.functions[name] = fn }
}

// NewHashMapContext builds an empty, mutable, type-stable context.
func NewHashMapContext(opts ...Option) *HashMapContext {
	c := &HashMapContext{
		values:    make(map[string]value.Value),
		functions: make(map[string]Function),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HashMapContext) GetValue(name string) (value.Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

func (c *HashMapContext) GetFunction(name string) (Function, bool) {
	fn, ok := c.functions[name]
	return fn, ok
}

// SetValue binds name to v, enforcing type stability: if name is already
// bound, v's Type must match the existing binding's Type.
func (c *HashMapContext) SetValue(name string, v value.Value) error {
	if existing, ok := c.values[name]; ok && existing.Type() != v.Type() {
		return evalerr.NewCustomMessage(fmt.Sprintf(
			"type mismatch assigning to %q: bound as %s, got %s", name, existing.Type(), v.Type()))
	}
	c.values[name] = v
	return nil
}

func (c *HashMapContext) SetFunction(name string, fn Function) error {
	c.functions[name] = fn
	return nil
}

var _ Context = (*HashMapContext)(nil)
