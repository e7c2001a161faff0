package context

import (
	"testing"

	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/value"
)

func TestEmptyContextRefusesWrites(t *testing.T) {
	var c Context = EmptyContext{}
	if _, ok := c.GetValue("x"); ok {
		t.Errorf("EmptyContext should have no bindings")
	}
	if err := c.SetValue("x", &value.Int{Value: 1}); !evalerr.Is(err, evalerr.ContextNotMutable) {
		t.Errorf("EmptyContext.SetValue should fail ContextNotMutable, got %v", err)
	}
}

func TestHashMapContextRoundTrip(t *testing.T) {
	c := NewHashMapContext(WithValue("x", &value.Int{Value: 1}))
	v, ok := c.GetValue("x")
	if !ok || v.(*value.Int).Value != 1 {
		t.Fatalf("WithValue should pre-bind x=1, got %v, %v", v, ok)
	}
	if err := c.SetValue("y", &value.String{Value: "hi"}); err != nil {
		t.Fatalf("SetValue on a fresh name should succeed: %v", err)
	}
	if v, ok := c.GetValue("y"); !ok || v.(*value.String).Value != "hi" {
		t.Errorf("GetValue(y) after SetValue should return the bound string")
	}
}

func TestHashMapContextTypeStability(t *testing.T) {
	c := NewHashMapContext(WithValue("x", &value.Int{Value: 1}))
	if err := c.SetValue("x", &value.String{Value: "oops"}); err == nil {
		t.Errorf("rebinding x from Int to String should fail the type-stability check")
	}
	if err := c.SetValue("x", &value.Int{Value: 2}); err != nil {
		t.Errorf("rebinding x to another Int should succeed: %v", err)
	}
}

func TestHashMapContextFunctions(t *testing.T) {
	one := 1
	c := NewHashMapContext(WithFunction("double", Function{
		Arity: &one,
		Call: func(args []value.Value) (value.Value, error) {
			n := args[0].(*value.Int)
			return &value.Int{Value: n.Value * 2}, nil
		},
	}))
	fn, ok := c.GetFunction("double")
	if !ok {
		t.Fatalf("double should be registered")
	}
	v, err := fn.Call([]value.Value{&value.Int{Value: 21}})
	if err != nil || v.(*value.Int).Value != 42 {
		t.Errorf("double(21) = %v, %v, want 42, nil", v, err)
	}
}
