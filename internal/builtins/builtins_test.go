package builtins

import (
	"math"
	"testing"

	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/value"
)

func call(t *testing.T, reg *Registry, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	fn, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("builtin %q not registered", name)
	}
	return fn.Call(args)
}

func TestMinMax(t *testing.T) {
	reg := NewRegistry(DefaultConfig())
	tests := []struct {
		name     string
		fn       string
		args     []value.Value
		expected float64
	}{
		{"min of ints", "min", []value.Value{&value.Int{Value: 3}, &value.Int{Value: 1}, &value.Int{Value: 2}}, 1},
		{"max of ints", "max", []value.Value{&value.Int{Value: 3}, &value.Int{Value: 1}, &value.Int{Value: 2}}, 3},
		{"min of a tuple", "min", []value.Value{&value.Tuple{Values: []value.Value{&value.Int{Value: 5}, &value.Int{Value: -1}}}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := call(t, reg, tt.fn, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			f, _ := value.AsFloat(v)
			if f != tt.expected {
				t.Errorf("%s(%v) = %v, want %v", tt.fn, tt.args, f, tt.expected)
			}
		})
	}
}

func TestLen(t *testing.T) {
	reg := NewRegistry(DefaultConfig())
	tests := []struct {
		name     string
		arg      value.Value
		expected int64
	}{
		{"string", &value.String{Value: "hello"}, 5},
		{"tuple", &value.Tuple{Values: []value.Value{&value.Int{Value: 1}, &value.Int{Value: 2}}}, 2},
		{"empty", value.Empty{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := call(t, reg, "len", tt.arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.(*value.Int).Value != tt.expected {
				t.Errorf("len(%v) = %v, want %v", tt.arg, v, tt.expected)
			}
		})
	}
}

func TestIf(t *testing.T) {
	reg := NewRegistry(DefaultConfig())
	v, err := call(t, reg, "if", &value.Boolean{Value: true}, &value.Int{Value: 1}, &value.Int{Value: 2})
	if err != nil || v.(*value.Int).Value != 1 {
		t.Errorf("if(true, 1, 2) = %v, %v, want 1, nil", v, err)
	}
	v, err = call(t, reg, "if", &value.Boolean{Value: false}, &value.Int{Value: 1}, &value.Int{Value: 2})
	if err != nil || v.(*value.Int).Value != 2 {
		t.Errorf("if(false, 1, 2) = %v, %v, want 2, nil", v, err)
	}
}

func TestMathFunctions(t *testing.T) {
	reg := NewRegistry(DefaultConfig())
	tests := []struct {
		name     string
		fn       string
		args     []value.Value
		expected float64
	}{
		{"abs", "abs", []value.Value{&value.Int{Value: -4}}, 4},
		{"sqrt", "sqrt", []value.Value{&value.Float{Value: 16}}, 4},
		{"floor", "floor", []value.Value{&value.Float{Value: 1.9}}, 1},
		{"ceil", "ceil", []value.Value{&value.Float{Value: 1.1}}, 2},
		{"atan2", "atan2", []value.Value{&value.Float{Value: 0}, &value.Float{Value: 1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := call(t, reg, tt.fn, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			f := v.(*value.Float).Value
			if math.Abs(f-tt.expected) > 1e-9 {
				t.Errorf("%s(%v) = %v, want %v", tt.fn, tt.args, f, tt.expected)
			}
		})
	}
}

func TestStrFunctions(t *testing.T) {
	reg := NewRegistry(DefaultConfig())
	v, err := call(t, reg, "str::to_uppercase", &value.String{Value: "abc"})
	if err != nil || v.(*value.String).Value != "ABC" {
		t.Errorf("str::to_uppercase(abc) = %v, %v", v, err)
	}
	v, err = call(t, reg, "str::to_lowercase", &value.String{Value: "ABC"})
	if err != nil || v.(*value.String).Value != "abc" {
		t.Errorf("str::to_lowercase(ABC) = %v, %v", v, err)
	}
	v, err = call(t, reg, "str::regex_matches", &value.String{Value: "abc123"}, &value.String{Value: `\d+`})
	if err != nil || !v.(*value.Boolean).Value {
		t.Errorf("str::regex_matches(abc123, \\d+) = %v, %v, want true", v, err)
	}
	v, err = call(t, reg, "str::regex_replace", &value.String{Value: "abc123"}, &value.String{Value: `\d+`}, &value.String{Value: "X"})
	if err != nil || v.(*value.String).Value != "abcX" {
		t.Errorf("str::regex_replace(abc123, \\d+, X) = %v, %v, want abcX", v, err)
	}
}

func TestRandomDisabledByDefault(t *testing.T) {
	reg := NewRegistry(DefaultConfig())
	if _, err := call(t, reg, "random"); !evalerr.Is(err, evalerr.RandNotEnabled) {
		t.Errorf("random() should fail RandNotEnabled by default, got %v", err)
	}
}

func TestRandomEnabled(t *testing.T) {
	reg := NewRegistry(Config{RandEnabled: true})
	v, err := call(t, reg, "random")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := v.(*value.Float).Value
	if f < 0 || f >= 1 {
		t.Errorf("random() = %v, want [0, 1)", f)
	}
}

func TestWrongArity(t *testing.T) {
	reg := NewRegistry(DefaultConfig())
	if _, err := call(t, reg, "abs"); !evalerr.Is(err, evalerr.WrongFunctionArgumentAmount) {
		t.Errorf("abs() with no args should fail WrongFunctionArgumentAmount, got %v", err)
	}
}
