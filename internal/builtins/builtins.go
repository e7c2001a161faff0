// Package builtins is the fixed, read-only catalogue of identifiers
// consulted by FunctionIdentifier evaluation when no user function shadows
// them (spec section 4.6): min/max, len, if, the math functions, the str::
// namespace and random. Modeled on go-dws's internal/builtins registration
// style (one function per builtin, arity-checked at the call boundary, unit
// tested with table-driven cases per function) but organized as a single
// name->context.Function map rather than one symbol-table entry per
// language keyword, since this catalogue is flat and much smaller.
package builtins

import (
	"math"
	"math/rand"
	"regexp"

	"github.com/cwbudde/go-evalx/internal/context"
	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/value"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Config governs the subset of builtins whose behavior is policy rather
// than pure math: currently only random().
type Config struct {
	// RandEnabled gates random(); disabled by default so that evaluation is
	// deterministic unless a caller opts in, matching spec's RandNotEnabled
	// error and the original crate's configuration gate on randomness.
	RandEnabled bool
	Rand        *rand.Rand
}

// DefaultConfig enables neither randomness nor any other non-deterministic
// behavior.
func DefaultConfig() Config { return Config{} }

// Registry is the fixed builtin catalogue, built once per Config (random's
// source differs per caller).
type Registry struct {
	fns map[string]context.Function
}

// NewRegistry builds the catalogue described in spec section 4.6.
func NewRegistry(cfg Config) *Registry {
	r := &Registry{fns: make(map[string]context.Function)}
	r.register("min", variadicNumberOrTuple(minMax(false)))
	r.register("max", variadicNumberOrTuple(minMax(true)))
	r.register("len", exact(1, lenFn))
	r.register("if", exact(3, ifFn))
	r.register("abs", exact(1, numeric1(math.Abs)))
	r.register("floor", exact(1, numeric1(math.Floor)))
	r.register("ceil", exact(1, numeric1(math.Ceil)))
	r.register("round", exact(1, numeric1(math.Round)))
	r.register("sqrt", exact(1, numeric1(math.Sqrt)))
	r.register("exp", exact(1, numeric1(math.Exp)))
	r.register("ln", exact(1, numeric1(math.Log)))
	r.register("log", exact(1, numeric1(math.Log)))
	r.register("log2", exact(1, numeric1(math.Log2)))
	r.register("log10", exact(1, numeric1(math.Log10)))
	r.register("sin", exact(1, numeric1(math.Sin)))
	r.register("cos", exact(1, numeric1(math.Cos)))
	r.register("tan", exact(1, numeric1(math.Tan)))
	r.register("asin", exact(1, numeric1(math.Asin)))
	r.register("acos", exact(1, numeric1(math.Acos)))
	r.register("atan", exact(1, numeric1(math.Atan)))
	r.register("atan2", exact(2, numeric2(math.Atan2)))
	r.register("hypot", exact(2, numeric2(math.Hypot)))
	r.register("str::to_uppercase", exact(1, strCase(cases.Upper(language.Und))))
	r.register("str::to_lowercase", exact(1, strCase(cases.Lower(language.Und))))
	r.register("str::len", exact(1, strLen))
	r.register("str::regex_matches", exact(2, regexMatches))
	r.register("str::regex_replace", exact(3, regexReplace))
	r.register("random", exact(0, randomFn(cfg)))
	return r
}

func (r *Registry) register(name string, fn func([]value.Value) (value.Value, error)) {
	r.fns[name] = context.Function{Call: fn}
}

// Lookup resolves name in the catalogue.
func (r *Registry) Lookup(name string) (context.Function, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

func exact(n int, f func([]value.Value) (value.Value, error)) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != n {
			return nil, evalerr.NewWrongFunctionArgumentAmount(n, n, len(args))
		}
		return f(args)
	}
}

func variadicNumberOrTuple(f func([]value.Value) (value.Value, error)) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) == 1 {
			if t, ok := args[0].(*value.Tuple); ok {
				args = t.Values
			}
		}
		if len(args) < 1 {
			return nil, evalerr.NewWrongFunctionArgumentAmount(1, -1, len(args))
		}
		return f(args)
	}
}

func minMax(wantMax bool) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		best := args[0]
		bestF, ok := value.AsFloat(best)
		if !ok {
			return nil, evalerr.NewExpectedNumber(best)
		}
		for _, v := range args[1:] {
			f, ok := value.AsFloat(v)
			if !ok {
				return nil, evalerr.NewExpectedNumber(v)
			}
			if (wantMax && f > bestF) || (!wantMax && f < bestF) {
				best, bestF = v, f
			}
		}
		return best, nil
	}
}

func lenFn(args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.String:
		return &value.Int{Value: int64(len(v.Value))}, nil
	case *value.Tuple:
		return &value.Int{Value: int64(len(v.Values))}, nil
	case value.Empty:
		return &value.Int{Value: 0}, nil
	default:
		return nil, evalerr.NewExpectedNumberOrString(args[0])
	}
}

func ifFn(args []value.Value) (value.Value, error) {
	cond, ok := args[0].(*value.Boolean)
	if !ok {
		return nil, evalerr.NewExpectedBoolean(args[0])
	}
	if cond.Value {
		return args[1], nil
	}
	return args[2], nil
}

func numeric1(f func(float64) float64) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		x, ok := value.AsFloat(args[0])
		if !ok {
			return nil, evalerr.NewExpectedNumber(args[0])
		}
		return &value.Float{Value: f(x)}, nil
	}
}

func numeric2(f func(a, b float64) float64) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		x, ok := value.AsFloat(args[0])
		if !ok {
			return nil, evalerr.NewExpectedNumber(args[0])
		}
		y, ok := value.AsFloat(args[1])
		if !ok {
			return nil, evalerr.NewExpectedNumber(args[1])
		}
		return &value.Float{Value: f(x, y)}, nil
	}
}

func strCase(caser cases.Caser) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		s, ok := args[0].(*value.String)
		if !ok {
			return nil, evalerr.NewExpectedString(args[0])
		}
		return &value.String{Value: caser.String(s.Value)}, nil
	}
}

func strLen(args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, evalerr.NewExpectedString(args[0])
	}
	return &value.Int{Value: int64(len(s.Value))}, nil
}

func regexMatches(args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, evalerr.NewExpectedString(args[0])
	}
	pat, ok := args[1].(*value.String)
	if !ok {
		return nil, evalerr.NewExpectedString(args[1])
	}
	re, err := regexp.Compile(pat.Value)
	if err != nil {
		return nil, evalerr.NewInvalidRegex(pat.Value, err.Error())
	}
	return &value.Boolean{Value: re.MatchString(s.Value)}, nil
}

func regexReplace(args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, evalerr.NewExpectedString(args[0])
	}
	pat, ok := args[1].(*value.String)
	if !ok {
		return nil, evalerr.NewExpectedString(args[1])
	}
	repl, ok := args[2].(*value.String)
	if !ok {
		return nil, evalerr.NewExpectedString(args[2])
	}
	re, err := regexp.Compile(pat.Value)
	if err != nil {
		return nil, evalerr.NewInvalidRegex(pat.Value, err.Error())
	}
	return &value.String{Value: re.ReplaceAllString(s.Value, repl.Value)}, nil
}

func randomFn(cfg Config) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if !cfg.RandEnabled {
			return nil, evalerr.NewRandNotEnabled()
		}
		src := cfg.Rand
		if src == nil {
			src = rand.New(rand.NewSource(1))
		}
		return &value.Float{Value: src.Float64()}, nil
	}
}
