// Package operator is the operator model: the closed set of operator kinds
// together with their precedence, associativity and arity (spec section
// 4.2), and the pure value-level evaluation helpers (checked arithmetic,
// comparison, logic, tuple flattening) that operate on already-evaluated
// child values. The handful of operators whose semantics need the AST node
// itself rather than just its evaluated children — Const, VariableIdentifier,
// FunctionIdentifier, Assign, OpAssign, RootNode — are dispatched by
// internal/tree instead, which is the only package that can see both a
// Node's payload and its Context without an import cycle between tree and
// operator.
package operator

import "github.com/cwbudde/go-evalx/internal/value"

// Kind is one operator from the closed set in spec section 3.
type Kind int

const (
	RootNode Kind = iota
	Const
	VariableIdentifier
	FunctionIdentifier
	Exp
	Neg
	Not
	Mul
	Div
	Mod
	Add
	Sub
	Eq
	Neq
	Gt
	Lt
	Geq
	Leq
	And
	Or
	Assign
	OpAssign
	Tuple
	Chain
)

var names = map[Kind]string{
	RootNode: "RootNode", Const: "Const", VariableIdentifier: "VariableIdentifier",
	FunctionIdentifier: "FunctionIdentifier", Exp: "^", Neg: "-", Not: "!",
	Mul: "*", Div: "/", Mod: "%", Add: "+", Sub: "-", Eq: "==", Neq: "!=",
	Gt: ">", Lt: "<", Geq: ">=", Leq: "<=", And: "&&", Or: "||", Assign: "=",
	OpAssign: "op=", Tuple: ",", Chain: ";",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Unknown"
}

// Assoc is an operator's associativity.
type Assoc int

const (
	LeftAssoc Assoc = iota
	RightAssoc
)

type descriptor struct {
	precedence int
	assoc      Assoc
	arity      int // children required once parsing completes
}

var table = map[Kind]descriptor{
	RootNode:           {200, LeftAssoc, 1},
	Const:              {200, LeftAssoc, 0},
	VariableIdentifier: {200, LeftAssoc, 0},
	FunctionIdentifier: {190, RightAssoc, 1},
	Exp:                {120, RightAssoc, 2},
	Neg:                {110, LeftAssoc, 1},
	Not:                {110, LeftAssoc, 1},
	Mul:                {100, LeftAssoc, 2},
	Div:                {100, LeftAssoc, 2},
	Mod:                {100, LeftAssoc, 2},
	Add:                {95, LeftAssoc, 2},
	Sub:                {95, LeftAssoc, 2},
	Eq:                 {80, LeftAssoc, 2},
	Neq:                {80, LeftAssoc, 2},
	Gt:                 {80, LeftAssoc, 2},
	Lt:                 {80, LeftAssoc, 2},
	Geq:                {80, LeftAssoc, 2},
	Leq:                {80, LeftAssoc, 2},
	And:                {75, LeftAssoc, 2},
	Or:                 {70, LeftAssoc, 2},
	Assign:             {50, RightAssoc, 2},
	OpAssign:           {50, RightAssoc, 2},
	Tuple:              {40, LeftAssoc, 2},
	Chain:              {0, LeftAssoc, 2},
}

// Precedence returns an operator's binding power; higher binds tighter.
func Precedence(k Kind) int { return table[k].precedence }

// Associativity returns an operator's associativity.
func Associativity(k Kind) Assoc { return table[k].assoc }

// Arity returns the number of children an operator node must have once
// parsing completes.
func Arity(k Kind) int { return table[k].arity }

// IsSequence reports whether k is one of the two sequence operators (Tuple,
// Chain), which receive special parser treatment (spec section 4.3,
// "Sequence collapse").
func IsSequence(k Kind) bool { return k == Tuple || k == Chain }

// IsRightAssociative reports whether k binds right-to-left.
func IsRightAssociative(k Kind) bool { return table[k].assoc == RightAssoc }

// --- pure value-level evaluation ---

// EvalArith performs the checked arithmetic for Add/Sub/Mul/Div/Mod/Exp on
// already-evaluated operands. Both-Int uses checked int64 arithmetic;
// mixed/float operands lift to float64. Exp always yields Float.
func EvalArith(k Kind, l, r value.Value) (value.Value, error) {
	li, lIsInt := l.(*value.Int)
	ri, rIsInt := r.(*value.Int)

	if k != Exp && lIsInt && rIsInt {
		return evalIntArith(k, li.Value, ri.Value, l, r)
	}

	lf, lok := value.AsFloat(l)
	rf, rok := value.AsFloat(r)
	if !lok {
		return nil, wrapExpectedNumber(l)
	}
	if !rok {
		return nil, wrapExpectedNumber(r)
	}
	return evalFloatArith(k, lf, rf, l, r)
}

func wrapExpectedNumber(v value.Value) error { return expectedNumberErr(v) }

// EvalNeg performs checked integer/float negation.
func EvalNeg(v value.Value) (value.Value, error) {
	switch n := v.(type) {
	case *value.Int:
		if n.Value == minInt64 {
			return nil, negationOverflowErr(v)
		}
		return &value.Int{Value: -n.Value}, nil
	case *value.Float:
		return &value.Float{Value: -n.Value}, nil
	default:
		return nil, expectedNumberErr(v)
	}
}

const minInt64 = -1 << 63

func evalIntArith(k Kind, a, b int64, av, bv value.Value) (value.Value, error) {
	switch k {
	case Add:
		sum := a + b
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return nil, additionOverflowErr(av, bv)
		}
		return &value.Int{Value: sum}, nil
	case Sub:
		diff := a - b
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return nil, subtractionOverflowErr(av, bv)
		}
		return &value.Int{Value: diff}, nil
	case Mul:
		if a == 0 || b == 0 {
			return &value.Int{Value: 0}, nil
		}
		p := a * b
		if p/b != a || (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
			return nil, multiplicationOverflowErr(av, bv)
		}
		return &value.Int{Value: p}, nil
	case Div:
		if b == 0 {
			return nil, divisionByZeroErr(av, bv)
		}
		if a == minInt64 && b == -1 {
			return nil, divisionByZeroErr(av, bv)
		}
		return &value.Int{Value: a / b}, nil
	case Mod:
		if b == 0 {
			return nil, modulationByZeroErr(av, bv)
		}
		if a == minInt64 && b == -1 {
			return nil, modulationByZeroErr(av, bv)
		}
		return &value.Int{Value: a % b}, nil
	default:
		return nil, wrongOperatorKindErr()
	}
}

func evalFloatArith(k Kind, a, b float64, av, bv value.Value) (value.Value, error) {
	switch k {
	case Add:
		return &value.Float{Value: a + b}, nil
	case Sub:
		return &value.Float{Value: a - b}, nil
	case Mul:
		return &value.Float{Value: a * b}, nil
	case Div:
		return &value.Float{Value: a / b}, nil
	case Mod:
		return &value.Float{Value: floatMod(a, b)}, nil
	case Exp:
		return &value.Float{Value: pow(a, b)}, nil
	default:
		return nil, wrongOperatorKindErr()
	}
}

// EvalCompare performs Eq/Neq/Gt/Lt/Geq/Leq. Eq/Neq use structural equality
// (value.Equal); ordering comparisons require both operands to be numbers
// and use the int-preferring-then-lift rule, returning false for any NaN
// comparison per IEEE-754.
func EvalCompare(k Kind, l, r value.Value) (value.Value, error) {
	switch k {
	case Eq:
		return &value.Boolean{Value: value.Equal(l, r)}, nil
	case Neq:
		return &value.Boolean{Value: !value.Equal(l, r)}, nil
	}

	if li, ok := l.(*value.Int); ok {
		if ri, ok := r.(*value.Int); ok {
			a, b := li.Value, ri.Value
			switch k {
			case Gt:
				return &value.Boolean{Value: a > b}, nil
			case Lt:
				return &value.Boolean{Value: a < b}, nil
			case Geq:
				return &value.Boolean{Value: a >= b}, nil
			case Leq:
				return &value.Boolean{Value: a <= b}, nil
			}
		}
	}

	lf, lok := value.AsFloat(l)
	rf, rok := value.AsFloat(r)
	if !lok {
		return nil, expectedNumberErr(l)
	}
	if !rok {
		return nil, expectedNumberErr(r)
	}
	var result bool
	switch k {
	case Gt:
		result = lf > rf
	case Lt:
		result = lf < rf
	case Geq:
		result = lf >= rf
	case Leq:
		result = lf <= rf
	default:
		return nil, wrongOperatorKindErr()
	}
	return &value.Boolean{Value: result}, nil
}

// EvalLogic performs And/Or/Not over Boolean operands without short-circuit
// (children have already been evaluated eagerly).
func EvalLogic(k Kind, operands ...value.Value) (value.Value, error) {
	bools := make([]bool, len(operands))
	for i, v := range operands {
		b, ok := v.(*value.Boolean)
		if !ok {
			return nil, expectedBooleanErr(v)
		}
		bools[i] = b.Value
	}
	switch k {
	case Not:
		return &value.Boolean{Value: !bools[0]}, nil
	case And:
		return &value.Boolean{Value: bools[0] && bools[1]}, nil
	case Or:
		return &value.Boolean{Value: bools[0] || bools[1]}, nil
	default:
		return nil, wrongOperatorKindErr()
	}
}

// EvalTuple flattens Tuple's operands: if either side is already a Tuple,
// its elements are spliced in place instead of nested, so "a, b, c" (parsed
// left-deep) always produces one flat Tuple at runtime.
func EvalTuple(l, r value.Value) value.Value {
	var out []value.Value
	if lt, ok := l.(*value.Tuple); ok {
		out = append(out, lt.Values...)
	} else {
		out = append(out, l)
	}
	if rt, ok := r.(*value.Tuple); ok {
		out = append(out, rt.Values...)
	} else {
		out = append(out, r)
	}
	return &value.Tuple{Values: out}
}
