// Package value implements the tagged value variant that flows through the
// lexer, parser and evaluator: strings, 64-bit floats and ints, booleans,
// tuples and the empty/unit value. Each concrete type is a small pointer
// struct implementing the Value interface, the same "sum type via interface"
// idiom go-dws uses for its IntegerValue/FloatValue/StringValue family.
package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Type mirrors a Value's tag for introspection, schema declarations and
// error messages.
type Type int

const (
	TypeString Type = iota
	TypeFloat
	TypeInt
	TypeBoolean
	TypeTuple
	TypeEmpty
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeFloat:
		return "Float"
	case TypeInt:
		return "Int"
	case TypeBoolean:
		return "Boolean"
	case TypeTuple:
		return "Tuple"
	case TypeEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Value is implemented by every concrete value kind. Values are conceptually
// immutable; Tuple is the only variant that owns other Values.
type Value interface {
	Type() Type
	String() string
}

// String is an opaque byte sequence; equality and order are byte-lexicographic.
type String struct {
	Value string
}

func (s *String) Type() Type     { return TypeString }
func (s *String) String() string { return s.Value }

// Float is a 64-bit IEEE-754 binary floating point number.
type Float struct {
	Value float64
}

func (f *Float) Type() Type { return TypeFloat }
func (f *Float) String() string {
	if math.IsNaN(f.Value) {
		return "NaN"
	}
	if math.IsInf(f.Value, 1) {
		return "inf"
	}
	if math.IsInf(f.Value, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// Int is a signed 64-bit integer.
type Int struct {
	Value int64
}

func (i *Int) Type() Type     { return TypeInt }
func (i *Int) String() string { return strconv.FormatInt(i.Value, 10) }

// Boolean is a truth value.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type { return TypeBoolean }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Tuple is an ordered, possibly empty, possibly heterogeneous sequence of
// Values. Tuple nesting never survives evaluation: operator.Tuple always
// produces a flat Tuple (see internal/operator).
type Tuple struct {
	Values []Value
}

func (t *Tuple) Type() Type { return TypeTuple }
func (t *Tuple) String() string {
	parts := make([]string, len(t.Values))
	for i, v := range t.Values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Empty is the unit/absent value, returned by Assign, OpAssign and an empty
// pair of parentheses "()".
type Empty struct{}

func (Empty) Type() Type     { return TypeEmpty }
func (Empty) String() string { return "()" }

// EmptyValue is the single shared Empty instance; Empty carries no state so
// callers are free to use it instead of allocating their own.
var EmptyValue Value = Empty{}

// IsNumber reports whether v is an Int or a Float.
func IsNumber(v Value) bool {
	switch v.(type) {
	case *Int, *Float:
		return true
	default:
		return false
	}
}

// AsFloat lifts an Int or Float to float64. ok is false for any other Value.
func AsFloat(v Value) (f float64, ok bool) {
	switch n := v.(type) {
	case *Int:
		return float64(n.Value), true
	case *Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// Equal implements the structural equality used by Eq/Neq: Int-vs-Float
// compares numerically (as float), NaN is never equal to anything including
// itself, and cross-type comparisons other than Int/Float return false.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Int:
		switch bv := b.(type) {
		case *Int:
			return av.Value == bv.Value
		case *Float:
			return float64(av.Value) == bv.Value
		}
		return false
	case *Float:
		switch bv := b.(type) {
		case *Int:
			return av.Value == float64(bv.Value)
		case *Float:
			return av.Value == bv.Value // NaN != NaN falls out of IEEE-754 directly
		}
		return false
	case *String:
		if bv, ok := b.(*String); ok {
			return av.Value == bv.Value
		}
		return false
	case *Boolean:
		if bv, ok := b.(*Boolean); ok {
			return av.Value == bv.Value
		}
		return false
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Values) != len(bv.Values) {
			return false
		}
		for i := range av.Values {
			if !Equal(av.Values[i], bv.Values[i]) {
				return false
			}
		}
		return true
	case Empty:
		_, ok := b.(Empty)
		return ok
	default:
		return false
	}
}

// TotalCompare orders any two Values for contexts that need a total order
// (hashing, deterministic sorting) rather than IEEE-754 partial order: NaN
// compares equal to itself and greater than every non-NaN Float. Values of
// different Type are ordered by Type, then by their natural order within
// Type for String/Int/Float/Boolean, and lexicographically element-wise for
// Tuple.
func TotalCompare(a, b Value) int {
	if a.Type() != b.Type() {
		return int(a.Type()) - int(b.Type())
	}
	switch av := a.(type) {
	case *Int:
		bv := b.(*Int)
		switch {
		case av.Value < bv.Value:
			return -1
		case av.Value > bv.Value:
			return 1
		default:
			return 0
		}
	case *Float:
		bv := b.(*Float)
		aNaN, bNaN := math.IsNaN(av.Value), math.IsNaN(bv.Value)
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return 1
		case bNaN:
			return -1
		case av.Value < bv.Value:
			return -1
		case av.Value > bv.Value:
			return 1
		default:
			return 0
		}
	case *String:
		return strings.Compare(av.Value, b.(*String).Value)
	case *Boolean:
		bv := b.(*Boolean)
		if av.Value == bv.Value {
			return 0
		}
		if !av.Value {
			return -1
		}
		return 1
	case *Tuple:
		bv := b.(*Tuple)
		n := len(av.Values)
		if len(bv.Values) < n {
			n = len(bv.Values)
		}
		for i := 0; i < n; i++ {
			if c := TotalCompare(av.Values[i], bv.Values[i]); c != 0 {
				return c
			}
		}
		return len(av.Values) - len(bv.Values)
	default: // Empty
		return 0
	}
}

// SortTotal sorts vs in place using TotalCompare.
func SortTotal(vs []Value) {
	sort.Slice(vs, func(i, j int) bool { return TotalCompare(vs[i], vs[j]) < 0 })
}
