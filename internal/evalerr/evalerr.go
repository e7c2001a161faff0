// Package evalerr is the closed error taxonomy shared by the lexer, parser
// and evaluator. Every failure mode the core can produce is one Kind with
// its own structured payload fields, in the categorized-error style of
// go-dws's internal/interp/errors (NewXxx constructors, a single struct
// with an Error() method; no Unwrap, since no Error wraps a cause) but with
// a closed enum instead of a free-form
// category string, since every Kind here carries different typed context.
package evalerr

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-evalx/internal/value"
)

// Kind identifies one failure mode from the taxonomy in spec section 7.
type Kind int

const (
	// Lex errors.
	UnmatchedDoubleQuote Kind = iota
	IllegalEscapeSequence
	LiteralOverflow
	UnmatchedPartialToken

	// Parse errors.
	UnmatchedLBrace
	UnmatchedRBrace
	AppendedToLeafNode
	PrecedenceViolation
	MissingOperatorOutsideOfBrace

	// Eval — arity.
	WrongOperatorArgumentAmount
	WrongFunctionArgumentAmount

	// Eval — type.
	ExpectedString
	ExpectedInt
	ExpectedFloat
	ExpectedNumber
	ExpectedBoolean
	ExpectedTuple
	ExpectedEmpty
	ExpectedNumberOrString
	ExpectedFixedLengthTuple
	ExpectedRangedLengthTuple

	// Eval — arithmetic.
	AdditionError
	SubtractionError
	NegationError
	MultiplicationError
	DivisionError
	ModulationError

	// Eval — resolution.
	VariableIdentifierNotFound
	FunctionIdentifierNotFound
	ContextNotMutable

	// Eval — misc.
	OutOfBoundsAccess
	InvalidRegex
	IntFromUsize
	RandNotEnabled
	RecursionLimitExceeded
	CustomMessage
)

var kindNames = map[Kind]string{
	UnmatchedDoubleQuote:           "UnmatchedDoubleQuote",
	IllegalEscapeSequence:          "IllegalEscapeSequence",
	LiteralOverflow:                "LiteralOverflow",
	UnmatchedPartialToken:          "UnmatchedPartialToken",
	UnmatchedLBrace:                "UnmatchedLBrace",
	UnmatchedRBrace:                "UnmatchedRBrace",
	AppendedToLeafNode:             "AppendedToLeafNode",
	PrecedenceViolation:            "PrecedenceViolation",
	MissingOperatorOutsideOfBrace:  "MissingOperatorOutsideOfBrace",
	WrongOperatorArgumentAmount:    "WrongOperatorArgumentAmount",
	WrongFunctionArgumentAmount:    "WrongFunctionArgumentAmount",
	ExpectedString:                 "ExpectedString",
	ExpectedInt:                    "ExpectedInt",
	ExpectedFloat:                  "ExpectedFloat",
	ExpectedNumber:                 "ExpectedNumber",
	ExpectedBoolean:                "ExpectedBoolean",
	ExpectedTuple:                  "ExpectedTuple",
	ExpectedEmpty:                  "ExpectedEmpty",
	ExpectedNumberOrString:         "ExpectedNumberOrString",
	ExpectedFixedLengthTuple:       "ExpectedFixedLengthTuple",
	ExpectedRangedLengthTuple:      "ExpectedRangedLengthTuple",
	AdditionError:                  "AdditionError",
	SubtractionError:               "SubtractionError",
	NegationError:                  "NegationError",
	MultiplicationError:            "MultiplicationError",
	DivisionError:                  "DivisionError",
	ModulationError:                "ModulationError",
	VariableIdentifierNotFound:     "VariableIdentifierNotFound",
	FunctionIdentifierNotFound:     "FunctionIdentifierNotFound",
	ContextNotMutable:              "ContextNotMutable",
	OutOfBoundsAccess:              "OutOfBoundsAccess",
	InvalidRegex:                   "InvalidRegex",
	IntFromUsize:                   "IntFromUsize",
	RandNotEnabled:                 "RandNotEnabled",
	RecursionLimitExceeded:         "RecursionLimitExceeded",
	CustomMessage:                  "CustomMessage",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Error is the single structured error type produced by the core. Only the
// fields relevant to Kind are populated; the rest are zero values.
type Error struct {
	Kind Kind

	// Lex payloads.
	Seq     string // IllegalEscapeSequence
	Literal string // LiteralOverflow
	First   string // UnmatchedPartialToken
	Second  string // UnmatchedPartialToken, empty when there is no second partial

	// Arity payloads.
	Expected    int // WrongOperatorArgumentAmount
	Actual      int // WrongOperatorArgumentAmount / WrongFunctionArgumentAmount
	ExpectedMin int // WrongFunctionArgumentAmount
	ExpectedMax int // WrongFunctionArgumentAmount; ExpectedMax < 0 means unbounded (variadic)

	// Type-mismatch payload: the offending value.
	Value value.Value

	// Arithmetic payload: the operands involved.
	Left  value.Value
	Right value.Value

	// Resolution payload.
	Name string // VariableIdentifierNotFound / FunctionIdentifierNotFound

	// Misc payloads.
	Regex   string // InvalidRegex
	Message string // InvalidRegex / CustomMessage
	IntVal  int64  // IntFromUsize / RecursionLimitExceeded
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnmatchedDoubleQuote:
		return "unmatched double quote"
	case IllegalEscapeSequence:
		return fmt.Sprintf("illegal escape sequence: \\%s", e.Seq)
	case LiteralOverflow:
		return fmt.Sprintf("literal out of range: %s", e.Literal)
	case UnmatchedPartialToken:
		if e.Second == "" {
			return fmt.Sprintf("unmatched partial token: %s", e.First)
		}
		return fmt.Sprintf("unmatched partial token: %s followed by %s", e.First, e.Second)
	case UnmatchedLBrace:
		return "unmatched '('"
	case UnmatchedRBrace:
		return "unmatched ')'"
	case AppendedToLeafNode:
		return "attempted to append a child to a leaf node"
	case PrecedenceViolation:
		return "precedence violation while inserting operator"
	case MissingOperatorOutsideOfBrace:
		return "missing operator outside of parentheses"
	case WrongOperatorArgumentAmount:
		return fmt.Sprintf("wrong number of operator arguments: expected %d, got %d", e.Expected, e.Actual)
	case WrongFunctionArgumentAmount:
		if e.ExpectedMax < 0 {
			return fmt.Sprintf("wrong number of function arguments: expected at least %d, got %d", e.ExpectedMin, e.Actual)
		}
		if e.ExpectedMin == e.ExpectedMax {
			return fmt.Sprintf("wrong number of function arguments: expected %d, got %d", e.ExpectedMin, e.Actual)
		}
		return fmt.Sprintf("wrong number of function arguments: expected between %d and %d, got %d", e.ExpectedMin, e.ExpectedMax, e.Actual)
	case ExpectedString, ExpectedInt, ExpectedFloat, ExpectedNumber, ExpectedBoolean,
		ExpectedTuple, ExpectedEmpty, ExpectedNumberOrString, ExpectedFixedLengthTuple, ExpectedRangedLengthTuple:
		return fmt.Sprintf("%s: got %s (%s)", typeMismatchLabel(e.Kind), valueDisplay(e.Value), valueType(e.Value))
	case AdditionError:
		return fmt.Sprintf("integer overflow: %s + %s", valueDisplay(e.Left), valueDisplay(e.Right))
	case SubtractionError:
		return fmt.Sprintf("integer overflow: %s - %s", valueDisplay(e.Left), valueDisplay(e.Right))
	case NegationError:
		return fmt.Sprintf("integer overflow: -%s", valueDisplay(e.Left))
	case MultiplicationError:
		return fmt.Sprintf("integer overflow: %s * %s", valueDisplay(e.Left), valueDisplay(e.Right))
	case DivisionError:
		return fmt.Sprintf("division error: %s / %s", valueDisplay(e.Left), valueDisplay(e.Right))
	case ModulationError:
		return fmt.Sprintf("modulo error: %s %% %s", valueDisplay(e.Left), valueDisplay(e.Right))
	case VariableIdentifierNotFound:
		return fmt.Sprintf("variable identifier not found: %s", e.Name)
	case FunctionIdentifierNotFound:
		return fmt.Sprintf("function identifier not found: %s", e.Name)
	case ContextNotMutable:
		return "context is not mutable"
	case OutOfBoundsAccess:
		return "out of bounds access"
	case InvalidRegex:
		return fmt.Sprintf("invalid regex %q: %s", e.Regex, e.Message)
	case IntFromUsize:
		return fmt.Sprintf("value %d does not fit in the target integer type", e.IntVal)
	case RandNotEnabled:
		return "random() is disabled by the current configuration"
	case RecursionLimitExceeded:
		return fmt.Sprintf("recursion limit exceeded at depth %d", e.IntVal)
	case CustomMessage:
		return e.Message
	default:
		return "unknown error"
	}
}

func typeMismatchLabel(k Kind) string {
	return "expected " + strings.TrimPrefix(k.String(), "Expected")
}

func valueDisplay(v value.Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

func valueType(v value.Value) value.Type {
	if v == nil {
		return value.TypeEmpty
	}
	return v.Type()
}

// --- constructors ---

func NewUnmatchedDoubleQuote() *Error { return &Error{Kind: UnmatchedDoubleQuote} }

func NewIllegalEscapeSequence(seq string) *Error {
	return &Error{Kind: IllegalEscapeSequence, Seq: seq}
}

func NewLiteralOverflow(literal string) *Error {
	return &Error{Kind: LiteralOverflow, Literal: literal}
}

func NewUnmatchedPartialToken(first, second string) *Error {
	return &Error{Kind: UnmatchedPartialToken, First: first, Second: second}
}

func NewUnmatchedLBrace() *Error { return &Error{Kind: UnmatchedLBrace} }
func NewUnmatchedRBrace() *Error { return &Error{Kind: UnmatchedRBrace} }
func NewAppendedToLeafNode() *Error { return &Error{Kind: AppendedToLeafNode} }
func NewPrecedenceViolation() *Error { return &Error{Kind: PrecedenceViolation} }
func NewMissingOperatorOutsideOfBrace() *Error { return &Error{Kind: MissingOperatorOutsideOfBrace} }

func NewWrongOperatorArgumentAmount(expected, actual int) *Error {
	return &Error{Kind: WrongOperatorArgumentAmount, Expected: expected, Actual: actual}
}

func NewWrongFunctionArgumentAmount(min, max, actual int) *Error {
	return &Error{Kind: WrongFunctionArgumentAmount, ExpectedMin: min, ExpectedMax: max, Actual: actual}
}

func newExpected(kind Kind, v value.Value) *Error { return &Error{Kind: kind, Value: v} }

func NewExpectedString(v value.Value) *Error            { return newExpected(ExpectedString, v) }
func NewExpectedInt(v value.Value) *Error               { return newExpected(ExpectedInt, v) }
func NewExpectedFloat(v value.Value) *Error             { return newExpected(ExpectedFloat, v) }
func NewExpectedNumber(v value.Value) *Error            { return newExpected(ExpectedNumber, v) }
func NewExpectedBoolean(v value.Value) *Error           { return newExpected(ExpectedBoolean, v) }
func NewExpectedTuple(v value.Value) *Error             { return newExpected(ExpectedTuple, v) }
func NewExpectedEmpty(v value.Value) *Error             { return newExpected(ExpectedEmpty, v) }
func NewExpectedNumberOrString(v value.Value) *Error    { return newExpected(ExpectedNumberOrString, v) }
func NewExpectedFixedLengthTuple(v value.Value) *Error  { return newExpected(ExpectedFixedLengthTuple, v) }
func NewExpectedRangedLengthTuple(v value.Value) *Error { return newExpected(ExpectedRangedLengthTuple, v) }

func NewAdditionError(l, r value.Value) *Error       { return &Error{Kind: AdditionError, Left: l, Right: r} }
func NewSubtractionError(l, r value.Value) *Error    { return &Error{Kind: SubtractionError, Left: l, Right: r} }
func NewNegationError(v value.Value) *Error          { return &Error{Kind: NegationError, Left: v} }
func NewMultiplicationError(l, r value.Value) *Error { return &Error{Kind: MultiplicationError, Left: l, Right: r} }
func NewDivisionError(l, r value.Value) *Error       { return &Error{Kind: DivisionError, Left: l, Right: r} }
func NewModulationError(l, r value.Value) *Error     { return &Error{Kind: ModulationError, Left: l, Right: r} }

func NewVariableIdentifierNotFound(name string) *Error {
	return &Error{Kind: VariableIdentifierNotFound, Name: name}
}

func NewFunctionIdentifierNotFound(name string) *Error {
	return &Error{Kind: FunctionIdentifierNotFound, Name: name}
}

func NewContextNotMutable() *Error { return &Error{Kind: ContextNotMutable} }
func NewOutOfBoundsAccess() *Error { return &Error{Kind: OutOfBoundsAccess} }

func NewInvalidRegex(regex, message string) *Error {
	return &Error{Kind: InvalidRegex, Regex: regex, Message: message}
}

func NewIntFromUsize(v int64) *Error { return &Error{Kind: IntFromUsize, IntVal: v} }
func NewRandNotEnabled() *Error      { return &Error{Kind: RandNotEnabled} }

func NewRecursionLimitExceeded(depth int) *Error {
	return &Error{Kind: RecursionLimitExceeded, IntVal: int64(depth)}
}

func NewCustomMessage(text string) *Error { return &Error{Kind: CustomMessage, Message: text} }

// Is reports whether err is itself an *Error of the given Kind. Wrapped
// errors are not unwrapped.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
