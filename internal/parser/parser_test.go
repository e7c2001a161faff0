package parser

import (
	"testing"

	"github.com/cwbudde/go-evalx/internal/context"
	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/lexer"
	"github.com/cwbudde/go-evalx/internal/value"
)

func parseAndEval(t *testing.T, src string, ctx context.Context) (value.Value, error) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	tr, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	return tr.Eval(ctx, nil)
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string // rendered via value.Value.String()
	}{
		{"mul binds tighter than add", "1 + 2 * 3", "7"},
		{"sub is left-associative", "10 - 2 - 3", "5"},
		{"exp is right-associative", "2 ^ 3 ^ 2", "512"}, // 2 ^ (3 ^ 2) = 2^9, not (2^3)^2 = 64
		{"parens override precedence", "(1 + 2) * 3", "9"},
		{"unary minus binds tighter than mul", "-2 * 3", "-6"},
		{"unary minus before exp operand", "2 ^ -1", "0.5"},
		{"not", "!false", "true"},
		{"comparison chain", "1 < 2 == true", "true"},
		{"logical precedence", "true || false && false", "true"}, // && binds tighter than ||
		{"tuple", "1, 2, 3", "(1, 2, 3)"},
		{"chain discards left", "1; 2; 3", "3"},
		{"function call", "abs(-5)", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseAndEval(t, tt.src, context.EmptyContext{})
			if err != nil {
				t.Fatalf("eval(%q) error: %v", tt.src, err)
			}
			if v.String() != tt.expected {
				t.Errorf("eval(%q) = %q, want %q", tt.src, v.String(), tt.expected)
			}
		})
	}
}

func TestParseAssignment(t *testing.T) {
	ctx := context.NewHashMapContext()
	_, err := parseAndEval(t, "x = 5; y = x + 1; y", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := ctx.GetValue("y")
	if !ok || v.(*value.Int).Value != 6 {
		t.Errorf("y should be bound to 6, got %v, %v", v, ok)
	}
}

// TestParseChainedRightAssociativeAssign exercises right-associative
// parsing of "=": "a = b = 3" must parse as "a = (b = 3)", so a is bound
// to Assign's contractual Empty result and b to 3 — Assign never
// propagates its RHS's value, per spec section 4.2's eval contract.
func TestParseChainedRightAssociativeAssign(t *testing.T) {
	ctx := context.NewHashMapContext()
	if _, err := parseAndEval(t, "a = b = 3", ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := ctx.GetValue("a")
	b, _ := ctx.GetValue("b")
	if _, ok := a.(value.Empty); !ok {
		t.Errorf("a should be bound to Empty (Assign's eval contract), got %v", a)
	}
	if b.(*value.Int).Value != 3 {
		t.Errorf("b should be bound to 3, got %v", b)
	}
}

func TestParseCompoundAssign(t *testing.T) {
	ctx := context.NewHashMapContext(context.WithValue("x", &value.Int{Value: 10}))
	v, err := parseAndEval(t, "x += 5; x", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*value.Int).Value != 15 {
		t.Errorf("x += 5 should yield 15, got %v", v)
	}
}

func TestParseUnmatchedParens(t *testing.T) {
	_, err := parseAndEval(t, "(1 + 2", context.EmptyContext{})
	if !evalerr.Is(err, evalerr.UnmatchedLBrace) {
		t.Errorf("expected UnmatchedLBrace, got %v", err)
	}
}

func TestParseStrayCloseParen(t *testing.T) {
	_, err := parseAndEval(t, "1 + 2)", context.EmptyContext{})
	if !evalerr.Is(err, evalerr.UnmatchedRBrace) {
		t.Errorf("expected UnmatchedRBrace, got %v", err)
	}
}

func TestParseEmptyInputFails(t *testing.T) {
	_, err := parseAndEval(t, "", context.EmptyContext{})
	if err == nil {
		t.Errorf("empty input should fail to parse")
	}
}

func TestParseEmptyParensIsEmptyValue(t *testing.T) {
	v, err := parseAndEval(t, "()", context.EmptyContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.Empty); !ok {
		t.Errorf("() should evaluate to Empty, got %v", v)
	}
}

func TestParseFunctionCallWithNoArgs(t *testing.T) {
	ctx := context.NewHashMapContext()
	zero := 0
	ctx.SetFunction("nowish", context.Function{
		Arity: &zero,
		Call:  func(args []value.Value) (value.Value, error) { return &value.Int{Value: 7}, nil },
	})
	v, err := parseAndEval(t, "nowish()", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*value.Int).Value != 7 {
		t.Errorf("nowish() = %v, want 7", v)
	}
}

func TestParseFunctionCallWithMultipleArgs(t *testing.T) {
	v, err := parseAndEval(t, "max(1, 5, 3)", context.EmptyContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*value.Int).Value != 5 {
		t.Errorf("max(1, 5, 3) = %v, want 5", v)
	}
}

func TestParseDisplayRoundTrip(t *testing.T) {
	toks, err := lexer.Tokenize("1 + 2 * 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr, err := Parse(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.String() != "1 + 2 * 3" {
		t.Errorf("String() = %q, want %q", tr.String(), "1 + 2 * 3")
	}
}
