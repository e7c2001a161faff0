package tree_test

import (
	"testing"

	"github.com/cwbudde/go-evalx/internal/lexer"
	"github.com/cwbudde/go-evalx/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// compile lexes and parses src, failing the test on any error.
func compile(t *testing.T, src string) string {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", src, err)
	}
	tr, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return tr.String()
}

// TestDisplaySnapshots pins the source-equivalent rendering produced by
// Tree.String() for a representative spread of precedence, associativity
// and sequence-operator shapes, the same go-snaps golden-value pattern
// go-dws's fixture_test.go uses for its interpreter output.
func TestDisplaySnapshots(t *testing.T) {
	sources := map[string]string{
		"precedence":       "2 + 3 * 4",
		"paren_forces_lhs": "(1 + 3) * 7",
		"right_assoc_exp":  "a ^ b ^ c",
		"left_assoc_sub":   "a - b - c",
		"mixed_logic":      "true && false || 5 > 4",
		"tuple_flatten":    "1, 2, 3",
		"chain_assign":     "a = 1; a + 1",
		"function_call":    "min(4.0, 3, x)",
		"unary_neg":        "-(1 + 3) * 7",
		"string_literal":   `str::to_uppercase("hi")`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			snaps.MatchSnapshot(t, name, compile(t, src))
		})
	}
}
