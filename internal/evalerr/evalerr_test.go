package evalerr

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-evalx/internal/value"
)

func TestIs(t *testing.T) {
	err := NewVariableIdentifierNotFound("x")
	if !Is(err, VariableIdentifierNotFound) {
		t.Errorf("Is should report the constructed Kind")
	}
	if Is(err, FunctionIdentifierNotFound) {
		t.Errorf("Is should not match an unrelated Kind")
	}
	if Is(nil, VariableIdentifierNotFound) {
		t.Errorf("Is(nil, ...) should be false")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains string
	}{
		{"division by zero", NewDivisionError(&value.Int{Value: 1}, &value.Int{Value: 0}), "division error"},
		{"not found", NewVariableIdentifierNotFound("missing"), "missing"},
		{"wrong arity exact", NewWrongFunctionArgumentAmount(2, 2, 1), "expected 2, got 1"},
		{"wrong arity variadic", NewWrongFunctionArgumentAmount(1, -1, 0), "expected at least 1, got 0"},
		{"custom message", NewCustomMessage("boom"), "boom"},
		{"expected type", NewExpectedInt(&value.String{Value: "x"}), "expected Int"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := tt.err.Error(); !strings.Contains(msg, tt.contains) {
				t.Errorf("Error() = %q, want substring %q", msg, tt.contains)
			}
		})
	}
}
