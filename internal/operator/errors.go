package operator

import (
	"math"

	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/value"
)

func floatMod(a, b float64) float64 { return math.Mod(a, b) }
func pow(a, b float64) float64      { return math.Pow(a, b) }

func expectedNumberErr(v value.Value) error  { return evalerr.NewExpectedNumber(v) }
func expectedBooleanErr(v value.Value) error { return evalerr.NewExpectedBoolean(v) }

func additionOverflowErr(l, r value.Value) error       { return evalerr.NewAdditionError(l, r) }
func subtractionOverflowErr(l, r value.Value) error     { return evalerr.NewSubtractionError(l, r) }
func multiplicationOverflowErr(l, r value.Value) error  { return evalerr.NewMultiplicationError(l, r) }
func negationOverflowErr(v value.Value) error           { return evalerr.NewNegationError(v) }
func divisionByZeroErr(l, r value.Value) error          { return evalerr.NewDivisionError(l, r) }
func modulationByZeroErr(l, r value.Value) error        { return evalerr.NewModulationError(l, r) }

// wrongOperatorKindErr guards the default branches of the arithmetic/
// compare/logic switches, which are only reachable if a caller passes a
// Kind outside the set that function handles — an internal programming
// error, not a user-input failure.
func wrongOperatorKindErr() error {
	return evalerr.NewCustomMessage("operator eval called with an unsupported operator kind")
}
