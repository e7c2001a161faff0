package tree

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/go-evalx/internal/operator"
	"github.com/cwbudde/go-evalx/internal/value"
)

// String renders t as source-equivalent text: re-parsing it yields a tree
// that evaluates equivalently under any context binding t's identifiers,
// though not necessarily the same byte sequence as the original source
// (spec section 4.4).
func (t *Tree) String() string {
	if len(t.Root.Children) == 0 {
		return ""
	}
	return displayNode(t.Root.Children[0])
}

func displayNode(n *Node) string {
	switch n.Op {
	case operator.Const:
		return displayConst(n.Const)

	case operator.VariableIdentifier, operator.FunctionIdentifier:
		if n.Op == operator.VariableIdentifier {
			return n.Name
		}
		arg := ""
		if len(n.Children) == 1 {
			arg = displayNode(n.Children[0])
		}
		return n.Name + "(" + arg + ")"

	case operator.Neg:
		return "-" + displayChild(n.Children[0], n.Op, true)
	case operator.Not:
		return "!" + displayChild(n.Children[0], n.Op, true)

	case operator.Assign:
		return displayAssignTarget(n.Children[0]) + " = " + displayChild(n.Children[1], n.Op, true)

	case operator.OpAssign:
		return displayAssignTarget(n.Children[0]) + " " + n.Base.String() + "= " + displayChild(n.Children[1], n.Op, true)

	case operator.Tuple:
		return displayChild(n.Children[0], n.Op, false) + ", " + displayChild(n.Children[1], n.Op, true)

	case operator.Chain:
		return displayChild(n.Children[0], n.Op, false) + "; " + displayChild(n.Children[1], n.Op, true)

	default: // binary arithmetic/comparison/logic operators
		return displayChild(n.Children[0], n.Op, false) + " " + n.Op.String() + " " + displayChild(n.Children[1], n.Op, true)
	}
}

// displayChild renders child, parenthesising it when required to preserve
// the parse result: strictly lower precedence always needs parens; equal
// precedence needs parens on the side that would otherwise re-associate
// differently (the right side for left-associative parents, the left side
// for right-associative ones).
func displayChild(child *Node, parentOp operator.Kind, isRightChild bool) string {
	s := displayNode(child)
	if !needsParen(child.Op, parentOp, isRightChild) {
		return s
	}
	return "(" + s + ")"
}

func needsParen(childOp, parentOp operator.Kind, isRightChild bool) bool {
	switch childOp {
	case operator.Const, operator.VariableIdentifier, operator.FunctionIdentifier:
		return false
	}
	cp, pp := operator.Precedence(childOp), operator.Precedence(parentOp)
	if cp < pp {
		return true
	}
	if cp == pp {
		leftAssoc := operator.Associativity(parentOp) == operator.LeftAssoc
		if leftAssoc && isRightChild {
			return true
		}
		if !leftAssoc && !isRightChild {
			return true
		}
	}
	return false
}

func displayAssignTarget(target *Node) string {
	if s, ok := target.Const.(*value.String); ok && target.Op == operator.Const {
		return s.Value
	}
	return displayNode(target)
}

func displayConst(v value.Value) string {
	if f, ok := v.(*value.Float); ok && !math.IsNaN(f.Value) && !math.IsInf(f.Value, 0) {
		// Plain decimal notation with a fractional part, so the literal
		// re-lexes as a Float (never as an Int, never with an exponent).
		out := strconv.FormatFloat(f.Value, 'f', -1, 64)
		if !strings.Contains(out, ".") {
			out += ".0"
		}
		return out
	}
	s, ok := v.(*value.String)
	if !ok {
		return v.String()
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s.Value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
