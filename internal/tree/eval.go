package tree

import (
	"github.com/cwbudde/go-evalx/internal/builtins"
	"github.com/cwbudde/go-evalx/internal/context"
	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/operator"
	"github.com/cwbudde/go-evalx/internal/value"
)

// DefaultMaxDepth bounds recursive evaluation depth, per spec section 5's
// "Resource bounds": implementations must fail RecursionLimitExceeded
// cleanly rather than overflow. Chain sequences are evaluated with an
// explicit loop instead of recursion (see evalChain) precisely so that the
// pathological "1;1;1;...;1" case from spec section 9 does not need this
// ceiling at all; the ceiling exists for genuinely deep nested expressions.
const DefaultMaxDepth = 4096

// Tree is the immutable, parsed operator tree. Root.Op is always
// operator.RootNode.
type Tree struct {
	Root *Node
}

// evalState threads the active Context and the registry builtins fall back
// to, plus the recursion-depth ceiling, through a single evaluation. The
// current depth itself is passed down as an argument of evalNode.
type evalState struct {
	ctx      context.Context
	builtins *builtins.Registry
	maxDepth int
}

// Eval evaluates the tree against ctx, consulting reg for identifiers ctx
// does not resolve. reg may be nil, in which case builtins.NewRegistry's
// DefaultConfig is used. Depth is bounded by DefaultMaxDepth; use
// EvalWithMaxDepth to override it.
func (t *Tree) Eval(ctx context.Context, reg *builtins.Registry) (value.Value, error) {
	return t.EvalWithMaxDepth(ctx, reg, DefaultMaxDepth)
}

// EvalWithMaxDepth is Eval with an explicit recursion-depth ceiling,
// wired from config.Config.MaxDepth by pkg/evalx.
func (t *Tree) EvalWithMaxDepth(ctx context.Context, reg *builtins.Registry, maxDepth int) (value.Value, error) {
	if reg == nil {
		reg = builtins.NewRegistry(builtins.DefaultConfig())
	}
	st := &evalState{ctx: ctx, builtins: reg, maxDepth: maxDepth}
	return evalNode(t.Root, st, 0)
}

func evalNode(n *Node, st *evalState, depth int) (value.Value, error) {
	if depth > st.maxDepth {
		return nil, evalerr.NewRecursionLimitExceeded(depth)
	}

	switch n.Op {
	case operator.RootNode:
		return evalNode(n.Children[0], st, depth+1)

	case operator.Const:
		return n.Const, nil

	case operator.VariableIdentifier:
		if v, ok := st.ctx.GetValue(n.Name); ok {
			return v, nil
		}
		return nil, evalerr.NewVariableIdentifierNotFound(n.Name)

	case operator.FunctionIdentifier:
		return evalFunctionCall(n, st, depth)

	case operator.Assign:
		return evalAssign(n, st, depth)

	case operator.OpAssign:
		return evalOpAssign(n, st, depth)

	case operator.Chain:
		return evalChain(n, st, depth)

	case operator.Tuple:
		left, err := evalNode(n.Children[0], st, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := evalNode(n.Children[1], st, depth+1)
		if err != nil {
			return nil, err
		}
		return operator.EvalTuple(left, right), nil

	case operator.Neg:
		v, err := evalNode(n.Children[0], st, depth+1)
		if err != nil {
			return nil, err
		}
		return operator.EvalNeg(v)

	case operator.Not:
		v, err := evalNode(n.Children[0], st, depth+1)
		if err != nil {
			return nil, err
		}
		return operator.EvalLogic(operator.Not, v)

	case operator.Add, operator.Sub, operator.Mul, operator.Div, operator.Mod, operator.Exp:
		l, r, err := evalBinaryChildren(n, st, depth)
		if err != nil {
			return nil, err
		}
		return operator.EvalArith(n.Op, l, r)

	case operator.Eq, operator.Neq, operator.Gt, operator.Lt, operator.Geq, operator.Leq:
		l, r, err := evalBinaryChildren(n, st, depth)
		if err != nil {
			return nil, err
		}
		return operator.EvalCompare(n.Op, l, r)

	case operator.And, operator.Or:
		l, r, err := evalBinaryChildren(n, st, depth)
		if err != nil {
			return nil, err
		}
		return operator.EvalLogic(n.Op, l, r)

	default:
		return nil, evalerr.NewCustomMessage("internal: unreachable operator kind in eval")
	}
}

func evalBinaryChildren(n *Node, st *evalState, depth int) (value.Value, value.Value, error) {
	l, err := evalNode(n.Children[0], st, depth+1)
	if err != nil {
		return nil, nil, err
	}
	r, err := evalNode(n.Children[1], st, depth+1)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// evalChain evaluates a (possibly deeply left-nested, per spec invariant 4
// — left-associative operators build left-deep) Chain sequence with an
// explicit loop over the left spine instead of recursion, so that long
// ";"-separated statement sequences cannot blow the recursion-depth
// ceiling. Each right-hand operand is still evaluated recursively, since
// only the spine itself is unbounded in the pathological case.
func evalChain(root *Node, st *evalState, depth int) (value.Value, error) {
	var spine []*Node
	n := root
	for n.Op == operator.Chain {
		spine = append(spine, n)
		n = n.Children[0]
	}

	result, err := evalNode(n, st, depth+1)
	if err != nil {
		return nil, err
	}
	for i := len(spine) - 1; i >= 0; i-- {
		result, err = evalNode(spine[i].Children[1], st, depth+1)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func evalFunctionCall(n *Node, st *evalState, depth int) (value.Value, error) {
	argVal, err := evalNode(n.Children[0], st, depth+1)
	if err != nil {
		return nil, err
	}
	var args []value.Value
	switch v := argVal.(type) {
	case value.Empty:
		args = nil
	case *value.Tuple:
		args = v.Values
	default:
		args = []value.Value{argVal}
	}

	if fn, ok := st.ctx.GetFunction(n.Name); ok {
		return callFunction(fn, args)
	}
	if fn, ok := st.builtins.Lookup(n.Name); ok {
		return callFunction(fn, args)
	}
	return nil, evalerr.NewFunctionIdentifierNotFound(n.Name)
}

func callFunction(fn context.Function, args []value.Value) (value.Value, error) {
	if fn.Arity != nil && *fn.Arity != len(args) {
		return nil, evalerr.NewWrongFunctionArgumentAmount(*fn.Arity, *fn.Arity, len(args))
	}
	return fn.Call(args)
}

func evalAssign(n *Node, st *evalState, depth int) (value.Value, error) {
	name, err := assignTargetName(n.Children[0])
	if err != nil {
		return nil, err
	}
	rhs, err := evalNode(n.Children[1], st, depth+1)
	if err != nil {
		return nil, err
	}
	if err := st.ctx.SetValue(name, rhs); err != nil {
		return nil, err
	}
	return value.EmptyValue, nil
}

// evalOpAssign evaluates "name op= rhs" by reading name's current value,
// applying Base to it and the evaluated rhs, then writing the result back.
// An unbound identifier fails VariableIdentifierNotFound (spec section 9's
// Open Question, resolved conservatively — see DESIGN.md).
func evalOpAssign(n *Node, st *evalState, depth int) (value.Value, error) {
	name, err := assignTargetName(n.Children[0])
	if err != nil {
		return nil, err
	}
	current, ok := st.ctx.GetValue(name)
	if !ok {
		return nil, evalerr.NewVariableIdentifierNotFound(name)
	}
	rhs, err := evalNode(n.Children[1], st, depth+1)
	if err != nil {
		return nil, err
	}

	var next value.Value
	switch n.Base {
	case operator.Add, operator.Sub, operator.Mul, operator.Div, operator.Mod, operator.Exp:
		next, err = operator.EvalArith(n.Base, current, rhs)
	case operator.And, operator.Or:
		next, err = operator.EvalLogic(n.Base, current, rhs)
	default:
		err = evalerr.NewCustomMessage("internal: unsupported OpAssign base operator")
	}
	if err != nil {
		return nil, err
	}
	if err := st.ctx.SetValue(name, next); err != nil {
		return nil, err
	}
	return value.EmptyValue, nil
}

// assignTargetName extracts the bound name from an Assign/OpAssign node's
// left child, which the parser encodes as a Const node carrying a
// *value.String (spec section 4.3, "Assignment targets").
func assignTargetName(target *Node) (string, error) {
	if target.Op != operator.Const {
		return "", evalerr.NewCustomMessage("internal: assignment target is not a Const name node")
	}
	s, ok := target.Const.(*value.String)
	if !ok {
		return "", evalerr.NewCustomMessage("internal: assignment target is not a name")
	}
	return s.Value, nil
}
