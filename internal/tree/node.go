// Package tree is the operator tree: the parser's output, the evaluator's
// input, and the type that owns typed eval entry points and traversal
// iterators (spec section 4.4). A Tree is immutable once parsing
// completes; Eval performs a post-order walk, recursively evaluating
// children before invoking the operator at each node.
package tree

import (
	"github.com/cwbudde/go-evalx/internal/operator"
	"github.com/cwbudde/go-evalx/internal/value"
)

// Node is the tree's cell: an operator kind, its children in source order,
// and whatever leaf payload that Op needs (Const's value, an identifier
// name, or OpAssign's base operator).
type Node struct {
	Op       operator.Kind
	Children []*Node

	// Const holds the literal value for Const nodes. The parser also uses
	// a Const node to carry an assignment target's name (spec section
	// 4.3, "Assignment targets"), so Assign's left child is a Const
	// wrapping a *value.String rather than a VariableIdentifier.
	Const value.Value

	// Name identifies a VariableIdentifier or FunctionIdentifier node.
	Name string

	// Base is the underlying arithmetic/logical operator for OpAssign
	// nodes (operator.Add, operator.Sub, ... operator.And, operator.Or).
	Base operator.Kind
}

// NewConst builds a Const leaf.
func NewConst(v value.Value) *Node { return &Node{Op: operator.Const, Const: v} }

// NewVariableIdentifier builds a VariableIdentifier leaf.
func NewVariableIdentifier(name string) *Node {
	return &Node{Op: operator.VariableIdentifier, Name: name}
}

// NewFunctionIdentifier builds a FunctionIdentifier node wrapping its single
// argument-tuple child.
func NewFunctionIdentifier(name string, arg *Node) *Node {
	return &Node{Op: operator.FunctionIdentifier, Name: name, Children: []*Node{arg}}
}

// NewBinary builds a two-child operator node.
func NewBinary(op operator.Kind, left, right *Node) *Node {
	return &Node{Op: op, Children: []*Node{left, right}}
}

// NewUnary builds a one-child operator node.
func NewUnary(op operator.Kind, child *Node) *Node {
	return &Node{Op: op, Children: []*Node{child}}
}

// NewOpAssign builds an OpAssign node (e.g. "+=") whose Base is the
// underlying operator applied before writing back.
func NewOpAssign(base operator.Kind, target, rhs *Node) *Node {
	return &Node{Op: operator.OpAssign, Base: base, Children: []*Node{target, rhs}}
}

// NewRoot wraps child in a RootNode, the single-child node every parsed
// Tree starts from.
func NewRoot(child *Node) *Node { return &Node{Op: operator.RootNode, Children: []*Node{child}} }

// IsLeaf reports whether n can take no further children.
func (n *Node) IsLeaf() bool { return operator.Arity(n.Op) == 0 }
