package tree

import "github.com/cwbudde/go-evalx/internal/operator"

// Nodes returns every node in the tree, pre-order (a node before its
// children, children left to right).
func (t *Tree) Nodes() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return out
}

// Identifier names one VariableIdentifier or FunctionIdentifier occurrence.
type Identifier struct {
	Name       string
	IsFunction bool
}

// Identifiers returns every VariableIdentifier/FunctionIdentifier
// occurrence in the tree, pre-order, one entry per syntactic occurrence
// (spec section 8, "Identifier iteration").
func (t *Tree) Identifiers() []Identifier {
	var out []Identifier
	for _, n := range t.Nodes() {
		switch n.Op {
		case operator.VariableIdentifier:
			out = append(out, Identifier{Name: n.Name, IsFunction: false})
		case operator.FunctionIdentifier:
			out = append(out, Identifier{Name: n.Name, IsFunction: true})
		}
	}
	return out
}

// Variables returns just the VariableIdentifier occurrences.
func (t *Tree) Variables() []string {
	var out []string
	for _, id := range t.Identifiers() {
		if !id.IsFunction {
			out = append(out, id.Name)
		}
	}
	return out
}

// Functions returns just the FunctionIdentifier occurrences.
func (t *Tree) Functions() []string {
	var out []string
	for _, id := range t.Identifiers() {
		if id.IsFunction {
			out = append(out, id.Name)
		}
	}
	return out
}
