// Package parser turns a token stream into an internal/tree.Tree. It is a
// straightforward precedence-climbing recursive-descent parser, one method
// per precedence tier in internal/operator's table (spec section 4.2),
// which is the idiomatic-Go rendition of go-dws's own top-down
// operator-precedence parser (internal/parser.parseExpression's precedence
// argument): that parser threads one numeric precedence through a single
// loop, where this one spells each tier out as its own method so every
// tier's associativity (left-folding loop vs. right-recursive call) is
// visible at the call site instead of buried in a table-driven comparison.
// It produces exactly the trees spec section 4.3's insertion algorithm
// would, without replicating that algorithm's stack-of-roots bookkeeping.
package parser

import (
	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/operator"
	"github.com/cwbudde/go-evalx/internal/token"
	"github.com/cwbudde/go-evalx/internal/tree"
	"github.com/cwbudde/go-evalx/internal/value"
)

// Parse consumes toks (as produced by internal/lexer.Tokenize, including
// its trailing EOF token) and returns the parsed Tree.
func Parse(toks []token.Token) (*tree.Tree, error) {
	p := &parser{toks: toks}
	root, err := p.parseChain()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.EOF {
		return nil, evalerr.NewUnmatchedRBrace()
	}
	return &tree.Tree{Root: tree.NewRoot(root)}, nil
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) cur() token.Token { return p.toks[p.pos] }

func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// parseChain is the grammar's entry point: chain := tuple (";" tuple)*,
// left-associative (spec section 6).
func (p *parser) parseChain() (*tree.Node, error) {
	left, err := p.parseTuple()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Semi {
		p.advance()
		right, err := p.parseTuple()
		if err != nil {
			return nil, err
		}
		left = tree.NewBinary(operator.Chain, left, right)
	}
	return left, nil
}

// parseTuple: tuple := assign ("," assign)*, left-associative.
func (p *parser) parseTuple() (*tree.Node, error) {
	left, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Comma {
		p.advance()
		right, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		left = tree.NewBinary(operator.Tuple, left, right)
	}
	return left, nil
}

// parseAssign: assign := or (("=" | opassign) assign)?, right-associative.
// A bare "=" target must be an identifier; the parser encodes it as a Const
// node carrying that name (spec section 4.3, "Assignment targets"), which
// is also why it is not simply reused as a VariableIdentifier node: the two
// positions have different eval semantics (read vs. bind) despite sharing a
// spelling.
func (p *parser) parseAssign() (*tree.Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	switch p.cur().Kind {
	case token.Assign:
		name, err := targetName(left)
		if err != nil {
			return nil, err
		}
		p.advance()
		rhs, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		return tree.NewBinary(operator.Assign, tree.NewConst(&value.String{Value: name}), rhs), nil

	case token.OpAssign:
		name, err := targetName(left)
		if err != nil {
			return nil, err
		}
		base, err := opAssignBase(p.cur().Op)
		if err != nil {
			return nil, err
		}
		p.advance()
		rhs, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		return tree.NewOpAssign(base, tree.NewConst(&value.String{Value: name}), rhs), nil

	default:
		return left, nil
	}
}

func targetName(n *tree.Node) (string, error) {
	if n.Op != operator.VariableIdentifier {
		return "", evalerr.NewPrecedenceViolation()
	}
	return n.Name, nil
}

func opAssignBase(tk token.Kind) (operator.Kind, error) {
	switch tk {
	case token.Plus:
		return operator.Add, nil
	case token.Minus:
		return operator.Sub, nil
	case token.Star:
		return operator.Mul, nil
	case token.Slash:
		return operator.Div, nil
	case token.Percent:
		return operator.Mod, nil
	case token.Caret:
		return operator.Exp, nil
	case token.AndAnd:
		return operator.And, nil
	case token.OrOr:
		return operator.Or, nil
	default:
		return 0, evalerr.NewCustomMessage("internal: unrecognized compound-assignment operator")
	}
}

// parseOr: or := and ("||" and)*, left-associative, precedence 70.
func (p *parser) parseOr() (*tree.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.OrOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = tree.NewBinary(operator.Or, left, right)
	}
	return left, nil
}

// parseAnd: and := cmp ("&&" cmp)*, left-associative, precedence 75.
func (p *parser) parseAnd() (*tree.Node, error) {
	left, err := p.parseCmp()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.AndAnd {
		p.advance()
		right, err := p.parseCmp()
		if err != nil {
			return nil, err
		}
		left = tree.NewBinary(operator.And, left, right)
	}
	return left, nil
}

var cmpOps = map[token.Kind]operator.Kind{
	token.EqEq: operator.Eq, token.Neq: operator.Neq,
	token.Gt: operator.Gt, token.Lt: operator.Lt,
	token.Geq: operator.Geq, token.Leq: operator.Leq,
}

// parseCmp: cmp := addsub (cmpOp addsub)*, left-associative, precedence 80.
// All six comparison operators share one tier, chained left-to-right, so
// "a < b == c" parses as "(a < b) == c" rather than rejecting the chain.
func (p *parser) parseCmp() (*tree.Node, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := cmpOps[p.cur().Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		left = tree.NewBinary(op, left, right)
	}
}

// parseAddSub: addsub := muldiv (("+"|"-") muldiv)*, left-associative,
// precedence 95.
func (p *parser) parseAddSub() (*tree.Node, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for {
		var op operator.Kind
		switch p.cur().Kind {
		case token.Plus:
			op = operator.Add
		case token.Minus:
			op = operator.Sub
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = tree.NewBinary(op, left, right)
	}
}

// parseMulDiv: muldiv := unary (("*"|"/"|"%") unary)*, left-associative,
// precedence 100.
func (p *parser) parseMulDiv() (*tree.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op operator.Kind
		switch p.cur().Kind {
		case token.Star:
			op = operator.Mul
		case token.Slash:
			op = operator.Div
		case token.Percent:
			op = operator.Mod
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = tree.NewBinary(op, left, right)
	}
}

// parseUnary: unary := ("-" | "!") unary | exp, precedence 110. A leading
// "-" is always prefix negation here, since parseUnary is only ever
// reached in operand position: addsub's loop only treats "-" as infix
// Sub once it already holds a left operand, so there is no separate
// lexer-level disambiguation step.
func (p *parser) parseUnary() (*tree.Node, error) {
	switch p.cur().Kind {
	case token.Minus:
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return tree.NewUnary(operator.Neg, child), nil
	case token.Not:
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return tree.NewUnary(operator.Not, child), nil
	default:
		return p.parseExp()
	}
}

// parseExp: exp := primary ("^" unary)?, right-associative, precedence 120.
// The right operand recurses into parseUnary (not parseExp) so that
// "2 ^ -3" binds the unary minus to 3 before exponentiation, and "2 ^ 3 ^ 4"
// still right-associates because parseUnary falls through to parseExp when
// there is no prefix operator.
func (p *parser) parseExp() (*tree.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.Caret {
		return left, nil
	}
	p.advance()
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return tree.NewBinary(operator.Exp, left, right), nil
}

// parsePrimary: primary := literal | IDENT ("(" expr? ")")? | "(" expr ")".
// An identifier immediately followed by "(" is a function call (spec
// section 4.3, "Function-call recognition"); the call's single child is
// whatever expr follows, or an Empty Const for a zero-argument call (commas
// inside produce a Tuple-valued child per EvalTuple's flattening).
func (p *parser) parsePrimary() (*tree.Node, error) {
	t := p.cur()
	switch t.Kind {
	case token.IntLit:
		p.advance()
		return tree.NewConst(&value.Int{Value: t.IntVal}), nil
	case token.FloatLit:
		p.advance()
		return tree.NewConst(&value.Float{Value: t.FloatVal}), nil
	case token.BoolLit:
		p.advance()
		return tree.NewConst(&value.Boolean{Value: t.BoolVal}), nil
	case token.StringLit:
		p.advance()
		return tree.NewConst(&value.String{Value: t.StrVal}), nil

	case token.Identifier:
		name := t.Ident
		p.advance()
		if p.cur().Kind != token.LParen {
			return tree.NewVariableIdentifier(name), nil
		}
		p.advance()
		if p.cur().Kind == token.RParen {
			p.advance()
			return tree.NewFunctionIdentifier(name, tree.NewConst(value.EmptyValue)), nil
		}
		arg, err := p.parseChain()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != token.RParen {
			return nil, evalerr.NewUnmatchedLBrace()
		}
		p.advance()
		return tree.NewFunctionIdentifier(name, arg), nil

	case token.LParen:
		p.advance()
		if p.cur().Kind == token.RParen {
			p.advance()
			return tree.NewConst(value.EmptyValue), nil
		}
		inner, err := p.parseChain()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != token.RParen {
			return nil, evalerr.NewUnmatchedLBrace()
		}
		p.advance()
		return inner, nil

	case token.RParen:
		return nil, evalerr.NewUnmatchedRBrace()

	case token.EOF:
		return nil, evalerr.NewMissingOperatorOutsideOfBrace()

	default:
		return nil, evalerr.NewMissingOperatorOutsideOfBrace()
	}
}
