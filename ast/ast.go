// Package ast defines the syntax tree produced by the formula parser.
package ast

import "sheet/token"

type Node interface {
	TokenLiteral() string
}

type Expr interface {
	Node
	exprNode()
}

// Number is an integer literal. Sign folded in per the grammar: a unary
// minus is recognised only as the sign of a numeric literal.
type Number struct {
	Token token.Token
	Value int32
}

func (n *Number) exprNode()            {}
func (n *Number) TokenLiteral() string { return n.Token.Literal }

// CellRef is a single cell reference such as "A12".
type CellRef struct {
	Token      token.Token
	Row, Col   int
}

func (c *CellRef) exprNode()            {}
func (c *CellRef) TokenLiteral() string { return c.Token.Literal }

// Range is the "A:B" argument of a range function. It is never reduced
// (corner order preserved) — evaluation and dependency extraction treat
// an un-normalised range differently, see formula.Eval and formula.Dependencies.
type Range struct {
	Token    token.Token
	From, To CellRef
}

func (r *Range) exprNode()            {}
func (r *Range) TokenLiteral() string { return r.Token.Literal }

// Call is a function call: a range function over a Range, SLEEP over an
// arbitrary Expr, or an unknown function (both Range and Arg nil — it
// always evaluates to 0 with no error, a deliberate soft-fail).
type Call struct {
	Token token.Token
	Name  string
	Range *Range
	Arg   Expr
}

func (c *Call) exprNode()            {}
func (c *Call) TokenLiteral() string { return c.Token.Literal }

// Binary is a '+' '-' '*' '/' infix expression.
type Binary struct {
	Token       token.Token
	Op          token.TokenType
	Left, Right Expr
}

func (b *Binary) exprNode()            {}
func (b *Binary) TokenLiteral() string { return b.Token.Literal }
