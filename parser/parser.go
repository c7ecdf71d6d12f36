// Package parser implements the recursive-descent parser for the
// formula grammar:
//
//	expr    := term   (('+'|'-') term)*
//	term    := factor (('*'|'/') factor)*
//	factor  := number | cellref | funcall | '(' expr ')'
//	number  := '-'? digit+
//	cellref := letter+ digit+
//	funcall := ident '(' args ')'
//	args    := expr                     (for SLEEP)
//	         | cellref ':' cellref      (for MIN|MAX|SUM|AVG|STDEV)
//	ident   := letter+
package parser

import (
	"strconv"

	"sheet/ast"
	"sheet/ferr"
	"sheet/grid"
	"sheet/lexer"
	"sheet/token"
)

// maxIdentLen caps the length of a function name, cell reference or
// numeric literal; a longer token is rejected as InvalidFormula.
const maxIdentLen = 31

var rangeFuncs = map[string]bool{
	"MIN": true, "MAX": true, "SUM": true, "AVG": true, "STDEV": true,
}

type Parser struct {
	l   *lexer.Lexer
	cur token.Token
	pk  token.Token
}

// Parse parses formula text (already trimmed of leading/trailing
// whitespace by the caller is not required — the lexer skips it) into an
// expression tree, or a *ferr.Error with Kind InvalidFormula.
func Parse(text string) (ast.Expr, *ferr.Error) {
	p := &Parser{l: lexer.New(text)}
	p.next()
	p.next()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EOF {
		return nil, ferr.At(ferr.InvalidFormula, "trailing junk after formula", p.cur)
	}
	return expr, nil
}

func (p *Parser) next() {
	p.cur = p.pk
	p.pk = p.l.NextToken()
}

func (p *Parser) parseExpr() (ast.Expr, *ferr.Error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == token.PLUS || p.cur.Type == token.MINUS {
		opTok := p.cur
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: opTok, Op: opTok.Type, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, *ferr.Error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == token.ASTERISK || p.cur.Type == token.SLASH {
		opTok := p.cur
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: opTok, Op: opTok.Type, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseFactor() (ast.Expr, *ferr.Error) {
	switch {
	case p.cur.Type == token.INT:
		return p.parseNumber(false)
	case p.cur.Type == token.MINUS && p.cur.AdjacentDigit:
		minusTok := p.cur
		p.next()
		if p.cur.Type != token.INT {
			return nil, ferr.At(ferr.InvalidFormula, "malformed numeric literal", minusTok)
		}
		return p.parseNumberFrom(minusTok, true)
	case p.cur.Type == token.CELLREF:
		return p.parseCellRef()
	case p.cur.Type == token.IDENT:
		return p.parseCall()
	case p.cur.Type == token.LPAREN:
		p.next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != token.RPAREN {
			return nil, ferr.At(ferr.InvalidFormula, "unmatched parenthesis", p.cur)
		}
		p.next()
		return expr, nil
	default:
		return nil, ferr.At(ferr.InvalidFormula, "malformed token", p.cur)
	}
}

func (p *Parser) parseNumber(negative bool) (ast.Expr, *ferr.Error) {
	return p.parseNumberFrom(p.cur, negative)
}

func (p *Parser) parseNumberFrom(tok token.Token, negative bool) (ast.Expr, *ferr.Error) {
	if len(p.cur.Literal) > maxIdentLen {
		return nil, ferr.At(ferr.InvalidFormula, "oversized numeric literal", p.cur)
	}
	lit := p.cur.Literal
	p.next()
	n, convErr := strconv.ParseInt(lit, 10, 64)
	if convErr != nil {
		return nil, ferr.At(ferr.InvalidFormula, "malformed numeric literal", tok)
	}
	if negative {
		n = -n
	}
	return &ast.Number{Token: tok, Value: int32(n)}, nil
}

func (p *Parser) parseCellRef() (*ast.CellRef, *ferr.Error) {
	tok := p.cur
	if len(tok.Literal) > maxIdentLen {
		return nil, ferr.At(ferr.InvalidFormula, "oversized identifier", tok)
	}
	row, col, ok := grid.NameToCoords(tok.Literal)
	if !ok {
		return nil, ferr.At(ferr.InvalidFormula, "malformed cell reference", tok)
	}
	p.next()
	return &ast.CellRef{Token: tok, Row: row, Col: col}, nil
}

func (p *Parser) parseCall() (ast.Expr, *ferr.Error) {
	nameTok := p.cur
	name := nameTok.Literal
	if len(name) > maxIdentLen {
		return nil, ferr.At(ferr.InvalidFormula, "oversized identifier", nameTok)
	}
	p.next()
	if p.cur.Type != token.LPAREN {
		return nil, ferr.At(ferr.InvalidFormula, "malformed token", p.cur)
	}
	p.next()

	switch {
	case name == "SLEEP":
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != token.RPAREN {
			return nil, ferr.At(ferr.InvalidFormula, "unmatched parenthesis", p.cur)
		}
		p.next()
		return &ast.Call{Token: nameTok, Name: name, Arg: arg}, nil

	case rangeFuncs[name]:
		from, err := p.parseCellRef()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != token.COLON {
			return nil, ferr.At(ferr.InvalidFormula, "missing colon in range call", p.cur)
		}
		p.next()
		to, err := p.parseCellRef()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != token.RPAREN {
			return nil, ferr.At(ferr.InvalidFormula, "unmatched parenthesis", p.cur)
		}
		p.next()
		return &ast.Call{Token: nameTok, Name: name, Range: &ast.Range{Token: nameTok, From: *from, To: *to}}, nil

	default:
		// Unknown function: deliberate soft-fail preserved from the
		// source. Consume up to (and including) the matching ')',
		// without tracking nesting depth — same as the char-level scan
		// in the original C parser.
		for p.cur.Type != token.RPAREN {
			if p.cur.Type == token.EOF {
				return nil, ferr.At(ferr.InvalidFormula, "unmatched parenthesis", p.cur)
			}
			p.next()
		}
		p.next()
		return &ast.Call{Token: nameTok, Name: name}, nil
	}
}
