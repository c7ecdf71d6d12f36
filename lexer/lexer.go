package lexer

import "sheet/token"

type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else if l.ch != 0 {
		l.column++
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token
	startLine := l.line
	startColumn := l.column
	startOffset := l.position

	switch {
	case l.ch == '+':
		tok = newToken(token.PLUS, l.ch)
	case l.ch == '-':
		tok = newToken(token.MINUS, l.ch)
		tok.AdjacentDigit = isDigit(l.peekChar())
	case l.ch == '*':
		tok = newToken(token.ASTERISK, l.ch)
	case l.ch == '/':
		tok = newToken(token.SLASH, l.ch)
	case l.ch == '(':
		tok = newToken(token.LPAREN, l.ch)
	case l.ch == ')':
		tok = newToken(token.RPAREN, l.ch)
	case l.ch == ':':
		tok = newToken(token.COLON, l.ch)
	case l.ch == 0:
		tok.Literal = ""
		tok.Type = token.EOF
	case isLetter(l.ch):
		letters := l.readLetters()
		if isDigit(l.ch) {
			digits := l.readDigits()
			tok.Type = token.CELLREF
			tok.Literal = letters + digits
		} else {
			tok.Type = token.IDENT
			tok.Literal = letters
		}
		tok.Line = startLine
		tok.Column = startColumn
		tok.Offset = startOffset
		return tok
	case isDigit(l.ch):
		tok.Type = token.INT
		tok.Literal = l.readDigits()
		tok.Line = startLine
		tok.Column = startColumn
		tok.Offset = startOffset
		return tok
	default:
		tok = newToken(token.ILLEGAL, l.ch)
	}

	tok.Line = startLine
	tok.Column = startColumn
	tok.Offset = startOffset
	l.readChar()
	return tok
}

func newToken(tokenType token.TokenType, ch byte) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}

func (l *Lexer) readLetters() string {
	position := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readDigits() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
