/*
File    : solc/internal/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer performs lexical analysis of Sol source code. It scans
// the source byte by byte, classifying operators, keywords, literals
// and identifiers into token.Token values while tracking line/column
// position for diagnostics.
package lexer

import (
	"strings"

	"github.com/akashmaji946/solc/internal/token"
)

// Error reports a fatal lexical failure. The only defined kind today is
// a numeric literal containing more than one '.'.
type Error struct {
	Line   uint
	Column uint
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// Lexer scans source text into a stream of tokens. It holds a current
// character (or the NUL sentinel at end of input) plus (line, column)
// counters; column resets to 0 after every '\n'.
type Lexer struct {
	src    string
	pos    int
	length int
	curr   byte
	line   uint
	column uint

	err *Error
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		src:    src,
		length: len(src),
		line:   1,
		column: 0,
	}
	if lex.length > 0 {
		lex.curr = src[0]
	}
	return lex
}

// Err returns the fatal lex error encountered, if any. Once set it is
// sticky: NextToken keeps returning token.Eof.
func (l *Lexer) Err() *Error {
	return l.err
}

// peek looks at the next character without consuming it, returning the
// NUL sentinel at end of input.
func (l *Lexer) peek() byte {
	if l.pos+1 >= l.length {
		return 0
	}
	return l.src[l.pos+1]
}

// advance moves one character forward, updating line/column.
func (l *Lexer) advance() {
	l.pos++
	l.column++
	if l.pos >= l.length {
		l.curr = 0
		l.pos = l.length
		return
	}
	l.curr = l.src[l.pos]
	if l.src[l.pos-1] == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) skipWhitespace() {
	for l.curr == ' ' || l.curr == '\t' || l.curr == '\r' || l.curr == '\n' {
		l.advance()
	}
}

// two tries to combine curr with the next character into one of the
// recognised two-character operators; on success it returns the matched
// kind. It consumes nothing: the caller advances past both characters.
func (l *Lexer) two(first byte) (token.Kind, bool) {
	pair := string(first) + string(l.peek())
	switch pair {
	case "**":
		return token.DblStar, true
	case "::":
		return token.DoubleColon, true
	case "==":
		return token.Equals, true
	case "!=":
		return token.NotEquals, true
	case ">=":
		return token.GreaterEqual, true
	case "<=":
		return token.LessEqual, true
	case "&&":
		return token.And, true
	case "||":
		return token.Or, true
	case "->":
		return token.Arrow, true
	case "+=":
		return token.PlusAssign, true
	case "-=":
		return token.MinusAssign, true
	case "*=":
		return token.StarAssign, true
	case "/=":
		return token.SlashAssign, true
	default:
		return "", false
	}
}

var singles = map[byte]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'[': token.LeftBracket,
	']': token.RightBracket,
	':': token.Colon,
	';': token.SemiColon,
	',': token.Comma,
	'.': token.Dot,
	'=': token.Assign,
	'!': token.Not,
	'>': token.GreaterThan,
	'<': token.LessThan,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Asterisk,
	'/': token.Slash,
	'%': token.Percent,
}

// isOperatorStart reports whether c can begin an operator/punctuation
// token, per spec.md's listed operator-character set.
func isOperatorStart(c byte) bool {
	_, ok := singles[c]
	return ok || c == '&' || c == '|'
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_' || c == '$'
}

func isIdentPart(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '$'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// NextToken returns the next token in the stream, or token.Eof once the
// source is exhausted or an unrecognised character is hit (the lexer
// terminates the stream silently on garbage, per spec.md §4.1/§9 — a
// well-behaved reimplementation would instead raise a LexError, which
// readers should flag in the property below: Err() stays nil in that
// case since the source behaviour treats it as clean termination).
func (l *Lexer) NextToken() token.Token {
	if l.err != nil {
		return token.New(token.Eof, "", l.line, l.column, l.column)
	}
	l.skipWhitespace()

	line, start := l.line, l.column

	switch {
	case l.curr == 0:
		return token.New(token.Eof, "", line, start, start)
	case isIdentStart(l.curr):
		return l.readIdentifier(line, start)
	case isDigit(l.curr):
		return l.readNumber(line, start)
	case l.curr == '"':
		return l.readString(line, start)
	case isOperatorStart(l.curr):
		return l.readOperator(line, start)
	default:
		return token.New(token.Eof, "", line, start, start)
	}
}

func (l *Lexer) readIdentifier(line, start uint) token.Token {
	var b strings.Builder
	for isIdentPart(l.curr) {
		b.WriteByte(l.curr)
		l.advance()
	}
	literal := b.String()
	return token.New(token.LookupIdentifier(literal), literal, line, start, l.column)
}

func (l *Lexer) readNumber(line, start uint) token.Token {
	var b strings.Builder
	dots := 0
	for isDigit(l.curr) || l.curr == '.' {
		if l.curr == '.' {
			dots++
			if dots > 1 {
				l.err = &Error{Line: line, Column: l.column, Msg: "multiple '.' in numeric literal"}
				return token.New(token.Eof, "", line, start, l.column)
			}
		}
		b.WriteByte(l.curr)
		l.advance()
	}
	return token.New(token.Number, b.String(), line, start, l.column)
}

func (l *Lexer) readString(line, start uint) token.Token {
	l.advance() // consume opening quote
	var b strings.Builder
	for l.curr != '"' && l.curr != 0 {
		if l.curr == '\\' {
			l.advance()
			switch l.curr {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(l.curr)
			}
			l.advance()
			continue
		}
		b.WriteByte(l.curr)
		l.advance()
	}
	if l.curr == '"' {
		l.advance() // consume closing quote
	}
	return token.New(token.String, b.String(), line, start, l.column)
}

func (l *Lexer) readOperator(line, start uint) token.Token {
	c := l.curr
	if kind, ok := l.two(c); ok {
		l.advance()
		l.advance()
		lit := l.src[l.pos-2 : l.pos]
		return token.New(kind, lit, line, start, l.column)
	}
	// '&' and '|' only exist as the doubled logical operators; a lone
	// occurrence is not part of the grammar and ends the token stream,
	// same as any other unrecognised character.
	if c == '&' || c == '|' {
		return token.New(token.Eof, "", line, start, start)
	}
	kind := singles[c]
	l.advance()
	return token.New(kind, string(c), line, start, l.column)
}

// ConsumeTokens fully tokenizes the source, stopping before the
// terminal Eof. It is the basis of the package-level Lex entry point
// used by tooling (syntax highlighters, REPLs).
func (l *Lexer) ConsumeTokens() []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := l.NextToken()
		if tok.Kind == token.Eof {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Lex tokenizes source in one call.
func Lex(source string) []token.Token {
	return New(source).ConsumeTokens()
}
