/*
File    : solc/internal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a Pratt (precedence-climbing) parser for Sol.
It consumes the lexer's token stream and produces an ast.Program, or
fails with the first structured Error it hits — no recovery is
attempted, per spec.md §4.2/§7.
*/
package parser

import (
	"github.com/akashmaji946/solc/internal/ast"
	"github.com/akashmaji946/solc/internal/lexer"
	"github.com/akashmaji946/solc/internal/token"
)

// Parser holds two-token lookahead over the lexer's stream plus the
// scope bookkeeping the grammar needs: scopeDepth rejects nested `fn`
// definitions, loopDepth is a stack depth (not a single flag) so that
// leaving an inner `while` does not clear breakability for an
// enclosing one — the fix spec.md §9 calls for explicitly.
type Parser struct {
	lex *lexer.Lexer

	current token.Token
	peek    token.Token

	scopeDepth uint
	loopDepth  uint
}

// New creates a Parser over src and primes its two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

// advance shifts peek into current and pulls the next lexer token into
// peek.
func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lex.NextToken()
}

// Parse consumes the whole token stream and returns the resulting
// top-level statement list, or the first parse error encountered.
func (p *Parser) Parse() (ast.Program, *Error) {
	program := make(ast.Program, 0)
	for p.current.Kind != token.Eof {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

// expect verifies current is of kind, consuming it; otherwise returns
// UnexpectedToken.
func (p *Parser) expect(kind token.Kind) *Error {
	if p.current.Kind != kind {
		return p.unexpected(string(kind))
	}
	p.advance()
	return nil
}

func (p *Parser) unexpected(want string) *Error {
	start, end := p.current.Span()
	err := &Error{
		Line:  p.current.Line,
		Span:  [2]uint{start, end},
		Kind:  UnexpectedToken,
		Found: string(p.current.Kind),
	}
	if want != "" {
		err.Want = want
	}
	return err
}

// identifier consumes an Identifier token and returns its literal.
func (p *Parser) identifier() (string, *Error) {
	if p.current.Kind != token.Identifier {
		start, end := p.current.Span()
		return "", &Error{Line: p.current.Line, Span: [2]uint{start, end}, Kind: ExpectedIdentifier, Found: string(p.current.Kind)}
	}
	name := p.current.Literal
	p.advance()
	return name, nil
}

// stringLiteral consumes a String token and returns its literal.
func (p *Parser) stringLiteral() (string, *Error) {
	if p.current.Kind != token.String {
		return "", p.unexpected("String")
	}
	s := p.current.Literal
	p.advance()
	return s, nil
}

// typeAnnotation consumes an optional `: T` or `:: T` annotation.
// spec.md §4.2: both forms are accepted anywhere a type annotation is
// allowed, with no semantic distinction between them.
func (p *Parser) typeAnnotation() (*ast.Type, *Error) {
	if p.current.Kind != token.Colon && p.current.Kind != token.DoubleColon {
		return nil, nil
	}
	p.advance()
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	return &ast.Type{Name: name}, nil
}

// parameters parses a comma-separated parameter list up to (but not
// consuming) the closing ')'. Trailing commas are permitted.
func (p *Parser) parameters() ([]ast.Parameter, *Error) {
	params := make([]ast.Parameter, 0)
	for p.current.Kind != token.RightParen {
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		typ, err := p.typeAnnotation()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Parameter{Name: name, Type: typ})
		if p.current.Kind == token.Comma {
			p.advance()
		} else {
			break
		}
	}
	return params, nil
}

// block parses statements until end is seen (without consuming end).
func (p *Parser) block(end token.Kind) ([]ast.Statement, *Error) {
	stmts := make([]ast.Statement, 0)
	for p.current.Kind != end {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}
