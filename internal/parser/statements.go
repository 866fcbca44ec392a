/*
File    : solc/internal/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/solc/internal/ast"
	"github.com/akashmaji946/solc/internal/token"
)

func (p *Parser) parseStatement() (ast.Statement, *Error) {
	switch p.current.Kind {
	case token.Let:
		return p.parseLet()
	case token.Fn:
		return p.parseFunction()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.Return:
		return p.parseReturn()
	case token.Import:
		return p.parseUse()
	case token.Break:
		return p.parseBreak()
	case token.Continue:
		return p.parseContinue()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLet handles `let NAME [: Type] = EXPR [;]`. The type annotation
// is parsed and discarded; ast.Let does not carry it.
func (p *Parser) parseLet() (ast.Statement, *Error) {
	p.advance() // consume 'let'
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.typeAnnotation(); err != nil {
		return nil, err
	}
	if err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	value, err := p.expression(minimumBP)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.Let{Identifier: name, Initial: value}, nil
}

// parseFunction handles `fn NAME(params) [: Type] { body }`. Nested
// function definitions are rejected: scopeDepth is only ever non-zero
// while parsing another Function's body.
func (p *Parser) parseFunction() (ast.Statement, *Error) {
	if p.scopeDepth > 0 {
		start, end := p.current.Span()
		return nil, &Error{Line: p.current.Line, Span: [2]uint{start, end}, Kind: NestedFunctionDefinition}
	}
	p.advance() // consume 'fn'
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	params, err := p.parameters()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	retType, err := p.typeAnnotation()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	p.scopeDepth++
	body, err := p.block(token.RightBrace)
	p.scopeDepth--
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return &ast.Function{Identifier: name, Parameters: params, ReturnType: retType, Body: body}, nil
}

// parseIf handles `if COND { THEN } [else (if ... | { OTHERWISE })]`.
func (p *Parser) parseIf() (ast.Statement, *Error) {
	p.advance() // consume 'if'
	cond, err := p.expression(minimumBP)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	then, err := p.block(token.RightBrace)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	var otherwise []ast.Statement
	if p.current.Kind == token.Else {
		p.advance()
		if p.current.Kind == token.If {
			elseIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			otherwise = []ast.Statement{elseIf}
		} else {
			if err := p.expect(token.LeftBrace); err != nil {
				return nil, err
			}
			otherwise, err = p.block(token.RightBrace)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RightBrace); err != nil {
				return nil, err
			}
		}
	}
	return &ast.If{Condition: cond, Then: then, Otherwise: otherwise}, nil
}

// parseWhile handles `while COND { THEN }`, tracking loopDepth so Break
// and Continue inside THEN (or any statement nested in it) are legal.
func (p *Parser) parseWhile() (ast.Statement, *Error) {
	p.advance() // consume 'while'
	cond, err := p.expression(minimumBP)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	p.loopDepth++
	then, err := p.block(token.RightBrace)
	p.loopDepth--
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Then: then}, nil
}

// parseReturn handles `return EXPR`. The expression is mandatory: Sol
// has no bare `return` form.
func (p *Parser) parseReturn() (ast.Statement, *Error) {
	p.advance() // consume 'return'
	value, err := p.expression(minimumBP)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.Return{Expression: value}, nil
}

// parseUse handles `import A, B, C from "module"`.
func (p *Parser) parseUse() (ast.Statement, *Error) {
	p.advance() // consume 'import'
	imports := make([]string, 0, 1)
	for {
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		imports = append(imports, name)
		if p.current.Kind != token.Comma {
			break
		}
		p.advance()
	}
	if err := p.expect(token.From); err != nil {
		return nil, err
	}
	module, err := p.stringLiteral()
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.Use{Module: module, Imports: imports}, nil
}

func (p *Parser) parseBreak() (ast.Statement, *Error) {
	if p.loopDepth == 0 {
		start, end := p.current.Span()
		return nil, &Error{Line: p.current.Line, Span: [2]uint{start, end}, Kind: InvalidBreakableScope}
	}
	p.advance()
	p.skipSemicolon()
	return &ast.Break{}, nil
}

func (p *Parser) parseContinue() (ast.Statement, *Error) {
	if p.loopDepth == 0 {
		start, end := p.current.Span()
		return nil, &Error{Line: p.current.Line, Span: [2]uint{start, end}, Kind: InvalidContinuableScope}
	}
	p.advance()
	p.skipSemicolon()
	return &ast.Continue{}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, *Error) {
	expr, err := p.expression(minimumBP)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.ExpressionStatement{Expression: expr}, nil
}

// skipSemicolon swallows an optional trailing ';'; Sol statements never
// require one.
func (p *Parser) skipSemicolon() {
	if p.current.Kind == token.SemiColon {
		p.advance()
	}
}
