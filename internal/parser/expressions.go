/*
File    : solc/internal/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/solc/internal/ast"
	"github.com/akashmaji946/solc/internal/token"
)

// expression is the Pratt loop: it parses one null-denotation term then
// repeatedly extends it with any infix/postfix operator whose left
// binding power exceeds bp.
func (p *Parser) expression(bp int) (ast.Expression, *Error) {
	left, err := p.nud()
	if err != nil {
		return nil, err
	}

	for {
		if lbp, ok := postfixBindingPower(p.current.Kind); ok && lbp > bp {
			left, err = p.led(left)
			if err != nil {
				return nil, err
			}
			continue
		}
		lbp, rbp, ok := infixBindingPower(p.current.Kind)
		if !ok || lbp <= bp {
			break
		}
		opTok := p.current
		p.advance()
		right, err := p.expression(rbp)
		if err != nil {
			return nil, err
		}
		left = p.buildInfix(opTok, left, right)
	}
	return left, nil
}

// nud parses a term with no preceding left operand: literals,
// identifiers, grouping, prefix operators, arrays, maps and closures.
func (p *Parser) nud() (ast.Expression, *Error) {
	switch p.current.Kind {
	case token.Number:
		return p.numberLiteral()
	case token.String:
		lit := p.current.Literal
		p.advance()
		return &ast.StringLiteral{Value: lit}, nil
	case token.True, token.False:
		val := p.current.Kind == token.True
		p.advance()
		return &ast.BoolLiteral{Value: val}, nil
	case token.Identifier:
		name := p.current.Literal
		p.advance()
		return &ast.Identifier{Name: name}, nil
	case token.LeftParen:
		p.advance()
		inner, err := p.expression(minimumBP)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RightParen); err != nil {
			return nil, err
		}
		return inner, nil
	case token.LeftBracket:
		return p.arrayLiteral()
	case token.LeftBrace:
		return p.mapLiteral()
	case token.Fn:
		return p.closure()
	case token.Minus, token.Not:
		op := prefixOp(p.current.Kind)
		p.advance()
		right, err := p.expression(prefixRBP)
		if err != nil {
			return nil, err
		}
		return &ast.Prefix{Op: op, Right: right}, nil
	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) numberLiteral() (ast.Expression, *Error) {
	lit := p.current.Literal
	val, convErr := strconv.ParseFloat(lit, 64)
	if convErr != nil {
		return nil, p.unexpected("Number")
	}
	p.advance()
	return &ast.NumberLiteral{Value: val}, nil
}

// arrayLiteral parses `[e1, e2, ...]` with an optional trailing comma.
func (p *Parser) arrayLiteral() (ast.Expression, *Error) {
	p.advance() // consume '['
	elems := make([]ast.Expression, 0)
	for p.current.Kind != token.RightBracket {
		elem, err := p.expression(minimumBP)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.current.Kind == token.Comma {
			p.advance()
		} else {
			break
		}
	}
	if err := p.expect(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Elements: elems}, nil
}

// mapLiteral parses `{ "key": value, ... }`; keys are always string
// literals, values are arbitrary expressions.
func (p *Parser) mapLiteral() (ast.Expression, *Error) {
	p.advance() // consume '{'
	keys := make([]string, 0)
	values := make(map[string]ast.Expression)
	for p.current.Kind != token.RightBrace {
		key, err := p.stringLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		value, err := p.expression(minimumBP)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		values[key] = value
		if p.current.Kind == token.Comma {
			p.advance()
		} else {
			break
		}
	}
	if err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return &ast.MapLiteral{Keys: keys, Values: values}, nil
}

// closure parses `fn(params) -> EXPR` (sugar for a single Return) or
// `fn(params) { BODY }`. Closures never increment scopeDepth: they may
// be defined inside a function body, only named `fn` statements cannot
// nest.
func (p *Parser) closure() (ast.Expression, *Error) {
	p.advance() // consume 'fn'
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
	if p.current.Kind == token.Arrow {
		p.advance()
		expr, err := p.expression(minimumBP)
		if err != nil {
			return nil, err
		}
		body := []ast.Statement{&ast.Return{Expression: expr}}
		return &ast.Closure{Parameters: params, Body: body}, nil
	}
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	body, err := p.block(token.RightBrace)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return &ast.Closure{Parameters: params, Body: body}, nil
}

// led extends left with the postfix operator currently under the
// cursor: a call, an index (possibly the append form `a[]`), or a dot
// access.
func (p *Parser) led(left ast.Expression) (ast.Expression, *Error) {
	switch p.current.Kind {
	case token.LeftParen:
		p.advance()
		args := make([]ast.Expression, 0)
		for p.current.Kind != token.RightParen {
			arg, err := p.expression(minimumBP)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.current.Kind == token.Comma {
				p.advance()
			} else {
				break
			}
		}
		if err := p.expect(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.Call{Callee: left, Args: args}, nil
	case token.LeftBracket:
		p.advance()
		if p.current.Kind == token.RightBracket {
			p.advance()
			return &ast.Index{Array: left, Index: nil}, nil
		}
		idx, err := p.expression(minimumBP)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RightBracket); err != nil {
			return nil, err
		}
		return &ast.Index{Array: left, Index: idx}, nil
	case token.Dot:
		p.advance()
		property, err := p.expression(postfixBP)
		if err != nil {
			return nil, err
		}
		return &ast.Dot{Object: left, Property: property}, nil
	default:
		return nil, p.unexpected("postfix operator")
	}
}

// buildInfix turns a binary/assignment operator token into the right
// AST node: plain '=' becomes Assign, everything else becomes Infix.
func (p *Parser) buildInfix(opTok token.Token, left, right ast.Expression) ast.Expression {
	if opTok.Kind == token.Assign {
		return &ast.Assign{Target: left, Value: right}
	}
	return &ast.Infix{Left: left, Op: infixOp(opTok.Kind), Right: right}
}

func prefixOp(kind token.Kind) ast.Op {
	switch kind {
	case token.Minus:
		return ast.Subtract
	case token.Not:
		return ast.Not
	default:
		return ast.Not
	}
}

func infixOp(kind token.Kind) ast.Op {
	switch kind {
	case token.Plus:
		return ast.Add
	case token.Minus:
		return ast.Subtract
	case token.Asterisk, token.DblStar:
		return ast.Multiply
	case token.Slash:
		return ast.Divide
	case token.Percent:
		return ast.Mod
	case token.GreaterThan:
		return ast.GreaterThan
	case token.LessThan:
		return ast.LessThan
	case token.GreaterEqual:
		return ast.GreaterThanEquals
	case token.LessEqual:
		return ast.LessThanEquals
	case token.Equals:
		return ast.Equals
	case token.NotEquals:
		return ast.NotEquals
	case token.And:
		return ast.And
	case token.Or:
		return ast.Or
	case token.PlusAssign:
		return ast.AddAssign
	case token.MinusAssign:
		return ast.SubtractAssign
	case token.StarAssign:
		return ast.MultiplyAssign
	case token.SlashAssign:
		return ast.DivideAssign
	default:
		return ast.Add
	}
}
