/*
File    : solc/internal/compiler/compiler.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package compiler ties the pipeline together: lex -> parse -> hoist ->
emit. It is the only pipeline package the CLI driver and the REPL
import.
*/
package compiler

import (
	"github.com/akashmaji946/solc/internal/ast"
	"github.com/akashmaji946/solc/internal/hoist"
	"github.com/akashmaji946/solc/internal/jsbuilder"
	"github.com/akashmaji946/solc/internal/lexer"
	"github.com/akashmaji946/solc/internal/parser"
	"github.com/akashmaji946/solc/internal/token"
)

// assertTypeHelper is the name of the runtime helper the driver's
// polyfill prelude must provide; parameter type assertions call it.
const assertTypeHelper = "__sol_assert_type"

// Lex runs the lexer alone and returns its tokens, primarily for
// tooling (the REPL's debug mode) rather than compilation itself.
func Lex(source string) []token.Token {
	return lexer.Lex(source)
}

// Parse runs lexing and parsing and returns the resulting AST, without
// running any lowering passes or emission.
func Parse(source string) (ast.Program, *parser.Error) {
	return parser.New(source).Parse()
}

// Compile runs the full pipeline and returns the emitted target text.
func Compile(source string) (string, *parser.Error) {
	program, err := Parse(source)
	if err != nil {
		return "", err
	}
	program = hoist.Pass(program)

	c := newEmitter()
	for _, stmt := range program {
		c.statement(stmt)
	}
	return c.builder.Source(), nil
}

// emitter walks an already-hoisted AST and writes target text through
// a jsbuilder.Builder. A fresh emitter is created for every nested
// block (function/if/while body) so each owns its own output buffer,
// mirroring the teacher's recursive-builder-per-scope structure.
type emitter struct {
	builder *jsbuilder.Builder
}

func newEmitter() *emitter {
	return &emitter{builder: jsbuilder.NewBuilder()}
}

func (c *emitter) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Use:
		c.builder.Import(s.Imports, s.Module)
	case *ast.Let:
		v := jsbuilder.NewVar().ID(s.Identifier).AsLet().Value(c.expression(s.Initial))
		c.builder.Var(v)
	case *ast.Function:
		c.statementFunction(s)
	case *ast.Return:
		expr := c.expression(s.Expression)
		c.builder.Return(&expr)
	case *ast.While:
		cond := c.expression(s.Condition)
		body := newEmitter()
		for _, st := range s.Then {
			body.statement(st)
		}
		c.builder.WhileLoop(jsbuilder.NewWhile(cond).Then(body.builder))
	case *ast.If:
		cond := c.expression(s.Condition)
		then := newEmitter()
		for _, st := range s.Then {
			then.statement(st)
		}
		ie := jsbuilder.NewIfElse(cond).Then(then.builder)
		if len(s.Otherwise) > 0 {
			otherwise := newEmitter()
			for _, st := range s.Otherwise {
				otherwise.statement(st)
			}
			ie.Otherwise(otherwise.builder)
		}
		c.builder.Conditional(ie)
	case *ast.Break:
		c.builder.Break()
	case *ast.Continue:
		c.builder.Continue()
	case *ast.ExpressionStatement:
		c.builder.Expression(c.expression(s.Expression))
	}
}

// statementFunction emits a named function, prepending one
// __sol_assert_type call per typed parameter per spec.md's lowering;
// closures never receive this treatment (see expressionClosure).
func (c *emitter) statementFunction(s *ast.Function) {
	body := newEmitter()
	for _, param := range s.Parameters {
		if param.Type != nil {
			body.builder.Expression(jsbuilder.Call(
				jsbuilder.Identifier(assertTypeHelper),
				[]jsbuilder.JsExpr{jsbuilder.Identifier(param.Name), jsbuilder.Identifier(param.Type.Name)},
			))
		}
	}
	for _, st := range s.Body {
		body.statement(st)
	}

	params := make([]jsbuilder.JsExpr, len(s.Parameters))
	for i, p := range s.Parameters {
		params[i] = jsbuilder.Identifier(p.Name)
	}

	fn := jsbuilder.NewFunction().ID(s.Identifier).Parameters(params).Body(body.builder)
	c.builder.Function(fn)
}

func (c *emitter) expression(expr ast.Expression) jsbuilder.JsExpr {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return jsbuilder.String(e.Value)
	case *ast.NumberLiteral:
		return jsbuilder.Number(e.Value)
	case *ast.BoolLiteral:
		return jsbuilder.Bool(e.Value)
	case *ast.ArrayLiteral:
		items := make([]jsbuilder.JsExpr, len(e.Elements))
		for i, el := range e.Elements {
			items[i] = c.expression(el)
		}
		return jsbuilder.Array(items)
	case *ast.MapLiteral:
		values := make(map[string]jsbuilder.JsExpr, len(e.Values))
		for k, v := range e.Values {
			values[k] = c.expression(v)
		}
		return jsbuilder.Object(e.Keys, values)
	case *ast.Identifier:
		return jsbuilder.Identifier(e.Name)
	case *ast.Infix:
		return jsbuilder.Infix(c.expression(e.Left), opSymbol(e.Op), c.expression(e.Right))
	case *ast.Prefix:
		return jsbuilder.Prefix(prefixSymbol(e.Op), c.expression(e.Right))
	case *ast.Call:
		args := make([]jsbuilder.JsExpr, len(e.Args))
		for i, a := range e.Args {
			args[i] = c.expression(a)
		}
		return jsbuilder.Call(c.expression(e.Callee), args)
	case *ast.Assign:
		return jsbuilder.Infix(c.expression(e.Target), "=", c.expression(e.Value))
	case *ast.Index:
		return c.expressionIndex(e)
	case *ast.Dot:
		return jsbuilder.Dot(c.expression(e.Object), c.expression(e.Property))
	case *ast.Closure:
		return c.expressionClosure(e)
	default:
		return jsbuilder.Null()
	}
}

// expressionIndex lowers the append form `a[]` (Index == nil) to
// `a[a.length]`. The array expression is emitted twice, so the target
// text evaluates it twice (once for the access, once for `.length`).
func (c *emitter) expressionIndex(e *ast.Index) jsbuilder.JsExpr {
	array := c.expression(e.Array)
	if e.Index == nil {
		return jsbuilder.Index(array, jsbuilder.Dot(array, jsbuilder.Identifier("length")))
	}
	return jsbuilder.Index(array, c.expression(e.Index))
}

// expressionClosure never injects type assertions, matching
// compile_statement's Function-only treatment in the reference
// compiler.
func (c *emitter) expressionClosure(e *ast.Closure) jsbuilder.JsExpr {
	body := newEmitter()
	for _, st := range e.Body {
		body.statement(st)
	}
	params := make([]jsbuilder.JsExpr, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = jsbuilder.Identifier(p.Name)
	}
	return jsbuilder.Closure(params, body.builder)
}

// opSymbol maps an ast.Op to its target-language infix spelling.
// Equals/NotEquals deliberately lower to strict (===/!==) operators.
func opSymbol(op ast.Op) string {
	switch op {
	case ast.Add:
		return "+"
	case ast.Subtract:
		return "-"
	case ast.Multiply:
		return "*"
	case ast.Divide:
		return "/"
	case ast.Mod:
		return "%"
	case ast.GreaterThan:
		return ">"
	case ast.LessThan:
		return "<"
	case ast.GreaterThanEquals:
		return ">="
	case ast.LessThanEquals:
		return "<="
	case ast.Equals:
		return "==="
	case ast.NotEquals:
		return "!=="
	case ast.And:
		return "&&"
	case ast.Or:
		return "||"
	case ast.AddAssign:
		return "+="
	case ast.SubtractAssign:
		return "-="
	case ast.MultiplyAssign:
		return "*="
	case ast.DivideAssign:
		return "/="
	default:
		return "?"
	}
}

func prefixSymbol(op ast.Op) string {
	if op == ast.Not {
		return "!"
	}
	return "-"
}
