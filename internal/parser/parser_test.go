/*
File    : solc/internal/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/solc/internal/ast"
)

func mustParse(t *testing.T, src string) ast.Program {
	t.Helper()
	program, err := New(src).Parse()
	require.Nil(t, err, "unexpected parse error: %v", err)
	return program
}

func TestParser_Let_WithAndWithoutType(t *testing.T) {
	program := mustParse(t, `let x = 1`)
	require.Len(t, program, 1)
	let, ok := program[0].(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "x", let.Identifier)
	num, ok := let.Initial.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, 1.0, num.Value)

	typed := mustParse(t, `let y: Number = 2`)
	require.Len(t, typed, 1)
	typedLet, ok := typed[0].(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "y", typedLet.Identifier)

	doubleColon := mustParse(t, `let z :: Number = 3`)
	require.Len(t, doubleColon, 1)
	dcLet, ok := doubleColon[0].(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "z", dcLet.Identifier)
}

func TestParser_Function_NoParamsNoReturnType(t *testing.T) {
	program := mustParse(t, `fn main() { return 0 }`)
	require.Len(t, program, 1)
	fn, ok := program[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Identifier)
	assert.Empty(t, fn.Parameters)
	assert.Nil(t, fn.ReturnType)
	require.Len(t, fn.Body, 1)
}

func TestParser_Return_RequiresExpression(t *testing.T) {
	_, err := New(`fn main() { return }`).Parse()
	require.NotNil(t, err)
	assert.Equal(t, UnexpectedToken, err.Kind)
}

func TestParser_Function_WithParamsAndReturnType(t *testing.T) {
	program := mustParse(t, `fn add(a: Number, b: Number): Number { return a + b }`)
	fn := program[0].(*ast.Function)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].Name)
	require.NotNil(t, fn.Parameters[0].Type)
	assert.Equal(t, "Number", fn.Parameters[0].Type.Name)
	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, "Number", fn.ReturnType.Name)
}

func TestParser_NestedFunctionDefinition_Rejected(t *testing.T) {
	_, err := New(`fn outer() { fn inner() { } }`).Parse()
	require.NotNil(t, err)
	assert.Equal(t, NestedFunctionDefinition, err.Kind)
}

func TestParser_IfElseIfElse(t *testing.T) {
	program := mustParse(t, `
	if a {
		let x = 1
	} else if b {
		let y = 2
	} else {
		let z = 3
	}
	`)
	top, ok := program[0].(*ast.If)
	require.True(t, ok)
	require.Len(t, top.Otherwise, 1)
	elseIf, ok := top.Otherwise[0].(*ast.If)
	require.True(t, ok)
	require.Len(t, elseIf.Otherwise, 1)
	_, ok = elseIf.Otherwise[0].(*ast.Let)
	require.True(t, ok)
}

func TestParser_WhileBreakContinue(t *testing.T) {
	program := mustParse(t, `
	while true {
		break
		continue
	}
	`)
	w, ok := program[0].(*ast.While)
	require.True(t, ok)
	require.Len(t, w.Then, 2)
	_, ok = w.Then[0].(*ast.Break)
	require.True(t, ok)
	_, ok = w.Then[1].(*ast.Continue)
	require.True(t, ok)
}

func TestParser_Break_OutsideLoop_Rejected(t *testing.T) {
	_, err := New(`break`).Parse()
	require.NotNil(t, err)
	assert.Equal(t, InvalidBreakableScope, err.Kind)
}

func TestParser_Continue_OutsideLoop_Rejected(t *testing.T) {
	_, err := New(`continue`).Parse()
	require.NotNil(t, err)
	assert.Equal(t, InvalidContinuableScope, err.Kind)
}

func TestParser_BreakContinue_NestedLoops_BothLegal(t *testing.T) {
	program := mustParse(t, `
	while true {
		while false {
			break
		}
		continue
	}
	`)
	outer := program[0].(*ast.While)
	inner := outer.Then[0].(*ast.While)
	require.Len(t, inner.Then, 1)
	_, ok := inner.Then[0].(*ast.Break)
	require.True(t, ok)
	_, ok = outer.Then[1].(*ast.Continue)
	require.True(t, ok)
}

func TestParser_Use(t *testing.T) {
	program := mustParse(t, `import A, B from "module"`)
	use, ok := program[0].(*ast.Use)
	require.True(t, ok)
	assert.Equal(t, "module", use.Module)
	assert.Equal(t, []string{"A", "B"}, use.Imports)
}

func TestParser_ArrayLiteral_WithTrailingComma(t *testing.T) {
	program := mustParse(t, `let xs = [1, 2, 3,]`)
	let := program[0].(*ast.Let)
	arr, ok := let.Initial.(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestParser_Index_PlainAndAppend(t *testing.T) {
	program := mustParse(t, `
	let a = xs[0]
	xs[] = 1
	`)
	let := program[0].(*ast.Let)
	idx, ok := let.Initial.(*ast.Index)
	require.True(t, ok)
	require.NotNil(t, idx.Index)

	stmt := program[1].(*ast.ExpressionStatement)
	assign, ok := stmt.Expression.(*ast.Assign)
	require.True(t, ok)
	appendIdx, ok := assign.Target.(*ast.Index)
	require.True(t, ok)
	assert.Nil(t, appendIdx.Index)
}

func TestParser_MapLiteral(t *testing.T) {
	program := mustParse(t, `let m = { "a": 1, "b": 2 }`)
	let := program[0].(*ast.Let)
	m, ok := let.Initial.(*ast.MapLiteral)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, m.Keys)
	assert.Len(t, m.Values, 2)
}

func TestParser_Closure_ShortAndBlockForm(t *testing.T) {
	program := mustParse(t, `
	let f = fn(x) -> x + 1
	let g = fn(x) { return x + 1 }
	`)
	fLet := program[0].(*ast.Let)
	closure, ok := fLet.Initial.(*ast.Closure)
	require.True(t, ok)
	require.Len(t, closure.Body, 1)
	_, ok = closure.Body[0].(*ast.Return)
	require.True(t, ok)

	gLet := program[1].(*ast.Let)
	_, ok = gLet.Initial.(*ast.Closure)
	require.True(t, ok)
}

func TestParser_Prefixes(t *testing.T) {
	program := mustParse(t, `let x = -1`)
	let := program[0].(*ast.Let)
	prefix, ok := let.Initial.(*ast.Prefix)
	require.True(t, ok)
	assert.Equal(t, ast.Subtract, prefix.Op)

	program2 := mustParse(t, `let y = !true`)
	let2 := program2[0].(*ast.Let)
	prefix2, ok := let2.Initial.(*ast.Prefix)
	require.True(t, ok)
	assert.Equal(t, ast.Not, prefix2.Op)
}

func TestParser_InfixPrecedence_MulBeforeAdd(t *testing.T) {
	program := mustParse(t, `let x = 1 + 2 * 3`)
	let := program[0].(*ast.Let)
	add, ok := let.Initial.(*ast.Infix)
	require.True(t, ok)
	assert.Equal(t, ast.Add, add.Op)
	_, ok = add.Left.(*ast.NumberLiteral)
	require.True(t, ok)
	mul, ok := add.Right.(*ast.Infix)
	require.True(t, ok)
	assert.Equal(t, ast.Multiply, mul.Op)
}

func TestParser_InfixPrecedence_MulDivChain(t *testing.T) {
	// 1 + 2 * 3 / 4  =>  1 + ((2 * 3) / 4)
	program := mustParse(t, `let x = 1 + 2 * 3 / 4`)
	let := program[0].(*ast.Let)
	add := let.Initial.(*ast.Infix)
	assert.Equal(t, ast.Add, add.Op)
	div := add.Right.(*ast.Infix)
	assert.Equal(t, ast.Divide, div.Op)
	mul := div.Left.(*ast.Infix)
	assert.Equal(t, ast.Multiply, mul.Op)
}

func TestParser_Assignment_RightAssociative(t *testing.T) {
	// a = b = c  =>  a = (b = c)
	program := mustParse(t, `a = b = c`)
	stmt := program[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expression.(*ast.Assign)
	require.True(t, ok)
	_, ok = outer.Target.(*ast.Identifier)
	require.True(t, ok)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	_, ok = inner.Target.(*ast.Identifier)
	require.True(t, ok)
}

func TestParser_CallChain(t *testing.T) {
	program := mustParse(t, `f(1, 2).g()[0]`)
	stmt := program[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.Index)
	require.True(t, ok)
	require.NotNil(t, idx.Index)
	call2, ok := idx.Array.(*ast.Call)
	require.True(t, ok)
	dot, ok := call2.Callee.(*ast.Dot)
	require.True(t, ok)
	call1, ok := dot.Object.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call1.Args, 2)
}
