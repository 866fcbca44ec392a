/*
File    : solc/internal/jsbuilder/expression_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package jsbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJsExpr_Strings(t *testing.T) {
	assert.Equal(t, `"Hello!"`, String("Hello!").String())
}

func TestJsExpr_Numbers(t *testing.T) {
	assert.Equal(t, "1234", Number(1234).String())
	assert.Equal(t, "1234.5", Number(1234.5).String())
}

func TestJsExpr_Bools(t *testing.T) {
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
}

func TestJsExpr_Null(t *testing.T) {
	assert.Equal(t, "null", Null().String())
}

func TestJsExpr_Arrays(t *testing.T) {
	arr := Array([]JsExpr{Number(1), Number(2), Number(3)})
	assert.Equal(t, "[1, 2, 3]", arr.String())
}

func TestJsExpr_Objects(t *testing.T) {
	obj := Object([]string{"foo"}, map[string]JsExpr{"foo": String("bar")})
	assert.Equal(t, "{\n\"foo\": \"bar\",\n\n}", obj.String())
}

func TestJsExpr_Indexes(t *testing.T) {
	idx := Index(Array([]JsExpr{Number(1)}), Number(0))
	assert.Equal(t, "[1][0]", idx.String())
}

func TestJsExpr_Dots(t *testing.T) {
	d := Dot(Identifier("foo"), Identifier("length"))
	assert.Equal(t, "foo.length", d.String())
}

func TestJsExpr_Infix(t *testing.T) {
	expr := Infix(Number(1), "+", Number(2))
	assert.Equal(t, "1 + 2", expr.String())
}

func TestJsExpr_Calls(t *testing.T) {
	assert.Equal(t, "foo()", Call(Identifier("foo"), nil).String())
	assert.Equal(t, "foo(bar)", Call(Identifier("foo"), []JsExpr{Identifier("bar")}).String())
}

func TestJsExpr_Prefix(t *testing.T) {
	assert.Equal(t, "- 1", Prefix("-", Number(1)).String())
	assert.Equal(t, "! true", Prefix("!", Bool(true)).String())
}

func TestJsExpr_Closure(t *testing.T) {
	body := NewBuilder()
	body.Return(&JsExpr{Kind: KindIdentifier, Str: "x"})
	closure := Closure([]JsExpr{Identifier("x")}, body)
	assert.Equal(t, "(x) => {\nreturn x;\n}", closure.String())
}
