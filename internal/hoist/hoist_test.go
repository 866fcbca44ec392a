/*
File    : solc/internal/hoist/hoist_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package hoist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/solc/internal/ast"
)

func TestPass_FunctionsFirst_StableOrder(t *testing.T) {
	program := ast.Program{
		&ast.Let{Identifier: "x"},
		&ast.Function{Identifier: "a"},
		&ast.Let{Identifier: "y"},
		&ast.Function{Identifier: "b"},
	}
	out := Pass(program)
	require := assert.New(t)
	fnA, ok := out[0].(*ast.Function)
	require.True(ok)
	require.Equal("a", fnA.Identifier)
	fnB, ok := out[1].(*ast.Function)
	require.True(ok)
	require.Equal("b", fnB.Identifier)
	letX, ok := out[2].(*ast.Let)
	require.True(ok)
	require.Equal("x", letX.Identifier)
	letY, ok := out[3].(*ast.Let)
	require.True(ok)
	require.Equal("y", letY.Identifier)
}

func TestPass_DoesNotMutateInput(t *testing.T) {
	original := ast.Program{
		&ast.Let{Identifier: "x"},
		&ast.Function{Identifier: "a"},
	}
	_ = Pass(original)
	_, ok := original[0].(*ast.Let)
	assert.True(t, ok)
}
