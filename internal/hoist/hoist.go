/*
File    : solc/internal/hoist/hoist.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package hoist implements the single AST pass the compiler runs before
emission: function hoisting. It reorders top-level statements so every
Function precedes every non-Function, stably within each group.
*/
package hoist

import (
	"sort"

	"github.com/akashmaji946/solc/internal/ast"
)

// Pass stably reorders the top-level program so every *ast.Function
// comes before any other statement. Relative order within each group
// is preserved; nested statements are untouched.
func Pass(program ast.Program) ast.Program {
	out := make(ast.Program, len(program))
	copy(out, program)
	sort.SliceStable(out, func(i, j int) bool {
		_, iFn := out[i].(*ast.Function)
		_, jFn := out[j].(*ast.Function)
		return iFn && !jFn
	})
	return out
}
