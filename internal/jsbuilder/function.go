/*
File    : solc/internal/jsbuilder/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package jsbuilder

import "strings"

// Function builds a named target-language function declaration.
type Function struct {
	id         string
	parameters []JsExpr
	body       *Builder
}

func NewFunction() *Function {
	return &Function{body: NewBuilder()}
}

func (fn *Function) ID(id string) *Function {
	fn.id = id
	return fn
}

func (fn *Function) Parameters(parameters []JsExpr) *Function {
	fn.parameters = parameters
	return fn
}

func (fn *Function) Body(body *Builder) *Function {
	fn.body = body
	return fn
}

func (fn *Function) String() string {
	parts := make([]string, len(fn.parameters))
	for i, p := range fn.parameters {
		parts[i] = p.String()
	}
	var b strings.Builder
	b.WriteString("function ")
	b.WriteString(fn.id)
	b.WriteString("(")
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(") {\n")
	b.WriteString(fn.body.Source())
	b.WriteString("\n}\n\n")
	return b.String()
}
