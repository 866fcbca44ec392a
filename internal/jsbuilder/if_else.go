/*
File    : solc/internal/jsbuilder/if_else.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package jsbuilder

// IfElse builds an `if (...) { ... } [else { ... }]` statement.
type IfElse struct {
	condition JsExpr
	then      *Builder
	otherwise *Builder
}

func NewIfElse(condition JsExpr) *IfElse {
	return &IfElse{condition: condition, then: NewBuilder()}
}

func (ie *IfElse) Then(then *Builder) *IfElse {
	ie.then = then
	return ie
}

func (ie *IfElse) Otherwise(otherwise *Builder) *IfElse {
	ie.otherwise = otherwise
	return ie
}

func (ie *IfElse) String() string {
	out := "if (" + ie.condition.String() + ") {\n" + ie.then.Source() + "\n}"
	if ie.otherwise != nil {
		out += " else {\n" + ie.otherwise.Source() + "\n}"
	}
	return out + "\n"
}
