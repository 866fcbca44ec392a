/*
File    : solc/internal/jsbuilder/var.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package jsbuilder

// Var builds a single variable declaration statement. The zero value
// renders with the `var` keyword; AsLet/AsConst override it.
type Var struct {
	id      string
	value   *JsExpr
	isConst bool
	isLet   bool
}

// NewVar returns an empty Var builder.
func NewVar() *Var {
	return &Var{}
}

func (v *Var) AsLet() *Var {
	v.isLet = true
	return v
}

func (v *Var) AsConst() *Var {
	v.isConst = true
	v.isLet = false
	return v
}

func (v *Var) ID(id string) *Var {
	v.id = id
	return v
}

func (v *Var) Value(value JsExpr) *Var {
	v.value = &value
	return v
}

func (v *Var) keyword() string {
	if v.isLet {
		return "let"
	}
	if v.isConst {
		return "const"
	}
	return "var"
}

func (v *Var) String() string {
	out := v.keyword() + " " + v.id
	if v.value != nil {
		out += " = " + v.value.String()
	}
	return out + ";"
}
