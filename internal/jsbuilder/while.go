/*
File    : solc/internal/jsbuilder/while.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package jsbuilder

// While builds a `while (...) { ... }` statement.
type While struct {
	condition JsExpr
	then      *Builder
}

func NewWhile(condition JsExpr) *While {
	return &While{condition: condition, then: NewBuilder()}
}

func (w *While) Then(then *Builder) *While {
	w.then = then
	return w
}

func (w *While) String() string {
	return "while (" + w.condition.String() + ") {\n" + w.then.Source() + "\n}"
}
