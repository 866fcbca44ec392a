/*
File    : solc/internal/jsbuilder/expression.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

JsExpr is a small sum type mirroring the target language's expression
grammar. Its String method is the only thing that matters: it is the
textual rendering the emitter's output is built from. Nothing here
validates or type-checks — the builder trusts its caller completely.
*/
package jsbuilder

import (
	"strconv"
	"strings"
)

// JsExprKind discriminates the JsExpr variants.
type JsExprKind int

const (
	KindString JsExprKind = iota
	KindNumber
	KindBool
	KindNull
	KindArray
	KindObject
	KindIndex
	KindDot
	KindInfix
	KindPrefix
	KindCall
	KindIdentifier
	KindClosure
)

// JsExpr is an immutable target-language expression tree node. Kind
// selects which of its fields are meaningful.
type JsExpr struct {
	Kind JsExprKind

	Str   string
	Num   float64
	Bool  bool
	Items []JsExpr

	// Object preserves insertion order via Keys; no ordering guarantee
	// is promised by the target language, but deterministic output
	// matters for testability.
	Keys   []string
	Values map[string]JsExpr

	Target   *JsExpr // Index/Dot left operand
	IndexKey *JsExpr // Index right operand

	Left  *JsExpr // Infix left operand
	Op    string  // Infix/Prefix operator symbol
	Right *JsExpr // Infix/Prefix right operand

	Callee *JsExpr
	Args   []JsExpr

	Params []JsExpr
	Body   *Builder
}

func String(s string) JsExpr  { return JsExpr{Kind: KindString, Str: s} }
func Number(n float64) JsExpr { return JsExpr{Kind: KindNumber, Num: n} }
func Bool(b bool) JsExpr      { return JsExpr{Kind: KindBool, Bool: b} }
func Null() JsExpr            { return JsExpr{Kind: KindNull} }
func Identifier(id string) JsExpr {
	return JsExpr{Kind: KindIdentifier, Str: id}
}

func Array(items []JsExpr) JsExpr {
	return JsExpr{Kind: KindArray, Items: items}
}

func Object(keys []string, values map[string]JsExpr) JsExpr {
	return JsExpr{Kind: KindObject, Keys: keys, Values: values}
}

func Index(target, index JsExpr) JsExpr {
	return JsExpr{Kind: KindIndex, Target: &target, IndexKey: &index}
}

func Dot(target, property JsExpr) JsExpr {
	return JsExpr{Kind: KindDot, Target: &target, IndexKey: &property}
}

func Infix(left JsExpr, op string, right JsExpr) JsExpr {
	return JsExpr{Kind: KindInfix, Left: &left, Op: op, Right: &right}
}

func Prefix(op string, right JsExpr) JsExpr {
	return JsExpr{Kind: KindPrefix, Op: op, Right: &right}
}

func Call(callee JsExpr, args []JsExpr) JsExpr {
	return JsExpr{Kind: KindCall, Callee: &callee, Args: args}
}

func Closure(params []JsExpr, body *Builder) JsExpr {
	return JsExpr{Kind: KindClosure, Params: params, Body: body}
}

// String renders the expression exactly as the target language spells
// it. Strings are never re-escaped: the lexer already resolved the
// logical string, and this is a direct textual splice.
func (e JsExpr) String() string {
	switch e.Kind {
	case KindString:
		return `"` + e.Str + `"`
	case KindNumber:
		return strconv.FormatFloat(e.Num, 'f', -1, 64)
	case KindBool:
		if e.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	case KindArray:
		parts := make([]string, len(e.Items))
		for i, item := range e.Items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		var b strings.Builder
		b.WriteString("{\n")
		for _, k := range e.Keys {
			b.WriteString(`"` + k + `": ` + e.Values[k].String() + ",\n")
		}
		b.WriteString("\n}")
		return b.String()
	case KindIndex:
		return e.Target.String() + "[" + e.IndexKey.String() + "]"
	case KindDot:
		return e.Target.String() + "." + e.IndexKey.String()
	case KindIdentifier:
		return e.Str
	case KindInfix:
		return e.Left.String() + " " + e.Op + " " + e.Right.String()
	case KindPrefix:
		return e.Op + " " + e.Right.String()
	case KindCall:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = a.String()
		}
		return e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
	case KindClosure:
		parts := make([]string, len(e.Params))
		for i, p := range e.Params {
			parts[i] = p.String()
		}
		return "(" + strings.Join(parts, ", ") + ") => {\n" + e.Body.Source() + "\n}"
	default:
		return ""
	}
}
