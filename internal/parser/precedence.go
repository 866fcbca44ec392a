/*
File    : solc/internal/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/solc/internal/token"

// Binding powers for the Pratt expression parser. Higher binds tighter.
// Pairs are (left binding power, right binding power); a higher rbp
// than the following operator's lbp makes that operator left-
// associative, a lower one makes it right-associative (used for
// assignment, per spec.md §4.2's precedence table).
const (
	minimumBP = 0

	mulBP            = 13
	mulRBP           = 14
	addBP            = 11
	addRBP           = 12
	relationalBP     = 9
	relationalRBP    = 10
	equalityBP       = 7
	equalityRBP      = 8
	andBP            = 5
	andRBP           = 6
	orBP             = 3
	orRBP            = 4
	assignBP         = 2
	assignRBP        = 1
	prefixRBP        = 99
	postfixBP        = 19
)

// infixBindingPower returns (lbp, rbp) for an infix/assignment operator
// token, or ok=false if kind is not one.
func infixBindingPower(kind token.Kind) (lbp, rbp int, ok bool) {
	switch kind {
	case token.Asterisk, token.Slash, token.Percent, token.DblStar:
		return mulBP, mulRBP, true
	case token.Plus, token.Minus:
		return addBP, addRBP, true
	case token.GreaterThan, token.GreaterEqual, token.LessThan, token.LessEqual:
		return relationalBP, relationalRBP, true
	case token.Equals, token.NotEquals:
		return equalityBP, equalityRBP, true
	case token.And:
		return andBP, andRBP, true
	case token.Or:
		return orBP, orRBP, true
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign:
		return assignBP, assignRBP, true
	default:
		return 0, 0, false
	}
}

// postfixBindingPower reports the left binding power of a postfix
// operator ('(', '[', '.'), or ok=false if kind is not one.
func postfixBindingPower(kind token.Kind) (lbp int, ok bool) {
	switch kind {
	case token.LeftParen, token.LeftBracket, token.Dot:
		return postfixBP, true
	default:
		return 0, false
	}
}

func isPrefixOperator(kind token.Kind) bool {
	return kind == token.Minus || kind == token.Not
}
