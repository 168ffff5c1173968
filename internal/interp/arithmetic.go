package interp

import (
	"fmt"

	"github.com/tw-lang/turnways/internal/ast"
	"github.com/tw-lang/turnways/internal/lexer"
)

// applyBinOp implements spec.md §4.6's BinOp semantics: arithmetic on
// two numbers, concatenation on two strings, and a TypeError for any
// other operand combination, since the language defines no coercion
// between strings and numbers.
func applyBinOp(pos lexer.Position, op ast.BinOpKind, l, r Value) (Value, error) {
	if op == ast.OpPlus && l.Kind == KindString && r.Kind == KindString {
		return StringValue(l.Str + r.Str), nil
	}
	if l.Kind != KindNumber || r.Kind != KindNumber {
		return Value{}, &TypeError{
			Pos:     pos,
			Message: fmt.Sprintf("Cannot apply operator to %s and %s", l.TypeName(), r.TypeName()),
		}
	}
	switch op {
	case ast.OpPlus:
		return NumberValue(l.Number + r.Number), nil
	case ast.OpMinus:
		return NumberValue(l.Number - r.Number), nil
	case ast.OpMul:
		return NumberValue(l.Number * r.Number), nil
	case ast.OpDiv:
		if r.Number == 0 {
			return Value{}, &TypeError{Pos: pos, Message: "Division by zero"}
		}
		return NumberValue(l.Number / r.Number), nil
	}
	return Value{}, &ValueError{Message: fmt.Sprintf("Unexpected operator: %v", op)}
}

// applyCmpOp implements spec.md §4.6's CmpOp semantics: == and != work
// on any pair of like-kinded values (and are simply false across
// kinds), while ordering operators require two numbers or two strings.
func applyCmpOp(pos lexer.Position, op ast.CmpOpKind, l, r Value) (Value, error) {
	if op == ast.OpEq || op == ast.OpNe {
		eq := valuesEqual(l, r)
		if op == ast.OpNe {
			eq = !eq
		}
		return BoolValue(eq), nil
	}

	switch {
	case l.Kind == KindNumber && r.Kind == KindNumber:
		return BoolValue(compareNumbers(op, l.Number, r.Number)), nil
	case l.Kind == KindString && r.Kind == KindString:
		return BoolValue(compareStrings(op, l.Str, r.Str)), nil
	default:
		return Value{}, &TypeError{
			Pos:     pos,
			Message: fmt.Sprintf("Cannot compare %s and %s", l.TypeName(), r.TypeName()),
		}
	}
}

func compareNumbers(op ast.CmpOpKind, l, r float64) bool {
	switch op {
	case ast.OpLt:
		return l < r
	case ast.OpGt:
		return l > r
	case ast.OpLe:
		return l <= r
	case ast.OpGe:
		return l >= r
	}
	return false
}

func compareStrings(op ast.CmpOpKind, l, r string) bool {
	switch op {
	case ast.OpLt:
		return l < r
	case ast.OpGt:
		return l > r
	case ast.OpLe:
		return l <= r
	case ast.OpGe:
		return l >= r
	}
	return false
}

func valuesEqual(l, r Value) bool {
	if l.Kind != r.Kind {
		return false
	}
	switch l.Kind {
	case KindNumber:
		return l.Number == r.Number
	case KindString:
		return l.Str == r.Str
	case KindBool:
		return l.Bool == r.Bool
	case KindArray:
		if len(*l.Array) != len(*r.Array) {
			return false
		}
		for i := range *l.Array {
			if !valuesEqual((*l.Array)[i], (*r.Array)[i]) {
				return false
			}
		}
		return true
	default:
		return true // two Units are always equal
	}
}
