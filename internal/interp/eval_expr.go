package interp

import (
	"fmt"

	"github.com/tw-lang/turnways/internal/ast"
)

// eval evaluates expr against it.Env, left-to-right for every
// subexpression (array elements, operands, index target before index
// expression), per spec.md §5's ordering guarantees.
func (it *Interpreter) eval(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return NumberValue(e.Value), nil

	case *ast.String:
		return StringValue(e.Value), nil

	case *ast.Bool:
		return BoolValue(e.Value), nil

	case *ast.Var:
		v, ok := it.Env.Get(e.Name)
		if !ok {
			return Value{}, &NameError{Pos: e.Pos(), Name: e.Name}
		}
		return v, nil

	case *ast.ArrayLit:
		elems := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := it.eval(el)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return NewArray(elems), nil

	case *ast.Index:
		return it.evalIndex(e)

	case *ast.IndexAssign:
		return it.evalIndexAssign(e)

	case *ast.BinOp:
		l, err := it.eval(e.Left)
		if err != nil {
			return Value{}, err
		}
		r, err := it.eval(e.Right)
		if err != nil {
			return Value{}, err
		}
		return applyBinOp(e.Pos(), e.Op, l, r)

	case *ast.CmpOp:
		l, err := it.eval(e.Left)
		if err != nil {
			return Value{}, err
		}
		r, err := it.eval(e.Right)
		if err != nil {
			return Value{}, err
		}
		return applyCmpOp(e.Pos(), e.Op, l, r)
	}

	return Value{}, &ValueError{Message: fmt.Sprintf("Unexpected expression: %T", expr)}
}

func (it *Interpreter) evalIndex(e *ast.Index) (Value, error) {
	target, err := it.eval(e.Target)
	if err != nil {
		return Value{}, err
	}
	idxVal, err := it.eval(e.Idx)
	if err != nil {
		return Value{}, err
	}
	if target.Kind != KindArray {
		return Value{}, &TypeError{Pos: e.Pos(), Message: "Attempted to access an index on a non-array"}
	}
	idx := int(idxVal.Number)
	arr := *target.Array
	if idx < 0 || idx >= len(arr) {
		return Value{}, &IndexError{Pos: e.Pos()}
	}
	return arr[idx], nil
}

// evalIndexAssign implements the latent array-mutation case spec.md
// requires the value model to support even though no grammar rule of
// internal/parser ever produces an IndexAssign node (see DESIGN.md).
// Mutation goes through the shared backing slice, so it is visible
// through every alias of the same array.
func (it *Interpreter) evalIndexAssign(e *ast.IndexAssign) (Value, error) {
	target, err := it.eval(e.Target)
	if err != nil {
		return Value{}, err
	}
	idxVal, err := it.eval(e.Idx)
	if err != nil {
		return Value{}, err
	}
	if target.Kind != KindArray {
		return Value{}, &TypeError{Pos: e.Pos(), Message: "Attempted to assign to an index on a non-array"}
	}
	idx := int(idxVal.Number)
	arr := *target.Array
	if idx < 0 || idx >= len(arr) {
		return Value{}, &IndexError{Pos: e.Pos()}
	}
	v, err := it.eval(e.Value)
	if err != nil {
		return Value{}, err
	}
	arr[idx] = v
	return Unit, nil
}
