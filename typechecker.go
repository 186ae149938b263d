package main

import "fmt"

// TypeMismatchError reports two types that were required to agree but did not.
type TypeMismatchError struct {
	Expected *TypeNode
	Actual   *TypeNode
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Type mismatch; expected %s, found %s", e.Expected, e.Actual)
}

// TupleLengthMismatchError reports a violated arity contract: assignment
// target count vs. value count, or call argument count vs. parameter count.
type TupleLengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *TupleLengthMismatchError) Error() string {
	return fmt.Sprintf("Tuple length mismatch; expected %d found %d", e.Expected, e.Actual)
}

// UnknownFunctionError reports a call to a name with no declaration.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("Function %q does not exist", e.Name)
}

// InferType computes the type of an expression against a declaration table.
// It never mutates the tree; the first failing subexpression wins.
func InferType(e *Expr, decls []*Declaration) (*TypeNode, error) {
	switch e.Kind {
	case ExprLiteral, ExprIdentifier, ExprGlobalDataAddr:
		return FloatType, nil

	case ExprBool:
		return BoolType, nil

	case ExprBinop:
		lt, err := InferType(e.Lhs, decls)
		if err != nil {
			return nil, err
		}
		rt, err := InferType(e.Rhs, decls)
		if err != nil {
			return nil, err
		}
		if !TypesEqual(lt, rt) {
			return nil, &TypeMismatchError{Expected: lt, Actual: rt}
		}
		// Any operator accepts any pair of equal-typed operands.
		return lt, nil

	case ExprCompare:
		// The operand types need not agree; they are inferred only so inner
		// errors surface.
		if _, err := InferType(e.Lhs, decls); err != nil {
			return nil, err
		}
		if _, err := InferType(e.Rhs, decls); err != nil {
			return nil, err
		}
		return BoolType, nil

	case ExprIfThen:
		if err := checkCondition(e.Cond, decls); err != nil {
			return nil, err
		}
		if _, err := inferBody(e.Body, decls); err != nil {
			return nil, err
		}
		// A single-armed conditional never yields a value.
		return VoidType, nil

	case ExprIfElse:
		if err := checkCondition(e.Cond, decls); err != nil {
			return nil, err
		}
		thenType, err := inferBody(e.Body, decls)
		if err != nil {
			return nil, err
		}
		elseType, err := inferBody(e.Else, decls)
		if err != nil {
			return nil, err
		}
		if !TypesEqual(thenType, elseType) {
			return nil, &TypeMismatchError{Expected: thenType, Actual: elseType}
		}
		return thenType, nil

	case ExprAssign:
		arity := len(e.Values)
		if len(e.Values) == 1 {
			vt, err := InferType(e.Values[0], decls)
			if err != nil {
				return nil, err
			}
			arity = vt.TupleSize()
		}
		if len(e.Targets) != arity {
			// Expected carries the raw value count and Actual the target
			// count. Error-message consumers match on exactly these numbers.
			return nil, &TupleLengthMismatchError{Expected: len(e.Values), Actual: len(e.Targets)}
		}
		elems := make([]*TypeNode, len(e.Values))
		for i, value := range e.Values {
			vt, err := InferType(value, decls)
			if err != nil {
				return nil, err
			}
			elems[i] = vt
		}
		return TupleType(elems), nil

	case ExprAssignOp:
		// The target is not separately checked; the statement takes the
		// value's type.
		return InferType(e.Inner, decls)

	case ExprWhileLoop:
		// Unlike if, the loop condition is not constrained to bool.
		if _, err := inferBody(e.Body, decls); err != nil {
			return nil, err
		}
		return VoidType, nil

	case ExprBlock:
		return inferBody(e.Body, decls)

	case ExprCall:
		decl := lookupDeclaration(decls, e.Name)
		if decl == nil {
			return nil, &UnknownFunctionError{Name: e.Name}
		}
		if len(decl.Params) != len(e.Values) {
			return nil, &TupleLengthMismatchError{Expected: len(decl.Params), Actual: len(e.Values)}
		}
		for _, arg := range e.Values {
			if _, err := InferType(arg, decls); err != nil {
				return nil, err
			}
		}
		// The result is derived from the return slot count alone; every
		// return slot is float-typed in drift.
		switch n := len(decl.Returns); n {
		case 0:
			return VoidType, nil
		case 1:
			return FloatType, nil
		default:
			elems := make([]*TypeNode, n)
			for i := range elems {
				elems[i] = FloatType
			}
			return TupleType(elems), nil
		}

	case ExprParentheses:
		return InferType(e.Inner, decls)

	default:
		return nil, fmt.Errorf("unsupported expression kind %s", string(e.Kind))
	}
}

// checkCondition requires a conditional's test expression to be bool.
func checkCondition(cond *Expr, decls []*Declaration) error {
	condType, err := InferType(cond, decls)
	if err != nil {
		return err
	}
	if !TypesEqual(condType, BoolType) {
		return &TypeMismatchError{Expected: BoolType, Actual: condType}
	}
	return nil
}

// inferBody infers every expression of a statement list in order and returns
// the type of the last one, or void for an empty list.
func inferBody(body []*Expr, decls []*Declaration) (*TypeNode, error) {
	result := VoidType
	for _, stmt := range body {
		t, err := InferType(stmt, decls)
		if err != nil {
			return nil, err
		}
		result = t
	}
	return result, nil
}

// lookupDeclaration finds the first declaration with the given name.
// Declaration order decides when names collide.
func lookupDeclaration(decls []*Declaration, name string) *Declaration {
	for _, d := range decls {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// ValidateProgram type-checks every top-level expression of every declaration
// and returns the declarations unchanged. The first error aborts the whole
// validation; later declarations are not checked.
func ValidateProgram(decls []*Declaration) ([]*Declaration, error) {
	for _, d := range decls {
		for _, expr := range d.Body {
			if _, err := InferType(expr, decls); err != nil {
				return nil, err
			}
		}
	}
	return decls, nil
}
