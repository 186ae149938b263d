package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func parseSource(t *testing.T, src string) []*Declaration {
	l := NewLexer([]byte(src))
	l.NextToken()
	decls := ParseProgram(l)
	be.True(t, !l.Errors.HasErrors())
	return decls
}

func TestValidateSingleLiteralBody(t *testing.T) {
	decls := []*Declaration{{Name: "f", Returns: []string{"r"}, Body: []*Expr{lit(1)}}}
	out, err := ValidateProgram(decls)
	be.Err(t, err, nil)
	be.Equal(t, out, decls)
}

func TestValidateReturnsInputUnchanged(t *testing.T) {
	decls := parseSource(t, "fn f() -> (r) { r = 1 }")
	out, err := ValidateProgram(decls)
	be.Err(t, err, nil)
	// Identity transform: the same slice comes back.
	be.True(t, len(out) == len(decls))
	for i := range out {
		be.True(t, out[i] == decls[i])
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	decls := parseSource(t, `
fn pair() -> (a, b) { a = 1; b = 2 }
fn main() { x, y = pair(); x + y }
`)
	first, err := ValidateProgram(decls)
	be.Err(t, err, nil)
	second, err := ValidateProgram(first)
	be.Err(t, err, nil)
	be.True(t, len(second) == len(decls))
	for i := range second {
		be.True(t, second[i] == decls[i])
	}
}

func TestValidateIfElseBranchMismatch(t *testing.T) {
	decls := []*Declaration{{
		Name: "f",
		Body: []*Expr{{
			Kind: ExprIfElse,
			Cond: boolean(true),
			Body: []*Expr{lit(1)},
			Else: []*Expr{boolean(false)},
		}},
	}}
	_, err := ValidateProgram(decls)
	be.True(t, err != nil)
	be.Equal(t, err.Error(), "Type mismatch; expected float, found bool")
}

func TestValidateMultiReturnAssignment(t *testing.T) {
	// Two targets against a two-slot call succeeds.
	decls := parseSource(t, `
fn pair() -> (a, b) { a = 1; b = 2 }
fn main() { x, y = pair() }
`)
	_, err := ValidateProgram(decls)
	be.Err(t, err, nil)
}

func TestValidateMultiReturnAssignmentTooFewTargets(t *testing.T) {
	decls := parseSource(t, `
fn pair() -> (a, b) { a = 1; b = 2 }
fn main() { x = pair() }
`)
	_, err := ValidateProgram(decls)
	be.True(t, err != nil)
	be.Equal(t, err.Error(), "Tuple length mismatch; expected 1 found 1")
}

func TestValidateUnknownFunction(t *testing.T) {
	decls := []*Declaration{{
		Name: "f",
		Body: []*Expr{call("missing", lit(1))},
	}}
	_, err := ValidateProgram(decls)
	be.True(t, err != nil)
	be.Equal(t, err.Error(), "Function \"missing\" does not exist")
}

func TestValidateFirstErrorWins(t *testing.T) {
	// Both declarations are broken; the error from the first body surfaces.
	decls := []*Declaration{
		{Name: "a", Body: []*Expr{call("missing_a")}},
		{Name: "b", Body: []*Expr{call("missing_b")}},
	}
	_, err := ValidateProgram(decls)
	be.True(t, err != nil)
	be.Equal(t, err.Error(), "Function \"missing_a\" does not exist")
}

func TestValidateEmptyProgram(t *testing.T) {
	out, err := ValidateProgram(nil)
	be.Err(t, err, nil)
	be.Equal(t, len(out), 0)
}

func TestValidateDoesNotMutateTree(t *testing.T) {
	decls := parseSource(t, "fn f() -> (r) { r = 1 + 2 }")
	before := DeclToSExpr(decls[0])
	_, err := ValidateProgram(decls)
	be.Err(t, err, nil)
	be.Equal(t, DeclToSExpr(decls[0]), before)
}

func TestValidateRecursiveCall(t *testing.T) {
	decls := parseSource(t, `
fn fib(n) -> (r) {
    if n < 2 {
        r = n
    }
    if n >= 2 {
        r = fib(n - 1) + fib(n - 2)
    }
}
`)
	_, err := ValidateProgram(decls)
	be.Err(t, err, nil)
}

func TestValidateWhileLoopProgram(t *testing.T) {
	decls := parseSource(t, `
fn sum(n) -> (total) {
    total = 0
    i = 0
    while i < n {
        total += i
        i += 1
    }
}
`)
	_, err := ValidateProgram(decls)
	be.Err(t, err, nil)
}

func TestValidateIfConditionMustBeBool(t *testing.T) {
	decls := parseSource(t, "fn f() { if 1 { 2 } }")
	_, err := ValidateProgram(decls)
	be.True(t, err != nil)
	be.Equal(t, err.Error(), "Type mismatch; expected bool, found float")
}

func TestValidateCallArgumentCount(t *testing.T) {
	decls := parseSource(t, `
fn add(a, b) -> (c) { c = a + b }
fn main() { add(1) }
`)
	_, err := ValidateProgram(decls)
	be.True(t, err != nil)
	be.Equal(t, err.Error(), "Tuple length mismatch; expected 2 found 1")
}
