package main

import (
	"strconv"
	"strings"
)

// ExprKind represents different types of expression nodes
type ExprKind string

const (
	ExprLiteral        ExprKind = "ExprLiteral"
	ExprIdentifier     ExprKind = "ExprIdentifier"
	ExprBool           ExprKind = "ExprBool"
	ExprGlobalDataAddr ExprKind = "ExprGlobalDataAddr"
	ExprBinop          ExprKind = "ExprBinop"
	ExprCompare        ExprKind = "ExprCompare"
	ExprIfThen         ExprKind = "ExprIfThen"
	ExprIfElse         ExprKind = "ExprIfElse"
	ExprAssign         ExprKind = "ExprAssign"
	ExprAssignOp       ExprKind = "ExprAssignOp"
	ExprWhileLoop      ExprKind = "ExprWhileLoop"
	ExprBlock          ExprKind = "ExprBlock"
	ExprCall           ExprKind = "ExprCall"
	ExprParentheses    ExprKind = "ExprParentheses"
)

// Expr represents a node in the expression tree
type Expr struct {
	Kind ExprKind
	// ExprLiteral:
	Float float64
	// ExprIdentifier, ExprGlobalDataAddr, ExprAssignOp (target), ExprCall (callee):
	Name string
	// ExprBool:
	Bool bool
	// ExprBinop, ExprCompare, ExprAssignOp:
	Op string
	// ExprBinop, ExprCompare:
	Lhs *Expr
	Rhs *Expr
	// ExprIfThen, ExprIfElse, ExprWhileLoop:
	Cond *Expr
	// ExprIfThen, ExprWhileLoop, ExprBlock bodies; ExprIfElse true branch:
	Body []*Expr
	// ExprIfElse false branch:
	Else []*Expr
	// ExprAssign:
	Targets []string
	// ExprAssign right-hand sides, ExprCall arguments:
	Values []*Expr
	// ExprParentheses, ExprAssignOp value:
	Inner *Expr
}

// Declaration is a single function declaration as produced by the parser.
// Params and Returns carry names only; every slot is float-typed in drift.
type Declaration struct {
	Name    string
	Params  []string
	Returns []string
	Body    []*Expr
}

// ToSExpr converts an expression to its s-expression string representation
func ToSExpr(e *Expr) string {
	switch e.Kind {
	case ExprLiteral:
		return "(literal " + floatToString(e.Float) + ")"
	case ExprIdentifier:
		return "(ident \"" + e.Name + "\")"
	case ExprBool:
		if e.Bool {
			return "(bool true)"
		}
		return "(bool false)"
	case ExprGlobalDataAddr:
		return "(global \"" + e.Name + "\")"
	case ExprBinop:
		return "(binary \"" + e.Op + "\" " + ToSExpr(e.Lhs) + " " + ToSExpr(e.Rhs) + ")"
	case ExprCompare:
		return "(compare \"" + e.Op + "\" " + ToSExpr(e.Lhs) + " " + ToSExpr(e.Rhs) + ")"
	case ExprIfThen:
		result := "(if " + ToSExpr(e.Cond)
		for _, stmt := range e.Body {
			result += " " + ToSExpr(stmt)
		}
		return result + ")"
	case ExprIfElse:
		result := "(if-else " + ToSExpr(e.Cond) + " (then"
		for _, stmt := range e.Body {
			result += " " + ToSExpr(stmt)
		}
		result += ") (else"
		for _, stmt := range e.Else {
			result += " " + ToSExpr(stmt)
		}
		return result + "))"
	case ExprAssign:
		result := "(assign ("
		for i, target := range e.Targets {
			if i > 0 {
				result += " "
			}
			result += "\"" + target + "\""
		}
		result += ")"
		for _, value := range e.Values {
			result += " " + ToSExpr(value)
		}
		return result + ")"
	case ExprAssignOp:
		return "(assign-op \"" + e.Op + "\" \"" + e.Name + "\" " + ToSExpr(e.Inner) + ")"
	case ExprWhileLoop:
		result := "(while " + ToSExpr(e.Cond)
		for _, stmt := range e.Body {
			result += " " + ToSExpr(stmt)
		}
		return result + ")"
	case ExprBlock:
		result := "(block"
		for _, stmt := range e.Body {
			result += " " + ToSExpr(stmt)
		}
		return result + ")"
	case ExprCall:
		result := "(call \"" + e.Name + "\""
		for _, arg := range e.Values {
			result += " " + ToSExpr(arg)
		}
		return result + ")"
	case ExprParentheses:
		return "(paren " + ToSExpr(e.Inner) + ")"
	default:
		return ""
	}
}

// DeclToSExpr converts a function declaration to an s-expression
func DeclToSExpr(d *Declaration) string {
	var sb strings.Builder
	sb.WriteString("(fn \"" + d.Name + "\" (")
	for i, param := range d.Params {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("\"" + param + "\"")
	}
	sb.WriteString(") (")
	for i, ret := range d.Returns {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("\"" + ret + "\"")
	}
	sb.WriteString(")")
	for _, stmt := range d.Body {
		sb.WriteString(" " + ToSExpr(stmt))
	}
	sb.WriteString(")")
	return sb.String()
}

// floatToString renders a float literal the way it round-trips: no exponent
// for ordinary values, no trailing zeros.
func floatToString(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
