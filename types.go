package main

import "strings"

// TypeKind represents the closed set of drift value types
type TypeKind string

const (
	TypeVoid  TypeKind = "TypeVoid"
	TypeBool  TypeKind = "TypeBool"
	TypeFloat TypeKind = "TypeFloat"
	TypeTuple TypeKind = "TypeTuple"
)

// TypeNode represents a drift type. Tuples are the only composite; Elems is
// nil for every other kind.
type TypeNode struct {
	Kind  TypeKind
	Elems []*TypeNode // TypeTuple only
}

// Shared nodes for the scalar types. Tuples are built per use site.
var (
	VoidType  = &TypeNode{Kind: TypeVoid}
	BoolType  = &TypeNode{Kind: TypeBool}
	FloatType = &TypeNode{Kind: TypeFloat}
)

// TupleType builds a tuple type from element types.
func TupleType(elems []*TypeNode) *TypeNode {
	return &TypeNode{Kind: TypeTuple, Elems: elems}
}

// TypesEqual compares two types structurally. A 1-tuple is not equal to its
// element type.
func TypesEqual(a, b *TypeNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == TypeTuple {
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !TypesEqual(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
	}
	return true
}

// TupleSize is the number of assignment slots a value of this type fills.
func (t *TypeNode) TupleSize() int {
	switch t.Kind {
	case TypeVoid:
		return 0
	case TypeBool, TypeFloat:
		return 1
	case TypeTuple:
		return len(t.Elems)
	default:
		return 0
	}
}

// String renders a type for error messages. Each tuple element is followed
// by ", ", including the last: a pair of floats renders "(float, float, )".
// Downstream tooling matches on these strings, so the rendering is frozen.
func (t *TypeNode) String() string {
	switch t.Kind {
	case TypeVoid:
		return "void"
	case TypeBool:
		return "bool"
	case TypeFloat:
		return "float"
	case TypeTuple:
		var sb strings.Builder
		sb.WriteString("(")
		for _, elem := range t.Elems {
			sb.WriteString(elem.String())
			sb.WriteString(", ")
		}
		sb.WriteString(")")
		return sb.String()
	default:
		return "unknown"
	}
}
