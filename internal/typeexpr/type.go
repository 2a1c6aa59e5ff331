// Package typeexpr parses Terraform type constraints such as
// `list(object({ port = number rules = optional(map(string)) }))` into a
// small typed tree.
//
// Parsing runs over the token stream of the HCL expression lexer, so spacing,
// newlines and commas between object attributes do not matter.
package typeexpr

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Kind names a node of the type tree.
type Kind string

const (
	String   Kind = "string"
	Number   Kind = "number"
	Bool     Kind = "bool"
	Any      Kind = "any"
	List     Kind = "list"
	Set      Kind = "set"
	Map      Kind = "map"
	Object   Kind = "object"
	Tuple    Kind = "tuple"
	Optional Kind = "optional"
)

// Type is one node of a parsed type constraint. Elem is set for list, set,
// map and optional. Attrs is set for object, in declaration order. Elems
// holds the members of a tuple.
type Type struct {
	Kind  Kind
	Elem  *Type
	Attrs []Attribute
	Elems []*Type
}

// Attribute is a named member of an object type.
type Attribute struct {
	Name string
	Type *Type
}

// IsPrimitive reports whether t is string, number or bool.
func (t *Type) IsPrimitive() bool {
	switch t.Kind {
	case String, Number, Bool:
		return true
	}
	return false
}

// IsCollection reports whether t is a list or a set.
func (t *Type) IsCollection() bool {
	return t.Kind == List || t.Kind == Set
}

// Unwrap strips any optional(...) wrappers.
func (t *Type) Unwrap() *Type {
	for t.Kind == Optional && t.Elem != nil {
		t = t.Elem
	}
	return t
}

// String renders the type back in canonical Terraform syntax.
func (t *Type) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Type) write(b *strings.Builder) {
	switch t.Kind {
	case List, Set, Map, Optional:
		b.WriteString(string(t.Kind))
		b.WriteByte('(')
		t.Elem.write(b)
		b.WriteByte(')')
	case Object:
		b.WriteString("object({")
		for i, a := range t.Attrs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(" = ")
			a.Type.write(b)
		}
		if len(t.Attrs) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("})")
	case Tuple:
		b.WriteString("tuple([")
		for i, e := range t.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			e.write(b)
		}
		b.WriteString("])")
	default:
		b.WriteString(string(t.Kind))
	}
}

// CtyType converts the tree into the equivalent cty type. Optional object
// attributes become optional attributes of the cty object type.
func (t *Type) CtyType() cty.Type {
	switch t.Kind {
	case String:
		return cty.String
	case Number:
		return cty.Number
	case Bool:
		return cty.Bool
	case List:
		return cty.List(t.Elem.CtyType())
	case Set:
		return cty.Set(t.Elem.CtyType())
	case Map:
		return cty.Map(t.Elem.CtyType())
	case Optional:
		return t.Elem.CtyType()
	case Object:
		attrs := make(map[string]cty.Type, len(t.Attrs))
		var optional []string
		for _, a := range t.Attrs {
			attrs[a.Name] = a.Type.CtyType()
			if a.Type.Kind == Optional {
				optional = append(optional, a.Name)
			}
		}
		if len(optional) > 0 {
			return cty.ObjectWithOptionalAttrs(attrs, optional)
		}
		return cty.Object(attrs)
	case Tuple:
		elems := make([]cty.Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = e.CtyType()
		}
		return cty.Tuple(elems)
	default:
		return cty.DynamicPseudoType
	}
}
