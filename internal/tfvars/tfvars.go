// Package tfvars synthesizes example `.tfvars` entries from extracted variable
// records.
//
// Each entry is `name=value`. When the variable has a usable default it is
// written as is; otherwise a value is built from the declared type, with every
// scalar set to its zero-ish example (`""`, `0`, `true`) and every collection
// holding exactly one element.
package tfvars

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/tfmdcli/internal/model"
	"github.com/vk/tfmdcli/internal/typeexpr"
)

// ErrUnsupportedScalarType is returned when Scalar is asked to render a type
// other than string, number or bool.
var ErrUnsupportedScalarType = errors.New("type must be `string`, `number`, or `bool`")

const (
	nullLiteral = "null"
	indentUnit  = "    "
)

var (
	scalarList   = regexp.MustCompile(`^list\((string|bool|number)\)$`)
	simpleObject = regexp.MustCompile(`^object\(\{[\s\w=]+\}\)$`)
)

// Example renders the tfvars entry for one variable record. With
// ignoreDefaults the record's default is disregarded and the value is built
// from the type alone.
func Example(record *model.Record, ignoreDefaults bool) (string, error) {
	name := record.Name()
	typeExpr, ok := record.Get(model.FieldType)
	if !ok || typeExpr == "" {
		typeExpr = string(typeexpr.String)
	}
	def := ""
	if !ignoreDefaults {
		def = record.Value(model.FieldDefault)
	}

	switch typeExpr {
	case string(typeexpr.String), string(typeexpr.Number), string(typeexpr.Bool):
		return Scalar(name, typeExpr, def)
	}
	if scalarList.MatchString(typeExpr) {
		if def == "" {
			def = "[]"
		}
		return name + "=" + def, nil
	}
	if def != "" {
		return name + "=" + def, nil
	}

	typ, err := typeexpr.Parse(typeExpr)
	if err != nil {
		// An unreadable type leaves the variable null; the other entries still render.
		return name + "=" + nullLiteral, nil
	}
	if simpleObject.MatchString(typeExpr) && typ.Kind == typeexpr.Object && primitiveAttrs(typ) {
		return flatObject(typ)
	}

	root := typ.Unwrap()
	switch {
	case root.IsPrimitive():
		return Scalar(name, root.String(), "")
	case inline(root):
		return name + "=" + valueOf(root), nil
	}

	w := &writer{}
	if err := w.composite("", root, 0); err != nil {
		return "", errors.Wrapf(err, "variable %q", name)
	}
	w.lines[0] = name + "=" + w.lines[0]
	return strings.Join(w.lines, "\n"), nil
}

// Scalar renders `name=value` for a string, number or bool variable. A default
// of `null` is written unquoted whatever the type; other string defaults are
// quoted. Without a default the example value of the type is used. Optional
// wrappers around the type are ignored.
func Scalar(name, typeExpr, def string) (string, error) {
	typ, err := typeexpr.Parse(typeExpr)
	if err != nil {
		return "", errors.Wrapf(ErrUnsupportedScalarType, "got %s", typeExpr)
	}
	typ = typ.Unwrap()
	if !typ.IsPrimitive() {
		return "", errors.Wrapf(ErrUnsupportedScalarType, "got %s", typeExpr)
	}

	switch {
	case def == nullLiteral:
		return name + "=" + nullLiteral, nil
	case def == "":
		return name + "=" + literal(typ), nil
	case typ.Kind == typeexpr.String:
		return name + `="` + def + `"`, nil
	default:
		return name + "=" + def, nil
	}
}

// flatObject renders an object whose attributes are all scalars as a bare
// brace block with two-space indentation.
func flatObject(typ *typeexpr.Type) (string, error) {
	lines := []string{"{"}
	for _, attr := range typ.Attrs {
		line, err := Scalar(attr.Name, attr.Type.String(), "")
		if err != nil {
			return "", err
		}
		lines = append(lines, "  "+line)
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n"), nil
}

func primitiveAttrs(typ *typeexpr.Type) bool {
	for _, attr := range typ.Attrs {
		if !attr.Type.IsPrimitive() {
			return false
		}
	}
	return true
}

// literal returns the HCL text of the example value for a type.
func literal(typ *typeexpr.Type) string {
	return string(hclwrite.TokensForValue(exampleValue(typ.CtyType())).Bytes())
}

// exampleValue builds the representative value of a scalar or a collection
// of scalars.
func exampleValue(ty cty.Type) cty.Value {
	switch {
	case ty.Equals(cty.String):
		return cty.StringVal("")
	case ty.Equals(cty.Number):
		return cty.NumberIntVal(0)
	case ty.Equals(cty.Bool):
		return cty.True
	case ty.IsListType():
		return cty.ListVal([]cty.Value{exampleValue(ty.ElementType())})
	case ty.IsSetType():
		return cty.SetVal([]cty.Value{exampleValue(ty.ElementType())})
	default:
		return cty.NullVal(ty)
	}
}

type writer struct {
	lines []string
}

func (w *writer) add(depth int, s string) {
	w.lines = append(w.lines, strings.Repeat(indentUnit, depth)+s)
}

// composite writes a list, set, map or object spanning several lines. label
// is the attribute it is assigned to, empty for the top level and for
// collection elements.
func (w *writer) composite(label string, typ *typeexpr.Type, depth int) error {
	open, closing := "{", "}"
	if typ.IsCollection() || typ.Kind == typeexpr.Tuple {
		open, closing = "[", "]"
	}
	if label != "" {
		open = label + " = " + open
	}
	w.add(depth, open)

	switch typ.Kind {
	case typeexpr.List, typeexpr.Set:
		if err := w.element(typ.Elem.Unwrap(), depth+1); err != nil {
			return err
		}
	case typeexpr.Map:
		if err := w.member("key", typ.Elem.Unwrap(), depth+1); err != nil {
			return err
		}
	case typeexpr.Tuple:
		for i, elem := range typ.Elems {
			if err := w.element(elem.Unwrap(), depth+1); err != nil {
				return err
			}
			if i < len(typ.Elems)-1 {
				w.lines[len(w.lines)-1] += ","
			}
		}
	case typeexpr.Object:
		for _, attr := range typ.Attrs {
			if err := w.member(attr.Name, attr.Type.Unwrap(), depth+1); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("unsupported type %s", typ)
	}

	w.add(depth, closing)
	return nil
}

// element writes the single representative element of a collection.
func (w *writer) element(typ *typeexpr.Type, depth int) error {
	if isLeaf(typ) {
		w.add(depth, valueOf(typ))
		return nil
	}
	return w.composite("", typ, depth)
}

// member writes one `name=value` attribute, or opens a nested block for a
// composite attribute.
func (w *writer) member(name string, typ *typeexpr.Type, depth int) error {
	if inline(typ) {
		w.add(depth, name+"="+valueOf(typ))
		return nil
	}
	return w.composite(name, typ, depth)
}

func isLeaf(typ *typeexpr.Type) bool {
	return typ.IsPrimitive() || typ.Kind == typeexpr.Any
}

// inline reports whether typ is written on a single line: a leaf, a list or
// set of leaves, or a tuple whose members are all inline.
func inline(typ *typeexpr.Type) bool {
	switch {
	case isLeaf(typ):
		return true
	case typ.IsCollection():
		return isLeaf(typ.Elem.Unwrap())
	case typ.Kind == typeexpr.Tuple:
		for _, elem := range typ.Elems {
			if !inline(elem.Unwrap()) {
				return false
			}
		}
		return true
	}
	return false
}

// valueOf renders an inline type on one line.
func valueOf(typ *typeexpr.Type) string {
	switch {
	case typ.Kind == typeexpr.Any:
		return nullLiteral
	case typ.IsCollection() && typ.Elem.Unwrap().Kind == typeexpr.Any:
		return "[" + nullLiteral + "]"
	case typ.Kind == typeexpr.Tuple:
		values := make([]string, len(typ.Elems))
		for i, elem := range typ.Elems {
			values[i] = valueOf(elem.Unwrap())
		}
		return "[" + strings.Join(values, ", ") + "]"
	default:
		return literal(typ)
	}
}
