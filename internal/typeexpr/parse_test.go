package typeexpr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func scalar(k Kind) *Type { return &Type{Kind: k} }

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		expr string
		want *Type
	}{
		{
			name: "primitive",
			expr: "number",
			want: scalar(Number),
		},
		{
			name: "list of strings",
			expr: "list(string)",
			want: &Type{Kind: List, Elem: scalar(String)},
		},
		{
			name: "spacing is irrelevant",
			expr: "map( bool )",
			want: &Type{Kind: Map, Elem: scalar(Bool)},
		},
		{
			name: "object without commas",
			expr: "object({ bucket_name = string force_delete = bool })",
			want: &Type{Kind: Object, Attrs: []Attribute{
				{Name: "bucket_name", Type: scalar(String)},
				{Name: "force_delete", Type: scalar(Bool)},
			}},
		},
		{
			name: "object with commas and newlines",
			expr: "object({\n  a = string,\n  b = number,\n})",
			want: &Type{Kind: Object, Attrs: []Attribute{
				{Name: "a", Type: scalar(String)},
				{Name: "b", Type: scalar(Number)},
			}},
		},
		{
			name: "optional with default",
			expr: `object({ name = optional(string, "x") tags = optional(map(string), {}) ids = optional(list(number), [1, 2]) })`,
			want: &Type{Kind: Object, Attrs: []Attribute{
				{Name: "name", Type: &Type{Kind: Optional, Elem: scalar(String)}},
				{Name: "tags", Type: &Type{Kind: Optional, Elem: &Type{Kind: Map, Elem: scalar(String)}}},
				{Name: "ids", Type: &Type{Kind: Optional, Elem: &Type{Kind: List, Elem: scalar(Number)}}},
			}},
		},
		{
			name: "nested list of objects",
			expr: "list(object({ port = number rules = list(object({ name = string })) }))",
			want: &Type{Kind: List, Elem: &Type{Kind: Object, Attrs: []Attribute{
				{Name: "port", Type: scalar(Number)},
				{Name: "rules", Type: &Type{Kind: List, Elem: &Type{Kind: Object, Attrs: []Attribute{
					{Name: "name", Type: scalar(String)},
				}}}},
			}}},
		},
		{
			name: "quoted attribute name",
			expr: `object({ "key" = string })`,
			want: &Type{Kind: Object, Attrs: []Attribute{{Name: "key", Type: scalar(String)}}},
		},
		{
			name: "set of any",
			expr: "set(any)",
			want: &Type{Kind: Set, Elem: scalar(Any)},
		},
		{
			name: "tuple",
			expr: "tuple([string, list(number), bool])",
			want: &Type{Kind: Tuple, Elems: []*Type{
				scalar(String),
				{Kind: List, Elem: scalar(Number)},
				scalar(Bool),
			}},
		},
		{
			name: "empty tuple",
			expr: "tuple([])",
			want: &Type{Kind: Tuple},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.expr)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		expr string
	}{
		{name: "empty", expr: ""},
		{name: "unknown type", expr: "strng"},
		{name: "missing paren", expr: "list(string"},
		{name: "missing brace", expr: "object({ a = string )"},
		{name: "missing equals", expr: "object({ a string })"},
		{name: "trailing tokens", expr: "string string"},
		{name: "unterminated default", expr: "optional(string, "},
		{name: "tuple without brackets", expr: "tuple(string)"},
		{name: "tuple leading comma", expr: "tuple([, string])"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.expr)
			require.Error(t, err)
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestType_String(t *testing.T) {
	typ, err := Parse("list(object({ a = optional(string) b = map(number) }))")
	require.NoError(t, err)

	assert.Equal(t, "list(object({ a = optional(string), b = map(number) }))", typ.String())

	typ, err = Parse("tuple([ string,number ])")
	require.NoError(t, err)

	assert.Equal(t, "tuple([string, number])", typ.String())
}

func TestType_Unwrap(t *testing.T) {
	typ, err := Parse("optional(optional(bool))")
	require.NoError(t, err)

	assert.Equal(t, Bool, typ.Unwrap().Kind)
	assert.True(t, typ.Unwrap().IsPrimitive())
	assert.False(t, typ.IsPrimitive())
}

func TestType_CtyType(t *testing.T) {
	testCases := []struct {
		expr string
		want cty.Type
	}{
		{expr: "string", want: cty.String},
		{expr: "list(number)", want: cty.List(cty.Number)},
		{expr: "set(bool)", want: cty.Set(cty.Bool)},
		{expr: "map(any)", want: cty.Map(cty.DynamicPseudoType)},
		{
			expr: "object({ a = string b = list(bool) })",
			want: cty.Object(map[string]cty.Type{"a": cty.String, "b": cty.List(cty.Bool)}),
		},
		{
			expr: "object({ a = optional(string) })",
			want: cty.ObjectWithOptionalAttrs(map[string]cty.Type{"a": cty.String}, []string{"a"}),
		},
		{expr: "tuple([string, number])", want: cty.Tuple([]cty.Type{cty.String, cty.Number})},
	}

	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			typ, err := Parse(tc.expr)
			require.NoError(t, err)
			assert.True(t, tc.want.Equals(typ.CtyType()), "got %s", typ.CtyType().GoString())
		})
	}
}
