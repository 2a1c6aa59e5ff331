package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tfmdcli/internal/model"
	"github.com/vk/tfmdcli/internal/source"
)

const ibmValidation = "validation { error_message = \"Must use an IBM Cloud region. Use `ibmcloud regions` with the IBM Cloud CLI to see valid regions.\" condition = can( contains([ \"au-syd\", \"jp-tok\", \"eu-de\", \"eu-gb\", \"us-south\", \"us-east\" ], var.ibm_region) ) }"

func fieldsOf(pairs ...string) []model.Field {
	out := make([]model.Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.Field{Key: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestPullFields(t *testing.T) {
	variableFields := []string{"description", "default", "type"}

	testCases := []struct {
		name    string
		fields  []string
		segment string
		breaks  bool
		want    []model.Field
	}{
		{
			name:    "single description",
			fields:  []string{"description"},
			segment: ` x { description = "d" }`,
			want:    fieldsOf("name", "x", "description", "d"),
		},
		{
			name:    "validation block at the end",
			fields:  variableFields,
			segment: ` ibm_region { description = "IBM Cloud region where all resources will be deployed" type = string default = "eu-de" ` + ibmValidation + ` }`,
			want: fieldsOf(
				"name", "ibm_region",
				"description", "IBM Cloud region where all resources will be deployed",
				"type", "string",
				"default", "eu-de",
			),
		},
		{
			name:    "quoted block name",
			fields:  variableFields,
			segment: ` "ibm_region" { description = "IBM Cloud region" type = string default = "eu-de" ` + ibmValidation + ` }`,
			want: fieldsOf(
				"name", "ibm_region",
				"description", "IBM Cloud region",
				"type", "string",
				"default", "eu-de",
			),
		},
		{
			name:    "validation block between fields",
			fields:  variableFields,
			segment: ` ibm_region { description = "IBM Cloud region where all resources will be deployed" ` + ibmValidation + ` type = string default = "eu-de" }`,
			want: fieldsOf(
				"name", "ibm_region",
				"description", "IBM Cloud region where all resources will be deployed",
				"type", "string",
				"default", "eu-de",
			),
		},
		{
			name:    "only one field present",
			fields:  variableFields,
			segment: ` ibm_region { description = "IBM Cloud region where all resources will be deployed" }`,
			want: fieldsOf(
				"name", "ibm_region",
				"description", "IBM Cloud region where all resources will be deployed",
			),
		},
		{
			name:    "empty array default",
			fields:  variableFields,
			segment: `  test_array { description = "a test array" type = list(string) default = [] }`,
			want: fieldsOf(
				"name", "test_array",
				"description", "a test array",
				"type", "list(string)",
				"default", "[]",
			),
		},
		{
			name:    "empty array default after a complex type",
			fields:  variableFields,
			segment: "  lb_listeners { description = \"List of Load Balancer Listeners\" type = list(object({ port = number default_pool = string rules = object({ condition = string }) })) default = [] }\n      ",
			want: fieldsOf(
				"name", "lb_listeners",
				"description", "List of Load Balancer Listeners",
				"type", "list(object({ port = number default_pool = string rules = object({ condition = string }) }))",
				"default", "[]",
			),
		},
		{
			name:    "line breaks in default",
			fields:  variableFields,
			segment: ` test { default = [ { test = "test" test_list = [ "test" ] test_map = { test = "test" } } ] }`,
			breaks:  true,
			want: fieldsOf(
				"name", "test",
				"default", `[<br>{<br>test = "test"<br>test_list = [<br>"test"<br>]<br>test_map = {<br>test = "test"<br>}<br>}<br>]`,
			),
		},
		{
			name:    "no line breaks without the flag",
			fields:  variableFields,
			segment: ` test { default = [ "a", "b" ] }`,
			want:    fieldsOf("name", "test", "default", `[ "a", "b" ]`),
		},
		{
			name:    "line breaks are not applied to other fields",
			fields:  []string{"type"},
			segment: ` test { type = list(object({ a = string })) }`,
			breaks:  true,
			want:    fieldsOf("name", "test", "type", "list(object({ a = string }))"),
		},
		{
			name:    "output value with sensitive flag",
			fields:  []string{"description", "value", "sensitive"},
			segment: ` cos_apikey { description = "API key for COS instance where bucket is created" value = module.bucket.api_key sensitive = true }`,
			want: fieldsOf(
				"name", "cos_apikey",
				"description", "API key for COS instance where bucket is created",
				"value", "module.bucket.api_key",
				"sensitive", "true",
			),
		},
		{
			name:    "keyword without assignment is ignored",
			fields:  []string{"description", "sensitive"},
			segment: ` token { description = "not sensitive at all" }`,
			want:    fieldsOf("name", "token", "description", "not sensitive at all"),
		},
		{
			name:    "segment without braces",
			fields:  variableFields,
			segment: ` orphan `,
			want:    fieldsOf("name", "orphan"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PullFields(tc.fields, tc.segment, tc.breaks)
			if diff := cmp.Diff(tc.want, got.Fields()); diff != "" {
				t.Errorf("PullFields() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPullFields_IsRepeatable(t *testing.T) {
	segment := ` ibm_region { description = "IBM Cloud region" ` + ibmValidation + ` type = string default = "eu-de" }`
	fields := []string{"description", "default", "type"}

	first := PullFields(fields, segment, true)
	second := PullFields(fields, segment, true)

	assert.Equal(t, first.Fields(), second.Fields())
}

func recordFields(records []*model.Record) [][]model.Field {
	out := make([][]model.Field, len(records))
	for i, r := range records {
		out[i] = r.Fields()
	}
	return out
}

func TestRecords_IsIdempotent(t *testing.T) {
	testCases := []struct {
		file   string
		kind   model.BlockKind
		breaks bool
	}{
		{file: "variables.tf", kind: model.KindVariable},
		{file: "variables.tf", kind: model.KindVariable, breaks: true},
		{file: "outputs.tf", kind: model.KindOutput},
		{file: "outputs.tf", kind: model.KindOutput, breaks: true},
	}

	for _, tc := range testCases {
		name := tc.file
		if tc.breaks {
			name += " with breaks"
		}
		t.Run(name, func(t *testing.T) {
			// --- Arrange ---
			src, err := os.ReadFile(filepath.Join("..", "docgen", "testdata", tc.file))
			require.NoError(t, err)
			fields := model.FieldOrder(tc.kind)

			// --- Act ---
			first := Records(fields, source.Split(tc.kind, string(src)), tc.breaks)
			second := Records(fields, source.Split(tc.kind, string(src)), tc.breaks)

			// --- Assert ---
			require.NotEmpty(t, first)
			if diff := cmp.Diff(recordFields(first), recordFields(second)); diff != "" {
				t.Errorf("Records() differs between runs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestRecords(t *testing.T) {
	// --- Arrange ---
	segments := []string{
		" ",
		` cloudfunction_endpoint { description = "Function endpoint URL" value = ibm_function_action.backend.target_endpoint_url }`,
		` bucket_name { description = "Name of the bucket created" value = module.bucket.buckets[var.bucket_info.bucket_name].bucket_name }`,
		"      ",
		"",
		` cos_apikey { description = "API key for COS instance where bucket is created" value = module.bucket.api_key sensitive = true }`,
	}

	// --- Act ---
	records := Records([]string{"description", "value", "sensitive"}, segments, false)

	// --- Assert ---
	require.Len(t, records, 3)
	assert.Equal(t, "cloudfunction_endpoint", records[0].Name())
	assert.Equal(t, "bucket_name", records[1].Name())
	assert.Equal(t, "module.bucket.buckets[var.bucket_info.bucket_name].bucket_name", records[1].Value("value"))
	assert.Equal(t, "cos_apikey", records[2].Name())
	assert.Equal(t, "true", records[2].Value("sensitive"))
}

func TestRemoveValidation(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "nested braces and quoted braces",
			body: `a = 1 validation { condition = "}" error_message = "x{" } b = 2`,
			want: `a = 1 b = 2`,
		},
		{
			name: "two validation blocks",
			body: `a = 1 validation { x = 1 } b = 2 validation { y = { z = 1 } }`,
			want: `a = 1 b = 2`,
		},
		{
			name: "unbalanced falls back to last brace",
			body: `a = 1 validation { x = { y } b = 2`,
			want: `a = 1 b = 2`,
		},
		{
			name: "no closing brace leaves text alone",
			body: `a = 1 validation { x = 1`,
			want: `a = 1 validation { x = 1`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, removeValidation(tc.body))
		})
	}
}
