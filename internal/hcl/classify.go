package hcl

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/tfmdcli/internal/model"
)

const onlyBlocksSummary = "Files may only contain either `output` or `variable` blocks"

// Classify parses src and reports which kind of block it holds. The file may
// contain only top-level `variable` or `output` blocks, never both, and at
// least one of them.
func Classify(filename string, src []byte) (model.BlockKind, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return "", diags
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported file",
			Detail:   "Only native HCL syntax is supported.",
			Subject:  file.Body.MissingItemRange().Ptr(),
		}}
	}

	if attr := firstAttribute(body.Attributes); attr != nil {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  onlyBlocksSummary,
			Detail:   "Unexpected top-level attribute \"" + attr.Name + "\".",
			Subject:  attr.NameRange.Ptr(),
		}}
	}

	var first, other *hclsyntax.Block
	for _, block := range body.Blocks {
		if !model.BlockKind(block.Type).Valid() {
			return "", hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  onlyBlocksSummary,
				Detail:   "Unexpected \"" + block.Type + "\" block.",
				Subject:  block.TypeRange.Ptr(),
			}}
		}
		switch {
		case first == nil:
			first = block
		case block.Type != first.Type && other == nil:
			other = block
		}
	}

	switch {
	case first == nil:
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  onlyBlocksSummary + ", found neither.",
			Detail:   "The file declares no variable or output blocks.",
			Subject:  body.SrcRange.Ptr(),
		}}
	case other != nil:
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  onlyBlocksSummary + ", found both.",
			Detail:   "A \"" + other.Type + "\" block follows a \"" + first.Type + "\" block.",
			Subject:  other.TypeRange.Ptr(),
		}}
	}
	return model.BlockKind(first.Type), nil
}

// firstAttribute returns the attribute appearing earliest in the file.
func firstAttribute(attrs hclsyntax.Attributes) *hclsyntax.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	list := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		list = append(list, attr)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].SrcRange.Start.Byte < list[j].SrcRange.Start.Byte
	})
	return list[0]
}
