package irhcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Load parses HCL source into a File. Grounded on the teacher's
// internal/hcl loader use of hclparse.NewParser + gohcl.DecodeBody.
func Load(filename string, src []byte) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("irhcl: parse %s: %w", filename, diags)
	}

	var file File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
		return nil, fmt.Errorf("irhcl: decode %s: %w", filename, diags)
	}
	return &file, nil
}

// attributeValues reads every attribute of body as a plain HCL expression
// evaluated with no variables — the grammar here never needs references
// across blocks, only literals.
func attributeValues(body hcl.Body) (map[string]hcl.Expression, hcl.Diagnostics) {
	if body == nil {
		return nil, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		out[name] = attr.Expr
	}
	return out, nil
}
