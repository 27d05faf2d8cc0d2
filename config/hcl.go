package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/ARTM2000/grove"
)

// hclRoot decodes every top-level block of a descriptor file. Unknown
// blocks and attributes are reported as diagnostics.
type hclRoot struct {
	Beans []*hclBean `hcl:"bean,block"`
}

type hclBean struct {
	ID         string         `hcl:"id,label"`
	Class      string         `hcl:"class"`
	Properties []*hclProperty `hcl:"property,block"`
}

type hclProperty struct {
	Name  string  `hcl:"name,label"`
	Value *string `hcl:"value,optional"`
	Ref   *string `hcl:"ref,optional"`
}

// LoadHCL parses src as an HCL descriptor file. filename is used in
// diagnostics only. vars are exposed to expressions as env.NAME.
// Non-string values such as numbers and booleans are converted to their
// literal text.
func LoadHCL(filename string, src []byte, vars map[string]string) ([]grove.BeanDescriptor, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root hclRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(vars), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	descriptors := make([]grove.BeanDescriptor, 0, len(root.Beans))
	for _, b := range root.Beans {
		d := grove.BeanDescriptor{ID: b.ID, Class: b.Class}
		for _, p := range b.Properties {
			d.Properties = append(d.Properties, grove.PropertyDirective{Name: p.Name, Value: p.Value, Ref: p.Ref})
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

func evalContext(vars map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(vars))
	for name, v := range vars {
		vals[name] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vals)},
	}
}
