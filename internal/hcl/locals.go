package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// newEvalContext builds the evaluation context for fixture expressions.
func newEvalContext(locals map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"local": cty.ObjectVal(locals),
		},
		Functions: functions(),
	}
}

// evalLocals evaluates every `locals` attribute of a file. Locals may refer
// to each other in any order; undefined references and cycles are reported
// as diagnostics.
func evalLocals(blocks []*localsBlock) (map[string]cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	pending := make(map[string]*hcl.Attribute)

	for _, block := range blocks {
		attrs, attrDiags := block.Body.JustAttributes()
		diags = append(diags, attrDiags...)
		for name, attr := range attrs {
			if prev, dup := pending[name]; dup {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate local value",
					Detail:   fmt.Sprintf("A local value named %q was already defined at %s.", name, prev.NameRange),
					Subject:  attr.NameRange.Ptr(),
				})
				continue
			}
			pending[name] = attr
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	values := make(map[string]cty.Value, len(pending))
	for len(pending) > 0 {
		progressed := false
		for _, name := range sortedNames(pending) {
			attr := pending[name]
			if !depsResolved(attr.Expr, values) {
				continue
			}
			val, valDiags := attr.Expr.Value(newEvalContext(values))
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				return nil, diags
			}
			values[name] = val
			delete(pending, name)
			progressed = true
		}

		if !progressed {
			for _, name := range sortedNames(pending) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unresolvable local value",
					Detail:   fmt.Sprintf("Local value %q refers to a local value that is undefined or part of a cycle.", name),
					Subject:  pending[name].Expr.Range().Ptr(),
				})
			}
			return nil, diags
		}
	}

	return values, diags
}

// localRefs returns the names of the local values an expression refers to.
func localRefs(expr hcl.Expression) []string {
	var names []string
	for _, traversal := range expr.Variables() {
		if traversal.RootName() != "local" || len(traversal) < 2 {
			continue
		}
		if attr, ok := traversal[1].(hcl.TraverseAttr); ok {
			names = append(names, attr.Name)
		}
	}
	return names
}

func depsResolved(expr hcl.Expression, values map[string]cty.Value) bool {
	for _, name := range localRefs(expr) {
		if _, ok := values[name]; !ok {
			return false
		}
	}
	return true
}

func sortedNames(attrs map[string]*hcl.Attribute) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
