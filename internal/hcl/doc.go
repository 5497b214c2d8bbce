// Package hcl provides the HCL implementation of the config.Loader
// interface. It parses fixture definition files, evaluates their expressions
// against `locals` and the cty function library, and translates the decoded
// blocks into the format-agnostic config.Model.
package hcl
