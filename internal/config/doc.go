// Package config defines the format-agnostic fixture definition model, along
// with the Loader interface for reading definitions from various sources.
//
// The `config.Model` is the single source of truth for the document builder.
// Concrete loaders, such as for HCL and YAML, are provided in separate
// packages and combined with MultiLoader.
package config
