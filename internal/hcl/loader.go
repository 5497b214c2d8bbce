package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/swimgen/internal/config"
	"github.com/specialistvlad/swimgen/internal/ctxlog"
	"github.com/specialistvlad/swimgen/internal/fsutil"
)

// Extension is the file extension handled by this loader.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found in paths, in lexical order, and merges
// their records into one model. Locals are scoped to the file that declares
// them.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	merged := config.NewModel()

	for _, path := range files {
		hclFile, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		m, err := l.decodeFile(ctx, path, hclFile)
		if err != nil {
			return nil, err
		}
		merged.Merge(m)
	}

	logger.Debug("HCL loading complete.", "counts", merged.Counts())
	return merged, nil
}

// LoadSource parses a single in-memory definition. filename is used in
// diagnostics only.
func (l *Loader) LoadSource(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decodeFile(ctx, filename, hclFile)
}

func (l *Loader) decodeFile(ctx context.Context, path string, file *hcl.File) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	locals, diags := evalLocals(root.Locals)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate locals in %s: %w", path, diags)
	}
	logger.Debug("Locals evaluated.", "file", path, "count", len(locals))

	var fixtures fixtureFile
	if diags := gohcl.DecodeBody(root.Remain, newEvalContext(locals), &fixtures); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	return translateFile(path, &fixtures)
}
