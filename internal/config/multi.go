package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/swimgen/internal/ctxlog"
	"github.com/specialistvlad/swimgen/internal/fsutil"
)

// MultiLoader dispatches definition files to a format loader chosen by file
// extension. Files are loaded in lexical path order so that the merged model,
// and therefore the generated document, does not depend on directory
// iteration order.
type MultiLoader struct {
	loaders map[string]Loader
}

// NewMultiLoader creates a MultiLoader. Keys are file extensions including
// the leading dot, e.g. ".hcl".
func NewMultiLoader(loaders map[string]Loader) *MultiLoader {
	normalized := make(map[string]Loader, len(loaders))
	for ext, l := range loaders {
		normalized[strings.ToLower(ext)] = l
	}
	return &MultiLoader{loaders: normalized}
}

// Extensions returns the registered extensions in sorted order.
func (m *MultiLoader) Extensions() []string {
	exts := make([]string, 0, len(m.loaders))
	for ext := range m.loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load implements Loader.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Multi loader started.", "path_count", len(paths), "extensions", m.Extensions())

	files, err := fsutil.FindFiles(paths, m.Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to discover definition files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no definition files (%s) found in %v", strings.Join(m.Extensions(), ", "), paths)
	}
	logger.Debug("Discovered definition files.", "count", len(files))

	merged := NewModel()
	for _, file := range files {
		loader, ok := m.loaders[strings.ToLower(filepath.Ext(file))]
		if !ok {
			continue
		}
		part, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		merged.Merge(part)
		logger.Debug("Definition file loaded.", "file", file, "counts", part.Counts())
	}

	return merged, nil
}
