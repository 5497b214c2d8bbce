package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/swimgen/internal/caldelta"
	"github.com/specialistvlad/swimgen/internal/config"
	"github.com/specialistvlad/swimgen/internal/ctxlog"
	"github.com/specialistvlad/swimgen/internal/fsutil"
	"github.com/specialistvlad/swimgen/internal/model"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions handled by this loader.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every YAML file found in paths, in lexical order. A file may
// hold several `---` separated documents; they are merged in order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}

	merged := config.NewModel()
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}
		m, err := l.LoadSource(ctx, data, path)
		if err != nil {
			return nil, err
		}
		merged.Merge(m)
	}

	logger.Debug("YAML loading complete.", "files", len(files), "counts", merged.Counts())
	return merged, nil
}

// LoadSource decodes an in-memory definition. filename is used in errors
// only. Unknown keys are rejected.
func (l *Loader) LoadSource(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	merged := config.NewModel()
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
		}
		m, err := translate(filename, &doc)
		if err != nil {
			return nil, err
		}
		merged.Merge(m)
	}
	return merged, nil
}

func translate(path string, doc *document) (*config.Model, error) {
	m := config.NewModel()

	for _, in := range doc.Indicators {
		m.Indicators = append(m.Indicators, model.Indicator(in))
	}
	for _, c := range doc.Categories {
		m.Categories = append(m.Categories, model.IndicatorCategory(c))
	}
	for _, s := range doc.Sites {
		m.Sites = append(m.Sites, model.Site(s))
	}
	for _, g := range doc.AccessGroups {
		group := model.AccessGroup{Name: g.Name, Users: g.Users}
		for _, entry := range g.Sites {
			group.Sites = append(group.Sites, model.SiteGrant{Site: entry.Name, Categories: entry.Categories})
		}
		m.AccessGroups = append(m.AccessGroups, group)
	}
	for i, s := range doc.Series {
		series, err := translateSeries(path, s)
		if err != nil {
			return nil, fmt.Errorf("operations_data[%d] in %s: %w", i, path, err)
		}
		m.Series = append(m.Series, series)
	}

	return m, nil
}

func translateSeries(path string, s seriesDoc) (model.Series, error) {
	series := model.Series{
		Site:          s.Site,
		Indicator:     s.Indicator,
		Records:       s.Records,
		Values:        s.Values,
		FSInformation: model.NewFSInfo(path),
	}

	switch {
	case s.DynamicDate != nil && s.FromDate != nil:
		return model.Series{}, errors.New("dynamic_date and from_date are mutually exclusive")
	case s.DynamicDate != nil:
		if *s.DynamicDate == "" {
			return model.Series{}, errors.New("dynamic_date must not be empty")
		}
		if s.Step != nil {
			return model.Series{}, errors.New("step is only valid with from_date")
		}
		series.DynamicDate = *s.DynamicDate
	case s.FromDate != nil:
		series.FromDate = *s.FromDate
		if s.Step != nil {
			series.Step = caldelta.Delta(*s.Step)
		}
	default:
		return model.Series{}, errors.New("one of dynamic_date or from_date is required")
	}

	if s.Records < 0 {
		return model.Series{}, errors.New("records must not be negative")
	}
	return series, nil
}
