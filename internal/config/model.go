package config

import (
	"github.com/specialistvlad/swimgen/internal/model"
)

// Model is the unified, format-agnostic representation of a fixture
// definition. Each list keeps declaration order across all loaded files.
type Model struct {
	Indicators   []model.Indicator
	Categories   []model.IndicatorCategory
	Sites        []model.Site
	AccessGroups []model.AccessGroup
	Series       []model.Series
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{}
}

// Merge appends every record of other after the records already in m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Indicators = append(m.Indicators, other.Indicators...)
	m.Categories = append(m.Categories, other.Categories...)
	m.Sites = append(m.Sites, other.Sites...)
	m.AccessGroups = append(m.AccessGroups, other.AccessGroups...)
	m.Series = append(m.Series, other.Series...)
}

// Counts summarizes the model for logging.
type Counts struct {
	Indicators   int
	Categories   int
	Sites        int
	AccessGroups int
	Series       int
	Records      int
}

// Counts returns the number of records of each kind.
func (m *Model) Counts() Counts {
	c := Counts{
		Indicators:   len(m.Indicators),
		Categories:   len(m.Categories),
		Sites:        len(m.Sites),
		AccessGroups: len(m.AccessGroups),
		Series:       len(m.Series),
	}
	for _, s := range m.Series {
		if s.Records > 0 {
			c.Records += s.Records
		}
	}
	return c
}

// IsEmpty reports whether the model holds no records at all.
func (m *Model) IsEmpty() bool {
	return m.Counts() == Counts{}
}
