// This file contains the logic for translating decoded HCL blocks into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/specialistvlad/swimgen/internal/caldelta"
	"github.com/specialistvlad/swimgen/internal/config"
	"github.com/specialistvlad/swimgen/internal/model"
)

// translateFile converts one decoded file into a model.
func translateFile(path string, f *fixtureFile) (*config.Model, error) {
	m := config.NewModel()

	for _, in := range f.Indicators {
		m.Indicators = append(m.Indicators, model.Indicator{Name: in.Name, Type: in.Type, Class: in.Class})
	}
	for _, c := range f.Categories {
		m.Categories = append(m.Categories, model.IndicatorCategory{Name: c.Name, Class: c.Class, Indicators: c.Indicators})
	}
	for _, s := range f.Sites {
		m.Sites = append(m.Sites, translateSite(s))
	}
	for _, g := range f.AccessGroups {
		m.AccessGroups = append(m.AccessGroups, translateAccessGroup(g))
	}
	for _, s := range f.Series {
		series, err := translateSeries(path, s)
		if err != nil {
			return nil, err
		}
		m.Series = append(m.Series, series)
	}

	return m, nil
}

func translateSite(s *siteBlock) model.Site {
	return model.Site{
		Name:       s.Name,
		Type:       s.Type,
		Categories: s.Categories,
		Parent:     s.Parent,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
	}
}

func translateAccessGroup(g *accessGroupBlock) model.AccessGroup {
	group := model.AccessGroup{Name: g.Name, Users: g.Users}
	for _, grant := range g.Grants {
		group.Sites = append(group.Sites, model.SiteGrant{Site: grant.Site, Categories: grant.Categories})
	}
	return group
}

// translateSeries checks that exactly one stamping mode is declared.
func translateSeries(path string, s *seriesBlock) (model.Series, error) {
	series := model.Series{
		Site:          s.Site,
		Indicator:     s.Indicator,
		Records:       s.Records,
		Values:        s.Values,
		FSInformation: model.NewFSInfo(path),
	}

	switch {
	case s.DynamicDate != nil && s.FromDate != nil:
		return model.Series{}, fmt.Errorf("operations_data %q %q in %s: dynamic_date and from_date are mutually exclusive", s.Site, s.Indicator, path)
	case s.DynamicDate != nil:
		if *s.DynamicDate == "" {
			return model.Series{}, fmt.Errorf("operations_data %q %q in %s: dynamic_date must not be empty", s.Site, s.Indicator, path)
		}
		if s.Step != nil {
			return model.Series{}, fmt.Errorf("operations_data %q %q in %s: step is only valid with from_date", s.Site, s.Indicator, path)
		}
		series.DynamicDate = *s.DynamicDate
	case s.FromDate != nil:
		series.FromDate = *s.FromDate
		if s.Step != nil {
			series.Step = caldelta.Delta{Years: s.Step.Years, Months: s.Step.Months, Days: s.Step.Days, Hours: s.Step.Hours}
		}
	default:
		return model.Series{}, fmt.Errorf("operations_data %q %q in %s: one of dynamic_date or from_date is required", s.Site, s.Indicator, path)
	}

	if s.Records < 0 {
		return model.Series{}, fmt.Errorf("operations_data %q %q in %s: records must not be negative", s.Site, s.Indicator, path)
	}
	return series, nil
}
