// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package swimxml

import (
	"context"
	"fmt"

	"github.com/specialistvlad/swimgen/internal/config"
	"github.com/specialistvlad/swimgen/internal/ctxlog"
	"github.com/specialistvlad/swimgen/internal/model"
)

// AddIndicators appends every indicator in order.
func (b *Builder) AddIndicators(indicators []model.Indicator) {
	for _, in := range indicators {
		b.AddIndicator(in.Name, in.Type, in.Class)
	}
}

// AddIndicatorCategories appends every category in order.
func (b *Builder) AddIndicatorCategories(categories []model.IndicatorCategory) {
	for _, c := range categories {
		b.AddIndicatorCategory(c.Name, c.Class, c.Indicators)
	}
}

// AddSites appends every site in order.
func (b *Builder) AddSites(sites []model.Site) {
	for _, s := range sites {
		b.AddSite(s)
	}
}

// AddAccessGroups appends every access group in order.
func (b *Builder) AddAccessGroups(groups []model.AccessGroup) {
	for _, g := range groups {
		b.AddAccessGroup(g)
	}
}

// AddOperationsDataSeries appends every series in order and stops at the
// first failing one. Series appended before the failure stay in the document.
func (b *Builder) AddOperationsDataSeries(ctx context.Context, series []model.Series) error {
	logger := ctxlog.FromContext(ctx)

	for _, s := range series {
		logger.Debug("Generating operations data.",
			"series", s.Label(),
			"mode", s.Mode().String(),
			"records", s.Records,
			"step", s.Step.String(),
		)
		if s.Mode() == model.ModeAbsolute && s.Records > 1 && s.Step.IsZero() {
			logger.Warn("Series has no step, every record shares one timestamp.", "series", s.Label())
		}
		if err := b.AddOperationsData(s); err != nil {
			return fmt.Errorf("operations data %s: %w", s.Label(), err)
		}
	}
	return nil
}

// Apply appends the whole model: indicators, categories, sites, access
// groups, then operations data.
func (b *Builder) Apply(ctx context.Context, m *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	b.AddIndicators(m.Indicators)
	b.AddIndicatorCategories(m.Categories)
	b.AddSites(m.Sites)
	b.AddAccessGroups(m.AccessGroups)
	logger.Debug("Static records appended.",
		"indicators", len(m.Indicators),
		"categories", len(m.Categories),
		"sites", len(m.Sites),
		"access_groups", len(m.AccessGroups),
	)

	return b.AddOperationsDataSeries(ctx, m.Series)
}
