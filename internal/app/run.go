package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/swimgen/internal/ctxlog"
	"github.com/specialistvlad/swimgen/internal/swimxml"
)

// Run loads the definitions, builds the fixture document and writes it to
// the configured output path.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Loading definitions.", "paths", a.config.DefinitionPaths)
	m, err := a.loader.Load(ctx, a.config.DefinitionPaths...)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	counts := m.Counts()
	a.logger.Info("Definitions loaded.",
		"indicators", counts.Indicators,
		"categories", counts.Categories,
		"sites", counts.Sites,
		"access_groups", counts.AccessGroups,
		"series", counts.Series,
		"records", counts.Records,
	)
	if m.IsEmpty() {
		a.logger.Warn("No definitions found, writing an empty document.")
	}

	builder := swimxml.New(swimxml.WithSeed(a.config.Seed), swimxml.WithClock(a.now))
	if err := builder.Apply(ctx, m); err != nil {
		return fmt.Errorf("failed to build document: %w", err)
	}
	a.logger.Debug("Document built.", "elements", builder.Len(), "seed", a.config.Seed)

	if err := builder.Save(a.config.OutputPath); err != nil {
		return err
	}
	a.logger.Info("Fixture written.", "path", a.config.OutputPath, "elements", builder.Len())

	a.logger.Debug("App.Run method finished.")
	return nil
}
