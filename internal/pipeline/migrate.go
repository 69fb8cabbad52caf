package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/geocine/bookport/internal/config"
	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/loader"
	"github.com/geocine/bookport/internal/logfields"
	"github.com/geocine/bookport/internal/preprocessor"
	"github.com/geocine/bookport/internal/preprocessor/frontmatter"
	"github.com/geocine/bookport/internal/utils"
)

// Migrate copies the pages of the books directory to the output directory with
// navigation links pointing at the repository. The output directory must exist.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Report, error) {
	start := time.Now()
	logger = logger.With(logfields.Pipeline("migrate"))

	if err := cfg.ValidateMigrate(); err != nil {
		return nil, err
	}
	placement, _ := cfg.MigratePlacement()
	outDir := cfg.Migrate.OutputDir

	info, err := os.Stat(outDir)
	if err != nil {
		return nil, errors.DirMissing(outDir, err)
	}
	if !info.IsDir() {
		return nil, errors.DirMissing(outDir, fmt.Errorf("not a directory"))
	}

	pages, err := loader.LoadPages(cfg.Book.Src, cfg.Book.Extension, loader.Order(cfg.Book.Order))
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded pages", logfields.Stage("load"), logfields.Count(len(pages)), logfields.Path(cfg.Book.Src))

	pp := preprocessor.NewPipeline()
	if cfg.Migrate.StripFrontmatter {
		pp.Add(frontmatter.NewFrontmatterPreprocessor())
	}
	if pp.Len() > 0 {
		logger.Debug("Preprocessing pages", logfields.Stage("preprocess"), slog.Any("preprocessors", pp.Names()))
		for _, page := range pages {
			if err := pp.Process(ctx, page); err != nil {
				return nil, err
			}
		}
	}

	written, err := linkAndWrite(ctx, logger, pages, cfg.Book.RepositoryURL, placement, outDir, utils.WriteFileInDir)
	if err != nil {
		return nil, err
	}

	report := &Report{OutputDir: outDir, Written: written, Duration: time.Since(start)}
	logger.Info("Migration finished", logfields.Count(len(written)), logfields.Path(outDir), logfields.DurationMS(report.Duration.Milliseconds()))
	return report, nil
}
