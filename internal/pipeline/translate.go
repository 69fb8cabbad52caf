package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/geocine/bookport/internal/config"
	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/loader"
	"github.com/geocine/bookport/internal/logfields"
	"github.com/geocine/bookport/internal/models"
	"github.com/geocine/bookport/internal/preprocessor"
	"github.com/geocine/bookport/internal/preprocessor/translate"
	"github.com/geocine/bookport/internal/translator"
	"github.com/geocine/bookport/internal/utils"
)

// Translate translates every page of the books directory into
// <books dir>/<output-subdir>, then links the translated pages.
//
// Each translation is written as soon as it arrives, so pages finished before
// a failure stay on disk. The link stage reloads the output directory and
// therefore also links files that were already there.
func Translate(ctx context.Context, cfg *config.Config, tr translator.Translator, logger *slog.Logger) (*Report, error) {
	start := time.Now()
	logger = logger.With(logfields.Pipeline("translate"))

	if err := cfg.ValidateTranslate(); err != nil {
		return nil, err
	}
	placement, _ := cfg.TranslatePlacement()
	order := loader.Order(cfg.Book.Order)

	pages, err := loader.LoadPages(cfg.Book.Src, cfg.Book.Extension, order)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded pages", logfields.Stage("load"), logfields.Count(len(pages)), logfields.Path(cfg.Book.Src))

	outDir := filepath.Join(cfg.Book.Src, cfg.Translate.OutputSubdir)
	if err := utils.CreateDirAll(outDir); err != nil {
		return nil, errors.WriteFailed(outDir, err)
	}

	pp := preprocessor.NewPipeline(translate.NewTranslatePreprocessor(tr))
	logger.Debug("Preprocessing pages", logfields.Stage("preprocess"), slog.Any("preprocessors", pp.Names()))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Translate.Concurrency)
	for _, page := range pages {
		page := page
		g.Go(func() error {
			// Skip remaining pages once a translation has failed
			if err := gctx.Err(); err != nil {
				return err
			}
			logger.Info("Translating page", append([]any{logfields.Stage("translate")}, pageAttrs(page)...)...)
			began := time.Now()
			if err := pp.Process(gctx, page); err != nil {
				return err
			}

			outPath := filepath.Join(outDir, page.FileName)
			if err := utils.WriteFile(outPath, []byte(page.Content)); err != nil {
				return errors.WriteFailed(outPath, err)
			}
			logger.Debug("Translated page", logfields.Page(page.FileName), logfields.DurationMS(time.Since(began).Milliseconds()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	translated, err := loader.LoadPages(outDir, cfg.Book.Extension, loader.OrderLexical)
	if err != nil {
		return nil, err
	}
	translated = loader.SortByNames(translated, models.FileNames(pages))

	written, err := linkAndWrite(ctx, logger, translated, cfg.Book.RepositoryURL, placement, outDir, utils.WriteFile)
	if err != nil {
		return nil, err
	}

	report := &Report{OutputDir: outDir, Written: written, Duration: time.Since(start)}
	logger.Info("Translation finished", logfields.Count(len(written)), logfields.Path(outDir), logfields.DurationMS(report.Duration.Milliseconds()))
	return report, nil
}
