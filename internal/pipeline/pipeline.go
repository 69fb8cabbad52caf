// Package pipeline wires loading, preprocessing, linking and writing into the
// translate and migrate runs.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/logfields"
	"github.com/geocine/bookport/internal/markdown"
	"github.com/geocine/bookport/internal/models"
	"github.com/geocine/bookport/internal/pagination"
)

// Report summarizes a finished run
type Report struct {
	OutputDir string
	Written   []string // file names in link order
	Duration  time.Duration
}

// writeFunc persists one file
type writeFunc func(path string, content []byte) error

// linkAndWrite adds navigation lines to pages and writes every page to outDir
func linkAndWrite(ctx context.Context, logger *slog.Logger, pages []*models.Page, baseURL string, placement pagination.Placement, outDir string, write writeFunc) ([]string, error) {
	pagination.NewLinker(baseURL, placement).Link(pages)

	written := make([]string, 0, len(pages))
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		outPath := filepath.Join(outDir, page.FileName)
		if err := write(outPath, []byte(page.Content)); err != nil {
			return written, errors.WriteFailed(outPath, err)
		}
		logger.Debug("Wrote page", logfields.Stage("link"), logfields.Page(page.FileName), logfields.Path(outPath))
		written = append(written, page.FileName)
	}
	return written, nil
}

func pageAttrs(page *models.Page) []any {
	attrs := []any{logfields.Page(page.FileName)}
	if title := markdown.Title(page.Content); title != "" {
		attrs = append(attrs, logfields.Title(title))
	}
	return attrs
}
