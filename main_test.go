package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/bookport/internal/config"
	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/translator"
)

func translateConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Translate.APIKey = "sk-test"
	cfg.Book.RepositoryURL = "https://x/y"
	cfg.Book.Src = "books"
	return cfg
}

func TestNewTranslatorBadTimeout(t *testing.T) {
	cfg := translateConfig()
	cfg.Translate.Timeout = "soon"

	tr, err := newTranslator(cfg, false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Nil(t, tr)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfig))
	assert.Contains(t, err.Error(), "translate.timeout")
}

func TestNewTranslatorOpenAI(t *testing.T) {
	cfg := translateConfig()
	cfg.Translate.Timeout = "2m"

	tr, err := newTranslator(cfg, false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.IsType(t, &translator.OpenAI{}, tr)
}

func TestNewTranslatorDryRunNeedsNoKey(t *testing.T) {
	cfg := translateConfig()
	cfg.Translate.APIKey = ""

	tr, err := newTranslator(cfg, true, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.IsType(t, translator.Mock{}, tr)
	assert.Equal(t, "dry-run", cfg.Translate.APIKey)
}
