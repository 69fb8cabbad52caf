package translate

import (
	"context"

	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/models"
	"github.com/geocine/bookport/internal/translator"
)

// TranslatePreprocessor replaces page content with its translation
type TranslatePreprocessor struct {
	translator translator.Translator
}

// NewTranslatePreprocessor creates a preprocessor backed by t
func NewTranslatePreprocessor(t translator.Translator) *TranslatePreprocessor {
	return &TranslatePreprocessor{translator: t}
}

// Name returns the preprocessor name
func (tp *TranslatePreprocessor) Name() string {
	return "translate"
}

// Process sends the page to the translator and stores the answer unmodified
func (tp *TranslatePreprocessor) Process(ctx context.Context, page *models.Page) error {
	translated, err := tp.translator.Translate(ctx, page.Content)
	if err != nil {
		return errors.TranslationFailed(page.FileName, err)
	}
	page.Content = translated
	return nil
}
