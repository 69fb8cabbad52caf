package translator

import (
	"context"
	"errors"
)

// ErrNoChoices is returned when the service answers without any completion
var ErrNoChoices = errors.New("response contains no choices")

// Translator turns page text into translated text
type Translator interface {
	// Translate sends text to the translation service and returns its answer as-is
	Translate(ctx context.Context, text string) (string, error)
}

// TranslationError reports a failed translation call
type TranslationError struct {
	Model string
	Err   error
}

func (e *TranslationError) Error() string {
	if e.Model == "" {
		return "translation failed: " + e.Err.Error()
	}
	return "translation with " + e.Model + " failed: " + e.Err.Error()
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// Func adapts a function to the Translator interface
type Func func(ctx context.Context, text string) (string, error)

func (f Func) Translate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Mock returns the text unchanged
type Mock struct{}

func NewMock() Mock {
	return Mock{}
}

func (Mock) Translate(_ context.Context, text string) (string, error) {
	return text, nil
}
