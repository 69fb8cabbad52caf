package preprocessor

import (
	"context"
	"fmt"

	"github.com/geocine/bookport/internal/models"
)

// Preprocessor rewrites a page before it is linked
type Preprocessor interface {
	Name() string
	Process(ctx context.Context, page *models.Page) error
}

// Pipeline runs multiple preprocessors in sequence
type Pipeline struct {
	preprocessors []Preprocessor
}

// NewPipeline creates a new preprocessor pipeline
func NewPipeline(preprocessors ...Preprocessor) *Pipeline {
	p := &Pipeline{
		preprocessors: make([]Preprocessor, 0, len(preprocessors)),
	}
	for _, pp := range preprocessors {
		p.Add(pp)
	}
	return p
}

// Add adds a preprocessor to the pipeline
func (p *Pipeline) Add(preprocessor Preprocessor) {
	p.preprocessors = append(p.preprocessors, preprocessor)
}

// Len returns the number of preprocessors
func (p *Pipeline) Len() int {
	return len(p.preprocessors)
}

// Names returns the preprocessor names in execution order
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.preprocessors))
	for _, pp := range p.preprocessors {
		names = append(names, pp.Name())
	}
	return names
}

// Process runs all preprocessors on the page, stopping at the first failure
func (p *Pipeline) Process(ctx context.Context, page *models.Page) error {
	for _, preprocessor := range p.preprocessors {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := preprocessor.Process(ctx, page); err != nil {
			return fmt.Errorf("preprocessor '%s' failed on %s: %w", preprocessor.Name(), page.FileName, err)
		}
	}
	return nil
}
