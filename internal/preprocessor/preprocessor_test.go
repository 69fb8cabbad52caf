package preprocessor

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/bookport/internal/models"
)

type funcPreprocessor struct {
	name string
	fn   func(*models.Page) error
}

func (f funcPreprocessor) Name() string { return f.name }

func (f funcPreprocessor) Process(_ context.Context, page *models.Page) error {
	return f.fn(page)
}

func TestPipelineRunsInOrder(t *testing.T) {
	p := NewPipeline(
		funcPreprocessor{"first", func(pg *models.Page) error { pg.Content += "1"; return nil }},
	)
	p.Add(funcPreprocessor{"second", func(pg *models.Page) error { pg.Content += "2"; return nil }})

	page := models.NewPage("a.md", "x", "a.md")
	require.NoError(t, p.Process(context.Background(), page))
	assert.Equal(t, "x12", page.Content)
	assert.Equal(t, []string{"first", "second"}, p.Names())
	assert.Equal(t, 2, p.Len())
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	boom := stderrors.New("boom")
	ran := false
	p := NewPipeline(
		funcPreprocessor{"fail", func(*models.Page) error { return boom }},
		funcPreprocessor{"after", func(*models.Page) error { ran = true; return nil }},
	)

	err := p.Process(context.Background(), models.NewPage("a.md", "x", "a.md"))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "'fail'")
	assert.Contains(t, err.Error(), "a.md")
	assert.False(t, ran)
}

func TestPipelineHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(funcPreprocessor{"never", func(*models.Page) error {
		t.Fatal("should not run")
		return nil
	}})
	assert.ErrorIs(t, p.Process(ctx, models.NewPage("a.md", "x", "a.md")), context.Canceled)
}

func TestEmptyPipelineIsNoop(t *testing.T) {
	page := models.NewPage("a.md", "x", "a.md")
	require.NoError(t, NewPipeline().Process(context.Background(), page))
	assert.Equal(t, "x", page.Content)
}
