package translator

import (
	"fmt"

	"github.com/aymerick/raymond"
)

// Prompt renders the request sent for one page. The page text is available to
// the template as {{{content}}}.
type Prompt struct {
	tpl *raymond.Template
}

// NewPrompt parses a Handlebars prompt template
func NewPrompt(source string) (*Prompt, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	return &Prompt{tpl: tpl}, nil
}

// Render fills the template with content
func (p *Prompt) Render(content string) (string, error) {
	out, err := p.tpl.Exec(map[string]string{"content": content})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return out, nil
}
