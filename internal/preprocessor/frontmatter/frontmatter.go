package frontmatter

import (
	"context"
	"regexp"

	"github.com/geocine/bookport/internal/models"
)

var (
	yamlPattern = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n`)
	tomlPattern = regexp.MustCompile(`(?s)^\+\+\+\s*\n(.*?)\n\+\+\+\s*\n`)
)

// FrontmatterPreprocessor strips YAML/TOML frontmatter from pages.
// Zenn chapters carry a YAML header that would otherwise end up below the
// leading navigation line. Disabled unless migrate.strip-frontmatter is set.
type FrontmatterPreprocessor struct{}

// NewFrontmatterPreprocessor creates a new frontmatter preprocessor
func NewFrontmatterPreprocessor() *FrontmatterPreprocessor {
	return &FrontmatterPreprocessor{}
}

// Name returns the preprocessor name
func (f *FrontmatterPreprocessor) Name() string {
	return "frontmatter"
}

// Process strips frontmatter from the page
func (f *FrontmatterPreprocessor) Process(_ context.Context, page *models.Page) error {
	page.Content = stripFrontmatter(page.Content)
	return nil
}

// stripFrontmatter removes YAML or TOML frontmatter from content
// Frontmatter formats:
// - YAML: between --- delimiters
// - TOML: between +++ delimiters
// - Must be at the very start of the content
func stripFrontmatter(content string) string {
	if yamlPattern.MatchString(content) {
		return yamlPattern.ReplaceAllString(content, "")
	}
	if tomlPattern.MatchString(content) {
		return tomlPattern.ReplaceAllString(content, "")
	}
	return content
}
