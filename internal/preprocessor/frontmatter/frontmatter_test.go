package frontmatter

import (
	"context"
	"testing"

	"github.com/geocine/bookport/internal/models"
)

func TestStripYamlFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "YAML frontmatter",
			input: `---
title: Test Chapter
author: Jane Doe
tags: [intro, test]
---

# Chapter Title

This is the content.`,
			expected: `# Chapter Title

This is the content.`,
		},
		{
			name: "TOML frontmatter",
			input: `+++
title = "Test Chapter"
author = "Jane Doe"
+++

# Chapter Title

Content here.`,
			expected: `# Chapter Title

Content here.`,
		},
		{
			name: "No frontmatter",
			input: `# Chapter Title

Just content, no metadata.`,
			expected: `# Chapter Title

Just content, no metadata.`,
		},
		{
			name: "Empty frontmatter",
			input: `---

---

# Chapter

Content.`,
			expected: `# Chapter

Content.`,
		},
		{
			name: "Multiline YAML values",
			input: `---
title: Multi
description: |
  This is a long
  description spanning
  multiple lines
---

# Heading

Content.`,
			expected: `# Heading

Content.`,
		},
		{
			name: "Content with dashes (no frontmatter)",
			input: `# Chapter

--- This is just dashes in content ---

More content.`,
			expected: `# Chapter

--- This is just dashes in content ---

More content.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripFrontmatter(tt.input)
			if result != tt.expected {
				t.Errorf("stripFrontmatter() mismatch\nGot:\n%q\nExpected:\n%q", result, tt.expected)
			}
		})
	}
}

func TestFrontmatterPreprocessorProcess(t *testing.T) {
	zenn := models.NewPage("intro.md", `---
title: "はじめに"
---

# Content`, "books/intro.md")

	plain := models.NewPage("setup.md", `# No frontmatter

Just content.`, "books/setup.md")

	fp := NewFrontmatterPreprocessor()
	for _, page := range []*models.Page{zenn, plain} {
		if err := fp.Process(context.Background(), page); err != nil {
			t.Fatalf("Process() error: %v", err)
		}
	}

	if zenn.Content != "# Content" {
		t.Errorf("frontmatter not stripped. Got: %q", zenn.Content)
	}
	if plain.Content != "# No frontmatter\n\nJust content." {
		t.Errorf("page without frontmatter was modified. Got: %q", plain.Content)
	}
}

func TestFrontmatterPreprocessorName(t *testing.T) {
	fp := NewFrontmatterPreprocessor()
	if fp.Name() != "frontmatter" {
		t.Errorf("Name() = %q, want 'frontmatter'", fp.Name())
	}
}
