package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinksInDocumentOrder(t *testing.T) {
	content := `# Summary

- [Intro](01-intro.md)
- [Setup](02-setup.md)
  - [Nested](02a-nested.md)

![diagram](img/diagram.png)

See <https://example.com> and [the end](99-end.md).
`
	links := Links(content)
	require.Len(t, links, 4)
	assert.Equal(t, Link{Text: "Intro", Destination: "01-intro.md"}, links[0])
	assert.Equal(t, "02-setup.md", links[1].Destination)
	assert.Equal(t, "02a-nested.md", links[2].Destination)
	assert.Equal(t, Link{Text: "the end", Destination: "99-end.md"}, links[3])
}

func TestLinksOnNavigationLine(t *testing.T) {
	links := Links("Body\n\n[Prev](https://x/y/a.md) | [Next](https://x/y/c.md)")
	require.Len(t, links, 2)
	assert.Equal(t, "Prev", links[0].Text)
	assert.Equal(t, "https://x/y/a.md", links[0].Destination)
	assert.Equal(t, "Next", links[1].Text)
	assert.Equal(t, "https://x/y/c.md", links[1].Destination)

	// Placeholders carry no link
	assert.Empty(t, Links("Prev | Next"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Getting started", Title("intro text\n\n## Getting `started`\n\n# Later"))
	assert.Equal(t, "Setext Title", Title("Setext Title\n============\n"))
	assert.Equal(t, "", Title("no headings here"))
}
