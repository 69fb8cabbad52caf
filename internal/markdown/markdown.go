package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is an inline link found in a Markdown document
type Link struct {
	Text        string
	Destination string
}

func parse(body []byte) gmast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(body))
}

// Links returns inline links in document order. Images and autolinks are skipped.
func Links(content string) []Link {
	body := []byte(content)
	root := parse(body)

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if node, ok := n.(*gmast.Link); ok {
			links = append(links, Link{
				Text:        nodeText(node, body),
				Destination: string(node.Destination),
			})
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// Title returns the text of the first heading, or "" when the page has none
func Title(content string) string {
	body := []byte(content)
	root := parse(body)

	title := ""
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			title = nodeText(h, body)
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

// nodeText concatenates the text segments below n
func nodeText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}
