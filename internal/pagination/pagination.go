// Package pagination computes previous/next navigation links between the
// pages of a book from their position in an ordered sequence.
package pagination

import (
	"fmt"

	"github.com/geocine/bookport/internal/models"
)

const (
	PrevLabel = "Prev"
	NextLabel = "Next"
)

// Placement controls where the navigation line is put relative to the page content
type Placement int

const (
	// AppendOnly puts the navigation line once, after the content
	AppendOnly Placement = iota
	// WrapContent puts the navigation line before and after the content
	WrapContent
)

// ParsePlacement parses the config spelling of a placement
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "append-only":
		return AppendOnly, nil
	case "wrap-content":
		return WrapContent, nil
	default:
		return 0, fmt.Errorf("unknown placement %q (want append-only or wrap-content)", s)
	}
}

func (p Placement) String() string {
	switch p {
	case AppendOnly:
		return "append-only"
	case WrapContent:
		return "wrap-content"
	default:
		return fmt.Sprintf("placement(%d)", int(p))
	}
}

// NavLinks is the rendered previous/next pair of one page
type NavLinks struct {
	Prev string
	Next string
}

// String renders the navigation line
func (n NavLinks) String() string {
	return n.Prev + " | " + n.Next
}

// LinkTarget joins baseURL and fileName with a single slash. Neither part is
// escaped or normalized.
func LinkTarget(baseURL, fileName string) string {
	return baseURL + "/" + fileName
}

// Links computes the navigation pair for every position of names.
// The first entry has no previous page and the last has no next page; those
// sides are rendered as the bare label.
func Links(names []string, baseURL string) []NavLinks {
	navs := make([]NavLinks, len(names))
	for i := range names {
		prev := PrevLabel
		if i > 0 {
			prev = fmt.Sprintf("[%s](%s)", PrevLabel, LinkTarget(baseURL, names[i-1]))
		}
		next := NextLabel
		if i < len(names)-1 {
			next = fmt.Sprintf("[%s](%s)", NextLabel, LinkTarget(baseURL, names[i+1]))
		}
		navs[i] = NavLinks{Prev: prev, Next: next}
	}
	return navs
}

// Place inserts the navigation line into content
func Place(content string, nav NavLinks, placement Placement) string {
	line := nav.String()
	if placement == WrapContent {
		return line + "\n\n" + content + "\n\n" + line
	}
	return content + "\n\n" + line
}

// Linker adds navigation lines to an ordered set of pages
type Linker struct {
	BaseURL   string
	Placement Placement
}

// NewLinker creates a linker for baseURL
func NewLinker(baseURL string, placement Placement) *Linker {
	return &Linker{
		BaseURL:   baseURL,
		Placement: placement,
	}
}

// Link rewrites the content of every page in place. Running it twice adds the
// navigation lines twice.
func (l *Linker) Link(pages []*models.Page) {
	navs := Links(models.FileNames(pages), l.BaseURL)
	for i, page := range pages {
		page.Content = Place(page.Content, navs[i], l.Placement)
	}
}
