package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/models"
	"github.com/geocine/bookport/internal/utils"
)

// Order names how loaded pages are sequenced
type Order string

const (
	OrderLexical Order = "lexical"
	OrderZenn    Order = "zenn"
	OrderSummary Order = "summary"
)

// PageLoader handles loading the pages of a book from disk
type PageLoader struct {
	dir       string
	extension string
	order     Order
}

// NewPageLoader creates a loader for dir/*extension
func NewPageLoader(dir, extension string, order Order) *PageLoader {
	if extension == "" {
		extension = ".md"
	}
	if order == "" {
		order = OrderLexical
	}
	return &PageLoader{
		dir:       dir,
		extension: extension,
		order:     order,
	}
}

// Load reads every matching page. Any unreadable file fails the whole load.
func (pl *PageLoader) Load() ([]*models.Page, error) {
	info, err := os.Stat(pl.dir)
	if err != nil {
		return nil, errors.DirMissing(pl.dir, err)
	}
	if !info.IsDir() {
		return nil, errors.DirMissing(pl.dir, fmt.Errorf("not a directory"))
	}

	pattern := filepath.Join(pl.dir, "*"+pl.extension)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.ConfigInvalid("book.extension", err).WithContext("pattern", pattern)
	}

	pages := make([]*models.Page, 0, len(paths))
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, errors.ReadFailed(path, err)
		}
		if fi.IsDir() {
			continue
		}
		// The table of contents orders the book, it is not a page of it
		if pl.order == OrderSummary && filepath.Base(path) == summaryFile {
			continue
		}

		page, err := pl.loadPage(path)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pl.sortPages(pages)
}

func (pl *PageLoader) loadPage(path string) (*models.Page, error) {
	data, err := utils.ReadToString(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}

	// Strip BOM if present
	content := strings.TrimPrefix(data, "\ufeff")

	return models.NewPage(filepath.Base(path), content, path), nil
}

func (pl *PageLoader) sortPages(pages []*models.Page) ([]*models.Page, error) {
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].FileName < pages[j].FileName
	})

	var listed []string
	switch pl.order {
	case OrderLexical:
		return pages, nil
	case OrderZenn:
		slugs, err := readZennChapters(pl.dir)
		if err != nil {
			return nil, err
		}
		for _, slug := range slugs {
			listed = append(listed, slug+pl.extension)
		}
	case OrderSummary:
		names, err := readSummaryOrder(pl.dir)
		if err != nil {
			return nil, err
		}
		listed = names
	default:
		return nil, errors.ConfigInvalid("book.order", fmt.Errorf("unknown order %q", pl.order))
	}

	return orderByList(pages, listed), nil
}

// SortByNames orders pages like names: listed pages first, in list order,
// followed by the rest in their current order
func SortByNames(pages []*models.Page, names []string) []*models.Page {
	return orderByList(pages, names)
}

// orderByList puts pages named in listed first, in list order, followed by the
// remaining pages in their current order. Unknown and repeated names are skipped.
func orderByList(pages []*models.Page, listed []string) []*models.Page {
	byName := make(map[string]*models.Page, len(pages))
	for _, p := range pages {
		byName[p.FileName] = p
	}

	ordered := make([]*models.Page, 0, len(pages))
	used := make(map[string]bool, len(pages))
	for _, name := range listed {
		if p, ok := byName[name]; ok && !used[name] {
			ordered = append(ordered, p)
			used[name] = true
		}
	}
	for _, p := range pages {
		if !used[p.FileName] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// LoadPages is a convenience function to load the pages of dir
func LoadPages(dir, extension string, order Order) ([]*models.Page, error) {
	return NewPageLoader(dir, extension, order).Load()
}
