package models

// Page is a single Markdown file of a book
type Page struct {
	FileName   string // Base name of the source file, unique within a load
	Content    string // Text content, rewritten by each pipeline stage
	SourcePath string // Path the page was read from
}

// NewPage creates a page read from sourcePath
func NewPage(fileName, content, sourcePath string) *Page {
	return &Page{
		FileName:   fileName,
		Content:    content,
		SourcePath: sourcePath,
	}
}

// FileNames returns the file names of pages in order
func FileNames(pages []*Page) []string {
	names := make([]string, 0, len(pages))
	for _, p := range pages {
		names = append(names, p.FileName)
	}
	return names
}
