package loader

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/markdown"
)

const summaryFile = "SUMMARY.md"

// zennBook is the subset of a Zenn book's config.yaml that fixes chapter order
type zennBook struct {
	Title    string   `yaml:"title"`
	Chapters []string `yaml:"chapters"`
}

// readZennChapters returns the chapter slugs listed in dir/config.yaml
func readZennChapters(dir string) ([]string, error) {
	manifest := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(manifest)
	if err != nil {
		return nil, errors.ConfigInvalid("book.order", err).WithContext("path", manifest)
	}

	var book zennBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, errors.ConfigInvalid("book.order", err).WithContext("path", manifest)
	}
	return book.Chapters, nil
}

// readSummaryOrder returns the file names linked from dir/SUMMARY.md in document order
func readSummaryOrder(dir string) ([]string, error) {
	summaryPath := filepath.Join(dir, summaryFile)
	data, err := os.ReadFile(summaryPath)
	if err != nil {
		return nil, errors.ReadFailed(summaryPath, err)
	}

	names := make([]string, 0)
	for _, link := range markdown.Links(string(data)) {
		dest := link.Destination
		if dest == "" || strings.Contains(dest, "://") {
			continue
		}
		// Drop fragments and a leading ./ so links match base names
		if i := strings.IndexByte(dest, '#'); i >= 0 {
			dest = dest[:i]
		}
		dest = path.Clean(dest)
		if strings.Contains(dest, "/") {
			continue
		}
		names = append(names, dest)
	}
	return names, nil
}
