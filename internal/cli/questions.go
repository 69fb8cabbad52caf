package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FillInitOptionsInteractive prompts the user to confirm or override defaults.
// Empty answers and a closed input keep the current values.
func FillInitOptionsInteractive(in io.Reader, out io.Writer, opts *InitOptions) {
	reader := bufio.NewReader(in)

	ask := func(label string, value *string) {
		fmt.Fprintf(out, "%s [%s]: ", label, *value)
		if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
			*value = strings.TrimSpace(s)
		}
	}

	if opts.BooksDir == "" {
		opts.BooksDir = "books"
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "out"
	}

	ask("Books directory", &opts.BooksDir)
	ask("Migration output directory", &opts.OutputDir)
	ask("Repository URL for page links", &opts.RepositoryURL)

	defForce := "n"
	if opts.Force {
		defForce = "y"
	}
	fmt.Fprintf(out, "Overwrite existing files? (y/N) [%s]: ", defForce)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		v := strings.ToLower(strings.TrimSpace(s))
		opts.Force = v == "y" || v == "yes"
	}
}
