package cli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/geocine/bookport/internal/config"
	"github.com/geocine/bookport/internal/utils"
)

// InitOptions captures options for scaffolding a working directory
type InitOptions struct {
	Dir           string // where .env and bookport.toml are written, default "."
	BooksDir      string // default: books
	OutputDir     string // default: out
	RepositoryURL string
	Force         bool // overwrite existing files
}

// InitResult lists what Init did
type InitResult struct {
	Created []string
	Skipped []string
}

// Init writes a .env template and a bookport.toml with the defaults
func Init(opts InitOptions) (*InitResult, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.BooksDir == "" {
		opts.BooksDir = "books"
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "out"
	}

	if err := utils.CreateDirAll(opts.Dir); err != nil {
		return nil, err
	}

	res := &InitResult{}

	env := fmt.Sprintf(`%s= # TODO: your key
%s=%s
%s=%s
%s=%s
`, config.EnvAPIKey,
		config.EnvRepositoryURL, opts.RepositoryURL,
		config.EnvBooksDir, opts.BooksDir,
		config.EnvOutputDir, opts.OutputDir)
	if err := writeScaffold(res, filepath.Join(opts.Dir, ".env"), []byte(env), opts.Force); err != nil {
		return nil, err
	}

	// Values supplied through the environment are left out of the file
	cfg := config.NewDefaultConfig()
	var buf bytes.Buffer
	buf.WriteString("# bookport configuration. OPEN_AI_API_KEY, REPOSITORY_URL,\n")
	buf.WriteString("# LOCAL_BOOKS_DIR_PATH and OUTPUT_DIR_PATH override the values below.\n\n")
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := writeScaffold(res, filepath.Join(opts.Dir, "bookport.toml"), buf.Bytes(), opts.Force); err != nil {
		return nil, err
	}

	if err := utils.CreateDirAll(filepath.Join(opts.Dir, opts.BooksDir)); err != nil {
		return nil, err
	}
	return res, nil
}

func writeScaffold(res *InitResult, path string, content []byte, force bool) error {
	if utils.FileExists(path) && !force {
		res.Skipped = append(res.Skipped, path)
		return nil
	}
	if err := utils.WriteFile(path, content); err != nil {
		return err
	}
	res.Created = append(res.Created, path)
	return nil
}
