package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/pagination"
)

// Environment variables read by both pipelines
const (
	EnvAPIKey        = "OPEN_AI_API_KEY"
	EnvRepositoryURL = "REPOSITORY_URL"
	EnvBooksDir      = "LOCAL_BOOKS_DIR_PATH"
	EnvOutputDir     = "OUTPUT_DIR_PATH"

	envPrefix = "BOOKPORT_"
)

// DefaultPrompt asks the model to translate the page into English
const DefaultPrompt = "英語に翻訳してください。\n\n{{{content}}}"

// envBindings maps the well-known variables onto config keys
var envBindings = []struct {
	env string
	key string
}{
	{EnvAPIKey, "translate.api-key"},
	{EnvRepositoryURL, "book.repository-url"},
	{EnvBooksDir, "book.src"},
	{EnvOutputDir, "migrate.output-dir"},
}

// BookConfig describes the source pages
type BookConfig struct {
	Src           string `toml:"src"`
	Extension     string `toml:"extension"`
	Order         string `toml:"order"` // lexical, zenn or summary
	RepositoryURL string `toml:"repository-url"`
}

// DefaultBookConfig returns a book config with defaults
func DefaultBookConfig() BookConfig {
	return BookConfig{
		Extension: ".md",
		Order:     "lexical",
	}
}

// TranslateConfig contains translation pipeline settings
type TranslateConfig struct {
	APIKey       string  `toml:"api-key"`
	Model        string  `toml:"model"`
	Temperature  float32 `toml:"temperature"`
	BaseURL      string  `toml:"base-url"`
	Prompt       string  `toml:"prompt"`
	OutputSubdir string  `toml:"output-subdir"`
	Placement    string  `toml:"placement"`
	Concurrency  int     `toml:"concurrency"`
	Timeout      string  `toml:"timeout"`
}

// DefaultTranslateConfig returns a translate config with defaults
func DefaultTranslateConfig() TranslateConfig {
	return TranslateConfig{
		Model:        "gpt-3.5-turbo",
		Temperature:  0.1,
		Prompt:       DefaultPrompt,
		OutputSubdir: "translated",
		Placement:    pagination.AppendOnly.String(),
		Concurrency:  1,
	}
}

// MigrateConfig contains migration pipeline settings
type MigrateConfig struct {
	OutputDir        string `toml:"output-dir"`
	Placement        string `toml:"placement"`
	StripFrontmatter bool   `toml:"strip-frontmatter"`
}

// DefaultMigrateConfig returns a migrate config with defaults
func DefaultMigrateConfig() MigrateConfig {
	return MigrateConfig{
		Placement: pagination.WrapContent.String(),
	}
}

// Config is the top-level configuration
type Config struct {
	Book      BookConfig      `toml:"book"`
	Translate TranslateConfig `toml:"translate"`
	Migrate   MigrateConfig   `toml:"migrate"`
}

// NewDefaultConfig returns a config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Book:      DefaultBookConfig(),
		Translate: DefaultTranslateConfig(),
		Migrate:   DefaultMigrateConfig(),
	}
}

// Load reads the optional config file at path and applies the environment on
// top of it. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := LoadFromFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		cfg = NewDefaultConfig()
		if err := cfg.UpdateFromEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// LoadFromFile loads configuration from a bookport.toml file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromString(string(data))
}

// LoadFromString loads configuration from a TOML string
func LoadFromString(content string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := toml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, errors.ConfigInvalid("file", err)
	}

	if err := cfg.UpdateFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables that are already set keep their values. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.ConfigInvalid("env-file", err).WithContext("path", path)
	}
	return nil
}

// UpdateFromEnv updates config from environment variables.
// Variables starting with BOOKPORT_ are applied first:
// BOOKPORT_FOO_BAR -> foo-bar
// BOOKPORT_FOO__BAR -> foo.bar
// then the well-known variables such as REPOSITORY_URL.
func (c *Config) UpdateFromEnv() error {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], envPrefix)
		configKey := strings.ToLower(key)
		configKey = strings.ReplaceAll(configKey, "__", ".")
		configKey = strings.ReplaceAll(configKey, "_", "-")

		if err := c.Set(configKey, parts[1]); err != nil {
			return err
		}
	}

	for _, b := range envBindings {
		if v, ok := os.LookupEnv(b.env); ok && v != "" {
			if err := c.Set(b.key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Set sets a configuration value using dot notation (e.g., "book.src", "translate.model").
// Unknown keys are ignored.
func (c *Config) Set(key, value string) error {
	section, field, ok := strings.Cut(strings.ToLower(key), ".")
	if !ok {
		return nil
	}

	switch section {
	case "book":
		c.setBookValue(field, value)
	case "translate":
		return c.setTranslateValue(field, value)
	case "migrate":
		return c.setMigrateValue(field, value)
	}
	return nil
}

func (c *Config) setBookValue(field, value string) {
	switch field {
	case "src":
		c.Book.Src = value
	case "extension":
		c.Book.Extension = value
	case "order":
		c.Book.Order = value
	case "repository-url":
		c.Book.RepositoryURL = value
	}
}

func (c *Config) setTranslateValue(field, value string) error {
	switch field {
	case "api-key":
		c.Translate.APIKey = value
	case "model":
		c.Translate.Model = value
	case "temperature":
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return errors.ConfigInvalid("translate.temperature", err)
		}
		c.Translate.Temperature = float32(f)
	case "base-url":
		c.Translate.BaseURL = value
	case "prompt":
		c.Translate.Prompt = value
	case "output-subdir":
		c.Translate.OutputSubdir = value
	case "placement":
		c.Translate.Placement = value
	case "concurrency":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.ConfigInvalid("translate.concurrency", err)
		}
		c.Translate.Concurrency = n
	case "timeout":
		c.Translate.Timeout = value
	}
	return nil
}

func (c *Config) setMigrateValue(field, value string) error {
	switch field {
	case "output-dir":
		c.Migrate.OutputDir = value
	case "placement":
		c.Migrate.Placement = value
	case "strip-frontmatter":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.ConfigInvalid("migrate.strip-frontmatter", err)
		}
		c.Migrate.StripFrontmatter = b
	}
	return nil
}

// ValidateTranslate checks the settings the translate pipeline needs
func (c *Config) ValidateTranslate() error {
	if c.Translate.APIKey == "" {
		return errors.ConfigRequired("translate.api-key", EnvAPIKey)
	}
	if err := c.validateBook(); err != nil {
		return err
	}
	if _, err := c.TranslatePlacement(); err != nil {
		return err
	}
	if _, err := c.TranslateTimeout(); err != nil {
		return err
	}
	if c.Translate.Concurrency < 1 {
		return errors.ConfigInvalid("translate.concurrency", fmt.Errorf("must be at least 1, got %d", c.Translate.Concurrency))
	}
	// The translations must not land on top of the source pages
	if filepath.Clean(c.Translate.OutputSubdir) == "." {
		return errors.ConfigInvalid("translate.output-subdir", fmt.Errorf("must name a subdirectory of %s, got %q", EnvBooksDir, c.Translate.OutputSubdir))
	}
	return nil
}

// ValidateMigrate checks the settings the migrate pipeline needs
func (c *Config) ValidateMigrate() error {
	if c.Migrate.OutputDir == "" {
		return errors.ConfigRequired("migrate.output-dir", EnvOutputDir)
	}
	if err := c.validateBook(); err != nil {
		return err
	}
	if _, err := c.MigratePlacement(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBook() error {
	if c.Book.RepositoryURL == "" {
		return errors.ConfigRequired("book.repository-url", EnvRepositoryURL)
	}
	if c.Book.Src == "" {
		return errors.ConfigRequired("book.src", EnvBooksDir)
	}
	switch c.Book.Order {
	case "lexical", "zenn", "summary":
	default:
		return errors.ConfigInvalid("book.order", fmt.Errorf("unknown order %q", c.Book.Order))
	}
	return nil
}

// TranslatePlacement returns the link placement of the translate pipeline
func (c *Config) TranslatePlacement() (pagination.Placement, error) {
	p, err := pagination.ParsePlacement(c.Translate.Placement)
	if err != nil {
		return 0, errors.ConfigInvalid("translate.placement", err)
	}
	return p, nil
}

// MigratePlacement returns the link placement of the migrate pipeline
func (c *Config) MigratePlacement() (pagination.Placement, error) {
	p, err := pagination.ParsePlacement(c.Migrate.Placement)
	if err != nil {
		return 0, errors.ConfigInvalid("migrate.placement", err)
	}
	return p, nil
}

// TranslateTimeout returns the per-call timeout, zero meaning none
func (c *Config) TranslateTimeout() (time.Duration, error) {
	if c.Translate.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Translate.Timeout)
	if err != nil {
		return 0, errors.ConfigInvalid("translate.timeout", err)
	}
	return d, nil
}
