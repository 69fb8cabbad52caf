package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/geocine/bookport/internal/cli"
	"github.com/geocine/bookport/internal/config"
	"github.com/geocine/bookport/internal/errors"
	"github.com/geocine/bookport/internal/logfields"
	"github.com/geocine/bookport/internal/pipeline"
	"github.com/geocine/bookport/internal/translator"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"bookport.toml"`
	EnvFile string `help:"Environment file loaded before the configuration" default:".env"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Translate struct {
		Concurrency int    `help:"Number of pages translated at once (default from config)"`
		Placement   string `help:"Navigation link placement: append-only or wrap-content"`
		DryRun      bool   `help:"Do not call the translation service, copy pages unchanged"`
	} `cmd:"" help:"Translate the pages of LOCAL_BOOKS_DIR_PATH and link the translations"`

	Migrate struct {
		Placement        string `help:"Navigation link placement: append-only or wrap-content"`
		StripFrontmatter bool   `help:"Remove YAML/TOML frontmatter before linking"`
	} `cmd:"" help:"Copy pages to OUTPUT_DIR_PATH with links to REPOSITORY_URL"`

	Init struct {
		Force bool `help:"Overwrite existing .env and bookport.toml"`
		Yes   bool `short:"y" help:"Skip interactive prompts and use defaults"`
	} `cmd:"" help:"Create .env and bookport.toml in the current directory"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("bookport"),
		kong.Description("Translate and migrate Markdown books with previous/next page links."),
		kong.UsageOnError(),
	)

	logger := newLogger(CLI.Verbose).With(logfields.RunID(uuid.NewString()))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var err error
	switch kctx.Command() {
	case "translate":
		err = runTranslate(ctx, logger)
	case "migrate":
		err = runMigrate(ctx, logger)
	case "init":
		err = runInit(logger)
	}
	stop()

	if err != nil {
		logger.Error("Run failed", slog.String("category", string(errors.GetCategory(err))), logfields.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return slog.New(handler)
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(CLI.EnvFile); err != nil {
		return nil, err
	}
	return config.Load(CLI.Config)
}

func runTranslate(ctx context.Context, logger *slog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Translate.Concurrency > 0 {
		cfg.Translate.Concurrency = CLI.Translate.Concurrency
	}
	if CLI.Translate.Placement != "" {
		cfg.Translate.Placement = CLI.Translate.Placement
	}

	tr, err := newTranslator(cfg, CLI.Translate.DryRun, logger)
	if err != nil {
		return err
	}

	_, err = pipeline.Translate(ctx, cfg, tr, logger)
	return err
}

// newTranslator builds the OpenAI translator from cfg, or the mock for dry runs
func newTranslator(cfg *config.Config, dryRun bool, logger *slog.Logger) (translator.Translator, error) {
	if dryRun {
		if cfg.Translate.APIKey == "" {
			cfg.Translate.APIKey = "dry-run"
		}
		logger.Warn("Dry run, pages are copied without translation")
		return translator.NewMock(), nil
	}

	if err := cfg.ValidateTranslate(); err != nil {
		return nil, err
	}
	timeout, err := cfg.TranslateTimeout()
	if err != nil {
		return nil, err
	}
	tr, err := translator.NewOpenAI(translator.OpenAIOptions{
		APIKey:      cfg.Translate.APIKey,
		Model:       cfg.Translate.Model,
		Temperature: cfg.Translate.Temperature,
		BaseURL:     cfg.Translate.BaseURL,
		Prompt:      cfg.Translate.Prompt,
		Timeout:     timeout,
	})
	if err != nil {
		return nil, errors.ConfigInvalid("translate", err)
	}
	return tr, nil
}

func runMigrate(ctx context.Context, logger *slog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Migrate.Placement != "" {
		cfg.Migrate.Placement = CLI.Migrate.Placement
	}
	if CLI.Migrate.StripFrontmatter {
		cfg.Migrate.StripFrontmatter = true
	}

	_, err = pipeline.Migrate(ctx, cfg, logger)
	return err
}

func runInit(logger *slog.Logger) error {
	opts := cli.InitOptions{
		Dir:           ".",
		BooksDir:      os.Getenv(config.EnvBooksDir),
		OutputDir:     os.Getenv(config.EnvOutputDir),
		RepositoryURL: os.Getenv(config.EnvRepositoryURL),
		Force:         CLI.Init.Force,
	}
	if !CLI.Init.Yes {
		cli.FillInitOptionsInteractive(os.Stdin, os.Stdout, &opts)
	}

	res, err := cli.Init(opts)
	if err != nil {
		return err
	}
	for _, p := range res.Created {
		logger.Info("Created", logfields.Path(p))
	}
	for _, p := range res.Skipped {
		logger.Warn("Already exists, use --force to overwrite", logfields.Path(p))
	}
	return nil
}
