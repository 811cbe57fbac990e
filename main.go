package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/phalcomlsp/catalog"
	"github.com/a-h/phalcomlsp/completion"
	"github.com/a-h/phalcomlsp/config"
	"github.com/a-h/phalcomlsp/documents"
	"github.com/a-h/phalcomlsp/registry"
	"github.com/a-h/phalcomlsp/server"
	"github.com/rs/xid"
	"github.com/urfave/cli/v2"
	"go.lsp.dev/uri"
	"golang.org/x/exp/slog"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", app.Name, err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w, errw io.Writer) *cli.App {
	return &cli.App{
		Name:      server.Name,
		Usage:     "language server for Phalcom",
		Reader:    r,
		Writer:    w,
		ErrWriter: errw,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "path to the TOML config file",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "log file, overrides log_file in the config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error, overrides log_level in the config file",
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "TOML catalog of types and objects to add to the builtins, overrides catalog in the config file",
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the language server on stdin and stdout (default)",
				Action: serve,
			},
			{
				Name:   "check",
				Usage:  "validate the catalog, and print the registered types",
				Action: check,
			},
			{
				Name:      "complete",
				Usage:     "print the completions at a position in a file as JSON",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "line",
						Usage: "zero based line number",
					},
					&cli.IntFlag{
						Name:  "character",
						Usage: "zero based character offset within the line",
					},
				},
				Action: complete,
			},
		},
	}
}

func loadConfig(c *cli.Context) (cfg config.Config, err error) {
	cfg, err = config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if v := c.String("log"); v != "" {
		cfg.LogFile = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := c.String("catalog"); v != "" {
		cfg.Catalog = v
	}
	return cfg, cfg.Validate()
}

func loadCatalog(cfg config.Config) (c catalog.Catalog, err error) {
	c = catalog.Builtin()
	if cfg.Catalog == "" {
		return c, nil
	}
	extra, err := catalog.LoadFile(cfg.Catalog)
	if err != nil {
		return c, err
	}
	return c.Merge(extra), nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	lf, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log output file: %w", err)
	}
	defer lf.Close()
	log := slog.New(slog.NewJSONHandler(lf, &slog.HandlerOptions{Level: level})).
		With(slog.String("session", xid.New().String()))

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Error("failed to load catalog", slog.String("path", cfg.Catalog), slog.Any("error", err))
		return err
	}

	s := server.New(log, cat, c.App.Reader, c.App.Writer)
	s.SetConcurrencyLimit(cfg.Concurrency)
	log.Info("starting", slog.Int64("concurrency", cfg.Concurrency))
	if err = s.Process(); err != nil {
		log.Error("processing stopped", slog.Any("error", err))
		return err
	}
	return nil
}

func check(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	ctx, buildErr := registry.Build(cat)
	w := c.App.Writer
	for _, t := range ctx.Types() {
		fmt.Fprint(w, strings.Join(append([]string{t.Name}, ctx.Ancestors(t.Name)...), " < "))
		if t.Meta != "" {
			fmt.Fprintf(w, " (meta %s)", t.Meta)
		}
		fmt.Fprintln(w)
		for _, m := range t.Methods {
			fmt.Fprintf(w, "  %s\n", m.Signature)
		}
	}
	for _, name := range ctx.Globals().Names() {
		typeName, _ := ctx.Globals().Lookup(name)
		fmt.Fprintf(w, "global %s: %s\n", name, typeName)
	}
	for _, name := range ctx.Locals().Names() {
		typeName, _ := ctx.Locals().Lookup(name)
		fmt.Fprintf(w, "local %s: %s\n", name, typeName)
	}
	if buildErr != nil {
		return fmt.Errorf("catalog contains errors: %w", buildErr)
	}
	return nil
}

func complete(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected a single file argument, got %d", c.NArg())
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	// Completions use the catalog as far as it resolves, as the server does.
	store := registry.NewStore()
	if err = store.Build(cat); err != nil {
		fmt.Fprintf(c.App.ErrWriter, "warning: catalog contains errors: %v\n", err)
	}

	path, err := filepath.Abs(c.Args().First())
	if err != nil {
		return err
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	docs := documents.NewStore()
	u := uri.File(path)
	docs.Open(u, 0, string(text))
	line, ok := docs.Line(u, c.Int("line"))
	if !ok {
		return fmt.Errorf("line %d is outside of %s", c.Int("line"), path)
	}

	items := completion.Complete(store.Current(), line, c.Int("character"))
	if items == nil {
		items = []completion.Item{}
	}
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
