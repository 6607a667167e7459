// Command codeshot renders source files as PNG screenshots.
//
// Usage:
//
//	codeshot [flags] [file ...]
//
// With no files the code is read from standard input. With one input the
// image goes to -o ("-" for standard output); with several, -o names a
// directory and each file becomes <name>.png inside it. Files render
// concurrently and share one emoji cache.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/codyrobertson/codeshot"
	"github.com/codyrobertson/codeshot/internal/config"
	"github.com/codyrobertson/codeshot/internal/logging"
	"github.com/codyrobertson/codeshot/theme"
)

func main() {
	os.Exit(run())
}

type flags struct {
	theme, shader, lang, lineRange string
	output, configPath, logLevel   string
	scale, fontSize, wrap          float64
	noChrome, noShadow, lineNums   bool
	listThemes                     bool
}

func parseFlags() *flags {
	f := &flags{}
	flag.StringVar(&f.theme, "theme", "", "theme name (default from config, else dracula)")
	flag.StringVar(&f.shader, "shader", "", "post-processing effect: halftone, wave-gradient or disruptor")
	flag.StringVar(&f.lang, "lang", "", "language for highlighting (default from the file extension)")
	flag.StringVar(&f.lineRange, "range", "", `lines to render, "N" or "N-M"`)
	flag.StringVar(&f.output, "o", "codeshot.png", `output file, "-" for stdout, or a directory for several inputs`)
	flag.StringVar(&f.configPath, "config", "", "settings file (default: user config dir)")
	flag.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	flag.Float64Var(&f.scale, "scale", 0, "device scale factor")
	flag.Float64Var(&f.fontSize, "font-size", 0, "font size in logical pixels")
	flag.Float64Var(&f.wrap, "wrap", 0, "soft-wrap width in logical pixels, 0 to cut long lines")
	flag.BoolVar(&f.noChrome, "no-chrome", false, "hide the window title bar")
	flag.BoolVar(&f.noShadow, "no-shadow", false, "hide the window drop shadow")
	flag.BoolVar(&f.lineNums, "line-numbers", false, "show line numbers")
	flag.BoolVar(&f.listThemes, "list-themes", false, "print the theme names and exit")
	flag.Parse()
	return f
}

func run() int {
	f := parseFlags()

	settings, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "codeshot:", err)
		return 2
	}
	if f.logLevel != "" {
		settings.LogLevel = f.logLevel
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(settings.LogLevel),
	}))

	catalog := theme.NewCatalog(logger)
	if settings.ThemesFile != "" {
		if err := catalog.LoadFile(settings.ThemesFile); err != nil {
			fmt.Fprintln(os.Stderr, "codeshot:", err)
			return 2
		}
	}
	if f.listThemes {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return 0
	}

	r := codeshot.New(append(settings.RendererOptions(),
		codeshot.WithLogger(logger),
		codeshot.WithThemes(catalog),
	)...)

	base := codeshot.Request{
		Language:  f.lang,
		Theme:     firstNonEmpty(f.theme, settings.Theme),
		Shader:    firstNonEmpty(f.shader, settings.Render.Shader),
		LineRange: f.lineRange,
		Options:   applyFlags(f, settings.Options(codeshot.DefaultOptions())),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := renderAll(ctx, r, base, flag.Args(), f.output); err != nil {
		fmt.Fprintln(os.Stderr, "codeshot:", err)
		return 1
	}
	if s, ok := r.EmojiStats(); ok {
		logger.Debug("emoji cache",
			"memory_hits", s.MemoryHits,
			"disk_hits", s.DiskHits,
			"fetches", s.Fetches,
			"fallbacks", s.Fallbacks)
	}
	return 0
}

// applyFlags overrides opts with the flags given on the command line.
func applyFlags(f *flags, opts codeshot.Options) codeshot.Options {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "scale":
			opts.Scale = f.scale
		case "font-size":
			opts.FontSize = f.fontSize
		case "wrap":
			opts.WrapWidth = f.wrap
		case "no-chrome":
			opts.ShowChrome = !f.noChrome
		case "no-shadow":
			opts.Shadow = !f.noShadow
		case "line-numbers":
			opts.ShowLineNumbers = f.lineNums
		}
	})
	return opts
}

func renderAll(ctx context.Context, r *codeshot.Renderer, base codeshot.Request, inputs []string, output string) error {
	if len(inputs) == 0 {
		code, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		req := base
		req.Code = string(code)
		return renderOne(ctx, r, req, output)
	}
	if len(inputs) == 1 {
		req, err := requestFor(base, inputs[0])
		if err != nil {
			return err
		}
		return renderOne(ctx, r, req, output)
	}

	if output == "-" {
		return errors.New("several inputs cannot share stdout")
	}
	names, err := outputNames(inputs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range inputs {
		g.Go(func() error {
			req, err := requestFor(base, path)
			if err != nil {
				return err
			}
			return renderOne(ctx, r, req, filepath.Join(output, names[i]))
		})
	}
	return g.Wait()
}

// outputNames maps each input to <name>.png. Two inputs that would write
// the same file are an error.
func outputNames(inputs []string) ([]string, error) {
	names := make([]string, len(inputs))
	owner := make(map[string]string, len(inputs))
	for i, path := range inputs {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
		if prev, ok := owner[name]; ok {
			return nil, fmt.Errorf("%s and %s would both write %s", prev, path, name)
		}
		owner[name] = path
		names[i] = name
	}
	return names, nil
}

func requestFor(base codeshot.Request, path string) (codeshot.Request, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return codeshot.Request{}, err
	}
	req := base
	req.Code = string(code)
	if req.Language == "" {
		req.Language = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	return req, nil
}

func renderOne(ctx context.Context, r *codeshot.Renderer, req codeshot.Request, output string) error {
	img, err := r.Render(ctx, req)
	if err != nil {
		return err
	}
	if output == "-" {
		_, err := img.WriteTo(os.Stdout)
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(output), ".codeshot-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := img.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", output, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), output)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
