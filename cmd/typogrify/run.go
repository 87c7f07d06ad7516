package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	typogrify "github.com/alnah/go-typogrify"
	"github.com/alnah/go-typogrify/internal/assets"
	"github.com/alnah/go-typogrify/internal/config"
	"github.com/alnah/go-typogrify/internal/fileutil"
	"github.com/alnah/go-typogrify/internal/hints"
	"github.com/alnah/go-typogrify/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// stdinArg reads the document from stdin when given as the only argument.
const stdinArg = "-"

var errUsage = errors.New("invalid usage")

// run executes the CLI and returns the exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	f, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if f.common.version {
		fmt.Fprintf(env.Stdout, "typogrify %s\n", Version)
		return ExitSuccess
	}

	if f.common.listStyles {
		for _, name := range assets.NewEmbeddedLoader().Names() {
			fmt.Fprintln(env.Stdout, name)
		}
		return ExitSuccess
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return reportError(env, err)
	}

	if f.common.printConfig {
		out, err := cfg.Marshal()
		if err != nil {
			return reportError(env, err)
		}
		_, _ = env.Stdout.Write(out)
		return ExitSuccess
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Journal: cfg.Log.Journal,
		Stderr:  env.Stderr,
	})
	if err != nil {
		return reportError(env, err)
	}
	defer func() { _ = closeLog() }()

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS, and
	// the runtime default then applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	if err := validateWorkers(f.output.workers); err != nil {
		return reportError(env, err)
	}

	if len(positional) == 0 && cfg.Input.DefaultDir != "" {
		positional = []string{cfg.Input.DefaultDir}
	}

	stdinMode := len(positional) == 1 && positional[0] == stdinArg
	if len(positional) == 0 {
		if !env.StdinPiped() {
			return reportError(env, ErrNoInput)
		}
		stdinMode = true
	}

	styleSet := f.changed["style"] || cfg.CSS.Style != ""
	convOpts, err := converterOptions(cfg, logger, stdinMode && !styleSet)
	if err != nil {
		return reportError(env, err)
	}

	params := conversionParams{
		format:    typogrify.Format(strings.ToLower(cfg.Output.Format)),
		paperSize: typogrify.PaperSize(strings.ToLower(cfg.PDF.PaperSize)),
	}
	if params.format == "" {
		params.format = typogrify.FormatHTML
	}

	output := f.output.output
	if output == "" && !stdinMode {
		output = cfg.Output.DefaultDir
	}

	if stdinMode {
		return runStdin(ctx, env, f, output, params, convOpts)
	}
	return runFiles(ctx, env, f, logger, positional, output, params, convOpts)
}

// loadConfig reads the config file, if any, and applies the flags given
// on the command line over it.
func loadConfig(f *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.common.config != "" {
		loaded, err := config.LoadConfig(f.common.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	mergeFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags overrides cfg with every flag that was set explicitly.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	set := func(name string, apply func()) {
		if f.changed[name] {
			apply()
		}
	}

	set("mode", func() { cfg.Typography.Mode = f.typography.mode })
	set("skip-tags", func() { cfg.Typography.SkipTags = f.typography.skipTags })
	set("guillemets", func() { cfg.Typography.Guillemets = f.typography.guillemets })
	set("disable", func() { cfg.Typography.Disable = f.typography.disable })
	set("raw-html", func() { cfg.Typography.RawHTML = f.typography.rawHTML })

	set("format", func() { cfg.Output.Format = f.output.format })
	set("pdf", func() {
		if f.output.pdf {
			cfg.Output.Format = string(typogrify.FormatPDF)
		}
	})
	set("paper", func() { cfg.PDF.PaperSize = f.output.paperSize })
	set("timeout", func() { cfg.PDF.Timeout = f.output.timeout })

	set("style", func() { cfg.CSS.Style = f.style.style })
	set("no-style", func() { cfg.CSS.None = f.style.noStyle })
	set("asset-path", func() { cfg.Assets.BasePath = f.style.assetPath })

	set("log-level", func() { cfg.Log.Level = f.log.level })
	set("log-format", func() { cfg.Log.Format = f.log.format })
	set("log-file", func() { cfg.Log.File = f.log.file })
	set("journal", func() { cfg.Log.Journal = f.log.journal })

	if f.common.verbose && !f.changed["log-level"] {
		cfg.Log.Level = "debug"
	}
	if f.common.quiet && !f.changed["log-level"] {
		cfg.Log.Level = "error"
	}
}

// typogrifierFor builds the Typogrifier described by the typography
// section.
func typogrifierFor(tc config.TypographyConfig, logger *slog.Logger) (*typogrify.Typogrifier, error) {
	passes := typogrify.PassAll
	for _, name := range tc.Disable {
		p, ok := typogrify.ParsePass(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown pass %q", errUsage, name)
		}
		passes &^= p
	}

	opts := []typogrify.Option{
		typogrify.WithMode(tc.Mode),
		typogrify.WithGuillemets(tc.Guillemets),
		typogrify.WithPasses(passes),
		typogrify.WithLogger(logger),
	}
	if len(tc.SkipTags) > 0 {
		opts = append(opts, typogrify.WithSkipTags(tc.SkipTags...))
	}
	return typogrify.New(opts...)
}

// converterOptions translates cfg into converter options. noStyle forces
// an unstyled result.
func converterOptions(cfg *config.Config, logger *slog.Logger, noStyle bool) ([]typogrify.ConverterOption, error) {
	t, err := typogrifierFor(cfg.Typography, logger)
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.PDF.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	opts := []typogrify.ConverterOption{
		typogrify.WithTypogrifier(t),
		typogrify.WithRawHTML(cfg.Typography.RawHTML),
		typogrify.WithTimeout(timeout),
	}
	switch {
	case noStyle || cfg.CSS.None:
		opts = append(opts, typogrify.WithStyle(""))
	case cfg.CSS.Style != "":
		opts = append(opts, typogrify.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, typogrify.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts, nil
}

// runStdin filters stdin to stdout, or to output when set.
func runStdin(ctx context.Context, env *Environment, f *cliFlags, output string, params conversionParams, opts []typogrify.ConverterOption) int {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return reportError(env, fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	pool := env.NewPool(1, opts...)
	defer func() { _ = pool.Close() }()

	conv, err := pool.Acquire()
	if err != nil {
		return reportError(env, err)
	}
	defer pool.Release(conv)

	input := typogrify.Input{Format: params.format, PaperSize: params.paperSize}
	if wd, err := os.Getwd(); err == nil {
		input.SourceDir = wd
	}
	if f.output.markdown {
		input.Markdown = string(content)
	} else {
		input.HTML = string(content)
	}

	out, err := conv.Convert(ctx, input)
	if err != nil {
		return reportError(env, err)
	}

	data := out.HTML
	if params.format == typogrify.FormatPDF {
		data = out.PDF
	}

	if output == "" {
		if _, err := env.Stdout.Write(data); err != nil {
			return reportError(env, fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		return ExitSuccess
	}
	if err := fileutil.WriteFileAtomic(output, data, filePermissions); err != nil {
		return reportError(env, fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	return ExitSuccess
}

// runFiles converts every discovered file with a pool of converters.
func runFiles(ctx context.Context, env *Environment, f *cliFlags, logger *slog.Logger, inputs []string, output string, params conversionParams, opts []typogrify.ConverterOption) int {
	if len(inputs) > 1 && fileutil.HasExtension(output, ".html", ".pdf") {
		return reportError(env, fmt.Errorf("%w: --output %s names a file but there are %d inputs", errUsage, output, len(inputs)))
	}

	var files []FileToConvert
	for _, in := range inputs {
		found, err := discoverFiles(in, output, params.format)
		if err != nil {
			return reportError(env, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		if !f.common.quiet {
			fmt.Fprintln(env.Stderr, "no documents found")
		}
		return ExitSuccess
	}

	size := min(typogrify.ResolvePoolSize(f.output.workers), len(files))
	logger.Debug("starting conversion", slog.Int("files", len(files)), slog.Int("workers", size))

	pool := env.NewPool(size, opts...)
	defer func() { _ = pool.Close() }()

	start := time.Now()
	results := convertBatch(ctx, pool, files, params)
	failed := printResults(results, f.common.quiet, f.common.verbose, env)
	logger.Debug("conversion finished",
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(start)))

	return exitCodeFor(firstError(results))
}

// reportError prints err with a hint and returns its exit code.
func reportError(env *Environment, err error) int {
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, env))
	return exitCodeFor(err)
}

// hintFor returns advice for the errors users can usually fix themselves.
func hintFor(err error, env *Environment) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Searched)
	case errors.Is(err, typogrify.ErrBrowserConnect):
		return hints.ForBrowserConnect(env.Hints)
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, typogrify.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Names())
	case errors.Is(err, typogrify.ErrInvalidSkipTag):
		return hints.ForSkipTag()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
