package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that are not about the document.
type commonFlags struct {
	config      string
	quiet       bool
	verbose     bool
	printConfig bool
	listStyles  bool
	version     bool
}

// typographyFlags mirror the typography config section.
type typographyFlags struct {
	mode       string
	skipTags   []string
	guillemets bool
	disable    []string
	rawHTML    bool
}

// outputFlags select what is written and where.
type outputFlags struct {
	output    string
	format    string
	pdf       bool // shorthand for --format pdf
	paperSize string
	timeout   string
	workers   int
	markdown  bool // read stdin as Markdown
}

// styleFlags hold the stylesheet selection.
type styleFlags struct {
	style     string
	assetPath string
	noStyle   bool
}

// logFlags mirror the log config section.
type logFlags struct {
	level   string
	format  string
	file    string
	journal bool
}

// cliFlags holds every flag. changed records the flags given on the
// command line, so that only those override the config file.
type cliFlags struct {
	common     commonFlags
	typography typographyFlags
	output     outputFlags
	style      styleFlags
	log        logFlags
	changed    map[string]bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing and debug logs")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config as YAML and exit")
	fs.BoolVar(&f.listStyles, "list-styles", false, "list the built-in styles and exit")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")
}

func addTypographyFlags(fs *flag.FlagSet, f *typographyFlags) {
	fs.StringVarP(&f.mode, "mode", "m", "", `SmartyPants mode: 0-3, -1, or letters from "qbBdDiew"`)
	fs.StringSliceVar(&f.skipTags, "skip-tags", nil, "elements whose text is left alone (default pre,code,kbd,script,math)")
	fs.BoolVar(&f.guillemets, "guillemets", false, "treat « as an initial quote")
	fs.StringSliceVar(&f.disable, "disable", nil, "passes to skip: amp,widont,smartypants,caps,initialquotes,dash")
	fs.BoolVar(&f.rawHTML, "raw-html", false, "keep raw HTML found in Markdown")
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html or pdf")
	fs.BoolVar(&f.pdf, "pdf", false, "same as --format pdf")
	fs.StringVar(&f.paperSize, "paper", "", "PDF paper size: letter, a4, legal")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF timeout per file (e.g. 30s, 2m)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.markdown, "markdown", false, "read stdin as Markdown instead of HTML")
}

func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.style, "style", "s", "", "style name, CSS file path, or CSS text")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with a styles/ folder of custom styles")
	fs.BoolVar(&f.noStyle, "no-style", false, "inject no stylesheet")
}

func addLogFlags(fs *flag.FlagSet, f *logFlags) {
	fs.StringVar(&f.level, "log-level", "", "debug, info, warn, error")
	fs.StringVar(&f.format, "log-format", "", "text or json")
	fs.StringVar(&f.file, "log-file", "", "also append JSON logs to this file")
	fs.BoolVar(&f.journal, "journal", false, "also log to the systemd journal")
}

// parseFlags parses args (without the program name) and returns the
// positional arguments.
func parseFlags(args []string, usageOut io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("typogrify", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &cliFlags{changed: make(map[string]bool)}

	addCommonFlags(fs, &f.common)
	addTypographyFlags(fs, &f.typography)
	addOutputFlags(fs, &f.output)
	addStyleFlags(fs, &f.style)
	addLogFlags(fs, &f.log)

	fs.SortFlags = false
	fs.Usage = func() { printUsage(usageOut, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })
	return f, fs.Args(), nil
}
