package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

const usageHeader = `Usage: typogrify [flags] [file or directory ...]

Refines the typography of HTML and Markdown: curly quotes, dashes,
ellipses, widow control, and CSS hooks for ampersands, capitals and
initial quotes.

With no arguments, reads HTML (or Markdown with --markdown) from stdin and
writes to stdout. Directories are searched for .md, .markdown, .html and
.htm files.

Flags:
`

const usageFooter = `
Environment:
  ROD_BROWSER_BIN   Chrome binary for --pdf
  ROD_NO_SANDBOX=1  disable the Chrome sandbox (containers)

Exit codes: 0 ok, 1 error, 2 usage or config, 3 I/O, 4 browser.
`

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, usageHeader)
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprint(w, usageFooter)
}
