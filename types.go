package typogrify

import (
	"fmt"
	"strings"
	"time"
)

// Format is the kind of document Convert produces.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Validate accepts the empty Format, which means FormatHTML.
func (f Format) Validate() error {
	switch Format(strings.ToLower(string(f))) {
	case "", FormatHTML, FormatPDF:
		return nil
	}
	return fmt.Errorf("%w: %q (must be html or pdf)", ErrInvalidFormat, string(f))
}

func (f Format) normalize() Format {
	if f == "" {
		return FormatHTML
	}
	return Format(strings.ToLower(string(f)))
}

// PaperSize names a PDF page size.
type PaperSize string

const (
	PaperLetter PaperSize = "letter"
	PaperA4     PaperSize = "a4"
	PaperLegal  PaperSize = "legal"
)

// paperDimensions are width and height in inches.
var paperDimensions = map[PaperSize][2]float64{
	PaperLetter: {8.5, 11},
	PaperA4:     {8.27, 11.69},
	PaperLegal:  {8.5, 14},
}

// Validate accepts the empty PaperSize, which means PaperLetter.
func (p PaperSize) Validate() error {
	if p == "" {
		return nil
	}
	if _, ok := paperDimensions[PaperSize(strings.ToLower(string(p)))]; !ok {
		return fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPaperSize, string(p))
	}
	return nil
}

func (p PaperSize) dimensions() (width, height float64) {
	d, ok := paperDimensions[PaperSize(strings.ToLower(string(p)))]
	if !ok {
		d = paperDimensions[PaperLetter]
	}
	return d[0], d[1]
}

// Input is one document to convert. Exactly one of Markdown and HTML is
// set.
type Input struct {
	Markdown string
	HTML     string // a fragment or a full document

	CSS       string // appended after the converter's style
	SourceDir string // resolves relative image and link paths in PDF output

	Format    Format
	PaperSize PaperSize
}

// Validate checks Input before any work is done.
func (in Input) Validate() error {
	switch {
	case in.Markdown == "" && in.HTML == "":
		return ErrEmptyInput
	case in.Markdown != "" && in.HTML != "":
		return ErrAmbiguousInput
	}
	if err := in.Format.Validate(); err != nil {
		return err
	}
	return in.PaperSize.Validate()
}

// Result holds the typogrified HTML, and the PDF when Format is FormatPDF.
type Result struct {
	HTML []byte
	PDF  []byte
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// defaultTimeout bounds one PDF render when ctx carries no deadline.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF render timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) ConverterOption {
	return func(c *Converter) {
		if d > 0 {
			c.cfg.timeout = d
		}
	}
}

// WithTypogrifier sets the Typogrifier applied to every document. Default
// New() with no options.
func WithTypogrifier(t *Typogrifier) ConverterOption {
	return func(c *Converter) {
		if t != nil {
			c.typogrifier = t
		}
	}
}

// WithStyle selects the injected stylesheet: a style name, a path to a CSS
// file, or CSS text. An empty value disables injection.
func WithStyle(style string) ConverterOption {
	return func(c *Converter) {
		c.cfg.styleInput = style
		c.cfg.styleSet = true
	}
}

// WithAssetPath adds a directory of custom styles, looked up before the
// embedded ones.
func WithAssetPath(path string) ConverterOption {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithRawHTML keeps raw HTML found in Markdown input. Off by default.
func WithRawHTML(on bool) ConverterOption {
	return func(c *Converter) {
		c.cfg.rawHTML = on
	}
}
