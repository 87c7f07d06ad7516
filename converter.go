package typogrify

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-typogrify/internal/assets"
	"github.com/alnah/go-typogrify/internal/fileutil"
	"github.com/alnah/go-typogrify/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.StyleInjector        = pipeline.StyleInjection{}
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// documentSkipTags are verbatim in whole documents on top of the
// Typogrifier's own set.
var documentSkipTags = []string{"style", "textarea"}

type converterConfig struct {
	timeout       time.Duration
	styleInput    string
	styleSet      bool
	resolvedStyle string
	assetPath     string
	rawHTML       bool
}

// Converter turns Markdown or HTML into a typogrified, styled HTML page,
// and optionally a PDF proof. Create with NewConverter and Close when done.
// A Converter renders one PDF at a time; use ConverterPool for batches.
type Converter struct {
	cfg           converterConfig
	typogrifier   *Typogrifier
	styleLoader   assets.StyleLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	styleInjector pipeline.StyleInjector
	pdfConverter  pdfConverter
}

// NewConverter returns a Converter using the default style unless
// WithStyle says otherwise. It fails when the asset path or the style
// cannot be loaded.
func NewConverter(opts ...ConverterOption) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		typogrifier:   defaultTypogrifier,
		styleLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		styleInjector: pipeline.StyleInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(c.cfg.rawHTML)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.styleLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert typogrifies one document. Markdown is rendered to a full HTML
// page first; HTML is used as given, fragment or document. The stylesheet
// goes into the result after typography. For FormatPDF the page is also
// printed by headless Chrome. Internal panics come back as errors.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := c.typogrifier.withSkip(documentSkipTags...)
	doc := input.HTML

	if input.Markdown != "" {
		md := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if doc, err = c.htmlConverter.ToHTML(ctx, md); err != nil {
			return nil, fmt.Errorf("converting to HTML: %w", err)
		}
		t = t.withConvertQuot()
	}

	doc = t.Parse(doc)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	css := c.cfg.resolvedStyle
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	doc = c.styleInjector.InjectStyle(ctx, doc, css)

	res := &Result{HTML: []byte(doc)}
	if input.Format.normalize() != FormatPDF {
		return res, nil
	}

	if !pipeline.IsDocument(doc) {
		doc = pipeline.WrapDocument(doc, pipeline.DefaultTitle)
	}
	if doc, err = pipeline.ResolveLocalRefs(doc, input.SourceDir); err != nil {
		return nil, fmt.Errorf("resolving local references: %w", err)
	}

	pdf, err := c.pdfConverter.ToPDF(ctx, doc, &pdfOptions{PaperSize: input.PaperSize})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf

	t.logger.Debug("pdf rendered", "paper", string(input.PaperSize), "bytes", len(pdf))
	return res, nil
}

// Close releases the headless browser, if one was started.
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle turns the style input (CSS text, path or name) into CSS.
// Without WithStyle the default style is used; WithStyle("") means none.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if !c.cfg.styleSet {
		input = assets.DefaultStyleName
	}
	if input == "" {
		return nil
	}

	if fileutil.LooksLikeCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.styleLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}
