package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates Markdown rendering failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultTitle is used when a document has no title of its own.
const DefaultTitle = "Document"

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter renders Markdown to a complete HTML document.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter renders Markdown with goldmark. Its output escapes "
// in text as &quot;, so typography over it needs quot conversion.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter returns a converter with GFM, footnotes, heading IDs
// and class-based code highlighting. With rawHTML set, inline HTML in the
// source is passed through instead of being escaped.
func NewGoldmarkConverter(rawHTML bool) *GoldmarkConverter {
	htmlOpts := []renderer.Option{gmhtml.WithXHTML()}
	if rawHTML {
		htmlOpts = append(htmlOpts, gmhtml.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(htmlOpts...),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML renders content and wraps it in a document. goldmark has no
// context support, so rendering runs in a goroutine and ctx only bounds the
// wait.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		body string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{body: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		return WrapDocument(r.body, DefaultTitle), nil
	}
}

// IsDocument reports whether s is a full HTML document rather than a
// fragment.
func IsDocument(s string) bool {
	head := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// WrapDocument wraps an HTML fragment in a UTF-8 document with the given
// title. title is escaped.
func WrapDocument(fragment, title string) string {
	if title == "" {
		title = DefaultTitle
	}
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), fragment)
}
