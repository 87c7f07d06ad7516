package pipeline

import (
	"context"
	"strings"
)

// StyleInjector adds a stylesheet to an HTML document.
type StyleInjector interface {
	InjectStyle(ctx context.Context, doc, css string) string
}

// StyleInjection inserts CSS as a <style> element.
type StyleInjection struct{}

// InjectStyle places the stylesheet before </head>, else right after the
// opening <body> tag, else at the very start. Empty css or a done ctx
// returns doc unchanged.
func (StyleInjection) InjectStyle(ctx context.Context, doc, css string) string {
	if css == "" || ctx.Err() != nil {
		return doc
	}

	style := "<style>" + escapeStyleText(css) + "</style>"
	at := styleInsertionPoint(doc)
	return doc[:at] + style + doc[at:]
}

// styleInsertionPoint returns the byte offset where a <style> element goes.
func styleInsertionPoint(doc string) int {
	lower := strings.ToLower(doc)

	if i := strings.Index(lower, "</head>"); i >= 0 {
		return i
	}
	if i := strings.Index(lower, "<body"); i >= 0 {
		if end := strings.IndexByte(doc[i:], '>'); end >= 0 {
			return i + end + 1
		}
	}
	return 0
}

// escapeStyleText keeps css from closing the <style> element early.
func escapeStyleText(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
