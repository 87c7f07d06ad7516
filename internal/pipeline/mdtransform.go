package pipeline

import (
	"context"
	"regexp"
	"strings"
)

const byteOrderMark = "\uFEFF"

var (
	lineBreaks = regexp.MustCompile(`\r\n?`)

	// Three or more newlines, i.e. more than one blank line.
	blankLineRuns = regexp.MustCompile(`\n{3,}`)
)

// MarkdownPreprocessor normalizes Markdown source before rendering.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor strips a leading byte order mark, normalizes line
// endings to \n, and collapses runs of blank lines to one.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown returns content unchanged if ctx is already done.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = lineBreaks.ReplaceAllString(content, "\n")
	return blankLineRuns.ReplaceAllString(content, "\n\n")
}
