// Package pipeline prepares documents around the typography passes.
//
// It covers the stages that are not typography themselves:
//   - Markdown preprocessing (line endings, byte order mark, blank lines)
//   - Markdown to HTML rendering via goldmark, with highlighted code blocks
//   - Stylesheet injection for the CSS hooks the passes emit
//   - Resolution of local image and link references for browser rendering
//
// Code blocks come out of goldmark as <pre><code>, so the typography passes
// treat them as verbatim without any extra marking.
package pipeline
