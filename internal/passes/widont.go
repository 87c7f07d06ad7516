package passes

import "github.com/alnah/go-typogrify/internal/rxutil"

// widontInline are the inline elements a final word may sit in.
const widontInline = `a|span|i|b|em|strong|acronym|caps|sub|sup|abbr|big|small|code|cite|tt`

// widontFinder matches the last gap between two words before a closing
// p, h1-h6, or li tag, or the end of the text. $ also matches before a
// final newline.
var widontFinder = rxutil.MustCompile(
	`([^\s])\s+(`+
		`(?:<(?:`+widontInline+`)\b[^>]*>)*\s*[^\s<>]+`+
		`(?:</(?:`+widontInline+`)>)*[^\s<>]*\s*`+
		`(?:</(?:p|h[1-6]|li)>|$))`,
	rxutil.IgnoreCase)

// Widont replaces the whitespace before the last word of each block with
// &nbsp; so the word never sits alone on the final line.
//
//	<p>one two three</p>  ->  <p>one two&nbsp;three</p>
func Widont(text string) string {
	if text == "" {
		return text
	}
	return widontFinder.Replace(text, "$1&nbsp;$2")
}
