// Package smartypants implements the SmartyPants quote, dash, and ellipsis
// educators and the token-stream pipeline that applies them to HTML while
// leaving tags and verbatim elements untouched.
package smartypants

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-typogrify/internal/htmltoken"
)

// Educate applies opts to every text token of text that is outside a
// verbatim element of skip. Tags pass through unchanged. A nil skip set
// disables verbatim tracking.
//
// Per token the order is: escapes, &quot; conversion, dashes, ellipses,
// double backticks, single backticks, quotes. Stupefy mode runs escapes and
// then StupefyEntities only.
func Educate(text string, opts Options, skip htmltoken.SkipSet) string {
	if !opts.Enabled() {
		return text
	}

	tokens := htmltoken.Tokenize(text)

	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	tracker := skip.NewTracker()
	var prev rune // last character of the previous text token, 0 if none

	for _, tok := range tokens {
		if tok.IsTag() {
			b.WriteString(tok.Raw)
			tracker.Observe(tok)
			continue
		}

		t := tok.Raw
		last, _ := utf8.DecodeLastRuneInString(t)
		if !tracker.Inside() {
			t = educateText(t, prev, opts)
		}
		prev = last
		b.WriteString(t)
	}

	return b.String()
}

// educateText runs the enabled educators over one text token.
func educateText(t string, prev rune, opts Options) string {
	t = ProcessEscapes(t)

	if opts.Stupefy {
		return StupefyEntities(t)
	}

	if opts.ConvertQuot {
		t = strings.ReplaceAll(t, "&quot;", `"`)
	}

	t = EducateDashStyle(t, opts.Dashes)

	if opts.Ellipses {
		t = EducateEllipses(t)
	}

	if opts.BackticksDouble {
		t = EducateBackticks(t)
	}
	if opts.BackticksSingle {
		t = EducateSingleBackticks(t)
	}

	if opts.Quotes {
		switch t {
		case "'", `"`:
			t = educateLoneQuote(t, prev != 0 && !unicode.IsSpace(prev))
		default:
			t = EducateQuotes(t)
		}
	}

	return t
}
