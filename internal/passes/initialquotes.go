package passes

import (
	"github.com/dlclark/regexp2"

	"github.com/alnah/go-typogrify/internal/rxutil"
)

// The lead group is the block opener (or start of text), optional
// whitespace, and any opening inline tags before the quote.
const initialQuoteLead = `(?<lead>(?:<(?:p|h[1-6]|li)\b[^>]*>|^)\s*(?:<(?:a|em|span|strong|i|b)\b[^>]*>\s*)*)`

var (
	initialQuoteFinder = rxutil.MustCompile(
		initialQuoteLead+`(?:(?<dq>"|&ldquo;|&#8220;)|(?<sq>'|&lsquo;|&#8216;))`,
		rxutil.IgnoreCase)

	initialQuoteGuillemetFinder = rxutil.MustCompile(
		initialQuoteLead+`(?:(?<dq>"|&ldquo;|&#8220;|«|&#171;|&laquo;)|(?<sq>'|&lsquo;|&#8216;))`,
		rxutil.IgnoreCase)
)

// InitialQuotes wraps the opening quote of each p, h1-h6, or li block, and
// of the text itself, in a dquo (double) or quo (single) span. With
// guillemets set, « and its entities count as double quotes.
func InitialQuotes(text string, guillemets bool) string {
	finder := initialQuoteFinder
	if guillemets {
		finder = initialQuoteGuillemetFinder
	}
	return finder.ReplaceFunc(text, wrapInitialQuote)
}

func wrapInitialQuote(m *regexp2.Match) string {
	lead, _ := rxutil.Group(m, "lead")
	if q, ok := rxutil.Group(m, "dq"); ok {
		return lead + `<span class="dquo">` + q + spanClose
	}
	q, _ := rxutil.Group(m, "sq")
	return lead + `<span class="quo">` + q + spanClose
}
