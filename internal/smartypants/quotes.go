package smartypants

import (
	"strings"

	"github.com/alnah/go-typogrify/internal/rxutil"
)

// punctClass is ASCII punctuation, spelled out rather than [[:punct:]] so
// the set is explicit.
const punctClass = `[!"#$%'()*+,\-./:;<=>?@\[\\\]^_` + "`" + `{|}~]`

// openingContext is what may precede an opening quote: whitespace, a
// non-breaking space, a double hyphen, or any spelling of an en or em dash.
const openingContext = `(\s|&nbsp;|--|&[mn]dash;|&#8211;|&#8212;|&#x201[34];)`

// closingContext is any single character that is not blank and not an
// opening bracket or hyphen.
const closingContext = `[^ \t\r\n\[{(\-]`

// Each step of EducateQuotes runs over the output of the previous one.
var (
	// A quote at the very start followed by punctuation at a non-word
	// boundary closes: '", or ". and the like.
	leadingSingle = rxutil.MustCompile(`^'(?=`+punctClass+`\B)`, rxutil.None)
	leadingDouble = rxutil.MustCompile(`^"(?=`+punctClass+`\B)`, rxutil.None)

	// Nested openers: He said, "'Quoted' words in a larger quote."
	doubleThenSingle = rxutil.MustCompile(`"'(?=\w)`, rxutil.None)
	singleThenDouble = rxutil.MustCompile(`'"(?=\w)`, rxutil.None)

	// Decade abbreviations: the '80s.
	decade = rxutil.MustCompile(`'(?=\d{2}s)`, rxutil.None)

	openingSingle = rxutil.MustCompile(openingContext+`'(?=\w)`, rxutil.None)

	// Either a closing-context character right before the quote, or no such
	// character and whitespace or a word-final "s" after it, as in
	// <i>Custer</i>'s Last Stand.
	closingSingle = rxutil.MustCompile(
		`(`+closingContext+`)'|'(?=\s|[sS]\b)`, rxutil.None)

	openingDouble = rxutil.MustCompile(openingContext+`"(?=\w)`, rxutil.None)

	closingDouble = rxutil.MustCompile(
		`(`+closingContext+`)"|"(?=\s)`, rxutil.None)
)

// EducateQuotes turns straight quotes into curly quote references.
//
//	"Isn't this fun?"  ->  &#8220;Isn&#8217;t this fun?&#8221;
//
// A leading apostrophe in an elided word ('Twas) is curled as an opening
// quote. No rule tells it apart from a real opening quote.
func EducateQuotes(s string) string {
	s = leadingSingle.Replace(s, CloseSingle)
	s = leadingDouble.Replace(s, CloseDouble)

	s = doubleThenSingle.Replace(s, OpenDouble+OpenSingle)
	s = singleThenDouble.Replace(s, OpenSingle+OpenDouble)

	s = decade.Replace(s, CloseSingle)

	s = openingSingle.Replace(s, "$1"+OpenSingle)
	s = closingSingle.Replace(s, "$1"+CloseSingle)
	s = strings.ReplaceAll(s, "'", OpenSingle)

	s = openingDouble.Replace(s, "$1"+OpenDouble)
	s = closingDouble.Replace(s, "$1"+CloseDouble)
	return strings.ReplaceAll(s, `"`, OpenDouble)
}

// educateLoneQuote resolves a token that is exactly one quote character,
// using the last character of the previous text token as context.
func educateLoneQuote(q string, closing bool) string {
	switch {
	case q == "'" && closing:
		return CloseSingle
	case q == "'":
		return OpenSingle
	case closing:
		return CloseDouble
	default:
		return OpenDouble
	}
}
