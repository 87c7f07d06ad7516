package smartypants

import (
	"strings"

	"github.com/alnah/go-typogrify/internal/htmltoken"
	"github.com/alnah/go-typogrify/internal/rxutil"
)

// trailingQuoteAfterTag matches a document ending in a tag followed by a
// single quote character, e.g. <em>word</em>".
var trailingQuoteAfterTag = rxutil.MustCompile(`>['"]\z`, rxutil.None)

// SmartQuotes educates quotes only, plus ``double'' backticks when
// backticks is set. A quote that ends the text right after a tag gets a
// temporary trailing space so it reads as closing.
func SmartQuotes(text string, backticks bool, skip htmltoken.SkipSet) string {
	padded := trailingQuoteAfterTag.MatchString(text)
	if padded {
		text += " "
	}

	out := Educate(text, Options{Quotes: true, BackticksDouble: backticks}, skip)

	if padded {
		out = strings.TrimSuffix(out, " ")
	}
	return out
}

// SmartDashes educates dashes only, in the given style.
func SmartDashes(text string, style DashStyle, skip htmltoken.SkipSet) string {
	return Educate(text, Options{Dashes: style}, skip)
}

// SmartEllipses educates ellipses only.
func SmartEllipses(text string, skip htmltoken.SkipSet) string {
	return Educate(text, Options{Ellipses: true}, skip)
}
