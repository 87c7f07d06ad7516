package passes

import "regexp"

// ampFinder matches an ampersand, bare or as an entity, with whitespace or
// &nbsp; on both sides.
var ampFinder = regexp.MustCompile(`(\s|&nbsp;)(&|&amp;|&#38;|&#038;)(\s|&nbsp;)`)

// Amp wraps free-standing ampersands in an amp span and normalizes them to
// &amp;. Ampersands inside words, entities, or URLs are left alone.
//
//	Tom & Jerry  ->  Tom <span class="amp">&amp;</span> Jerry
func Amp(text string) string {
	return ampFinder.ReplaceAllString(text, `${1}<span class="amp">&amp;</span>${3}`)
}
