package passes

import "regexp"

var dashFinder = regexp.MustCompile(
	`(?:\s|&nbsp;|&thinsp;)*(&mdash;|&ndash;|&#x2013;|&#8211;|&#x2014;|&#8212;)(?:\s|&nbsp;|&thinsp;)*`)

// Dash collapses the spacing around an en or em dash entity into one
// &thinsp; on each side.
func Dash(text string) string {
	return dashFinder.ReplaceAllString(text, `&thinsp;${1}&thinsp;`)
}
