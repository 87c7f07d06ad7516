package smartypants

import "strings"

// Numeric character references emitted by the educators.
const (
	EnDash      = "&#8211;"
	EmDash      = "&#8212;"
	OpenSingle  = "&#8216;"
	CloseSingle = "&#8217;"
	OpenDouble  = "&#8220;"
	CloseDouble = "&#8221;"
	Ellipsis    = "&#8230;"

	escapedQuote    = "&#34;"
	escapedApos     = "&#39;"
	escapedBslash   = "&#92;"
	escapedPeriod   = "&#46;"
	escapedHyphen   = "&#45;"
	escapedBacktick = "&#96;"
)

var (
	escapeReplacer = strings.NewReplacer(
		`\\`, escapedBslash,
		`\"`, escapedQuote,
		`\'`, escapedApos,
		`\.`, escapedPeriod,
		`\-`, escapedHyphen,
		"\\`", escapedBacktick,
	)

	backtickReplacer       = strings.NewReplacer("``", OpenDouble, "''", CloseDouble)
	singleBacktickReplacer = strings.NewReplacer("`", OpenSingle, "'", CloseSingle)

	// Longest run first, so "---" is never read as "--" plus a hyphen.
	oldSchoolReplacer         = strings.NewReplacer("---", EmDash, "--", EnDash)
	oldSchoolInvertedReplacer = strings.NewReplacer("---", EnDash, "--", EmDash)

	stupefyReplacer = strings.NewReplacer(
		EnDash, "-",
		EmDash, "--",
		OpenSingle, "'",
		CloseSingle, "'",
		OpenDouble, `"`,
		CloseDouble, `"`,
		Ellipsis, "...",
	)
)

// ProcessEscapes turns the backslash escapes \\ \" \' \. \- \` into numeric
// references so later educators leave those characters alone.
func ProcessEscapes(s string) string {
	return escapeReplacer.Replace(s)
}

// EducateBackticks turns ``double'' backtick quotes into curly quotes.
func EducateBackticks(s string) string {
	return backtickReplacer.Replace(s)
}

// EducateSingleBackticks turns `single' backtick quotes into curly quotes.
// Every remaining ' becomes a closing quote, so run it after
// EducateBackticks and before EducateQuotes.
func EducateSingleBackticks(s string) string {
	return singleBacktickReplacer.Replace(s)
}

// EducateDashes turns "--" into an em dash.
func EducateDashes(s string) string {
	return strings.ReplaceAll(s, "--", EmDash)
}

// EducateDashesOldSchool turns "---" into an em dash and "--" into an en dash.
func EducateDashesOldSchool(s string) string {
	return oldSchoolReplacer.Replace(s)
}

// EducateDashesOldSchoolInverted turns "---" into an en dash and "--" into
// an em dash.
func EducateDashesOldSchoolInverted(s string) string {
	return oldSchoolInvertedReplacer.Replace(s)
}

// EducateDashStyle applies the educator selected by style.
func EducateDashStyle(s string, style DashStyle) string {
	switch style {
	case DashesStandard:
		return EducateDashes(s)
	case DashesOldSchool:
		return EducateDashesOldSchool(s)
	case DashesOldSchoolInverted:
		return EducateDashesOldSchoolInverted(s)
	default:
		return s
	}
}

// EducateEllipses turns "..." and ". . ." into an ellipsis. The two
// spellings are replaced in sequence, unspaced first.
func EducateEllipses(s string) string {
	s = strings.ReplaceAll(s, "...", Ellipsis)
	return strings.ReplaceAll(s, ". . .", Ellipsis)
}

// StupefyEntities turns the dash, quote, and ellipsis references produced
// by the educators back into ASCII.
func StupefyEntities(s string) string {
	return stupefyReplacer.Replace(s)
}
