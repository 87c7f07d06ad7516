package smartypants

import "strings"

// DefaultMode is the preset used when a mode string is empty.
const DefaultMode = "1"

// DashStyle selects how runs of hyphens become dash entities.
type DashStyle uint8

const (
	// DashesNone leaves hyphens alone.
	DashesNone DashStyle = iota
	// DashesStandard turns "--" into an em dash.
	DashesStandard
	// DashesOldSchool turns "---" into an em dash and "--" into an en dash.
	DashesOldSchool
	// DashesOldSchoolInverted turns "---" into an en dash and "--" into an em dash.
	DashesOldSchoolInverted
)

// String returns the mode letter for the style, or "" for DashesNone.
func (d DashStyle) String() string {
	switch d {
	case DashesStandard:
		return "d"
	case DashesOldSchool:
		return "D"
	case DashesOldSchoolInverted:
		return "i"
	default:
		return ""
	}
}

// Options selects which educators run on each text token.
type Options struct {
	Quotes          bool
	BackticksDouble bool // ``double''
	BackticksSingle bool // `single'
	Dashes          DashStyle
	Ellipses        bool
	ConvertQuot     bool // &quot; -> " before education
	Stupefy         bool // entities back to ASCII; excludes the others
}

// Enabled reports whether any transformation is selected.
func (o Options) Enabled() bool {
	return o != Options{}
}

// String renders o as a letter mode string for ParseMode. Single backticks
// imply double ones.
func (o Options) String() string {
	if o.Stupefy {
		return "-1"
	}
	if !o.Enabled() {
		return "0"
	}

	var b strings.Builder
	if o.Quotes {
		b.WriteByte('q')
	}
	switch {
	case o.BackticksSingle:
		b.WriteByte('B')
	case o.BackticksDouble:
		b.WriteByte('b')
	}
	b.WriteString(o.Dashes.String())
	if o.Ellipses {
		b.WriteByte('e')
	}
	if o.ConvertQuot {
		b.WriteByte('w')
	}
	return b.String()
}

// ParseMode builds Options from a mode string. Numeric presets:
//
//	"0"   nothing
//	"1"   quotes, double backticks, "--" em dashes, ellipses
//	"2"   as 1, with old-school dashes
//	"3"   as 1, with inverted old-school dashes
//	"-1"  stupefy
//
// Otherwise each letter toggles a flag: q quotes, b double backticks,
// B double and single backticks, d/D/i dash styles, e ellipses, w convert
// &quot;. Unknown letters are ignored. An empty string means DefaultMode.
func ParseMode(mode string) Options {
	switch mode {
	case "":
		return ParseMode(DefaultMode)
	case "0":
		return Options{}
	case "1":
		return Options{Quotes: true, BackticksDouble: true, Dashes: DashesStandard, Ellipses: true}
	case "2":
		return Options{Quotes: true, BackticksDouble: true, Dashes: DashesOldSchool, Ellipses: true}
	case "3":
		return Options{Quotes: true, BackticksDouble: true, Dashes: DashesOldSchoolInverted, Ellipses: true}
	case "-1":
		return Options{Stupefy: true}
	}

	var o Options
	for _, c := range mode {
		switch c {
		case 'q':
			o.Quotes = true
		case 'b':
			o.BackticksDouble = true
		case 'B':
			o.BackticksDouble = true
			o.BackticksSingle = true
		case 'd':
			o.Dashes = DashesStandard
		case 'D':
			o.Dashes = DashesOldSchool
		case 'i':
			o.Dashes = DashesOldSchoolInverted
		case 'e':
			o.Ellipses = true
		case 'w':
			o.ConvertQuot = true
		}
	}
	return o
}
