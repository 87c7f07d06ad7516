package passes

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/alnah/go-typogrify/internal/htmltoken"
	"github.com/alnah/go-typogrify/internal/rxutil"
)

// capsFinder matches either a word with at least two capitals (digits may
// sit between them), or two or more dotted capital groups such as U.S.A.
// The lookahead checks for two capitals and the atomic group then takes the
// whole run, so a long run that ends mid-word fails in linear time.
var capsFinder = rxutil.MustCompile(
	`(?<caps>\b(?=[A-Z\d]*[A-Z]\d*[A-Z])(?>[A-Z\d]+)\b)`+
		`|(?<dotted>\b(?>[A-Z]+)\.\s?(?:(?>[A-Z]+)\.\s?)+)(?:\s|\b|$)`,
	rxutil.None)

const (
	capsOpen  = `<span class="caps">`
	spanClose = `</span>`
)

// Caps wraps runs of capitals in a caps span. Tags and the text of
// elements in skip are left alone; a nil skip set wraps everywhere.
//
//	NASA launched it  ->  <span class="caps">NASA</span> launched it
func Caps(text string, skip htmltoken.SkipSet) string {
	var b strings.Builder
	b.Grow(len(text))

	tracker := skip.NewTracker()
	for _, tok := range htmltoken.Tokenize(text) {
		if tok.IsTag() {
			b.WriteString(tok.Raw)
			tracker.Observe(tok)
			continue
		}
		if tracker.Inside() {
			b.WriteString(tok.Raw)
			continue
		}
		b.WriteString(capsFinder.ReplaceFunc(tok.Raw, wrapCaps))
	}
	return b.String()
}

// wrapCaps keeps a trailing space of a dotted group outside the span, and
// re-appends whatever the match consumed after the group.
func wrapCaps(m *regexp2.Match) string {
	if caps, ok := rxutil.Group(m, "caps"); ok {
		return capsOpen + caps + spanClose
	}

	dotted, _ := rxutil.Group(m, "dotted")
	tail := m.String()[len(dotted):]
	if trimmed, found := strings.CutSuffix(dotted, " "); found {
		dotted = trimmed
		tail = " " + tail
	}
	return capsOpen + dotted + spanClose + tail
}
