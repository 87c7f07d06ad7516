package typogrify

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/alnah/go-typogrify/internal/htmltoken"
	"github.com/alnah/go-typogrify/internal/logging"
	"github.com/alnah/go-typogrify/internal/passes"
	"github.com/alnah/go-typogrify/internal/smartypants"
)

// Passes selects which stages Parse runs.
type Passes uint8

// The passes, in the order Parse runs them.
const (
	PassAmp           Passes = 1 << iota // wrap spaced ampersands
	PassWidont                           // &nbsp; before the last word of a block
	PassSmartyPants                      // quotes, dashes, ellipses, backticks
	PassCaps                             // wrap capital runs
	PassInitialQuotes                    // wrap a block's opening quote
	PassDash                             // thin spaces around dashes

	// PassAll is the default for New.
	PassAll = PassAmp | PassWidont | PassSmartyPants | PassCaps | PassInitialQuotes | PassDash
)

var passNames = []struct {
	pass Passes
	name string
}{
	{PassAmp, "amp"},
	{PassWidont, "widont"},
	{PassSmartyPants, "smartypants"},
	{PassCaps, "caps"},
	{PassInitialQuotes, "initialquotes"},
	{PassDash, "dash"},
}

// ParsePass returns the pass with the given name, as used in config files.
func ParsePass(name string) (Passes, bool) {
	for _, p := range passNames {
		if strings.EqualFold(p.name, name) {
			return p.pass, true
		}
	}
	return 0, false
}

// String joins the pass names with "|", or returns "none".
func (p Passes) String() string {
	if p == 0 {
		return "none"
	}
	var names []string
	for _, pn := range passNames {
		if p&pn.pass != 0 {
			names = append(names, pn.name)
		}
	}
	return strings.Join(names, "|")
}

// Typogrifier applies the passes with a fixed configuration. It is immutable
// after New and safe for concurrent use.
type Typogrifier struct {
	mode       smartypants.Options
	skip       htmltoken.SkipSet
	guillemets bool
	passes     Passes
	hook       func(string) string
	logger     *slog.Logger
}

// Option configures a Typogrifier.
type Option func(*typogrifierConfig)

type typogrifierConfig struct {
	mode       string
	skipTags   []string
	skipSet    bool
	guillemets bool
	passes     Passes
	hook       func(string) string
	logger     *slog.Logger
}

// WithMode sets the SmartyPants mode: a preset "0".."3" or "-1", or a
// string of flag letters. Unknown letters are ignored. Default "1".
func WithMode(mode string) Option {
	return func(c *typogrifierConfig) {
		c.mode = mode
	}
}

// WithSkipTags replaces the verbatim elements. Calling it with no names
// disables verbatim tracking.
func WithSkipTags(names ...string) Option {
	return func(c *typogrifierConfig) {
		c.skipTags = names
		c.skipSet = true
	}
}

// WithGuillemets makes InitialQuotes also wrap « and its entities.
func WithGuillemets(on bool) Option {
	return func(c *typogrifierConfig) {
		c.guillemets = on
	}
}

// WithPasses restricts Parse to the given passes. Default PassAll.
func WithPasses(p Passes) Option {
	return func(c *typogrifierConfig) {
		c.passes = p
	}
}

// WithOutputHook runs fn on the result of Parse, after every pass.
func WithOutputHook(fn func(string) string) Option {
	return func(c *typogrifierConfig) {
		c.hook = fn
	}
}

// WithLogger receives a Debug record per Parse call. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *typogrifierConfig) {
		c.logger = l
	}
}

// New builds a Typogrifier. It fails only for invalid skip-tag names.
func New(opts ...Option) (*Typogrifier, error) {
	cfg := typogrifierConfig{mode: smartypants.DefaultMode, passes: PassAll}
	for _, opt := range opts {
		opt(&cfg)
	}

	skip := htmltoken.DefaultSkipSet()
	if cfg.skipSet {
		var err error
		if skip, err = htmltoken.NewSkipSet(cfg.skipTags...); err != nil {
			return nil, fmt.Errorf("skip tags: %w", err)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Typogrifier{
		mode:       smartypants.ParseMode(cfg.mode),
		skip:       skip,
		guillemets: cfg.guillemets,
		passes:     cfg.passes,
		hook:       cfg.hook,
		logger:     logger,
	}, nil
}

// Mode returns the normalized mode string, e.g. "qbde" for preset "1".
func (t *Typogrifier) Mode() string {
	return t.mode.String()
}

// SkipTags returns the verbatim element names, sorted.
func (t *Typogrifier) SkipTags() []string {
	names := t.skip.Names()
	slices.Sort(names)
	return names
}

// Parse runs the enabled passes over text in order: amp, widont,
// smartypants, caps, initial quotes, dash, then the output hook.
// Guillemets follow WithGuillemets.
func (t *Typogrifier) Parse(text string) string {
	return t.parse(text, t.guillemets)
}

// ParseGuillemets is Parse with the guillemet setting chosen for this call.
func (t *Typogrifier) ParseGuillemets(text string, guillemets bool) string {
	return t.parse(text, guillemets)
}

func (t *Typogrifier) parse(text string, guillemets bool) string {
	in := len(text)

	if t.passes&PassAmp != 0 {
		text = passes.Amp(text)
	}
	if t.passes&PassWidont != 0 {
		text = passes.Widont(text)
	}
	if t.passes&PassSmartyPants != 0 {
		text = smartypants.Educate(text, t.mode, t.skip)
	}
	if t.passes&PassCaps != 0 {
		text = passes.Caps(text, t.skip)
	}
	if t.passes&PassInitialQuotes != 0 {
		text = passes.InitialQuotes(text, guillemets)
	}
	if t.passes&PassDash != 0 {
		text = passes.Dash(text)
	}
	if t.hook != nil {
		text = t.hook(text)
	}

	t.logger.Debug("typogrify",
		slog.String("mode", t.mode.String()),
		slog.String("passes", t.passes.String()),
		slog.Int("bytes_in", in),
		slog.Int("bytes_out", len(text)))
	return text
}

// SmartyPants runs only the educator pipeline with t's mode and skip set.
func (t *Typogrifier) SmartyPants(text string) string {
	return smartypants.Educate(text, t.mode, t.skip)
}

// withConvertQuot returns a copy of t whose mode also turns &quot; into
// curly quotes. HTML renderers escape every text quote that way.
func (t *Typogrifier) withConvertQuot() *Typogrifier {
	if !t.mode.Quotes || t.mode.ConvertQuot {
		return t
	}
	clone := *t
	clone.mode.ConvertQuot = true
	return &clone
}

// withSkip returns a copy of t that also treats names as verbatim.
func (t *Typogrifier) withSkip(names ...string) *Typogrifier {
	clone := *t
	clone.skip = make(htmltoken.SkipSet, len(t.skip)+len(names))
	for name := range t.skip {
		clone.skip[name] = struct{}{}
	}
	for _, name := range names {
		clone.skip[name] = struct{}{}
	}
	return &clone
}

var defaultTypogrifier, _ = New()

// Typogrify runs every pass with the default settings.
func Typogrify(text string) string {
	return defaultTypogrifier.Parse(text)
}

// Amp wraps an ampersand that has whitespace on both sides in
// <span class="amp">.
func Amp(text string) string {
	return passes.Amp(text)
}

// Widont replaces the space before the last word of each h1-h6, p and li
// block, and of the text as a whole, with &nbsp;.
func Widont(text string) string {
	return passes.Widont(text)
}

// Caps wraps runs of two or more capitals, and dotted abbreviations, in
// <span class="caps">, outside the default verbatim elements.
func Caps(text string) string {
	return passes.Caps(text, defaultTypogrifier.skip)
}

// InitialQuotes wraps the first quote of a block in <span class="dquo"> or
// <span class="quo">. With guillemets set, « counts as a double quote.
func InitialQuotes(text string, guillemets bool) string {
	return passes.InitialQuotes(text, guillemets)
}

// Dash surrounds em and en dash entities with a single &thinsp; each side.
func Dash(text string) string {
	return passes.Dash(text)
}

// SmartyPants educates text with the given mode string.
func SmartyPants(text, mode string) string {
	return smartypants.Educate(text, smartypants.ParseMode(mode), defaultTypogrifier.skip)
}

// SmartQuotes educates quotes only, and ``double'' backticks when
// backticks is set.
func SmartQuotes(text string, backticks bool) string {
	return smartypants.SmartQuotes(text, backticks, defaultTypogrifier.skip)
}

// SmartDashes educates dashes with the mode letter's style: "d" standard,
// "D" old school, "i" inverted. The presets "2" and "3" select old school
// and inverted, "0" leaves text unchanged, and any other value means "d".
func SmartDashes(text, style string) string {
	if strings.TrimSpace(style) == "0" {
		return text
	}
	ds := smartypants.ParseMode(style).Dashes
	if ds == smartypants.DashesNone {
		ds = smartypants.DashesStandard
	}
	return smartypants.SmartDashes(text, ds, defaultTypogrifier.skip)
}

// SmartEllipses educates ellipses only.
func SmartEllipses(text string) string {
	return smartypants.SmartEllipses(text, defaultTypogrifier.skip)
}

// Stupefy turns curly quote, dash and ellipsis entities back into ASCII.
func Stupefy(text string) string {
	return SmartyPants(text, "-1")
}
