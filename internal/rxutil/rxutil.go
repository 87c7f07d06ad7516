// Package rxutil wraps github.com/dlclark/regexp2 for patterns that need
// lookahead or Perl-style end anchors, which the standard library's RE2
// engine lacks. It isolates the dependency and gives every pattern a match
// timeout.
package rxutil

import (
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single Replace call. Patterns here are simple
// enough that hitting it means pathological input.
const DefaultMatchTimeout = 2 * time.Second

// Options re-exported so callers don't import regexp2 for flags alone.
const (
	None       = regexp2.None
	IgnoreCase = regexp2.IgnoreCase
)

// Pattern is a compiled backtracking regular expression. Safe for
// concurrent use.
type Pattern struct {
	re *regexp2.Regexp
}

// MustCompile compiles expr or panics. Intended for package-level vars.
func MustCompile(expr string, opts regexp2.RegexOptions) *Pattern {
	re := regexp2.MustCompile(expr, opts)
	re.MatchTimeout = DefaultMatchTimeout
	return &Pattern{re: re}
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.re.String()
}

// MatchString reports whether s contains a match. A timeout counts as no
// match.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

// Replace substitutes every match with replacement, which uses .NET syntax
// ($1, ${name}). On timeout the input is returned unchanged.
func (p *Pattern) Replace(input, replacement string) string {
	out, err := p.re.Replace(input, replacement, -1, -1)
	if err != nil {
		return input
	}
	return out
}

// ReplaceFunc substitutes every match with the result of fn. On timeout the
// input is returned unchanged.
func (p *Pattern) ReplaceFunc(input string, fn func(m *regexp2.Match) string) string {
	out, err := p.re.ReplaceFunc(input, func(m regexp2.Match) string {
		return fn(&m)
	}, -1, -1)
	if err != nil {
		return input
	}
	return out
}

// Group returns the text captured by the named group, and whether the group
// participated in the match.
func Group(m *regexp2.Match, name string) (string, bool) {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}
