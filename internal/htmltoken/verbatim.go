package htmltoken

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSkipTags lists the elements whose text is never rewritten.
var DefaultSkipTags = []string{"pre", "code", "kbd", "script", "math"}

// ErrInvalidTagName indicates a skip-tag name that can never match a tag.
var ErrInvalidTagName = errors.New("invalid tag name")

// SkipSet is a set of lower-cased element names treated as verbatim.
type SkipSet map[string]struct{}

// NewSkipSet builds a SkipSet from names. Names are matched
// case-insensitively. Returns ErrInvalidTagName for an empty name or one
// containing characters outside [-A-Za-z0-9:].
func NewSkipSet(names ...string) (SkipSet, error) {
	set := make(SkipSet, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidTagName)
		}
		for i := 0; i < len(name); i++ {
			if !isNameByte(name[i]) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidTagName, name)
			}
		}
		set[strings.ToLower(name)] = struct{}{}
	}
	return set, nil
}

// DefaultSkipSet returns a fresh SkipSet holding DefaultSkipTags.
func DefaultSkipSet() SkipSet {
	set := make(SkipSet, len(DefaultSkipTags))
	for _, name := range DefaultSkipTags {
		set[name] = struct{}{}
	}
	return set
}

// Names returns the set members in no particular order.
func (s SkipSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Match reports whether tagRaw opens or closes an element in the set.
// ok is false when the tag names something else. The name must be followed
// by whitespace or '>', so <pre> and <pre class="x"> match but <prefix>
// does not.
func (s SkipSet) Match(tagRaw string) (closing, ok bool) {
	if len(tagRaw) < 2 || tagRaw[0] != '<' {
		return false, false
	}

	i := 1
	if tagRaw[i] == '/' {
		closing = true
		i++
	}

	start := i
	for i < len(tagRaw) && isNameByte(tagRaw[i]) {
		i++
	}
	if i == start || i >= len(tagRaw) {
		return false, false
	}

	switch tagRaw[i] {
	case '>', ' ', '\t', '\n', '\r', '\f', '\v':
	default:
		return false, false
	}

	if _, found := s[strings.ToLower(tagRaw[start:i])]; !found {
		return false, false
	}
	return closing, true
}

// Tracker follows the verbatim state across one token stream. The state is
// a single boolean: the most recent skip tag wins, so nested skip elements
// are not counted. Use one Tracker per pass; the zero value is outside any
// verbatim element and matches nothing.
type Tracker struct {
	skip   SkipSet
	inside bool
}

// NewTracker returns a Tracker over s, starting outside verbatim text.
func (s SkipSet) NewTracker() Tracker {
	return Tracker{skip: s}
}

// Observe updates the state from tok. Text tokens never change it.
func (t *Tracker) Observe(tok Token) {
	if tok.Kind != Tag {
		return
	}
	if closing, ok := t.skip.Match(tok.Raw); ok {
		t.inside = !closing
	}
}

// Inside reports whether the stream is currently inside a verbatim element.
func (t *Tracker) Inside() bool {
	return t.inside
}

func isNameByte(c byte) bool {
	return c == '-' || c == ':' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
