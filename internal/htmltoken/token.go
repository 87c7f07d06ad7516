// Package htmltoken splits HTML-ish text into tag and text tokens and tracks
// whether a token stream is inside a verbatim element.
//
// The tokenizer is deliberately not an HTML parser. It recognizes three
// kinds of markup, in this order of precedence:
//
//  1. comment groups: one or more <!-- ... --> blocks, optionally separated
//     by whitespace
//  2. processing instructions: <? ... ?>
//  3. generic tags: <name ...>, </name>, <!name ...> or <$name ...>, where
//     quoted attribute values may contain '>'
//
// Everything between matches is text. Malformed markup never fails; it
// degrades to text once the tag pattern no longer applies.
package htmltoken

import (
	"regexp"
	"strings"
)

// Kind distinguishes tag tokens from text tokens.
type Kind uint8

const (
	// Text is a run of character data between tags.
	Text Kind = iota
	// Tag is a tag, comment group, or processing instruction.
	Tag
)

// String returns "text" or "tag".
func (k Kind) String() string {
	if k == Tag {
		return "tag"
	}
	return "text"
}

// Token is one element of a tokenized document. Raw is the exact source
// slice, so concatenating the Raw fields of a token stream reproduces the
// input.
type Token struct {
	Kind Kind
	Raw  string
}

// IsTag reports whether the token is markup.
func (t Token) IsTag() bool {
	return t.Kind == Tag
}

// tokenPattern is derived from the MTRegex tokenizer used by SmartyPants.
// Alternation order matters: a comment also satisfies the generic tag
// branch, and the leftmost-first semantics of regexp pick the comment.
var tokenPattern = regexp.MustCompile(
	`(?s:<!(?:--.*?--\s*)+>)` + // comment group
		`|(?s:<\?.*?\?>)` + // processing instruction
		`|<[/!$]?[-a-zA-Z0-9:]+\b(?:[^"'>]+|"[^"]*"|'[^']*')*>`, // tag
)

// Tokenize splits s into tag and text tokens in source order. Empty text
// runs are never emitted, so adjacent tags produce adjacent Tag tokens.
func Tokenize(s string) []Token {
	matches := tokenPattern.FindAllStringIndex(s, -1)
	tokens := make([]Token, 0, 2*len(matches)+1)

	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			tokens = append(tokens, Token{Kind: Text, Raw: s[prev:m[0]]})
		}
		tokens = append(tokens, Token{Kind: Tag, Raw: s[m[0]:m[1]]})
		prev = m[1]
	}
	if prev < len(s) {
		tokens = append(tokens, Token{Kind: Text, Raw: s[prev:]})
	}

	return tokens
}

// Join concatenates the raw payloads of tokens.
func Join(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Raw)
	}

	var b strings.Builder
	b.Grow(n)
	for _, t := range tokens {
		b.WriteString(t.Raw)
	}
	return b.String()
}
