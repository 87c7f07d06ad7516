package passes

import (
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-typogrify/internal/htmltoken"
	"github.com/alnah/go-typogrify/internal/rxutil"
)

type passCase struct {
	name  string
	input string
	want  string
}

func runPassCases(t *testing.T, fn func(string) string, tests []passCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fn(tt.input); got != tt.want {
				t.Errorf("input %q:\n got  %q\n want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmp(t *testing.T) {
	t.Parallel()

	runPassCases(t, Amp, []passCase{
		{name: "bare", input: "Tom & Jerry", want: `Tom <span class="amp">&amp;</span> Jerry`},
		{name: "entity", input: "Tom &amp; Jerry", want: `Tom <span class="amp">&amp;</span> Jerry`},
		{name: "decimal entity normalized", input: "Tom &#38; Jerry", want: `Tom <span class="amp">&amp;</span> Jerry`},
		{name: "padded decimal entity", input: "Tom &#038; Jerry", want: `Tom <span class="amp">&amp;</span> Jerry`},
		{name: "nbsp kept", input: "a&nbsp;&amp;&nbsp;b", want: `a&nbsp;<span class="amp">&amp;</span>&nbsp;b`},
		{name: "no surrounding space", input: "C&amp;A", want: "C&amp;A"},
		{name: "url query", input: `<a href="/x?a=1&b=2">x</a>`, want: `<a href="/x?a=1&b=2">x</a>`},
		{name: "one side only", input: "Tom &Jerry", want: "Tom &Jerry"},
		{name: "newline kept", input: "a\n&\tb", want: "a\n<span class=\"amp\">&amp;</span>\tb"},
		{name: "empty", input: "", want: ""},
	})
}

func TestDash(t *testing.T) {
	t.Parallel()

	runPassCases(t, Dash, []passCase{
		{name: "named em dash", input: "a &mdash; b", want: "a&thinsp;&mdash;&thinsp;b"},
		{name: "decimal em dash unspaced", input: "a&#8212;b", want: "a&thinsp;&#8212;&thinsp;b"},
		{name: "hex en dash", input: "1 &#x2013; 2", want: "1&thinsp;&#x2013;&thinsp;2"},
		{name: "mixed spacing collapsed", input: "a &nbsp;&ndash;&thinsp; b", want: "a&thinsp;&ndash;&thinsp;b"},
		{name: "already padded", input: "a&thinsp;&mdash;&thinsp;b", want: "a&thinsp;&mdash;&thinsp;b"},
		{name: "hyphen untouched", input: "well-known -- x", want: "well-known -- x"},
		{name: "empty", input: "", want: ""},
	})
}

func TestWidont(t *testing.T) {
	t.Parallel()

	runPassCases(t, Widont, []passCase{
		{name: "paragraph", input: "<p>one two three</p>", want: "<p>one two&nbsp;three</p>"},
		{name: "end of text", input: "one two", want: "one&nbsp;two"},
		{name: "end before final newline", input: "one two\n", want: "one&nbsp;two\n"},
		{
			name:  "inline tag around last words",
			input: "<h1>Hello <em>big world</em></h1>",
			want:  "<h1>Hello <em>big&nbsp;world</em></h1>",
		},
		{
			name:  "inline tag opening before last word",
			input: "<li>see the <a href=\"/x\">link</a></li>",
			want:  "<li>see the&nbsp;<a href=\"/x\">link</a></li>",
		},
		{
			name:  "each block",
			input: "<p>a b c</p><p>d e f</p>",
			want:  "<p>a b&nbsp;c</p><p>d e&nbsp;f</p>",
		},
		{name: "uppercase block tag", input: "<P>one two</P>", want: "<P>one&nbsp;two</P>"},
		{name: "single word", input: "<p>word</p>", want: "<p>word</p>"},
		{name: "empty", input: "", want: ""},
	})
}

func TestCaps(t *testing.T) {
	t.Parallel()

	caps := func(s string) string { return Caps(s, htmltoken.DefaultSkipSet()) }

	runPassCases(t, caps, []passCase{
		{name: "acronym", input: "NASA launched it", want: `<span class="caps">NASA</span> launched it`},
		{name: "two acronyms", input: "the FBI and CIA", want: `the <span class="caps">FBI</span> and <span class="caps">CIA</span>`},
		{name: "digits between capitals", input: "A1B2 test", want: `<span class="caps">A1B2</span> test`},
		{name: "possessive", input: "ABC's show", want: `<span class="caps">ABC</span>'s show`},
		{name: "single capital", input: "Hello World", want: "Hello World"},
		{name: "camel case", input: "CamelCase", want: "CamelCase"},
		{name: "dotted with space", input: "U.S.A. is big", want: `<span class="caps">U.S.A.</span> is big`},
		{name: "dotted at end", input: "made by I.B.M.", want: `made by <span class="caps">I.B.M.</span>`},
		{name: "code untouched", input: "<code>NASA</code> NASA", want: `<code>NASA</code> <span class="caps">NASA</span>`},
		{name: "attributes untouched", input: `<abbr title="NASA">x</abbr>`, want: `<abbr title="NASA">x</abbr>`},
		{name: "empty", input: "", want: ""},
	})
}

func TestCaps_LongCapitalRun(t *testing.T) {
	t.Parallel()

	input := "NASA " + strings.Repeat("A", 20000) + "a FBI"

	start := time.Now()
	got := Caps(input, htmltoken.DefaultSkipSet())
	elapsed := time.Since(start)

	for _, want := range []string{`<span class="caps">NASA</span> `, ` <span class="caps">FBI</span>`} {
		if !strings.Contains(got, want) {
			t.Errorf("Caps() missing %q", want)
		}
	}
	if strings.Contains(got, `<span class="caps">AAA`) {
		t.Error("Caps() wrapped a run that ends mid-word")
	}
	if limit := rxutil.DefaultMatchTimeout / 2; elapsed >= limit {
		t.Errorf("Caps() took %v, want under %v", elapsed, limit)
	}
}

func TestCaps_NilSkipSet(t *testing.T) {
	t.Parallel()

	got := Caps("<pre>NASA</pre>", nil)
	if want := `<pre><span class="caps">NASA</span></pre>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWrapCaps_KeepsConsumedWhitespace(t *testing.T) {
	t.Parallel()

	// The second space is consumed after the dotted group and must survive.
	got := Caps("U.S.A.  now", nil)
	if want := `<span class="caps">U.S.A.</span>  now`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInitialQuotes(t *testing.T) {
	t.Parallel()

	plain := func(s string) string { return InitialQuotes(s, false) }

	runPassCases(t, plain, []passCase{
		{name: "straight double", input: `<p>"Hello"</p>`, want: `<p><span class="dquo">"</span>Hello"</p>`},
		{name: "curly double", input: "<p>&#8220;Hi&#8221;</p>", want: `<p><span class="dquo">&#8220;</span>Hi&#8221;</p>`},
		{name: "named entity", input: "<h2>&ldquo;Hi&rdquo;</h2>", want: `<h2><span class="dquo">&ldquo;</span>Hi&rdquo;</h2>`},
		{name: "start of text single", input: "'Hi'", want: `<span class="quo">'</span>Hi'`},
		{
			name:  "inside inline tags",
			input: "<li> <em>&#8216;x</em></li>",
			want:  `<li> <em><span class="quo">&#8216;</span>x</em></li>`,
		},
		{name: "uppercase block", input: `<P class="x">"y"</P>`, want: `<P class="x"><span class="dquo">"</span>y"</P>`},
		{name: "pre is not a paragraph", input: `<pre>"x"</pre>`, want: `<pre>"x"</pre>`},
		{name: "quote mid block", input: `<p>He said "hi"</p>`, want: `<p>He said "hi"</p>`},
		{name: "guillemet ignored", input: "<p>&laquo;Salut&raquo;</p>", want: "<p>&laquo;Salut&raquo;</p>"},
		{
			name:  "every block",
			input: `<p>"a"</p><p>'b'</p>`,
			want:  `<p><span class="dquo">"</span>a"</p><p><span class="quo">'</span>b'</p>`,
		},
		{name: "empty", input: "", want: ""},
	})
}

func TestInitialQuotes_Guillemets(t *testing.T) {
	t.Parallel()

	guillemets := func(s string) string { return InitialQuotes(s, true) }

	runPassCases(t, guillemets, []passCase{
		{name: "named", input: "<p>&laquo;Salut&raquo;</p>", want: `<p><span class="dquo">&laquo;</span>Salut&raquo;</p>`},
		{name: "decimal", input: "<p>&#171;Salut</p>", want: `<p><span class="dquo">&#171;</span>Salut</p>`},
		{name: "literal", input: "<p>«Salut»</p>", want: `<p><span class="dquo">«</span>Salut»</p>`},
		{name: "quotes still work", input: `<p>"x"</p>`, want: `<p><span class="dquo">"</span>x"</p>`},
	})
}
