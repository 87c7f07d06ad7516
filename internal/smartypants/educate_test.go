package smartypants

import (
	"testing"

	"github.com/alnah/go-typogrify/internal/htmltoken"
)

func TestEducate(t *testing.T) {
	t.Parallel()

	skip := htmltoken.DefaultSkipSet()

	tests := []struct {
		name  string
		input string
		mode  string
		want  string
	}{
		{
			name:  "paragraph",
			input: `<p>He said -- "hi"...</p>`,
			mode:  "1",
			want:  "<p>He said &#8212; &#8220;hi&#8221;&#8230;</p>",
		},
		{
			name:  "code is verbatim",
			input: `<code>it's "quoted"</code>`,
			mode:  "1",
			want:  `<code>it's "quoted"</code>`,
		},
		{
			name:  "text after verbatim is educated",
			input: `<pre>a--b</pre> a--b`,
			mode:  "1",
			want:  "<pre>a--b</pre> a&#8212;b",
		},
		{
			name:  "skip tag name is case insensitive",
			input: `<PRE>"x"</PRE>`,
			mode:  "1",
			want:  `<PRE>"x"</PRE>`,
		},
		{
			name:  "lone quotes around a tag",
			input: `<p>"<em>Hi</em>"</p>`,
			mode:  "1",
			want:  "<p>&#8220;<em>Hi</em>&#8221;</p>",
		},
		{
			name:  "lone quote after a space opens",
			input: `a <i>'</i>`,
			mode:  "1",
			want:  "a <i>&#8216;</i>",
		},
		{
			name:  "verbatim text still sets context",
			input: `<code>x</code>'`,
			mode:  "1",
			want:  "<code>x</code>&#8217;",
		},
		{
			name:  "quotes inside attributes untouched",
			input: `<a href="x" title='y'>"go"</a>`,
			mode:  "1",
			want:  `<a href="x" title='y'>&#8220;go&#8221;</a>`,
		},
		{
			name:  "escaped quotes stay straight",
			input: `\"quoted\"`,
			mode:  "1",
			want:  "&#34;quoted&#34;",
		},
		{
			name:  "mode 0 changes nothing",
			input: `\"a\" -- b...`,
			mode:  "0",
			want:  `\"a\" -- b...`,
		},
		{name: "old school dashes", input: "a--b---c", mode: "2", want: "a&#8211;b&#8212;c"},
		{name: "inverted dashes", input: "a--b---c", mode: "3", want: "a&#8212;b&#8211;c"},
		{name: "convert quot", input: "&quot;Hi&quot;", mode: "qw", want: "&#8220;Hi&#8221;"},
		{name: "quot kept without w", input: "&quot;Hi&quot;", mode: "q", want: "&quot;Hi&quot;"},
		{
			name:  "double backticks with quotes",
			input: "``Isn't this fun?''",
			mode:  "qb",
			want:  "&#8220;Isn&#8217;t this fun?&#8221;",
		},
		{name: "single backticks", input: "`Isn't' fun", mode: "qB", want: "&#8216;Isn&#8217;t&#8217; fun"},
		{
			name:  "stupefy",
			input: "<p>&#8220;Hello &#8212; world.&#8221;</p>",
			mode:  "-1",
			want:  `<p>"Hello -- world."</p>`,
		},
		{name: "empty", input: "", mode: "1", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Educate(tt.input, ParseMode(tt.mode), skip)
			if got != tt.want {
				t.Errorf("Educate(%q, %q) = %q, want %q", tt.input, tt.mode, got, tt.want)
			}
		})
	}
}

func TestEducate_NilSkipSet(t *testing.T) {
	t.Parallel()

	got := Educate("<code>a--b</code>", ParseMode("1"), nil)
	if want := "<code>a&#8212;b</code>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEducate_StupefyRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`"Hello" -- it's...`,
		"He said 'yes'.",
		`<p>"Quoted" text</p>`,
	}

	skip := htmltoken.DefaultSkipSet()
	for _, in := range inputs {
		educated := Educate(in, ParseMode("1"), skip)
		if educated == in {
			t.Errorf("Educate(%q) changed nothing", in)
		}
		if got := Educate(educated, ParseMode("-1"), skip); got != in {
			t.Errorf("stupefy(educate(%q)) = %q", in, got)
		}
	}
}

func TestSmartQuotes(t *testing.T) {
	t.Parallel()

	skip := htmltoken.DefaultSkipSet()

	tests := []struct {
		name      string
		input     string
		backticks bool
		want      string
	}{
		{name: "quote after tag at end", input: `<em>word</em>"`, want: "<em>word</em>&#8221;"},
		{name: "dashes untouched", input: `"a" -- b...`, want: "&#8220;a&#8221; -- b..."},
		{name: "backticks off", input: "``hi'' there", want: "``hi&#8217;&#8217; there"},
		{name: "backticks on", input: "``hi''", backticks: true, want: "&#8220;hi&#8221;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SmartQuotes(tt.input, tt.backticks, skip); got != tt.want {
				t.Errorf("SmartQuotes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSmartDashesAndEllipses(t *testing.T) {
	t.Parallel()

	skip := htmltoken.DefaultSkipSet()

	if got, want := SmartDashes("a--b", DashesStandard, skip), "a&#8212;b"; got != want {
		t.Errorf("SmartDashes = %q, want %q", got, want)
	}
	if got, want := SmartDashes("<pre>a--b</pre>", DashesStandard, skip), "<pre>a--b</pre>"; got != want {
		t.Errorf("SmartDashes in pre = %q, want %q", got, want)
	}
	if got, want := SmartDashes(`a--"b"`, DashesOldSchool, skip), `a&#8211;"b"`; got != want {
		t.Errorf("SmartDashes old school = %q, want %q", got, want)
	}
	if got, want := SmartEllipses(`"Wait..."`, skip), `"Wait&#8230;"`; got != want {
		t.Errorf("SmartEllipses = %q, want %q", got, want)
	}
}
