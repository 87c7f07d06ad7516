// Package typogrify refines the typography of HTML: curly quotes, proper
// dashes and ellipses, CSS hooks for ampersands, capital runs and initial
// quotes, and a non-breaking space against widows.
//
// # Quick Start
//
// The package-level helpers use the default settings:
//
//	out := typogrify.Typogrify(`<h1>"Jayhawks" & KU fans act extremely obnoxiously</h1>`)
//
// A Typogrifier holds a configuration and is safe for concurrent use:
//
//	t, err := typogrify.New(
//	    typogrify.WithMode("qDe"),
//	    typogrify.WithSkipTags("pre", "code", "samp"),
//	    typogrify.WithGuillemets(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := t.Parse(html)
//
// # Passes
//
// Parse runs, in order:
//
//  1. Amp wraps a spaced ampersand in <span class="amp">
//  2. Widont joins the last two words of a block with &nbsp;
//  3. SmartyPants educates quotes, dashes, ellipses and backticks
//  4. Caps wraps runs of capitals in <span class="caps">
//  5. InitialQuotes wraps a block's opening quote in <span class="dquo"> or <span class="quo">
//  6. Dash pads em and en dashes with thin spaces
//
// Text inside tags, comments, processing instructions and the skip
// elements (pre, code, kbd, script, math by default) is never rewritten.
//
// # Mode
//
// The SmartyPants mode is a preset ("0" off, "1" default, "2" old-school
// dashes, "3" inverted old-school dashes, "-1" stupefy) or a set of
// letters: q quotes, b ``double'' backticks, B `single' backticks too,
// d/D/i dash style, e ellipses, w convert &quot;.
//
// # Documents
//
// Converter renders Markdown or HTML into a styled HTML page, or a PDF proof
// through headless Chrome:
//
//	conv, err := typogrify.NewConverter(typogrify.WithStyle("book"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	res, err := conv.Convert(ctx, typogrify.Input{Markdown: "# Hello -- world"})
//
// PDF output requires Chrome/Chromium; go-rod downloads one on first use.
// Set ROD_BROWSER_BIN to use an installed browser and ROD_NO_SANDBOX=1 in
// containers.
package typogrify
