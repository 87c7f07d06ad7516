package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-typogrify/internal/htmltoken"
)

// localRefAttrs maps an element to the attribute whose relative reference
// a browser would resolve against the document location.
var localRefAttrs = map[string]string{
	"img":  "src",
	"a":    "href",
	"link": "href",
}

// ResolveLocalRefs rewrites relative img, a, and link references in doc to
// absolute file:// URLs under baseDir, so a document rendered from a
// temporary file still finds its images and stylesheets. References that
// would escape baseDir are left alone. Only rewritten tags are
// re-serialized; everything else is copied byte for byte. An empty baseDir
// returns doc unchanged.
func ResolveLocalRefs(doc, baseDir string) (string, error) {
	if baseDir == "" {
		return doc, nil
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(doc))
	for _, tok := range htmltoken.Tokenize(doc) {
		if tok.IsTag() {
			b.WriteString(resolveTagRef(tok.Raw, base))
			continue
		}
		b.WriteString(tok.Raw)
	}
	return b.String(), nil
}

// resolveTagRef parses one raw tag and returns it with its reference
// attribute resolved, or raw itself when nothing changes.
func resolveTagRef(raw, base string) string {
	z := html.NewTokenizer(strings.NewReader(raw))
	switch z.Next() {
	case html.StartTagToken, html.SelfClosingTagToken:
	default:
		return raw
	}

	tok := z.Token()
	key, ok := localRefAttrs[tok.Data]
	if !ok {
		return raw
	}

	changed := false
	for i, attr := range tok.Attr {
		if attr.Namespace != "" || attr.Key != key {
			continue
		}
		if resolved, ok := resolveRef(attr.Val, base); ok {
			tok.Attr[i].Val = resolved
			changed = true
		}
	}
	if !changed {
		return raw
	}
	return tok.String()
}

// resolveRef turns a relative reference into a file URL under base. It
// reports false for empty references, fragments, URLs with a scheme or
// host, absolute paths, and paths that leave base.
func resolveRef(ref, base string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}
	if filepath.IsAbs(ref) || strings.HasPrefix(ref, "/") {
		return "", false
	}

	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}

	abs := filepath.Join(base, filepath.FromSlash(u.Path))
	if !within(abs, base) {
		return "", false
	}

	resolved := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: u.RawQuery,
		Fragment: u.Fragment,
	}
	if !strings.HasPrefix(resolved.Path, "/") {
		resolved.Path = "/" + resolved.Path // Windows drive letters
	}
	return resolved.String(), true
}

// within reports whether path is base or below it.
func within(path, base string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
