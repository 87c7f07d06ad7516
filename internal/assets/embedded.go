package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed styles/*.css
var embeddedStyles embed.FS

// EmbeddedLoader serves the styles compiled into the binary.
type EmbeddedLoader struct{}

var _ StyleLoader = EmbeddedLoader{}

// NewEmbeddedLoader returns an EmbeddedLoader.
func NewEmbeddedLoader() EmbeddedLoader {
	return EmbeddedLoader{}
}

// LoadStyle returns the embedded style called name.
func (EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := embeddedStyles.ReadFile(path.Join("styles", styleFile(name)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(data), nil
}

// Names lists the embedded styles in sorted order.
func (EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(embeddedStyles, "styles")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if stem, ok := strings.CutSuffix(e.Name(), ".css"); ok {
			names = append(names, stem)
		}
	}
	sort.Strings(names)
	return names
}
