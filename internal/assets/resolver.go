package assets

import "errors"

// Resolver loads from a custom directory first and falls back to the
// embedded styles when the custom directory lacks the style. Other errors
// from the custom loader are returned as is.
type Resolver struct {
	custom   StyleLoader // nil without a custom directory
	embedded StyleLoader
}

var _ StyleLoader = (*Resolver)(nil)

// NewResolver returns a Resolver. An empty customBasePath means embedded
// styles only.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle implements StyleLoader.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if errors.Is(err, ErrStyleNotFound) {
		return r.embedded.LoadStyle(name)
	}
	return css, err
}

// HasCustom reports whether a custom directory is configured.
func (r *Resolver) HasCustom() bool {
	return r.custom != nil
}
