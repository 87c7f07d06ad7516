package assets

// DefaultStyleName is the built-in style used when none is chosen.
const DefaultStyleName = "default"

// StyleLoader loads a stylesheet by name, without the .css extension.
// It returns ErrStyleNotFound for an unknown name and ErrInvalidAssetName
// for a name that is not a plain file stem.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}
