package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that are empty or could address anything
// other than a single file stem: path separators and dots are refused.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.ContainsAny(name, `/\.`):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

func styleFile(name string) string {
	return name + ".css"
}
