package bundler

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/spf13/afero"
)

// ReadVersion reads the single-line version file, removing every newline.
func ReadVersion(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", &MissingInputError{Kind: "version file", Path: path, Err: err}
	}
	return sanitizeVersion(string(data)), nil
}

// CheckVersion reports whether v is a well-formed release version. The
// bundler embeds the version verbatim either way.
func CheckVersion(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("version is empty")
	}
	if _, err := version.NewVersion(v); err != nil {
		return fmt.Errorf("version %q is not a valid release version: %w", v, err)
	}
	return nil
}
