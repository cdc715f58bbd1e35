package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// SourceRootToken is the Xcode build-setting substitution for the directory of the user project.
const SourceRootToken = "${SRCROOT}"

// C99ExtIdentifier turns name into an identifier usable as a module name.
// Every character outside [A-Za-z0-9_] becomes an underscore and a leading digit is
// prefixed with one, so "3rd-Party Kit" becomes "_3rd_Party_Kit". An empty name yields "_".
func C99ExtIdentifier(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range name {
		switch {
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// RelativePath returns target expressed relative to base, using forward slashes.
// Both paths are cleaned first, so ".." segments are emitted when base is not an
// ancestor of target.
func RelativePath(base, target string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to compute relative path"), "base", base), "path", target)
	}
	return filepath.ToSlash(rel), nil
}

// WithSourceRoot prefixes a client-root relative path with SourceRootToken.
func WithSourceRoot(rel string) string {
	return SourceRootToken + "/" + rel
}

// configurationSuffix formats a build configuration name for use in a file name.
func configurationSuffix(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
