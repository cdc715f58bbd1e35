// Package fs provides the file system adapters: the sandbox layout and the
// integration fingerprint.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// DefaultIgnores lists entries Xcode and Finder create next to support files.
var DefaultIgnores = []string{".DS_Store", "xcuserdata", "*.xcuserstate"}

// Walker enumerates the regular files below a directory in lexical order.
type Walker struct {
	ignores []string
}

// NewWalker creates a Walker skipping entries whose base name matches one of ignores.
func NewWalker(ignores ...string) *Walker {
	return &Walker{ignores: ignores}
}

// WalkFiles yields the path of every file below root. Unreadable entries end the walk.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if w.ignored(d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) ignored(name string) bool {
	for _, pattern := range w.ignores {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
