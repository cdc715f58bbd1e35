package fs

import (
	"path/filepath"

	"go.trai.ch/podlink/internal/core/domain"
)

// SupportFilesDirName is the sandbox directory holding the generated files of every target.
const SupportFilesDirName = "Target Support Files"

var _ domain.Sandbox = (*Sandbox)(nil)

// Sandbox is the on-disk layout of a dependency install root.
type Sandbox struct {
	root string
}

// NewSandbox returns the sandbox installed at root.
func NewSandbox(root string) *Sandbox {
	return &Sandbox{root: filepath.Clean(root)}
}

// Root returns the install root.
func (s *Sandbox) Root() string { return s.root }

// TargetSupportFilesDir returns the support files directory of the target with the given label.
func (s *Sandbox) TargetSupportFilesDir(label string) string {
	return filepath.Join(s.root, SupportFilesDirName, label)
}
