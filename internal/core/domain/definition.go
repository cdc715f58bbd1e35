package domain

// Definition is the TargetDefinition read from an integration manifest.
type Definition struct {
	Name       string
	OnPlatform Platform
	Frameworks bool
}

var _ TargetDefinition = (*Definition)(nil)

// Label implements TargetDefinition.
func (d *Definition) Label() string { return d.Name }

// Platform implements TargetDefinition.
func (d *Definition) Platform() Platform { return d.OnPlatform }

// RequiresFrameworks implements TargetDefinition.
func (d *Definition) RequiresFrameworks() bool { return d.Frameworks }
