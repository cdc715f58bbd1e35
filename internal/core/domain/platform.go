package domain

import "strings"

// Platform is a build platform with an optional minimum deployment target.
type Platform struct {
	Name             string `yaml:"name"`
	DeploymentTarget string `yaml:"deployment_target,omitempty"`
}

// String returns e.g. "iOS 13.0".
func (p Platform) String() string {
	name := p.displayName()
	if p.DeploymentTarget == "" {
		return name
	}
	return name + " " + p.DeploymentTarget
}

// Is reports whether the platform has the given name, ignoring case.
func (p Platform) Is(name string) bool {
	return strings.EqualFold(p.Name, name)
}

func (p Platform) displayName() string {
	switch strings.ToLower(p.Name) {
	case "ios":
		return "iOS"
	case "osx", "macos":
		return "macOS"
	case "tvos":
		return "tvOS"
	case "watchos":
		return "watchOS"
	case "visionos":
		return "visionOS"
	default:
		return p.Name
	}
}

// BuildType classifies a build configuration.
type BuildType string

const (
	// BuildTypeDebug marks configurations built without optimisation.
	BuildTypeDebug BuildType = "debug"
	// BuildTypeRelease marks optimised configurations.
	BuildTypeRelease BuildType = "release"
)

// NormalizeBuildType converts a string to a BuildType, defaulting to release if unknown.
func NormalizeBuildType(s string) BuildType {
	if strings.EqualFold(s, string(BuildTypeDebug)) {
		return BuildTypeDebug
	}
	return BuildTypeRelease
}
