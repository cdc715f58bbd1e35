package config

// DefaultFilename is the manifest file name looked up when no path is given.
const DefaultFilename = "podlink.yaml"

// Manifest represents the structure of the podlink.yaml integration manifest.
type Manifest struct {
	Version string `yaml:"version"`
	// Sandbox is the dependency install root. Defaults to "Pods".
	Sandbox string `yaml:"sandbox"`
	// ClientRoot is the directory of the user project. Defaults to the manifest directory.
	ClientRoot string `yaml:"client_root"`
	// Project is the user project container shared by every target.
	Project  string       `yaml:"project"`
	Platform *PlatformDTO `yaml:"platform"`
	// BuildConfigurations maps configuration names to "debug" or "release".
	// Defaults to Debug and Release.
	BuildConfigurations map[string]string `yaml:"build_configurations"`
	Targets             []TargetDTO       `yaml:"targets"`
	Pods                map[string]PodDTO `yaml:"pods"`
}

// PlatformDTO represents a platform declaration.
type PlatformDTO struct {
	Name             string `yaml:"name"`
	DeploymentTarget string `yaml:"deployment_target"`
}

// TargetDTO represents an aggregate target declaration.
type TargetDTO struct {
	Label         string            `yaml:"label"`
	Platform      *PlatformDTO      `yaml:"platform"`
	Frameworks    bool              `yaml:"frameworks"`
	Project       string            `yaml:"project"`
	UserTargets   []string          `yaml:"user_targets"`
	Pods          []string          `yaml:"pods"`
	BuildSettings map[string]string `yaml:"build_settings"`
}

// PodDTO represents a pod target declaration.
type PodDTO struct {
	Swift          bool      `yaml:"swift"`
	Configurations []string  `yaml:"configurations"`
	Specs          []SpecDTO `yaml:"specs"`
}

// AttributesDTO holds the linkage attributes of a spec.
type AttributesDTO struct {
	Frameworks []string `yaml:"frameworks"`
	Libraries  []string `yaml:"libraries"`
	Resources  []string `yaml:"resources"`
}

// SpecDTO represents a spec with its common and per-platform attributes.
type SpecDTO struct {
	Name          string `yaml:"name"`
	AttributesDTO `yaml:",inline"`

	IOS      *AttributesDTO `yaml:"ios"`
	OSX      *AttributesDTO `yaml:"osx"`
	TVOS     *AttributesDTO `yaml:"tvos"`
	WatchOS  *AttributesDTO `yaml:"watchos"`
	VisionOS *AttributesDTO `yaml:"visionos"`
}

func (s SpecDTO) platformAttributes() map[string]*AttributesDTO {
	return map[string]*AttributesDTO{
		"ios":      s.IOS,
		"osx":      s.OSX,
		"tvos":     s.TVOS,
		"watchos":  s.WatchOS,
		"visionos": s.VisionOS,
	}
}
