package domain

// TargetDefinition describes the consuming target an aggregate target is built for.
type TargetDefinition interface {
	// Label is the human-readable name of the aggregate target, e.g. "Pods-App".
	Label() string
	// Platform is the platform the consuming target builds for.
	Platform() Platform
	// RequiresFrameworks reports whether dependencies are linked as dynamic frameworks.
	RequiresFrameworks() bool
}

// Sandbox describes where dependency artifacts are installed.
type Sandbox interface {
	// Root returns the absolute install root, e.g. "/repo/Pods".
	Root() string
	// TargetSupportFilesDir returns the directory holding the generated support files of a target.
	TargetSupportFilesDir(label string) string
}

// DependencyTarget is a single resolved dependency unit aggregated by an AggregateTarget.
type DependencyTarget interface {
	// Name identifies the target. No two targets of an aggregate share a name.
	Name() string
	// IncludedInBuildConfiguration reports whether the target is linked for the named configuration.
	IncludedInBuildConfiguration(name string) bool
	// Specs returns the specifications provided by the target.
	Specs() []Specification
	// UsesSwift reports whether any of the target's sources are Swift.
	UsesSwift() bool
}

// Specification is the description of a dependency's build requirements.
type Specification interface {
	Name() string
	// Consumer returns the view of the specification resolved for a platform.
	Consumer(platform Platform) Consumer
}

// Consumer is a Specification bound to a platform.
type Consumer interface {
	SpecName() string
	Platform() Platform
	Frameworks() []string
	Libraries() []string
	Resources() []string
}

// NativeTarget is a target inside the user's project.
type NativeTarget interface {
	UUID() string
	Name() string
}

// Project is a loaded user project container.
//
// Implementations are snapshots: a reloaded project is a new value and previously
// returned native targets must not be assumed to belong to it.
type Project interface {
	// ObjectByUUID returns the native target with the given identifier, or false if there is none.
	ObjectByUUID(uuid string) (NativeTarget, bool)
}

// ProjectLoader opens user project containers.
//
//go:generate go run go.uber.org/mock/mockgen -destination=../ports/mocks/mock_project.go -package=mocks go.trai.ch/podlink/internal/core/domain ProjectLoader,Project
type ProjectLoader interface {
	// Open loads the project at path. Load failures are returned as-is.
	Open(path string) (Project, error)
}
