// Package domain contains the aggregate target model and the path rules used to integrate it
// into a user project.
package domain

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// AggregateTarget is the umbrella target that links every pod target required by one
// target of the user project.
//
// The definition and sandbox are fixed at construction. The remaining state is filled in by
// later phases of an integration, in this order:
//
//  1. SetClientRoot, once the user project has been located.
//  2. SetPodTargets, once dependencies are resolved.
//  3. SetUserProject, with the project path and the UUIDs of the user targets.
//  4. SetUserBuildConfigurations and SetXCConfigs, when support files are generated.
//
// Accessors check their own preconditions instead of relying on that order.
// An AggregateTarget is not safe for concurrent mutation.
type AggregateTarget struct {
	definition TargetDefinition
	sandbox    Sandbox

	podTargets      []DependencyTarget
	xcconfigs       map[string]*XCConfig
	buildConfigs    map[string]BuildType
	clientRoot      string
	userProjectPath string
	userTargetUUIDs []string
}

// NewAggregateTarget creates an aggregate target for definition installed into sandbox.
func NewAggregateTarget(definition TargetDefinition, sandbox Sandbox) *AggregateTarget {
	return &AggregateTarget{
		definition: definition,
		sandbox:    sandbox,
		xcconfigs:  make(map[string]*XCConfig),
	}
}

// Label returns the label of the target definition.
func (t *AggregateTarget) Label() string {
	return t.definition.Label()
}

// Name is an alias of Label.
func (t *AggregateTarget) Name() string {
	return t.Label()
}

// String implements fmt.Stringer.
func (t *AggregateTarget) String() string {
	return fmt.Sprintf("`%s`", t.Label())
}

// Definition returns the target definition.
func (t *AggregateTarget) Definition() TargetDefinition {
	return t.definition
}

// Sandbox returns the sandbox the pod targets are installed into.
func (t *AggregateTarget) Sandbox() Sandbox {
	return t.sandbox
}

// Platform returns the platform of the target definition.
func (t *AggregateTarget) Platform() Platform {
	return t.definition.Platform()
}

// RequiresFrameworks reports whether the pod targets are linked as frameworks.
func (t *AggregateTarget) RequiresFrameworks() bool {
	return t.definition.RequiresFrameworks()
}

// ClientRoot returns the client root and whether it has been set.
func (t *AggregateTarget) ClientRoot() (string, bool) {
	return t.clientRoot, t.clientRoot != ""
}

// SetClientRoot records the directory of the user project.
// Setting the same root again is a no-op; setting a different one fails.
func (t *AggregateTarget) SetClientRoot(root string) error {
	root = filepath.Clean(root)
	if t.clientRoot != "" && t.clientRoot != root {
		return zerr.With(zerr.With(zerr.Wrap(ErrClientRootAlreadySet, t.String()), "current", t.clientRoot), "requested", root)
	}
	t.clientRoot = root
	return nil
}

// PodTargets returns the pod targets in the order they were set.
func (t *AggregateTarget) PodTargets() []DependencyTarget {
	return t.podTargets
}

// SetPodTargets replaces the pod targets. It fails if two targets share a name.
func (t *AggregateTarget) SetPodTargets(targets []DependencyTarget) error {
	seen := make(map[string]struct{}, len(targets))
	for _, pt := range targets {
		if _, ok := seen[pt.Name()]; ok {
			return zerr.With(zerr.With(zerr.Wrap(ErrDuplicatePodTarget, pt.Name()), "pod_target", pt.Name()), "target", t.Label())
		}
		seen[pt.Name()] = struct{}{}
	}
	t.podTargets = slices.Clone(targets)
	return nil
}

// UserProjectPath returns the path of the user project container, if any.
func (t *AggregateTarget) UserProjectPath() string {
	return t.userProjectPath
}

// UserTargetUUIDs returns the identifiers of the user targets integrated with this target.
func (t *AggregateTarget) UserTargetUUIDs() []string {
	return t.userTargetUUIDs
}

// SetUserProject records the user project and the identifiers of the targets in it
// that link this aggregate target. It fails if an identifier is repeated.
func (t *AggregateTarget) SetUserProject(path string, uuids []string) error {
	seen := make(map[string]struct{}, len(uuids))
	for _, id := range uuids {
		if _, ok := seen[id]; ok {
			return zerr.With(zerr.With(zerr.Wrap(ErrDuplicateUserTargetUUID, id), "uuid", id), "target", t.Label())
		}
		seen[id] = struct{}{}
	}
	t.userProjectPath = path
	t.userTargetUUIDs = slices.Clone(uuids)
	return nil
}

// UserBuildConfigurations returns the build configurations of the user project by type.
func (t *AggregateTarget) UserBuildConfigurations() map[string]BuildType {
	return t.buildConfigs
}

// SetUserBuildConfigurations records the build configurations of the user project.
func (t *AggregateTarget) SetUserBuildConfigurations(configs map[string]BuildType) {
	t.buildConfigs = configs
}

// XCConfigs returns the xcconfig handles keyed by build configuration name.
func (t *AggregateTarget) XCConfigs() map[string]*XCConfig {
	return t.xcconfigs
}

// SetXCConfigs replaces the xcconfig handles. The keys are the build configurations of the
// integration; callers asking for any other configuration get nothing back.
func (t *AggregateTarget) SetXCConfigs(configs map[string]*XCConfig) {
	t.xcconfigs = configs
}

// BuildConfigurationNames returns the keys of the xcconfig map, sorted.
func (t *AggregateTarget) BuildConfigurationNames() []string {
	names := make([]string, 0, len(t.xcconfigs))
	for name := range t.xcconfigs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PodTargetsForBuildConfiguration returns the pod targets linked in the named configuration,
// preserving their order.
func (t *AggregateTarget) PodTargetsForBuildConfiguration(name string) []DependencyTarget {
	var included []DependencyTarget
	for _, pt := range t.podTargets {
		if pt.IncludedInBuildConfiguration(name) {
			included = append(included, pt)
		}
	}
	return included
}

// Specs returns the specs of every pod target. A spec provided by several pod targets
// appears once per target.
func (t *AggregateTarget) Specs() []Specification {
	return collectSpecs(t.podTargets)
}

// SpecsByBuildConfiguration returns the specs linked in each build configuration.
// Every configuration with an xcconfig has an entry, empty if nothing is linked in it.
func (t *AggregateTarget) SpecsByBuildConfiguration() map[string][]Specification {
	result := make(map[string][]Specification, len(t.xcconfigs))
	for name := range t.xcconfigs {
		result[name] = collectSpecs(t.PodTargetsForBuildConfiguration(name))
	}
	return result
}

// SpecConsumers returns a consumer for each spec, bound to the platform of the target.
func (t *AggregateTarget) SpecConsumers() []Consumer {
	specs := t.Specs()
	platform := t.Platform()
	consumers := make([]Consumer, len(specs))
	for i, spec := range specs {
		consumers[i] = spec.Consumer(platform)
	}
	return consumers
}

// UsesSwift reports whether any pod target uses Swift.
func (t *AggregateTarget) UsesSwift() bool {
	return slices.ContainsFunc(t.podTargets, DependencyTarget.UsesSwift)
}

// UserTargets resolves the user targets in project. When project is nil the project is
// opened with loader. Without a user project path no targets are returned.
//
// A UUID with no object in the project means the project changed since the UUIDs were
// recorded, and resolution fails with ErrUserTargetNotFound.
func (t *AggregateTarget) UserTargets(project Project, loader ProjectLoader) ([]NativeTarget, error) {
	if t.userProjectPath == "" {
		return []NativeTarget{}, nil
	}

	if project == nil {
		if loader == nil {
			return nil, zerr.With(zerr.Wrap(ErrNoProjectLoader, t.String()), "project", t.userProjectPath)
		}
		p, err := loader.Open(t.userProjectPath)
		if err != nil {
			return nil, err
		}
		project = p
	}

	targets := make([]NativeTarget, 0, len(t.userTargetUUIDs))
	for _, id := range t.userTargetUUIDs {
		native, ok := project.ObjectByUUID(id)
		if !ok {
			msg := fmt.Sprintf("unable to find the target with the `%s` UUID for the %s integration library", id, t)
			return nil, zerr.With(zerr.With(zerr.Wrap(ErrUserTargetNotFound, msg), "uuid", id), "target", t.Label())
		}
		targets = append(targets, native)
	}
	return targets, nil
}

// ProductModuleName returns the label as a C99 extended identifier. Labels are never
// empty once loaded; an empty one yields "_".
func (t *AggregateTarget) ProductModuleName() string {
	return C99ExtIdentifier(t.Label())
}

// ProductName returns the name of the built product.
func (t *AggregateTarget) ProductName() string {
	if t.RequiresFrameworks() {
		return t.ProductModuleName() + ".framework"
	}
	return "lib" + t.Label() + ".a"
}

// SupportFilesDir returns the directory of the generated support files.
func (t *AggregateTarget) SupportFilesDir() string {
	return t.sandbox.TargetSupportFilesDir(t.Label())
}

// supportFile returns a path inside the support files directory.
func (t *AggregateTarget) supportFile(name string) string {
	return filepath.Join(t.SupportFilesDir(), name)
}

// XCConfigPath returns the path of the xcconfig file for a build configuration,
// or of the configuration-independent file when configuration is empty.
func (t *AggregateTarget) XCConfigPath(configuration string) string {
	if configuration == "" {
		return t.supportFile(t.Label() + ".xcconfig")
	}
	return t.supportFile(t.Label() + "." + configurationSuffix(configuration) + ".xcconfig")
}

// AcknowledgementsBasepath returns the acknowledgements path without extension.
func (t *AggregateTarget) AcknowledgementsBasepath() string {
	return t.supportFile(t.Label() + "-acknowledgements")
}

// CopyResourcesScriptPath returns the path of the script copying pod resources.
func (t *AggregateTarget) CopyResourcesScriptPath() string {
	return t.supportFile(t.Label() + "-resources.sh")
}

// EmbedFrameworksScriptPath returns the path of the script embedding pod frameworks.
func (t *AggregateTarget) EmbedFrameworksScriptPath() string {
	return t.supportFile(t.Label() + "-frameworks.sh")
}

// BridgeSupportPath returns the path of the BridgeSupport metadata file.
func (t *AggregateTarget) BridgeSupportPath() string {
	return t.supportFile(t.Label() + ".bridgesupport")
}

// InfoPlistPath returns the path of the framework Info.plist.
func (t *AggregateTarget) InfoPlistPath() string {
	return t.supportFile("Info.plist")
}

// UmbrellaHeaderPath returns the path of the framework umbrella header.
func (t *AggregateTarget) UmbrellaHeaderPath() string {
	return t.supportFile(t.Label() + "-umbrella.h")
}

// ModuleMapPath returns the path of the module map.
func (t *AggregateTarget) ModuleMapPath() string {
	return t.supportFile(t.Label() + ".modulemap")
}

// PrefixHeaderPath returns the path of the prefix header.
func (t *AggregateTarget) PrefixHeaderPath() string {
	return t.supportFile(t.Label() + "-prefix.pch")
}

// DummySourcePath returns the path of the source file that makes the target non-empty.
func (t *AggregateTarget) DummySourcePath() string {
	return t.supportFile(t.Label() + "-dummy.m")
}

// RelativeToSourceRoot returns path relative to the client root.
func (t *AggregateTarget) RelativeToSourceRoot(path string) (string, error) {
	if t.clientRoot == "" {
		return "", zerr.With(zerr.Wrap(ErrClientRootNotSet, t.String()), "path", path)
	}
	return RelativePath(t.clientRoot, path)
}

// RelativePodsRoot returns the sandbox root relative to the client root, prefixed with
// ${SRCROOT}.
func (t *AggregateTarget) RelativePodsRoot() (string, error) {
	return t.sourceRootRelative(t.sandbox.Root())
}

// XCConfigRelativePath returns the xcconfig path of a configuration relative to the client
// root. Xcode resolves base configuration references against the project, so no
// ${SRCROOT} prefix is added.
func (t *AggregateTarget) XCConfigRelativePath(configuration string) (string, error) {
	return t.RelativeToSourceRoot(t.XCConfigPath(configuration))
}

// CopyResourcesScriptRelativePath returns the copy resources script path for a build phase.
func (t *AggregateTarget) CopyResourcesScriptRelativePath() (string, error) {
	return t.sourceRootRelative(t.CopyResourcesScriptPath())
}

// EmbedFrameworksScriptRelativePath returns the embed frameworks script path for a build phase.
func (t *AggregateTarget) EmbedFrameworksScriptRelativePath() (string, error) {
	return t.sourceRootRelative(t.EmbedFrameworksScriptPath())
}

func (t *AggregateTarget) sourceRootRelative(path string) (string, error) {
	rel, err := t.RelativeToSourceRoot(path)
	if err != nil {
		return "", err
	}
	return WithSourceRoot(rel), nil
}

func collectSpecs(targets []DependencyTarget) []Specification {
	specs := []Specification{}
	for _, pt := range targets {
		specs = append(specs, pt.Specs()...)
	}
	return specs
}
