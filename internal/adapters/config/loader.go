// Package config provides the integration manifest loader for podlink.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/podlink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	defaultSandbox  = "Pods"
	defaultPlatform = "ios"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// SandboxFactory creates the sandbox rooted at an absolute path.
type SandboxFactory func(root string) domain.Sandbox

// Loader implements ports.ConfigLoader using a YAML manifest.
type Loader struct {
	Logger     ports.Logger
	NewSandbox SandboxFactory
}

// NewLoader creates a new manifest loader.
func NewLoader(log ports.Logger, newSandbox SandboxFactory) *Loader {
	return &Loader{Logger: log, NewSandbox: newSandbox}
}

// Load reads the manifest at path, or the default manifest inside path when it is a
// directory, and returns its aggregate targets fully populated.
func (l *Loader) Load(path string) (*domain.Workspace, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFilename)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve manifest path"), "path", path)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", absPath)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", absPath)
	}

	targets, err := l.build(&manifest, filepath.Dir(absPath))
	if err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	return &domain.Workspace{ManifestPath: absPath, Targets: targets}, nil
}

func (l *Loader) build(m *Manifest, dir string) ([]*domain.AggregateTarget, error) {
	sandbox := l.NewSandbox(resolvePath(dir, m.Sandbox, defaultSandbox))
	clientRoot := resolvePath(dir, m.ClientRoot, ".")
	buildConfigs := buildConfigurations(m.BuildConfigurations)

	pods, err := buildPodTargets(m.Pods)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool, len(pods))
	labels := make(map[string]bool, len(m.Targets))
	targets := make([]*domain.AggregateTarget, 0, len(m.Targets))

	for i := range m.Targets {
		dto := &m.Targets[i]
		if dto.Label == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "target without label"), "index", i)
		}
		if labels[dto.Label] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateAggregateTarget, dto.Label), "target", dto.Label)
		}
		labels[dto.Label] = true

		definition := &domain.Definition{
			Name:       dto.Label,
			OnPlatform: platform(dto.Platform, m.Platform),
			Frameworks: dto.Frameworks,
		}
		target := domain.NewAggregateTarget(definition, sandbox)

		if err := target.SetClientRoot(clientRoot); err != nil {
			return nil, err
		}

		podTargets := make([]domain.DependencyTarget, 0, len(dto.Pods))
		for _, name := range dto.Pods {
			pt, ok := pods[name]
			if !ok {
				return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownPodTarget, name), "pod", name), "target", dto.Label)
			}
			used[name] = true
			podTargets = append(podTargets, pt)
		}
		if err := target.SetPodTargets(podTargets); err != nil {
			return nil, err
		}

		if project := firstNonEmpty(dto.Project, m.Project); project != "" {
			if err := target.SetUserProject(resolvePath(dir, project, ""), dto.UserTargets); err != nil {
				return nil, err
			}
		} else if len(dto.UserTargets) > 0 {
			l.Logger.Warn(fmt.Sprintf("target %s lists user targets but no project; they will not be resolved", dto.Label))
		}

		target.SetUserBuildConfigurations(buildConfigs)
		target.SetXCConfigs(xcconfigs(target, buildConfigs, dto.BuildSettings))

		targets = append(targets, target)
	}

	for _, name := range sortedKeys(pods) {
		if !used[name] {
			l.Logger.Warn(fmt.Sprintf("pod %s is not linked by any target", name))
		}
	}

	return targets, nil
}

func buildPodTargets(dtos map[string]PodDTO) (map[string]*domain.PodTarget, error) {
	pods := make(map[string]*domain.PodTarget, len(dtos))
	for name, dto := range dtos {
		pt := &domain.PodTarget{
			PodName:        domain.NewInternedString(name),
			Configurations: dto.Configurations,
			Swift:          dto.Swift,
		}
		for _, spec := range dto.Specs {
			if spec.Name == "" {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "spec without name"), "pod", name)
			}
			pt.Specifications = append(pt.Specifications, buildSpec(spec))
		}
		pods[name] = pt
	}
	return pods, nil
}

func buildSpec(dto SpecDTO) *domain.Spec {
	spec := &domain.Spec{
		SpecName: domain.NewInternedString(dto.Name),
		Common:   attributes(dto.AttributesDTO),
	}
	for name, attrs := range dto.platformAttributes() {
		if attrs == nil {
			continue
		}
		if spec.PerPlatform == nil {
			spec.PerPlatform = make(map[string]domain.SpecAttributes)
		}
		spec.PerPlatform[name] = attributes(*attrs)
	}
	return spec
}

func attributes(dto AttributesDTO) domain.SpecAttributes {
	return domain.SpecAttributes{
		Frameworks: dto.Frameworks,
		Libraries:  dto.Libraries,
		Resources:  dto.Resources,
	}
}

func buildConfigurations(raw map[string]string) map[string]domain.BuildType {
	if len(raw) == 0 {
		return map[string]domain.BuildType{
			"Debug":   domain.BuildTypeDebug,
			"Release": domain.BuildTypeRelease,
		}
	}
	configs := make(map[string]domain.BuildType, len(raw))
	for name, kind := range raw {
		configs[name] = domain.NormalizeBuildType(kind)
	}
	return configs
}

func xcconfigs(
	target *domain.AggregateTarget,
	configs map[string]domain.BuildType,
	settings map[string]string,
) map[string]*domain.XCConfig {
	result := make(map[string]*domain.XCConfig, len(configs))
	for name := range configs {
		result[name] = &domain.XCConfig{
			Configuration: name,
			Path:          target.XCConfigPath(name),
			Settings:      settings,
		}
	}
	return result
}

func platform(dto, fallback *PlatformDTO) domain.Platform {
	if dto == nil {
		dto = fallback
	}
	if dto == nil || dto.Name == "" {
		return domain.Platform{Name: defaultPlatform}
	}
	return domain.Platform{Name: dto.Name, DeploymentTarget: dto.DeploymentTarget}
}

// resolvePath makes p absolute against dir, falling back to def when p is empty.
// An empty result stays empty.
func resolvePath(dir, p, def string) string {
	if p == "" {
		p = def
	}
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
