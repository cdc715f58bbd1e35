package domain

import (
	"maps"
	"slices"
	"time"
)

// IntegrationReport summarises how an aggregate target is wired into the user project.
type IntegrationReport struct {
	Label                 string                `yaml:"label"`
	ProductModuleName     string                `yaml:"product_module_name"`
	ProductName           string                `yaml:"product_name"`
	Platform              string                `yaml:"platform"`
	UsesSwift             bool                  `yaml:"uses_swift"`
	PodsRoot              string                `yaml:"pods_root"`
	Acknowledgements      string                `yaml:"acknowledgements"`
	CopyResourcesScript   string                `yaml:"copy_resources_script"`
	EmbedFrameworksScript string                `yaml:"embed_frameworks_script"`
	Configurations        []ConfigurationReport `yaml:"configurations"`
	Fingerprint           string                `yaml:"fingerprint,omitempty"`
	Changed               bool                  `yaml:"changed"`
}

// ConfigurationReport is the part of an IntegrationReport specific to one build configuration.
type ConfigurationReport struct {
	Name          string            `yaml:"name"`
	Type          BuildType         `yaml:"type,omitempty"`
	XCConfig      string            `yaml:"xcconfig"`
	BuildSettings map[string]string `yaml:"build_settings,omitempty"`
	PodTargets    []string          `yaml:"pod_targets"`
	Specs         []string          `yaml:"specs"`
	Frameworks    []string          `yaml:"frameworks,omitempty"`
}

// NewIntegrationReport derives the report of t. The client root must be set.
func NewIntegrationReport(t *AggregateTarget) (*IntegrationReport, error) {
	podsRoot, err := t.RelativePodsRoot()
	if err != nil {
		return nil, err
	}
	resources, err := t.CopyResourcesScriptRelativePath()
	if err != nil {
		return nil, err
	}
	frameworks, err := t.EmbedFrameworksScriptRelativePath()
	if err != nil {
		return nil, err
	}
	acknowledgements, err := t.RelativeToSourceRoot(t.AcknowledgementsBasepath())
	if err != nil {
		return nil, err
	}

	report := &IntegrationReport{
		Label:                 t.Label(),
		ProductModuleName:     t.ProductModuleName(),
		ProductName:           t.ProductName(),
		Platform:              t.Platform().String(),
		UsesSwift:             t.UsesSwift(),
		PodsRoot:              podsRoot,
		Acknowledgements:      acknowledgements,
		CopyResourcesScript:   resources,
		EmbedFrameworksScript: frameworks,
	}

	frameworksBySpec := make(map[string][]string)
	for _, consumer := range t.SpecConsumers() {
		frameworksBySpec[consumer.SpecName()] = append(frameworksBySpec[consumer.SpecName()], consumer.Frameworks()...)
	}

	specsByConfig := t.SpecsByBuildConfiguration()
	xcconfigs := t.XCConfigs()
	for _, name := range t.BuildConfigurationNames() {
		xcconfig, err := t.XCConfigRelativePath(name)
		if err != nil {
			return nil, err
		}
		cfg := ConfigurationReport{
			Name:       name,
			Type:       t.UserBuildConfigurations()[name],
			XCConfig:   xcconfig,
			PodTargets: []string{},
			Specs:      []string{},
		}
		if xc := xcconfigs[name]; xc != nil && len(xc.Settings) > 0 {
			cfg.BuildSettings = maps.Clone(xc.Settings)
		}
		for _, pt := range t.PodTargetsForBuildConfiguration(name) {
			cfg.PodTargets = append(cfg.PodTargets, pt.Name())
		}
		for _, spec := range specsByConfig[name] {
			cfg.Specs = append(cfg.Specs, spec.Name())
			cfg.Frameworks = append(cfg.Frameworks, frameworksBySpec[spec.Name()]...)
		}
		// Several specs may link the same system framework.
		slices.Sort(cfg.Frameworks)
		cfg.Frameworks = slices.Compact(cfg.Frameworks)
		report.Configurations = append(report.Configurations, cfg)
	}

	return report, nil
}

// IntegrationState is the persisted fingerprint of the last report of an aggregate target.
type IntegrationState struct {
	Label       string    `json:"label,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
