package domain

import (
	"slices"
	"strings"
)

// PodTarget is a DependencyTarget built from one pod and the specs it provides.
type PodTarget struct {
	PodName InternedString
	// Configurations whitelists the build configurations the pod is linked for.
	// An empty whitelist links it in every configuration.
	Configurations []string
	Swift          bool
	Specifications []*Spec
}

var _ DependencyTarget = (*PodTarget)(nil)

// Name implements DependencyTarget.
func (t *PodTarget) Name() string { return t.PodName.String() }

// IncludedInBuildConfiguration implements DependencyTarget.
func (t *PodTarget) IncludedInBuildConfiguration(name string) bool {
	if len(t.Configurations) == 0 {
		return true
	}
	return slices.ContainsFunc(t.Configurations, func(c string) bool {
		return strings.EqualFold(c, name)
	})
}

// Specs implements DependencyTarget.
func (t *PodTarget) Specs() []Specification {
	specs := make([]Specification, len(t.Specifications))
	for i, s := range t.Specifications {
		specs[i] = s
	}
	return specs
}

// UsesSwift implements DependencyTarget.
func (t *PodTarget) UsesSwift() bool { return t.Swift }

// SpecAttributes are the linkage attributes a spec declares, either for every platform
// or for a single one.
type SpecAttributes struct {
	Frameworks []string
	Libraries  []string
	Resources  []string
}

// Spec is a Specification with common and per-platform attributes.
type Spec struct {
	SpecName InternedString
	Common   SpecAttributes
	// PerPlatform holds attributes keyed by lower-case platform name.
	PerPlatform map[string]SpecAttributes
}

var _ Specification = (*Spec)(nil)

// Name implements Specification.
func (s *Spec) Name() string { return s.SpecName.String() }

// Consumer implements Specification by merging the common attributes with those of platform.
func (s *Spec) Consumer(platform Platform) Consumer {
	attrs := SpecAttributes{
		Frameworks: slices.Clone(s.Common.Frameworks),
		Libraries:  slices.Clone(s.Common.Libraries),
		Resources:  slices.Clone(s.Common.Resources),
	}
	if specific, ok := s.PerPlatform[strings.ToLower(platform.Name)]; ok {
		attrs.Frameworks = append(attrs.Frameworks, specific.Frameworks...)
		attrs.Libraries = append(attrs.Libraries, specific.Libraries...)
		attrs.Resources = append(attrs.Resources, specific.Resources...)
	}
	return &specConsumer{spec: s.SpecName, platform: platform, attrs: attrs}
}

type specConsumer struct {
	spec     InternedString
	platform Platform
	attrs    SpecAttributes
}

func (c *specConsumer) SpecName() string     { return c.spec.String() }
func (c *specConsumer) Platform() Platform   { return c.platform }
func (c *specConsumer) Frameworks() []string { return c.attrs.Frameworks }
func (c *specConsumer) Libraries() []string  { return c.attrs.Libraries }
func (c *specConsumer) Resources() []string  { return c.attrs.Resources }
