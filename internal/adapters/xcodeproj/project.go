// Package xcodeproj loads user project containers whose project.pbxproj has been
// converted to its JSON form (plutil -convert json).
package xcodeproj

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/zerr"
)

// ProjectFilename is the file inside a project container that holds the object graph.
const ProjectFilename = "project.pbxproj"

// Object ISAs that represent buildable targets.
const (
	ISANativeTarget    = "PBXNativeTarget"
	ISAAggregateTarget = "PBXAggregateTarget"
	ISALegacyTarget    = "PBXLegacyTarget"
)

var (
	_ domain.ProjectLoader = (*Loader)(nil)
	_ domain.Project       = (*Project)(nil)
	_ domain.NativeTarget  = (*Target)(nil)
)

// document mirrors the top level of a project.pbxproj file.
type document struct {
	ArchiveVersion string            `json:"archiveVersion"`
	ObjectVersion  string            `json:"objectVersion"`
	RootObject     string            `json:"rootObject"`
	Objects        map[string]object `json:"objects"`
}

type object struct {
	ISA         string `json:"isa"`
	Name        string `json:"name"`
	ProductName string `json:"productName"`
	ProductType string `json:"productType"`
}

// Loader opens project containers from disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Open reads the project at path. path may name the container directory or the
// project.pbxproj file itself.
func (l *Loader) Open(path string) (domain.Project, error) {
	file := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		file = filepath.Join(path, ProjectFilename)
	}

	data, err := os.ReadFile(file) //nolint:gosec // path comes from the manifest
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project"), "path", file)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project"), "path", file)
	}
	if doc.Objects == nil {
		return nil, zerr.With(zerr.New("project has no objects"), "path", file)
	}

	project := &Project{path: path, targets: make(map[string]*Target)}
	for uuid, obj := range doc.Objects {
		switch obj.ISA {
		case ISANativeTarget, ISAAggregateTarget, ISALegacyTarget:
			project.targets[uuid] = &Target{
				uuid:        uuid,
				name:        obj.Name,
				isa:         obj.ISA,
				productType: obj.ProductType,
			}
		}
	}
	return project, nil
}

// Project is a snapshot of the targets of one project container.
type Project struct {
	path    string
	targets map[string]*Target
}

// Path returns the location the project was opened from.
func (p *Project) Path() string { return p.path }

// ObjectByUUID returns the target with the given identifier. Objects that are not
// targets are never returned.
func (p *Project) ObjectByUUID(uuid string) (domain.NativeTarget, bool) {
	t, ok := p.targets[uuid]
	if !ok {
		return nil, false
	}
	return t, true
}

// Len returns the number of targets in the project.
func (p *Project) Len() int { return len(p.targets) }

// Target is a target object of a project.
type Target struct {
	uuid        string
	name        string
	isa         string
	productType string
}

// UUID returns the object identifier.
func (t *Target) UUID() string { return t.uuid }

// Name returns the target name.
func (t *Target) Name() string { return t.name }

// ISA returns the object class, e.g. PBXNativeTarget.
func (t *Target) ISA() string { return t.isa }

// ProductType returns the product type identifier, empty for aggregate targets.
func (t *Target) ProductType() string { return t.productType }
