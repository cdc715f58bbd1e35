package integrator

import (
	"sync"

	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/zerr"
)

// projectCache opens each project path at most once. Load errors are returned
// unchanged to every caller asking for that path.
type projectCache struct {
	loader domain.ProjectLoader

	mu      sync.Mutex
	entries map[string]*projectEntry
}

type projectEntry struct {
	once    sync.Once
	project domain.Project
	err     error
}

func newProjectCache(loader domain.ProjectLoader) *projectCache {
	return &projectCache{loader: loader, entries: make(map[string]*projectEntry)}
}

func (c *projectCache) open(path string) (domain.Project, error) {
	if c.loader == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoProjectLoader, "cannot open user project"), "project", path)
	}

	c.mu.Lock()
	entry, ok := c.entries[path]
	if !ok {
		entry = &projectEntry{}
		c.entries[path] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.project, entry.err = c.loader.Open(path)
	})
	return entry.project, entry.err
}
