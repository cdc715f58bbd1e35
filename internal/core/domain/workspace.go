package domain

import "go.trai.ch/zerr"

// Workspace is the set of aggregate targets declared by one integration manifest.
type Workspace struct {
	// ManifestPath is the absolute path of the manifest the workspace was read from.
	ManifestPath string
	Targets      []*AggregateTarget
}

// Select returns the targets with the given labels, in the order requested.
// With no labels every target is returned.
func (w *Workspace) Select(labels []string) ([]*AggregateTarget, error) {
	if len(labels) == 0 {
		return w.Targets, nil
	}

	byLabel := make(map[string]*AggregateTarget, len(w.Targets))
	for _, t := range w.Targets {
		byLabel[t.Label()] = t
	}

	selected := make([]*AggregateTarget, 0, len(labels))
	for _, label := range labels {
		t, ok := byLabel[label]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrAggregateTargetNotFound, label), "target", label)
		}
		selected = append(selected, t)
	}
	return selected, nil
}
