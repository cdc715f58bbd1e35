// Package app implements the application layer for podlink.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/podlink/internal/core/ports"
	"go.trai.ch/podlink/internal/engine/integrator"
	"go.trai.ch/zerr"
)

// DefaultStateDir is the state directory, relative to the manifest directory, used when
// none is given.
const DefaultStateDir = ".podlink/state"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	integrator   *integrator.Integrator
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, integ *integrator.Integrator, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		integrator:   integ,
		logger:       log,
	}
}

// Options holds the settings shared by every command.
type Options struct {
	// ConfigPath is the manifest file or the directory containing it. Empty means ".".
	ConfigPath string
	// StateDir overrides the integration state directory.
	StateDir string
	// Parallelism bounds the number of targets processed at once. Zero means GOMAXPROCS.
	Parallelism int
	// DryRun skips recording fingerprints.
	DryRun bool
}

// Report computes the integration report of the targets with the given labels, or of
// every target when labels is empty.
func (a *App) Report(ctx context.Context, labels []string, opts Options) ([]*domain.IntegrationReport, error) {
	ws, targets, err := a.load(labels, opts)
	if err != nil {
		return nil, err
	}

	reports, err := a.integrator.Report(ctx, targets, integrator.Options{
		StateDir:    stateDir(ws, opts),
		Parallelism: opts.Parallelism,
		Record:      !opts.DryRun,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "integration failed")
	}

	for _, r := range reports {
		if r.Changed {
			a.logger.Info(fmt.Sprintf("%s: integration changed (%s)", r.Label, r.Fingerprint))
		} else {
			a.logger.Info(fmt.Sprintf("%s: up to date", r.Label))
		}
	}
	return reports, nil
}

// Targets resolves the user targets of the targets with the given labels, or of every
// target when labels is empty.
func (a *App) Targets(ctx context.Context, labels []string, opts Options) ([]integrator.Resolution, error) {
	_, targets, err := a.load(labels, opts)
	if err != nil {
		return nil, err
	}

	resolutions, err := a.integrator.ResolveUserTargets(ctx, targets, opts.Parallelism)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve user targets")
	}
	return resolutions, nil
}

func (a *App) load(labels []string, opts Options) (*domain.Workspace, []*domain.AggregateTarget, error) {
	path := opts.ConfigPath
	if path == "" {
		path = "."
	}

	ws, err := a.configLoader.Load(path)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	targets, err := ws.Select(labels)
	if err != nil {
		return nil, nil, err
	}
	if len(targets) == 0 {
		a.logger.Warn("manifest declares no aggregate targets")
	}
	return ws, targets, nil
}

func stateDir(ws *domain.Workspace, opts Options) string {
	if opts.StateDir != "" {
		return opts.StateDir
	}
	return filepath.Join(filepath.Dir(ws.ManifestPath), DefaultStateDir)
}
