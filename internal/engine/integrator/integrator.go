// Package integrator integrates the aggregate targets of a workspace concurrently.
package integrator

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/podlink/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// TargetStatus represents the progress of one aggregate target.
type TargetStatus string

const (
	// StatusPending indicates the target is waiting to be integrated.
	StatusPending TargetStatus = "Pending"
	// StatusRunning indicates the target is being integrated.
	StatusRunning TargetStatus = "Running"
	// StatusCompleted indicates the target was integrated and its fingerprint changed.
	StatusCompleted TargetStatus = "Completed"
	// StatusUnchanged indicates the target was integrated with the fingerprint of the last run.
	StatusUnchanged TargetStatus = "Unchanged"
	// StatusFailed indicates the integration failed.
	StatusFailed TargetStatus = "Failed"
)

// Options configures a report run.
type Options struct {
	// StateDir is the directory of the integration state store.
	StateDir string
	// Parallelism bounds the number of targets integrated at once. Zero means GOMAXPROCS.
	Parallelism int
	// Record persists the new fingerprints. Without it the run is read-only.
	Record bool
}

// Resolution is the list of user targets an aggregate target is integrated into.
type Resolution struct {
	Target      *domain.AggregateTarget
	UserTargets []domain.NativeTarget
}

// Integrator computes integration reports and resolves user targets.
type Integrator struct {
	hasher ports.Hasher
	store  ports.IntegrationStateStore
	loader domain.ProjectLoader
	tracer ports.Tracer

	mu     sync.RWMutex
	status map[string]TargetStatus
}

// NewIntegrator creates a new Integrator.
func NewIntegrator(
	hasher ports.Hasher,
	store ports.IntegrationStateStore,
	loader domain.ProjectLoader,
	tracer ports.Tracer,
) *Integrator {
	return &Integrator{
		hasher: hasher,
		store:  store,
		loader: loader,
		tracer: tracer,
		status: make(map[string]TargetStatus),
	}
}

// Status returns the status of the target with the given label in the last run.
func (i *Integrator) Status(label string) TargetStatus {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.status[label]
}

func (i *Integrator) setStatus(label string, status TargetStatus) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.status[label] = status
}

func (i *Integrator) reset(targets []*domain.AggregateTarget) {
	i.mu.Lock()
	defer i.mu.Unlock()
	clear(i.status)
	for _, t := range targets {
		i.status[t.Label()] = StatusPending
	}
}

// Report integrates every target and returns their reports in the order of targets.
// Each target is handled by exactly one goroutine. The first failure cancels the
// targets that have not started.
func (i *Integrator) Report(
	ctx context.Context,
	targets []*domain.AggregateTarget,
	opts Options,
) ([]*domain.IntegrationReport, error) {
	i.reset(targets)

	reports := make([]*domain.IntegrationReport, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(opts.Parallelism))

	for idx, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := i.integrate(gctx, target, opts)
			if err != nil {
				i.setStatus(target.Label(), StatusFailed)
				return err
			}
			reports[idx] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (i *Integrator) integrate(
	ctx context.Context,
	target *domain.AggregateTarget,
	opts Options,
) (*domain.IntegrationReport, error) {
	i.setStatus(target.Label(), StatusRunning)

	_, span := i.tracer.Start(ctx, "integrate",
		ports.WithAttribute("target", target.Label()),
		ports.WithAttribute("pod_targets", len(target.PodTargets())),
	)
	defer span.End()

	report, err := domain.NewIntegrationReport(target)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	fingerprint, err := i.hasher.ComputeReportHash(report, []string{target.SupportFilesDir()})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	report.Fingerprint = fingerprint

	previous, err := i.store.Get(opts.StateDir, target.Label())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	report.Changed = previous == nil || previous.Fingerprint != fingerprint
	span.SetAttribute("changed", report.Changed)

	if opts.Record && report.Changed {
		state := domain.IntegrationState{
			Label:       target.Label(),
			Fingerprint: fingerprint,
			Timestamp:   time.Now(),
		}
		if err := i.store.Put(opts.StateDir, state); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	if report.Changed {
		i.setStatus(target.Label(), StatusCompleted)
	} else {
		i.setStatus(target.Label(), StatusUnchanged)
	}
	return report, nil
}

// ResolveUserTargets resolves the user targets of every target. Each project is
// opened once per call even when several targets share it.
func (i *Integrator) ResolveUserTargets(
	ctx context.Context,
	targets []*domain.AggregateTarget,
	parallel int,
) ([]Resolution, error) {
	i.reset(targets)

	projects := newProjectCache(i.loader)
	resolutions := make([]Resolution, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(parallel))

	for idx, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			i.setStatus(target.Label(), StatusRunning)

			_, span := i.tracer.Start(gctx, "resolve_user_targets",
				ports.WithAttribute("target", target.Label()),
				ports.WithAttribute("project", target.UserProjectPath()),
			)
			defer span.End()

			natives, err := resolve(target, projects)
			if err != nil {
				span.RecordError(err)
				i.setStatus(target.Label(), StatusFailed)
				return err
			}

			span.SetAttribute("user_targets", len(natives))
			resolutions[idx] = Resolution{Target: target, UserTargets: natives}
			i.setStatus(target.Label(), StatusCompleted)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolutions, nil
}

func resolve(target *domain.AggregateTarget, projects *projectCache) ([]domain.NativeTarget, error) {
	path := target.UserProjectPath()
	if path == "" {
		return target.UserTargets(nil, nil)
	}
	project, err := projects.open(path)
	if err != nil {
		return nil, err
	}
	return target.UserTargets(project, nil)
}

func parallelism(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
