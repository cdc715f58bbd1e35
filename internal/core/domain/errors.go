package domain

import "go.trai.ch/zerr"

var (
	// ErrClientRootNotSet is returned when a path relative to the client root is requested
	// before the client root has been recorded on the aggregate target.
	ErrClientRootNotSet = zerr.New("client root not set")

	// ErrClientRootAlreadySet is returned when the client root is set a second time to a different path.
	ErrClientRootAlreadySet = zerr.New("client root already set")

	// ErrDuplicatePodTarget is returned when two pod targets with the same name are added to an aggregate target.
	ErrDuplicatePodTarget = zerr.New("duplicate pod target")

	// ErrDuplicateUserTargetUUID is returned when a user target UUID is recorded more than once.
	ErrDuplicateUserTargetUUID = zerr.New("duplicate user target uuid")

	// ErrUserTargetNotFound is returned when a recorded user target UUID has no object in the user project.
	ErrUserTargetNotFound = zerr.New("user target not found")

	// ErrNoProjectLoader is returned when user targets must be resolved but neither a project
	// nor a project loader was supplied.
	ErrNoProjectLoader = zerr.New("no project loader")

	// ErrAggregateTargetNotFound is returned when a requested aggregate target label does not exist.
	ErrAggregateTargetNotFound = zerr.New("aggregate target not found")

	// ErrDuplicateAggregateTarget is returned when a manifest declares the same label twice.
	ErrDuplicateAggregateTarget = zerr.New("duplicate aggregate target")

	// ErrUnknownPodTarget is returned when an aggregate target references a pod target that is not declared.
	ErrUnknownPodTarget = zerr.New("unknown pod target")

	// ErrInvalidManifest is returned when the integration manifest is structurally invalid.
	ErrInvalidManifest = zerr.New("invalid manifest")
)
