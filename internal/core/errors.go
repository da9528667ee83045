package core

import "errors"

var (
	// ErrInvalidProcess is returned for a process with a missing id, a negative
	// arrival time or a non-positive burst time.
	ErrInvalidProcess = errors.New("invalid process")
	// ErrInvalidParameter is returned for unknown policy names and bad policy
	// or workload parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidSegment means a policy tried to emit an overlapping or empty
	// timeline segment. It indicates an engine bug, not bad input.
	ErrInvalidSegment = errors.New("invalid timeline segment")
)
