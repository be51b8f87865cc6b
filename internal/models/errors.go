package models

import "fmt"

// ValidationError reports bad or missing caller input. It is recoverable: the
// caller can fix the payload and resubmit.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// SchemaMismatchError reports a disagreement between an aligned feature
// vector and the trained schema. It signals artifact/schema drift between
// training and serving, not bad input, and is fatal for the request unless
// the tolerate-shape-mismatch fallback is enabled.
type SchemaMismatchError struct {
	Component string
	Want      int
	Got       int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch in %s: trained feature count %d, got vector of length %d",
		e.Component, e.Want, e.Got)
}

// ArtifactLoadError reports that a classifier or metadata artifact failed to
// load at startup. It is absorbed into graceful degradation: the registry
// logs it and installs a heuristic fallback rather than refusing traffic.
type ArtifactLoadError struct {
	Path string
	Err  error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("loading artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error { return e.Err }

// PolicyConfigError reports a malformed policy document. The engine falls
// back to the built-in default policy and logs a warning; the error is never
// surfaced to prediction callers.
type PolicyConfigError struct {
	Path string
	Err  error
}

func (e *PolicyConfigError) Error() string {
	return fmt.Sprintf("loading policy %s: %v", e.Path, e.Err)
}

func (e *PolicyConfigError) Unwrap() error { return e.Err }
