package services

import (
	"errors"
	"fmt"
)

// ErrAlreadyExists is returned by store inserts when a row with the same
// primary key is already present (e.g. two concurrent first-time
// resolutions both generating content for the same course).
var ErrAlreadyExists = errors.New("record already exists")

// DataSourceError wraps a content store read failure. It aborts resolution
// and is surfaced to the caller; it is never confused with "not enrolled".
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("content store read failed during %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// PersistenceError wraps a content store write failure during completion
// tracking or content persistence. The caller must not assume progress
// was updated.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("content store write failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// GenerationError reports a personalized-generation failure for a single
// module. It is always recovered locally by falling back to template
// content and never surfaces to the caller.
type GenerationError struct {
	ModuleTitle string
	Err         error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("content generation failed for module %q: %v", e.ModuleTitle, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
