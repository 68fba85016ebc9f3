// Package status exports errors produced by the core package.
//
// This is the closed error taxonomy of the tag subsystem: callers and
// host-facing bindings branch on these sentinels with errors.Is and must not
// invent new kinds.
package status

import (
	"github.com/dsgibbons/lance/pkg/errors"
)

var (
	// ErrInvalidRef indicates that a tag name does not conform to the ref
	// naming rules (see core.CheckValidRef)
	ErrInvalidRef = errors.New("invalid ref: ref must conform to git ref format rules")

	// ErrVersionNotFound indicates that the target version is absent from
	// the dataset's committed history
	ErrVersionNotFound = errors.New("version not found")

	// ErrNotFound indicates a dataset-level resource could not be resolved
	ErrNotFound = errors.New("not found")

	// ErrRefConflict indicates an attempt to create a tag under a name that
	// already exists
	ErrRefConflict = errors.New("ref conflict: tag already exists")

	// ErrRefNotFound indicates an operation on a tag that does not exist
	ErrRefNotFound = errors.New("ref not found")

	// ErrIO indicates an underlying storage transport or operation failure
	ErrIO = errors.New("storage I/O failure")

	// ErrParse indicates a persisted tag object is not valid UTF-8 JSON
	// matching the tag contents record
	ErrParse = errors.New("tag contents could not be parsed")
)
