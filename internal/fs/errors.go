package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"strings"
)

// Sentinel errors classifying every filesystem failure the application can
// surface. The state engine matches on these with errors.Is and turns them
// into status messages; nothing below this package inspects syscall errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrPermission  = errors.New("permission denied")
	ErrExists      = errors.New("already exists")
	ErrInvalidName = errors.New("invalid name")
	ErrIO          = errors.New("i/o error")
)

// OpError records a failed filesystem operation together with its
// classification.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match OpError against the sentinel taxonomy.
func (e *OpError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

func classify(err error) error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, iofs.ErrPermission):
		return ErrPermission
	case errors.Is(err, iofs.ErrExist):
		return ErrExists
	default:
		return ErrIO
	}
}

func wrapErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Path: path, Kind: classify(err), Err: err}
}

// ValidateName rejects names unusable as a single path component: empty
// strings, separators, and the relative-path dot entries.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return &OpError{Op: "validate", Path: name, Kind: ErrInvalidName, Err: ErrInvalidName}
	}
	return nil
}
