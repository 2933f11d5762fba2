package faults

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is the sentinel for lookups of unknown roms, cheat codes,
// cheat files and registry types. Wrap it with context via NotFound and
// test it with errors.Is.
var ErrNotFound = errors.New("not found")

// NotFound wraps ErrNotFound with the entity kind and identifier.
func NotFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

// ValidationError carries the full field->message map of a failed
// validation pass. It is returned wholesale so a client can render all
// problems at once instead of fixing them one by one.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConfigError reports an unreadable persistent document. It is recovered
// locally (the registry falls back to empty), never fatal to the process.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config document %s unreadable: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure. When it happens during the
// flat-file phase of a sync the relational change has already committed,
// so the caller sees the error but the row set is kept.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IO wraps a filesystem error with its operation and path.
func IO(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
