package store

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned by the explicit creation path when an entity
// with the same normalized name already exists. The upsert paths never
// return it.
var ErrDuplicateName = errors.New("entity with this name already exists")

// ErrEmptyName is returned when a name normalizes to the empty string.
var ErrEmptyName = errors.New("entity name must not be empty")

// ReadError wraps a failure to read from the durable store. Callers receive
// it instead of a partial result.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store read %s: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failure to write to the durable store. For ReplaceAll
// it implies the store kept its prior contents.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store write %s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
