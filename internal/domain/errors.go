package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrAlreadyExists  = errors.New("resource already exists")
	ErrInvalidInput   = errors.New("invalid input")
	ErrForbidden      = errors.New("forbidden")
	ErrSourceNotFound = errors.New("source video not found")
)

// SourceNotFoundError is returned before any work starts when the input file is missing.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source video not found: %s", e.Path)
}

func (e *SourceNotFoundError) Is(target error) bool {
	return target == ErrSourceNotFound
}

// EncodingFailedError reports a single rendition whose encoder did not succeed.
type EncodingFailedError struct {
	Rendition string
	Cause     error
}

func (e *EncodingFailedError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Rendition, e.Cause)
}

func (e *EncodingFailedError) Unwrap() error {
	return e.Cause
}

// IngestionFailedError aggregates every rendition failure of one ingestion.
// Failures are kept in ladder order.
type IngestionFailedError struct {
	Failures []*EncodingFailedError
}

func (e *IngestionFailedError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("ingestion failed for %d rendition(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

func (e *IngestionFailedError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// Renditions returns the names of the failed renditions in ladder order.
func (e *IngestionFailedError) Renditions() []string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Rendition
	}
	return names
}
