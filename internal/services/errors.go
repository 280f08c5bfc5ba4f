package services

import (
	"errors"
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPoolStopped  = errors.New("analysis pool stopped")
)

// ExtractionError means a source document could not be turned into text at all.
type ExtractionError struct {
	Kind models.DocumentKind
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not read resume (%s): %v", e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
