package kmlconv

import (
	"errors"
	"fmt"
)

// ErrInsufficientColumns indicates the source table has fewer columns than
// the positional mapping requires. No rows are processed in that case.
var ErrInsufficientColumns = errors.New("spreadsheet has fewer than 9 columns")

// ErrNoSheets indicates the workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ConversionError represents a fatal error during conversion.
type ConversionError struct {
	Sheet string
	Stage string // "read", "serialize"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(sheet, stage string, err error) *ConversionError {
	return &ConversionError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
