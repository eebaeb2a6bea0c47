package product

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrFileNotFound indicates the product data file does not exist.
var ErrFileNotFound = fmt.Errorf(`product data file not found: %w`, fs.ErrNotExist)

// ErrMissingColumn indicates a required CSV column is absent from the header.
var ErrMissingColumn = errors.New(`missing required column`)

// RecordError reports a cell that could not be converted.
type RecordError struct {
	Line   int
	Column string
	Raw    string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf(`line %d, column %q: invalid value %q: %v`, e.Line, e.Column, e.Raw, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

var ErrInvalidValue = errors.New(`invalid value`)
