package campaign

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a data file holds no mission rows.
var ErrEmptyInput = errors.New("campaign data is empty")

// ErrLineBreak is returned for a field holding a line break, which a batch
// file line cannot carry.
var ErrLineBreak = errors.New("field contains a line break")

var errMissingColumn = errors.New("required column is missing")

// FormatError reports a malformed row or field in campaign data.
type FormatError struct {
	Line   int    // 1-based line in the source file
	Column string // empty when the whole row is malformed
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	switch {
	case e.Column == "":
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Value == "":
		return fmt.Sprintf("line %d: column %s: %v", e.Line, e.Column, e.Err)
	default:
		return fmt.Sprintf("line %d: column %s: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
	}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// UnsupportedTitleError is returned when a campaign's IWAD has no known
// level-selection scheme.
type UnsupportedTitleError struct {
	Name string
	IWAD string
}

func (e *UnsupportedTitleError) Error() string {
	return fmt.Sprintf("campaign %q: iwad %s not supported yet", e.Name, e.IWAD)
}
