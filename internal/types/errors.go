package types

import (
	"errors"
	"fmt"
)

// ErrNoUsableData is returned by the aggregator when every domain is
// degraded: there is nothing to fuse, so the run itself fails.
var ErrNoUsableData = errors.New("no usable domain input")

// ValidationError rejects a malformed, missing, or duplicate input
// record. It is fatal for that record and raised before any scoring.
type ValidationError struct {
	Field  string // offending field, empty for record-level problems
	Date   string // raw date of the record, if known
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Date != "":
		return fmt.Sprintf("invalid record %s: %s: %s", e.Date, e.Field, e.Reason)
	case e.Date != "":
		return fmt.Sprintf("invalid record %s: %s", e.Date, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("invalid record: %s: %s", e.Field, e.Reason)
	default:
		return fmt.Sprintf("invalid record: %s", e.Reason)
	}
}

// InsufficientDataError signals that a scorer cannot produce a
// statistically meaningful result (e.g. zero days of metrics). It is
// never recovered inside the scorer; the aggregator substitutes a
// degraded placeholder for the domain instead.
type InsufficientDataError struct {
	Domain Domain
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: %s", e.Domain, e.Reason)
}

// IsInsufficientData reports whether err is (or wraps) an
// InsufficientDataError.
func IsInsufficientData(err error) bool {
	var ide *InsufficientDataError
	return errors.As(err, &ide)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
