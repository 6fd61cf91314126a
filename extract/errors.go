package extract

import "fmt"

// SkipReason explains why a file contributed nothing to the report.
type SkipReason string

const (
	// SkipTooSmall means the sheet has fewer than 2 rows or 4 columns.
	SkipTooSmall SkipReason = "too_small"
	// SkipMissingIdentityColumns means Enrollment No. or Name is absent from the header row.
	SkipMissingIdentityColumns SkipReason = "missing_identity_columns"
	// SkipMissingTheoryColumns means Total Theory or Attended is absent from the header row.
	SkipMissingTheoryColumns SkipReason = "missing_theory_columns"
	// SkipUnreadable means the file could not be opened or read.
	SkipUnreadable SkipReason = "unreadable"
)

// SkipError reports a file that was excluded from the report.
type SkipError struct {
	Source string
	Reason SkipReason
	Detail string
	Err    error
}

func (e *SkipError) Error() string {
	msg := fmt.Sprintf("skip %s: %s", e.Source, e.Reason)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SkipError) Unwrap() error {
	return e.Err
}

// NewSkipError creates a SkipError without an underlying cause.
func NewSkipError(source string, reason SkipReason, detail string) *SkipError {
	return &SkipError{Source: source, Reason: reason, Detail: detail}
}

// Unreadable wraps a read failure for source.
func Unreadable(source string, err error) *SkipError {
	return &SkipError{Source: source, Reason: SkipUnreadable, Err: err}
}
