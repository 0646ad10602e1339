package community

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-citecomm/pkg/fisher"
)

// Common sentinel errors
var (
	ErrEmptyGraph              = errors.New("graph has no nodes")
	ErrInvalidContingencyTable = errors.New("invalid contingency table")
	ErrNilStats                = errors.New("community statistics are nil")
)

// AnalysisError provides structured error information for analysis steps.
type AnalysisError struct {
	Op        string // Operation that failed (e.g., "BuildCommunityStats")
	Community int    // Community ID (if HasID)
	HasID     bool
	Cause     error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.HasID {
		return fmt.Sprintf("%s community %d: %v", e.Op, e.Community, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// ContingencyError reports a community/subfield pair whose contingency table
// has a negative cell, which means totalPapers or the counts are inconsistent.
type ContingencyError struct {
	Community   int
	Subfield    string
	Table       fisher.Table
	TotalPapers int
}

// Error implements the error interface.
func (e *ContingencyError) Error() string {
	return fmt.Sprintf("%v: community %d subfield %q has cells [[%d %d] [%d %d]] (total papers %d)",
		ErrInvalidContingencyTable, e.Community, e.Subfield,
		e.Table.A, e.Table.B, e.Table.C, e.Table.D, e.TotalPapers)
}

// Is reports whether the target error matches this error.
func (e *ContingencyError) Is(target error) bool {
	return target == ErrInvalidContingencyTable
}
