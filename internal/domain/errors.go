package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrGeometry       = errors.New("geometry error")
	ErrDivisionByZero = errors.New("division by zero")
)

// GeometryKind is a coarse-grained categorization for geometry failures.
type GeometryKind string

const (
	KindBoundaryCount    GeometryKind = "boundary_count"
	KindCoincidentPoints GeometryKind = "coincident_points"
	KindDivisionByZero   GeometryKind = "division_by_zero"
	KindDegenerateDomain GeometryKind = "degenerate_domain"
	KindZeroLength       GeometryKind = "zero_length"
)

// MalformedInputError reports a fracture record that cannot be used.
type MalformedInputError struct {
	Path   string // Optional: source file
	Line   int    // Optional: 1-based line number
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := "malformed input"
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line > 0 {
		base += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Reason != "" {
		base += ": " + e.Reason
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *MalformedInputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// GeometryError reports a borehole that could not be constructed.
// Count is the number of accepted boundary points for KindBoundaryCount.
type GeometryError struct {
	Op    string
	Kind  GeometryKind
	Count int
}

func (e *GeometryError) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Kind == KindBoundaryCount {
		return fmt.Sprintf("%s: %s: got %d boundary points, want 2", e.Op, e.Kind, e.Count)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *GeometryError) Is(target error) bool {
	if target == ErrGeometry {
		return true
	}
	return target == ErrDivisionByZero && e.Kind == KindDivisionByZero
}

// RedrawsExhaustedError is returned when a trial could not produce a valid
// borehole within the allowed number of draws.
type RedrawsExhaustedError struct {
	Trial    int
	Attempts int
	Last     error
}

func (e *RedrawsExhaustedError) Error() string {
	return fmt.Sprintf("trial %d: no valid borehole after %d draws: %v", e.Trial, e.Attempts, e.Last)
}

func (e *RedrawsExhaustedError) Unwrap() error { return e.Last }

// IsGeometryKind helps callers classify errors without string matching.
func IsGeometryKind(err error, kind GeometryKind) bool {
	var ge *GeometryError
	if errors.As(err, &ge) {
		return ge.Kind == kind
	}
	return false
}
