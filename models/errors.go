package models

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for station resolution and routing.
var (
	// ErrNotFound is returned for an unknown station id, a name with no
	// matching station or a name that does not exist on the given line.
	ErrNotFound = errors.New("station not found")

	// ErrAmbiguousName is returned when a name matches stations on
	// several lines and no line was supplied.
	ErrAmbiguousName = errors.New("ambiguous station name")

	// ErrInvalidQuery is returned for station references that carry
	// neither an id nor a name, or both.
	ErrInvalidQuery = errors.New("invalid station query")

	// ErrNoRoute is returned when two stations lie in different
	// connected components of the network.
	ErrNoRoute = errors.New("no route between stations")

	// ErrMissingEdgeWeight is returned when a path contains two
	// consecutive stations that are not linked.
	ErrMissingEdgeWeight = errors.New("missing edge weight")

	// ErrEmptyPath is returned when a route is built from an empty path.
	ErrEmptyPath = errors.New("empty path")

	// ErrInvalidNetwork is returned when network data violates the
	// directory or graph invariants.
	ErrInvalidNetwork = errors.New("invalid network")

	// ErrConflictingLink is returned when the same pair of stations is
	// linked twice with different travel times.
	ErrConflictingLink = errors.New("conflicting link")
)

// StationError describes a failed station lookup. Kind is one of the
// sentinel errors above.
type StationError struct {
	Kind  error
	ID    *StationID
	Name  string
	Line  *int
	Lines []int
}

func (e *StationError) Error() string {
	switch {
	case e.ID != nil:
		return fmt.Sprintf("%v: id = %d", e.Kind, *e.ID)
	case e.Line != nil:
		return fmt.Sprintf("%v: %q on line %d", e.Kind, e.Name, *e.Line)
	case len(e.Lines) > 0:
		return fmt.Sprintf("%v: %q exists on lines %s, specify a line", e.Kind, e.Name, joinInts(e.Lines))
	default:
		return fmt.Sprintf("%v: %q", e.Kind, e.Name)
	}
}

func (e *StationError) Unwrap() error { return e.Kind }

// RouteError describes a failure between two stations of a path.
type RouteError struct {
	Kind error
	From StationID
	To   StationID
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%v: %d -> %d", e.Kind, e.From, e.To)
}

func (e *RouteError) Unwrap() error { return e.Kind }

func joinInts(values []int) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += strconv.Itoa(v)
	}
	return out
}
