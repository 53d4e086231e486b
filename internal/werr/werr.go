// Package werr defines the fatal error kinds the unroller can surface (spec
// §7). All construction-time failures are represented as a single *Error
// value carrying a Kind, a human message, and the offending names/
// coordinate, so callers can both print a useful diagnostic and use
// errors.Is/errors.As against a specific Kind.
package werr

import (
	"errors"
	"fmt"

	"github.com/vk/workgraph/internal/coordinate"
)

// Kind identifies one of the seven fatal error conditions of spec §7.
type Kind int

const (
	// UnknownName: a reference names a task/data item absent from the IR.
	UnknownName Kind = iota
	// DuplicateCoordinate: expansion tried to insert two items with an
	// equal (name, coordinate) pair.
	DuplicateCoordinate
	// DimensionMismatch: an Array received an item whose coordinate's
	// dimension set differs from the Array's established dimensions.
	DimensionMismatch
	// UnresolvedInput: an input reference resolved to zero items with no
	// valid excuse.
	UnresolvedInput
	// MultipleWriters: two distinct Task items declared the same output
	// Data coordinate.
	MultipleWriters
	// Cyclic: the graph has a non-temporal dependency cycle.
	Cyclic
	// BadDuration: a malformed duration literal reached the core.
	BadDuration
	// BadDate: a malformed date literal reached the core.
	BadDate
)

func (k Kind) String() string {
	switch k {
	case UnknownName:
		return "UnknownName"
	case DuplicateCoordinate:
		return "DuplicateCoordinate"
	case DimensionMismatch:
		return "DimensionMismatch"
	case UnresolvedInput:
		return "UnresolvedInput"
	case MultipleWriters:
		return "MultipleWriters"
	case Cyclic:
		return "Cyclic"
	case BadDuration:
		return "BadDuration"
	case BadDate:
		return "BadDate"
	default:
		return "UnknownKind"
	}
}

// Error is the fatal error type returned by graph construction. It is never
// used for the silent (non-error) outcomes of spec §7 — when-guard
// rejection and target_cycle out-of-range are plain nil results upstream.
type Error struct {
	Kind Kind
	// Message is a human-readable description of the failure.
	Message string
	// Names carries the offending name(s) — a task/data template name, a
	// reference target, or both endpoints of a cycle.
	Names []string
	// Coordinate carries the offending coordinate, when the failure is
	// specific to one concrete item. Nil for name-only failures (e.g.
	// UnknownName against a template that was never instantiated).
	Coordinate *coordinate.Coordinate
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if len(e.Names) > 0 {
		msg += fmt.Sprintf(" (names: %v)", e.Names)
	}
	if e.Coordinate != nil {
		msg += fmt.Sprintf(" (coordinate: %s)", e.Coordinate.Key())
	}
	return msg
}

// Is reports whether target is a *Error with the same Kind, enabling
// errors.Is(err, werr.New(werr.Cyclic, "", nil, nil)) style matching against
// a bare sentinel built with no message or names.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an *Error for the given kind.
func New(kind Kind, message string, names []string, coord *coordinate.Coordinate) *Error {
	return &Error{Kind: kind, Message: message, Names: names, Coordinate: coord}
}

// Sentinel returns a bare *Error of the given kind, useful as the target of
// an errors.Is comparison.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
