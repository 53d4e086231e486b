// Package coordinate implements the multidimensional coordinate model of
// spec §3/§4.2: a mapping from dimension name to value, with the reserved
// "date" dimension carrying a temporal.Date and every other dimension
// carrying an opaque, structurally-comparable parameter value.
//
// Grounded on original_source/src/sirocco/core/graph_items.py's Array (a
// dict-of-coordinates keyed by a tuple built from a fixed, sorted dimension
// order) and on the teacher's nodeid.Address canonical-serialization idiom
// (internal/nodeid/address.go), adapted here to address (name, coordinate)
// pairs instead of hierarchical node paths.
package coordinate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/workgraph/internal/temporal"
	"github.com/zclconf/go-cty/cty"
)

// DateDim is the reserved dimension name for the cycle date.
const DateDim = "date"

// ErrDuplicateDimension is returned by FromPairs when two pairs name the
// same dimension (spec §4.2: "coordinate construction rejects duplicate
// dimension names").
var ErrDuplicateDimension = errors.New("coordinate: duplicate dimension name")

// ErrOverlappingMerge is returned by Merge when both operands define a
// common dimension (spec §4.2: "merging two coordinates with overlapping
// names fails").
var ErrOverlappingMerge = errors.New("coordinate: merge of overlapping dimensions")

// Pair is one (dimension, value) entry used to build a Coordinate from an
// ordered source (an IR parameter list, a reference's modifiers) so
// duplicates can be detected before they silently clobber each other in a
// map literal.
type Pair struct {
	Dim   string
	Value cty.Value
}

// Coordinate is an immutable mapping from dimension name to value. The zero
// value is the empty, zero-dimensional coordinate used by one-off items.
type Coordinate struct {
	date   *temporal.Date
	params map[string]cty.Value
}

// New builds a Coordinate directly from a date and a parameter map. Callers
// that already hold a Go map with guaranteed-unique keys (the common case
// inside expand/resolve, which always build coordinates from non-overlapping
// sources) can use this without the FromPairs duplicate check.
func New(date *temporal.Date, params map[string]cty.Value) Coordinate {
	if params == nil {
		params = map[string]cty.Value{}
	}
	clone := make(map[string]cty.Value, len(params))
	for k, v := range params {
		clone[k] = v
	}
	return Coordinate{date: date, params: clone}
}

// FromPairs builds a Coordinate from an ordered list of dimension/value
// pairs, rejecting a duplicate dimension name (including "date", which must
// not appear as a Pair — pass it via the date argument instead).
func FromPairs(date *temporal.Date, pairs []Pair) (Coordinate, error) {
	params := make(map[string]cty.Value, len(pairs))
	for _, p := range pairs {
		if p.Dim == DateDim {
			return Coordinate{}, fmt.Errorf("%w: %q is reserved, pass it as the date argument", ErrDuplicateDimension, DateDim)
		}
		if _, exists := params[p.Dim]; exists {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrDuplicateDimension, p.Dim)
		}
		params[p.Dim] = p.Value
	}
	return Coordinate{date: date, params: params}, nil
}

// Date returns the coordinate's date dimension, or nil if undated.
func (c Coordinate) Date() *temporal.Date {
	return c.date
}

// Value returns the value of a non-date dimension.
func (c Coordinate) Value(dim string) (cty.Value, bool) {
	v, ok := c.params[dim]
	return v, ok
}

// Dims returns every dimension name present in the coordinate, "date" first
// (if present) followed by the parameter dimensions in sorted order —
// matching the deterministic ordering §3 requires for equality and for
// Array dimension-set comparisons.
func (c Coordinate) Dims() []string {
	dims := make([]string, 0, len(c.params)+1)
	if c.date != nil {
		dims = append(dims, DateDim)
	}
	for k := range c.params {
		dims = append(dims, k)
	}
	sort.Strings(dims[boolToInt(c.date != nil):])
	return dims
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Equal reports whether two coordinates have the same dimension set and
// equal values on each (spec §3). Order of construction is irrelevant.
func (c Coordinate) Equal(other Coordinate) bool {
	if (c.date == nil) != (other.date == nil) {
		return false
	}
	if c.date != nil && !c.date.Equal(*other.date) {
		return false
	}
	if len(c.params) != len(other.params) {
		return false
	}
	for k, v := range c.params {
		ov, ok := other.params[k]
		if !ok || !v.RawEquals(ov) {
			return false
		}
	}
	return true
}

// Merge combines two coordinates that must not share a dimension name.
func Merge(a, b Coordinate) (Coordinate, error) {
	if a.date != nil && b.date != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrOverlappingMerge, DateDim)
	}
	merged := make(map[string]cty.Value, len(a.params)+len(b.params))
	for k, v := range a.params {
		merged[k] = v
	}
	for k, v := range b.params {
		if _, exists := merged[k]; exists {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrOverlappingMerge, k)
		}
		merged[k] = v
	}
	date := a.date
	if date == nil {
		date = b.date
	}
	return Coordinate{date: date, params: merged}, nil
}

// Project restricts the coordinate to the given dimension names, which must
// be a subset of the coordinate's own dimensions (spec §4.4: "the projection
// discards extra task dimensions"). Requesting a dimension the coordinate
// doesn't have is simply omitted from the result.
func (c Coordinate) Project(dims []string) Coordinate {
	out := Coordinate{params: map[string]cty.Value{}}
	for _, d := range dims {
		if d == DateDim {
			out.date = c.date
			continue
		}
		if v, ok := c.params[d]; ok {
			out.params[d] = v
		}
	}
	return out
}

// Key renders a canonical, deterministic string for use as a map key and in
// diagnostics — dimensions sorted, "date" first.
func (c Coordinate) Key() string {
	if c.date == nil && len(c.params) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	if c.date != nil {
		sb.WriteString(DateDim)
		sb.WriteByte('=')
		sb.WriteString(c.date.String())
		first = false
	}
	dims := make([]string, 0, len(c.params))
	for k := range c.params {
		dims = append(dims, k)
	}
	sort.Strings(dims)
	for _, d := range dims {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(d)
		sb.WriteByte('=')
		sb.WriteString(valueKey(c.params[d]))
	}
	sb.WriteByte(']')
	return sb.String()
}

// valueKey renders a cty.Value's canonical scalar form. The opaque
// parameter value type is restricted to string, number or bool (spec §3);
// any other type is a front-end contract violation.
func valueKey(v cty.Value) string {
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Number:
		return v.AsBigFloat().Text('f', -1)
	case cty.Bool:
		return fmt.Sprintf("%t", v.True())
	default:
		return fmt.Sprintf("<%s>", v.Type().FriendlyName())
	}
}
