// Package itemid gives every expanded graph item (a Task or Data instance)
// a canonical, human-readable identifier formed from its template name and
// its coordinate — the unrolled-graph analogue of the teacher's nodeid
// package, which addressed nodes by a dot/bracket path of segments. Here
// there is exactly one "segment": the template name, annotated with its
// full coordinate instead of a single numeric index.
//
// Grounded on internal/nodeid/address.go's canonical-string idiom
// (String/Equal over a struct, round-trippable via a paired Parse), adapted
// to address (name, coordinate) pairs per spec §4.2/§4.3.
package itemid

import (
	"fmt"
	"regexp"

	"github.com/vk/workgraph/internal/coordinate"
)

// ID identifies one expanded item: the template it was instantiated from,
// plus the coordinate it was instantiated at.
type ID struct {
	Name  string
	Coord coordinate.Coordinate
}

// New builds an ID.
func New(name string, coord coordinate.Coordinate) ID {
	return ID{Name: name, Coord: coord}
}

// String renders the canonical "name[dim=value,...]" form used in
// diagnostics and logs. An item at the empty coordinate renders as the bare
// name.
func (id ID) String() string {
	if len(id.Coord.Dims()) == 0 {
		return id.Name
	}
	return id.Name + id.Coord.Key()
}

// Equal reports whether two IDs name the same template at the same
// coordinate.
func (id ID) Equal(other ID) bool {
	return id.Name == other.Name && id.Coord.Equal(other.Coord)
}

var namePattern = regexp.MustCompile(`^([^\[\]]+)(\[.*\])?$`)

// SplitName extracts the template name from a rendered ID string, without
// decoding the coordinate portion — useful for log scraping and test
// assertions that only care which template an identifier belongs to.
func SplitName(rendered string) (string, error) {
	m := namePattern.FindStringSubmatch(rendered)
	if m == nil {
		return "", fmt.Errorf("itemid: malformed identifier %q", rendered)
	}
	return m[1], nil
}
