// Package graphitem defines the concrete, post-expansion graph vocabulary:
// Task and Data items and the typed Edges between them (spec §3). The
// polymorphism between Task and Data is rendered as a closed tagged variant
// rather than virtual dispatch (spec §9), mirroring the teacher's
// internal/node.Node, which carries a NodeType enum (StepNode/ResourceNode)
// plus type-specific fields on one struct instead of an interface hierarchy.
package graphitem

import (
	"github.com/vk/workgraph/internal/coordinate"
	"github.com/vk/workgraph/internal/itemid"
)

// Availability classifies a Data item per spec §3.
type Availability int

const (
	// Available means the item is supplied from outside the graph (an
	// input artifact already on disk, say), never produced by a Task.
	Available Availability = iota
	// Generated means some Task produces the item as an output.
	Generated
)

func (a Availability) String() string {
	if a == Available {
		return "Available"
	}
	return "Generated"
}

// Role classifies an Edge's relationship to its sink task.
type Role int

const (
	Input Role = iota
	Output
	WaitOn
)

func (r Role) String() string {
	switch r {
	case Input:
		return "Input"
	case Output:
		return "Output"
	case WaitOn:
		return "WaitOn"
	default:
		return "WaitOn"
	}
}

// Kind distinguishes the two GraphItem variants.
type Kind int

const (
	TaskKind Kind = iota
	DataKind
)

// Item is the common prefix shared by Task and Data: the operations that
// don't differ between the two (coordinate, name, insertion key) operate on
// this; variant-specific fields follow (spec §9).
type Item struct {
	Kind       Kind
	Name       string
	Coordinate coordinate.Coordinate

	// Task-specific. Populated only when Kind == TaskKind.
	Inputs  []*Edge
	Outputs []*Edge
	WaitOns []*Edge
	Plugin  string

	// Data-specific. Populated only when Kind == DataKind.
	Availability Availability

	// Payload is opaque backend/plugin configuration, carried as-is (spec
	// §3: "plugin-specific payload, opaque to the core").
	Payload any
}

// NewTask constructs a Task item with empty edge lists.
func NewTask(name string, coord coordinate.Coordinate, plugin string, payload any) *Item {
	return &Item{
		Kind:       TaskKind,
		Name:       name,
		Coordinate: coord,
		Plugin:     plugin,
		Payload:    payload,
	}
}

// NewData constructs a Data item.
func NewData(name string, coord coordinate.Coordinate, availability Availability, payload any) *Item {
	return &Item{
		Kind:         DataKind,
		Name:         name,
		Coordinate:   coord,
		Availability: availability,
		Payload:      payload,
	}
}

// IsTask and IsData report the item's variant.
func (it *Item) IsTask() bool { return it.Kind == TaskKind }
func (it *Item) IsData() bool { return it.Kind == DataKind }

// ID renders the item's address for logging and diagnostics — the
// unrolled-graph analogue of the teacher's nodeid-stamped log lines.
func (it *Item) ID() itemid.ID {
	return itemid.New(it.Name, it.Coordinate)
}

// String renders the item's ID, so printing an *Item (e.g. in a %s log
// field) gives the same form as other diagnostics.
func (it *Item) String() string {
	return it.ID().String()
}

// Edge is a directed, typed link between two items (spec §3). Edges are
// owned by the sink for Input/WaitOn roles, and by the source for Output —
// AddEdge below records the edge on whichever item spec §3 calls the owner,
// while both endpoints are always reachable from the Edge value itself.
type Edge struct {
	Source *Item
	Sink   *Item
	Port   string // "" for WaitOn edges, which carry no port
	Role   Role
}

// AddEdge appends e to the owning item's edge list per spec §3's ownership
// rule (sink owns Input/WaitOn, source owns Output).
func AddEdge(e *Edge) {
	switch e.Role {
	case Input:
		e.Sink.Inputs = append(e.Sink.Inputs, e)
	case WaitOn:
		e.Sink.WaitOns = append(e.Sink.WaitOns, e)
	case Output:
		e.Source.Outputs = append(e.Source.Outputs, e)
	}
}
