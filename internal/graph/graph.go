package graph

import (
	"github.com/vk/workgraph/internal/coordinate"
	"github.com/vk/workgraph/internal/graphitem"
	"github.com/vk/workgraph/internal/ir"
	"github.com/vk/workgraph/internal/workflow"
)

// View is the read-only surface a caller outside the core needs: the
// iteration and lookup operations of spec §4.6, with no way to mutate the
// underlying Workflow.
type View interface {
	Tasks() []*graphitem.Item
	Data() []*graphitem.Item
	Edges() []*graphitem.Edge
	Lookup(name string, coord coordinate.Coordinate) (*graphitem.Item, error)
	Cycles() []ir.Cycle
}

// New builds a View from a validated IR workflow, running expansion and
// resolution (internal/workflow.Build) under the hood.
func New(wf ir.Workflow) (View, error) {
	return workflow.Build(wf)
}
