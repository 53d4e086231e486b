// Package workflow implements the top-level orchestrator of spec §4.6: it
// runs the template expander then the dependency resolver over a validated
// ir.Workflow, owns the resulting store.Store, and exposes the frozen,
// read-only iteration surface callers use to walk the unrolled graph.
//
// Grounded on original_source/src/sirocco/core/workflow.py's Workflow,
// which owns three Stores (tasks, data, cycles) and whose constructor is
// the sole place mutation happens, and the teacher's internal/dag.Build
// orchestration (createNodes -> linkNodes -> counters -> detectCycles).
package workflow

import (
	"github.com/vk/workgraph/internal/coordinate"
	"github.com/vk/workgraph/internal/expand"
	"github.com/vk/workgraph/internal/graphitem"
	"github.com/vk/workgraph/internal/ir"
	"github.com/vk/workgraph/internal/resolve"
	"github.com/vk/workgraph/internal/store"
)

// Workflow is the frozen, unrolled graph. Build is the only mutation entry
// point; every method below is a read accessor (spec §4.6, §3 Lifecycle).
type Workflow struct {
	store  *store.Store
	cycles []ir.Cycle
}

// Build expands and resolves wf into a Workflow. Returns the first fatal
// error encountered (spec §7); a non-nil error means no usable Workflow was
// produced.
func Build(wf ir.Workflow) (*Workflow, error) {
	s := store.New()
	if err := expand.Expand(wf, s); err != nil {
		return nil, err
	}
	if err := resolve.Resolve(wf, s); err != nil {
		return nil, err
	}
	return &Workflow{store: s, cycles: wf.Cycles}, nil
}

// Tasks returns every Task item across every name, in Store iteration order
// (spec §4.6 "tasks()").
func (w *Workflow) Tasks() []*graphitem.Item {
	return w.itemsWhere(func(it *graphitem.Item) bool { return it.IsTask() })
}

// Data returns every Data item, in Store iteration order (spec §4.6
// "data()").
func (w *Workflow) Data() []*graphitem.Item {
	return w.itemsWhere(func(it *graphitem.Item) bool { return it.IsData() })
}

func (w *Workflow) itemsWhere(pred func(*graphitem.Item) bool) []*graphitem.Item {
	var out []*graphitem.Item
	w.store.IterItems(func(_ string, it *graphitem.Item) {
		if pred(it) {
			out = append(out, it)
		}
	})
	return out
}

// Edges returns every edge in the graph, grouped by task in Tasks() order
// (spec §4.6 "edges()"): for each task, its Output edges (where the task is
// the source), then its Input edges, then its WaitOn edges, each group in
// the declaration order expand and resolve appended them in.
func (w *Workflow) Edges() []*graphitem.Edge {
	var out []*graphitem.Edge
	for _, t := range w.Tasks() {
		out = append(out, t.Outputs...)
		out = append(out, t.Inputs...)
		out = append(out, t.WaitOns...)
	}
	return out
}

// Lookup delegates to the underlying Store's exact-match accessor (spec
// §4.6 "lookup(name, coordinate)").
func (w *Workflow) Lookup(name string, coord coordinate.Coordinate) (*graphitem.Item, error) {
	return w.store.Lookup(name, coord)
}

// Cycles returns the cycle declarations the workflow was built from — a
// read accessor supplementing spec §4.6 (see SPEC_FULL.md §9), useful for
// backends that group tasks by the cycle that produced them rather than by
// name alone.
func (w *Workflow) Cycles() []ir.Cycle {
	return append([]ir.Cycle(nil), w.cycles...)
}
