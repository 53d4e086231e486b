// Package expand implements the template expander of spec §4.4: it walks a
// validated ir.Workflow and populates a store.Store with every Task and
// Data item the IR implies, in the order the stable-iteration contract
// requires. The only edges created here are the Output edges from each task
// to the Data items it produces; Input and WaitOn edges are
// internal/resolve's job.
//
// Grounded on original_source/src/sirocco/core/workflow.py's
// Workflow.__init__ passes 1 ("available data") through 3 ("cycles and
// tasks"), and the teacher's internal/dag.createNodes first pass — adapted
// to use a hard DuplicateCoordinate error (spec invariant 1) instead of the
// teacher's permissive "later insert silently overwrites" behavior.
package expand

import (
	"fmt"
	"sort"

	"github.com/vk/workgraph/internal/coordinate"
	"github.com/vk/workgraph/internal/graphitem"
	"github.com/vk/workgraph/internal/ir"
	"github.com/vk/workgraph/internal/store"
	"github.com/vk/workgraph/internal/temporal"
	"github.com/vk/workgraph/internal/werr"
	"github.com/zclconf/go-cty/cty"
)

// Expand populates s with every Task and Data item implied by wf.
func Expand(wf ir.Workflow, s *store.Store) error {
	if err := expandAvailable(wf, s); err != nil {
		return err
	}
	for _, cycle := range wf.Cycles {
		if err := expandCycle(wf, cycle, s); err != nil {
			return err
		}
	}
	return nil
}

// expandAvailable implements spec §4.4 step 1.
func expandAvailable(wf ir.Workflow, s *store.Store) error {
	for _, dt := range wf.Available {
		item := graphitem.NewData(dt.Name, coordinate.New(nil, nil), graphitem.Available, dt.Payload)
		if err := s.Insert(dt.Name, item); err != nil {
			return err
		}
	}
	return nil
}

func expandCycle(wf ir.Workflow, cycle ir.Cycle, s *store.Store) error {
	dates, err := CycleDates(cycle)
	if err != nil {
		return err
	}
	for _, d := range dates {
		for _, ref := range cycle.TaskRefs {
			if err := expandTaskAtDate(wf, ref, d, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// CycleDates computes a cycle's date sequence per spec §4.1, exported for
// internal/resolve to reconstruct the same task coordinates during
// dependency resolution.
func CycleDates(cycle ir.Cycle) ([]*temporal.Date, error) {
	if cycle.Cycling == nil {
		return []*temporal.Date{nil}, nil
	}
	sched := temporal.Schedule{
		Start:  cycle.Cycling.Start,
		Stop:   cycle.Cycling.Stop,
		Period: cycle.Cycling.Period,
	}
	return sched.Dates(), nil
}

// expandTaskAtDate implements spec §4.4 step 2.b for one task ref at one
// cycle date: enumerate the parameter product, instantiate the task, then
// its declared outputs.
func expandTaskAtDate(wf ir.Workflow, ref ir.TaskRef, date *temporal.Date, s *store.Store) error {
	tmpl, ok := wf.Tasks[ref.Name]
	if !ok {
		return werr.New(werr.UnknownName, fmt.Sprintf("task ref %q has no task template", ref.Name), []string{ref.Name}, nil)
	}

	products, err := ParameterProduct(wf.Parameters, tmpl.Parameters)
	if err != nil {
		return err
	}

	for _, p := range products {
		coord := coordinate.New(date, p)
		task := graphitem.NewTask(ref.Name, coord, tmpl.Plugin, tmpl.Payload)
		if err := s.Insert(ref.Name, task); err != nil {
			return err
		}

		for _, out := range ref.Outputs {
			if err := expandOutput(wf, out, task, date, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// expandOutput inserts the Data item for one declared task output,
// projecting the task's coordinate onto the output's declared dimensions
// (spec §4.4's "dimension inheritance rule"), and wires the Output edge
// from the producing task. Because the Data item is freshly created here
// and Store.Insert rejects a second item at the same (name, coordinate),
// a concrete Data item can never gain a second producer through this path
// — the single-writer invariant (spec invariant 5 / MultipleWriters) is a
// structural consequence of expansion rather than a check resolve must
// perform separately.
func expandOutput(wf ir.Workflow, out ir.OutputRef, task *graphitem.Item, date *temporal.Date, s *store.Store) error {
	dt, ok := findDataTemplate(wf, out.Name)
	if !ok {
		return werr.New(werr.UnknownName, fmt.Sprintf("task output %q has no data template", out.Name), []string{out.Name}, nil)
	}

	dims := append([]string{}, dt.Parameters...)
	if date != nil {
		dims = append(dims, coordinate.DateDim)
	}
	outCoord := task.Coordinate.Project(dims)

	item := graphitem.NewData(dt.Name, outCoord, graphitem.Generated, dt.Payload)
	if err := s.Insert(dt.Name, item); err != nil {
		return err
	}
	graphitem.AddEdge(&graphitem.Edge{Source: task, Sink: item, Port: out.Port, Role: graphitem.Output})
	return nil
}

func findDataTemplate(wf ir.Workflow, name string) (ir.DataTemplate, bool) {
	for _, dt := range wf.Generated {
		if dt.Name == name {
			return dt, true
		}
	}
	for _, dt := range wf.Available {
		if dt.Name == name {
			return dt, true
		}
	}
	return ir.DataTemplate{}, false
}

// ParameterProduct enumerates the Cartesian product of values for the given
// dimension names, reading value lists from the global parameters map. No
// dimensions (the common one-off / unparameterized case) yields a single
// empty coordinate map (spec §4.4). Exported for internal/resolve, which
// must reconstruct identical task coordinates.
func ParameterProduct(globalParams map[string][]cty.Value, dims []string) ([]map[string]cty.Value, error) {
	if len(dims) == 0 {
		return []map[string]cty.Value{{}}, nil
	}
	sorted := append([]string{}, dims...)
	sort.Strings(sorted)

	products := []map[string]cty.Value{{}}
	for _, dim := range sorted {
		values, ok := globalParams[dim]
		if !ok {
			return nil, werr.New(werr.UnknownName, fmt.Sprintf("parameter dimension %q has no declared values", dim), []string{dim}, nil)
		}
		var next []map[string]cty.Value
		for _, existing := range products {
			for _, v := range values {
				ext := make(map[string]cty.Value, len(existing)+1)
				for k, ev := range existing {
					ext[k] = ev
				}
				ext[dim] = v
				next = append(next, ext)
			}
		}
		products = next
	}
	return products, nil
}
