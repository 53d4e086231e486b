// Package resolve implements the dependency resolver of spec §4.5: for
// every expanded Task item, it walks the task's declared input and wait-on
// references, computes each reference's target coordinate(s), looks them up
// in the store, and wires Edges — enforcing arity and detecting cycles once
// every edge is in place.
//
// Grounded on original_source/src/sirocco/core/graph_items.py's
// Array.iter_from_cycle_spec / Store.iter_from_cycle_spec (target-coordinate
// and when-guard resolution) and the teacher's internal/dag linkNodes /
// linkExplicitDeps / linkImplicitDeps two-pass structure, plus its
// DetectCycles DFS (internal/dag/dag.go).
package resolve

import (
	"fmt"

	"github.com/vk/workgraph/internal/coordinate"
	"github.com/vk/workgraph/internal/expand"
	"github.com/vk/workgraph/internal/graphitem"
	"github.com/vk/workgraph/internal/ir"
	"github.com/vk/workgraph/internal/store"
	"github.com/vk/workgraph/internal/temporal"
	"github.com/vk/workgraph/internal/werr"
)

// Resolve wires every Task item's declared input and wait-on references
// into Edges, then checks the result for cycles. Must run after expand.Expand
// has fully populated s.
func Resolve(wf ir.Workflow, s *store.Store) error {
	for _, cycle := range wf.Cycles {
		dates, err := expand.CycleDates(cycle)
		if err != nil {
			return err
		}
		for _, d := range dates {
			for _, ref := range cycle.TaskRefs {
				if err := resolveTaskRefAtDate(wf, ref, d, s); err != nil {
					return err
				}
			}
		}
	}
	return detectCycles(s)
}

func resolveTaskRefAtDate(wf ir.Workflow, ref ir.TaskRef, date *temporal.Date, s *store.Store) error {
	tmpl, ok := wf.Tasks[ref.Name]
	if !ok {
		return werr.New(werr.UnknownName, fmt.Sprintf("task ref %q has no task template", ref.Name), []string{ref.Name}, nil)
	}
	products, err := expand.ParameterProduct(wf.Parameters, tmpl.Parameters)
	if err != nil {
		return err
	}

	for _, p := range products {
		coord := coordinate.New(date, p)
		task, err := s.Lookup(ref.Name, coord)
		if err != nil {
			return err
		}

		for _, in := range ref.Inputs {
			if err := resolveRef(wf, task, in, graphitem.Input, s); err != nil {
				return err
			}
		}
		for _, w := range ref.WaitOn {
			if err := resolveRef(wf, task, w, graphitem.WaitOn, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveRef implements spec §4.5 for a single reference on a single task
// instance: guard evaluation, target_cycle candidate expansion, per-
// dimension single/fan-out modifiers, partial lookup, and (for Input role)
// arity enforcement.
func resolveRef(wf ir.Workflow, task *graphitem.Item, ref ir.Ref, role graphitem.Role, s *store.Store) error {
	if !declaredInIR(wf, ref.Name) {
		return werr.New(werr.UnknownName, fmt.Sprintf("reference to unknown name %q", ref.Name), []string{ref.Name}, &task.Coordinate)
	}

	cTdate := task.Coordinate.Date()
	if !ref.When.IsActive(cTdate) {
		// Guard rejection: zero edges, no error (spec §4.5 step 4).
		return nil
	}

	// A name declared in the IR but never instantiated by expansion (no
	// task ever produced it) has no Array yet; every candidate then
	// legitimately yields zero matches, contributing to the arity check
	// below rather than raising UnknownName.
	arr := s.Array(ref.Name)
	var targetDims []string
	if arr != nil {
		targetDims = arr.Dims()
	}
	candidates := targetCandidateDates(cTdate, ref.TargetCycle)

	anyMatched := false
	anyUnexcusedEmpty := false

	for _, candDate := range candidates {
		excused := candDate != nil && !candDate.InHalfOpenRange(wf.StartDate, wf.StopDate)

		var matches []*graphitem.Item
		if arr != nil {
			partial := buildPartialCoordinate(task.Coordinate, candDate, targetDims, ref.Single)
			var err error
			matches, err = s.LookupPartial(ref.Name, partial)
			if err != nil {
				return err
			}
		}

		if len(matches) == 0 {
			if !excused {
				anyUnexcusedEmpty = true
			}
			continue
		}
		anyMatched = true
		for _, m := range matches {
			graphitem.AddEdge(&graphitem.Edge{Source: m, Sink: task, Port: ref.Port, Role: role})
		}
	}

	if role == graphitem.Input && !anyMatched && anyUnexcusedEmpty {
		return werr.New(werr.UnresolvedInput,
			fmt.Sprintf("input %q on task %s resolved to zero items", ref.Name, task.Name+task.Coordinate.Key()),
			[]string{ref.Name}, &task.Coordinate)
	}
	return nil
}

// declaredInIR reports whether name is declared anywhere in the IR (as a
// task, or as available/generated data) — distinct from whether the Store
// ever actually instantiated an item under that name.
func declaredInIR(wf ir.Workflow, name string) bool {
	if _, ok := wf.Tasks[name]; ok {
		return true
	}
	for _, dt := range wf.Available {
		if dt.Name == name {
			return true
		}
	}
	for _, dt := range wf.Generated {
		if dt.Name == name {
			return true
		}
	}
	return false
}

// targetCandidateDates applies spec §4.5 step 2: absent target_cycle keeps
// the task's own date; an absolute date pin replaces it outright; a lag
// list expands to one candidate per lag.
func targetCandidateDates(taskDate *temporal.Date, tc ir.TargetCycle) []*temporal.Date {
	if tc.Date != nil {
		pinned := *tc.Date
		return []*temporal.Date{&pinned}
	}
	if len(tc.Lags) > 0 {
		out := make([]*temporal.Date, 0, len(tc.Lags))
		for _, lag := range tc.Lags {
			if taskDate == nil {
				out = append(out, nil)
				continue
			}
			d := taskDate.Add(lag)
			out = append(out, &d)
		}
		return out
	}
	return []*temporal.Date{taskDate}
}

// buildPartialCoordinate assembles the candidate coordinate to look up:
// the date dimension if the target declares one, plus, for each other
// target dimension, either the task's own value (when "single" is set) or
// nothing at all (omission fans the lookup out over every value of that
// dimension, per spec §4.5 step 3).
func buildPartialCoordinate(taskCoord coordinate.Coordinate, candDate *temporal.Date, targetDims []string, single map[string]bool) coordinate.Coordinate {
	var date *temporal.Date
	var pairs []coordinate.Pair
	for _, dim := range targetDims {
		if dim == coordinate.DateDim {
			date = candDate
			continue
		}
		if single[dim] {
			if v, ok := taskCoord.Value(dim); ok {
				pairs = append(pairs, coordinate.Pair{Dim: dim, Value: v})
			}
		}
	}
	// Dimensions are drawn from targetDims, whose own construction already
	// guarantees uniqueness, so this FromPairs call cannot fail.
	built, _ := coordinate.FromPairs(date, pairs)
	return built
}

// detectCycles walks the (Task -> output Data -> consuming Task) projection
// (spec §4.5, §3 invariant 4). Grounded on the teacher's
// internal/dag.DetectCycles DFS with a visited/in-stack color array.
func detectCycles(s *store.Store) error {
	producer := map[*graphitem.Item]*graphitem.Item{}
	var tasks []*graphitem.Item
	s.IterItems(func(name string, item *graphitem.Item) {
		if item.IsTask() {
			tasks = append(tasks, item)
			for _, e := range item.Outputs {
				producer[e.Sink] = item
			}
		}
	})

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[*graphitem.Item]int{}

	var visit func(t *graphitem.Item) error
	visit = func(t *graphitem.Item) error {
		color[t] = gray
		for _, e := range append(append([]*graphitem.Edge{}, t.Inputs...), t.WaitOns...) {
			dep, ok := producer[e.Source]
			if !ok {
				continue
			}
			switch color[dep] {
			case white:
				if err := visit(dep); err != nil {
					return err
				}
			case gray:
				return werr.New(werr.Cyclic,
					fmt.Sprintf("cycle detected through task %s", dep.Name+dep.Coordinate.Key()),
					[]string{t.Name, dep.Name}, &dep.Coordinate)
			}
		}
		color[t] = black
		return nil
	}

	for _, t := range tasks {
		if color[t] == white {
			if err := visit(t); err != nil {
				return err
			}
		}
	}
	return nil
}
