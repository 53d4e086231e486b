package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/workgraph/internal/ir"
	"github.com/vk/workgraph/internal/temporal"
)

func mustDate(t *testing.T, s string) temporal.Date {
	t.Helper()
	d, err := temporal.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustDuration(t *testing.T, s string) temporal.Duration {
	t.Helper()
	d, err := temporal.ParseDuration(s)
	require.NoError(t, err)
	return d
}

func TestBuild_DeterministicOrder(t *testing.T) {
	start := mustDate(t, "2026-01-01")
	stop := mustDate(t, "2026-06-01")
	wf := ir.Workflow{
		StartDate: start,
		StopDate:  stop,
		Cycles: []ir.Cycle{{
			Name: "icon_cycle",
			Cycling: &ir.Cycling{
				Start: start, Stop: stop, Period: mustDuration(t, "P2M"),
			},
			TaskRefs: []ir.TaskRef{{Name: "icon"}},
		}},
		Tasks: map[string]ir.TaskTemplate{"icon": {}},
	}

	first, err := Build(wf)
	require.NoError(t, err)
	second, err := Build(wf)
	require.NoError(t, err)

	firstTasks, secondTasks := first.Tasks(), second.Tasks()
	require.Len(t, firstTasks, 3)
	require.Len(t, secondTasks, 3)
	for i := range firstTasks {
		assert.True(t, firstTasks[i].Coordinate.Equal(secondTasks[i].Coordinate))
	}
}

func TestBuild_FatalErrorPropagates(t *testing.T) {
	wf := ir.Workflow{
		Cycles: []ir.Cycle{{Name: "c", TaskRefs: []ir.TaskRef{{Name: "ghost"}}}},
		Tasks:  map[string]ir.TaskTemplate{},
	}
	_, err := Build(wf)
	require.Error(t, err)
}

func TestWorkflow_Lookup(t *testing.T) {
	wf := ir.Workflow{
		Available: []ir.DataTemplate{{Name: "forcing"}},
		Tasks:     map[string]ir.TaskTemplate{},
	}
	w, err := Build(wf)
	require.NoError(t, err)

	item, err := w.Lookup("forcing", w.Data()[0].Coordinate)
	require.NoError(t, err)
	assert.Equal(t, "forcing", item.Name)
}

func TestWorkflow_Cycles(t *testing.T) {
	wf := ir.Workflow{
		Cycles: []ir.Cycle{{Name: "only_cycle", TaskRefs: []ir.TaskRef{{Name: "icon"}}}},
		Tasks:  map[string]ir.TaskTemplate{"icon": {}},
	}
	w, err := Build(wf)
	require.NoError(t, err)
	require.Len(t, w.Cycles(), 1)
	assert.Equal(t, "only_cycle", w.Cycles()[0].Name)
}
