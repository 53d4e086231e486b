package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/workgraph/internal/coordinate"
	"github.com/vk/workgraph/internal/ir"
	"github.com/vk/workgraph/internal/store"
	"github.com/vk/workgraph/internal/temporal"
	"github.com/zclconf/go-cty/cty"
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

// S1-shaped fixture: bimonthly icon cycle Jan-Jun 2026, one task icon
// producing icon_output and icon_restart.
func s1Workflow(t *testing.T) ir.Workflow {
	t.Helper()
	return ir.Workflow{
		StartDate: mustDate(t, "2026-01-01"),
		StopDate:  mustDate(t, "2026-06-01"),
		Cycles: []ir.Cycle{{
			Name: "icon_cycle",
			Cycling: &ir.Cycling{
				Start:  mustDate(t, "2026-01-01"),
				Stop:   mustDate(t, "2026-06-01"),
				Period: mustDuration(t, "P2M"),
			},
			TaskRefs: []ir.TaskRef{{
				Name: "icon",
				Outputs: []ir.OutputRef{
					{Name: "icon_output"},
					{Name: "icon_restart"},
				},
			}},
		}},
		Tasks: map[string]ir.TaskTemplate{
			"icon": {Plugin: "icon-plugin"},
		},
		Generated: []ir.DataTemplate{
			{Name: "icon_output"},
			{Name: "icon_restart"},
		},
	}
}

func TestExpand_S1SimpleCycle(t *testing.T) {
	wf := s1Workflow(t)
	s := store.New()
	require.NoError(t, Expand(wf, s))

	iconArr := s.Array("icon")
	require.NotNil(t, iconArr)
	assert.Len(t, iconArr.Items(), 3, "Jan, Mar, May")

	outputArr := s.Array("icon_output")
	require.NotNil(t, outputArr)
	assert.Len(t, outputArr.Items(), 3)
}

func TestExpand_AvailableData(t *testing.T) {
	wf := ir.Workflow{
		Available: []ir.DataTemplate{{Name: "forcing"}},
		Tasks:     map[string]ir.TaskTemplate{},
	}
	s := store.New()
	require.NoError(t, Expand(wf, s))

	item, err := s.Lookup("forcing", coordinate.New(nil, nil))
	require.NoError(t, err)
	assert.True(t, item.IsData())
}

// S3-shaped fixture: parameter sweep over foo x bar.
func TestExpand_S3ParameterSweep(t *testing.T) {
	wf := ir.Workflow{
		Cycles: []ir.Cycle{{
			Name: "one_off",
			TaskRefs: []ir.TaskRef{{
				Name:    "icon",
				Outputs: []ir.OutputRef{{Name: "icon_output"}, {Name: "icon_restart"}},
			}},
		}},
		Tasks: map[string]ir.TaskTemplate{
			"icon": {Parameters: []string{"foo", "bar"}},
		},
		Generated: []ir.DataTemplate{
			{Name: "icon_output", Parameters: []string{"foo", "bar"}},
			{Name: "icon_restart", Parameters: []string{"foo", "bar"}},
		},
		Parameters: map[string][]cty.Value{
			"foo": {cty.NumberIntVal(0), cty.NumberIntVal(1)},
			"bar": {cty.NumberFloatVal(3.0)},
		},
	}
	s := store.New()
	require.NoError(t, Expand(wf, s))

	assert.Len(t, s.Array("icon").Items(), 2, "2 foo values x 1 bar value")
	assert.Len(t, s.Array("icon_output").Items(), 2)
}

func TestExpand_DuplicateCoordinateIsFatal(t *testing.T) {
	wf := ir.Workflow{
		Cycles: []ir.Cycle{
			{Name: "c1", TaskRefs: []ir.TaskRef{{Name: "icon"}}},
			{Name: "c2", TaskRefs: []ir.TaskRef{{Name: "icon"}}},
		},
		Tasks: map[string]ir.TaskTemplate{"icon": {}},
	}
	s := store.New()
	err := Expand(wf, s)
	require.Error(t, err, "two undated one-off cycles both instantiate icon at the empty coordinate")
}

func TestExpand_UnknownTaskName(t *testing.T) {
	wf := ir.Workflow{
		Cycles: []ir.Cycle{{Name: "c1", TaskRefs: []ir.TaskRef{{Name: "ghost"}}}},
		Tasks:  map[string]ir.TaskTemplate{},
	}
	s := store.New()
	err := Expand(wf, s)
	require.Error(t, err)
}
