package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/workgraph/internal/ir"
)

func TestNew_ReturnsView(t *testing.T) {
	wf := ir.Workflow{
		Available: []ir.DataTemplate{{Name: "forcing"}},
		Tasks:     map[string]ir.TaskTemplate{},
	}

	v, err := New(wf)
	require.NoError(t, err)
	require.Len(t, v.Data(), 1)
	assert.Equal(t, "forcing", v.Data()[0].Name)
	assert.Empty(t, v.Tasks())
}

func TestNew_PropagatesFatalError(t *testing.T) {
	wf := ir.Workflow{
		Cycles: []ir.Cycle{{Name: "c", TaskRefs: []ir.TaskRef{{Name: "ghost"}}}},
		Tasks:  map[string]ir.TaskTemplate{},
	}
	_, err := New(wf)
	require.Error(t, err)
}
