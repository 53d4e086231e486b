package graphitem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/workgraph/internal/coordinate"
)

func TestItem_ID(t *testing.T) {
	task := NewTask("icon", coordinate.New(nil, nil), "demo.icon", nil)
	assert.Equal(t, "icon", task.ID().String())
}

func TestAddEdge_Ownership(t *testing.T) {
	task := NewTask("icon", coordinate.New(nil, nil), "demo.icon", nil)
	data := NewData("icon_output", coordinate.New(nil, nil), Generated, nil)

	AddEdge(&Edge{Source: task, Sink: data, Port: "main", Role: Output})
	assert.Len(t, task.Outputs, 1)
	assert.Empty(t, data.Inputs)

	consumer := NewTask("cleanup", coordinate.New(nil, nil), "demo.cleanup", nil)
	AddEdge(&Edge{Source: data, Sink: consumer, Port: "main", Role: Input})
	assert.Len(t, consumer.Inputs, 1)

	AddEdge(&Edge{Source: data, Sink: consumer, Role: WaitOn})
	assert.Len(t, consumer.WaitOns, 1)
}
