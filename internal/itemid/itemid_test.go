package itemid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/workgraph/internal/coordinate"
	"github.com/zclconf/go-cty/cty"
)

func TestID_String(t *testing.T) {
	coord := coordinate.New(nil, map[string]cty.Value{"member": cty.NumberIntVal(3)})
	id := New("forecast", coord)
	assert.Equal(t, "forecast[member=3]", id.String())
}

func TestID_Equal(t *testing.T) {
	coordA := coordinate.New(nil, map[string]cty.Value{"member": cty.NumberIntVal(3)})
	coordB := coordinate.New(nil, map[string]cty.Value{"member": cty.NumberIntVal(4)})

	a := New("forecast", coordA)
	b := New("forecast", coordA)
	c := New("forecast", coordB)
	d := New("other", coordA)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestSplitName(t *testing.T) {
	name, err := SplitName("forecast[member=3]")
	require.NoError(t, err)
	assert.Equal(t, "forecast", name)

	name, err = SplitName("forecast")
	require.NoError(t, err)
	assert.Equal(t, "forecast", name)
}
