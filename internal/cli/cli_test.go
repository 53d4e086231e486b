package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"graph.hcl"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "graph.hcl", cfg.GraphPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_NoArgsShowsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"-log-format=xml", "graph.hcl"}, out)
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"-log-level=verbose", "graph.hcl"}, out)
	require.Error(t, err)
}
