package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartCommand(t *testing.T) {
	cmd := newChartCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"comunidades"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Propietarios cuenta corriente")
	assert.Contains(t, out.String(), "7400")
}

func TestChartCommandUnknownVariant(t *testing.T) {
	cmd := newChartCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"inventado"})

	assert.Error(t, cmd.Execute())
}

func TestRootRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["chart"])
}
