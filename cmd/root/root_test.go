package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegistersSharedFlags(t *testing.T) {
	Init()

	draft := Cmd.PersistentFlags().Lookup("draft")
	require.NotNil(t, draft)
	assert.Equal(t, "d", draft.Shorthand)
	assert.Equal(t, "draft.yaml", draft.DefValue)

	output := Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}

func TestCmdMetadata(t *testing.T) {
	assert.Equal(t, "parsectl", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.PersistentPreRunE)
}

func TestDraftPath_WithoutContainer(t *testing.T) {
	Ctr = nil
	SharedFlags.Draft = "session.yaml"
	assert.Equal(t, "session.yaml", DraftPath())
}
