package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "shop", cmd.Use)
	assert.Contains(t, cmd.Long, "basket and favorites")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"browse"}, {"category"}, {"basket"}, {"basket", "add"}, {"basket", "decrease"},
		{"basket", "remove"}, {"basket", "set"}, {"favorite"}, {"favorites"}, {"click"},
		{"recommend"}, {"purchase"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	catalogFlag := cmd.PersistentFlags().Lookup("catalog")
	require.NotNil(t, catalogFlag)
	assert.Equal(t, "", catalogFlag.DefValue)
}

func TestBasketAddFlags(t *testing.T) {
	cmd := NewRootCommand()
	addCmd, _, err := cmd.Find([]string{"basket", "add"})
	require.NoError(t, err)

	qtyFlag := addCmd.Flags().Lookup("qty")
	require.NotNil(t, qtyFlag)
	assert.Equal(t, "q", qtyFlag.Shorthand)
	assert.Equal(t, "1", qtyFlag.DefValue)
}

func TestRecommendFlags(t *testing.T) {
	cmd := NewRootCommand()
	recommendCmd, _, err := cmd.Find([]string{"recommend"})
	require.NoError(t, err)

	productFlag := recommendCmd.Flags().Lookup("product")
	require.NotNil(t, productFlag)
	assert.Equal(t, "", productFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "yaml", "basket"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}
