//go:build unit

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"migrate", "ingest", "offers", "repair-categories"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestOffersFlags(t *testing.T) {
	limit := offersCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "50", limit.DefValue)

	category := offersCmd.Flags().Lookup("category")
	require.NotNil(t, category)
	assert.Equal(t, "", category.DefValue)
}

func TestSubcommandsRejectArgs(t *testing.T) {
	for _, c := range []string{"migrate", "ingest", "offers", "repair-categories"} {
		cmd, _, err := rootCmd.Find([]string{c})
		require.NoError(t, err)
		assert.Error(t, cmd.Args(cmd, []string{"extra"}), c)
	}
}
