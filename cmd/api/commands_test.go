package main

import (
	"bytes"
	"testing"

	"estimaciones_obra/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.NotNil(t, root.Flags().Lookup("migrate"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestMigrateCommand_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"migrate"})

	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownStorageDriver)
}

func TestServeCommand_PostgresNeedsURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	root := newRootCommand()
	root.SetArgs([]string{"serve"})

	assert.Error(t, root.Execute())
}
