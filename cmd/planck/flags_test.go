package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGlobalFlags(t *testing.T) {
	old := *globalFlags
	defer func() { *globalFlags = old }()

	globalFlags.Verbose = true
	globalFlags.Quiet = false

	flags, err := ParseGlobalFlags(&cobra.Command{})
	require.NoError(t, err)
	assert.True(t, flags.IsVerbose())
	assert.False(t, flags.IsQuiet())
}

func TestParseGlobalFlags_VerboseQuietConflict(t *testing.T) {
	old := *globalFlags
	defer func() { *globalFlags = old }()

	globalFlags.Verbose = true
	globalFlags.Quiet = true

	_, err := ParseGlobalFlags(&cobra.Command{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be used together")
}

func TestGlobalFlags_QuietSuppressesVerbose(t *testing.T) {
	flags := &GlobalFlags{Verbose: true, Quiet: true}

	assert.False(t, flags.IsVerbose())
	assert.True(t, flags.IsQuiet())
}
