package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-oshima/kioku/internal/testutil"
)

func TestNewStreakCommand(t *testing.T) {
	cmd := newStreakCommand()

	assert.Equal(t, "streak", cmd.Use)
	assert.Equal(t, "Show the current study streak", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestNewStreakCommand_RunE_WithConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	oldConfigFile := configFile
	configFile = cfgPath
	defer func() { configFile = oldConfigFile }()

	cmd := newStreakCommand()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)
}
