package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-oshima/kioku/internal/testutil"
)

func TestNewReviewCommand(t *testing.T) {
	cmd := newReviewCommand()

	assert.Equal(t, "review <item id>", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	scoreFlag := cmd.Flags().Lookup("score")
	require.NotNil(t, scoreFlag)
	assert.Equal(t, "-1", scoreFlag.DefValue)
}

func TestNewReviewCommand_ScoreOutOfRange(t *testing.T) {
	cmd := newReviewCommand()
	cmd.SetArgs([]string{"vocab-001", "--score", "120"})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--score must be between 0 and 100")
}

func TestNewReviewCommand_RunE_WithConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	oldConfigFile := configFile
	configFile = cfgPath
	defer func() { configFile = oldConfigFile }()

	cmd := newReviewCommand()
	cmd.SetArgs([]string{"vocab-001", "--score", "90"})

	err := cmd.Execute()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(tmpDir, "data", "reviews.yml"))
	assert.NoError(t, err, "review should be persisted")
	_, err = os.Stat(filepath.Join(tmpDir, "data", "streak.yml"))
	assert.NoError(t, err, "streak record should be persisted")
}
