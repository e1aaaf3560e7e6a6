package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-oshima/kioku/internal/config"
	"github.com/y-oshima/kioku/internal/review"
	"github.com/y-oshima/kioku/internal/testutil"
)

func TestStorageFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    StorageFlag
		wantErr bool
	}{
		{name: "yaml", value: "yaml", want: StorageYAML},
		{name: "mysql", value: "mysql", want: StorageMySQL},
		{name: "invalid", value: "postgres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag StorageFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestStorageFlag_String(t *testing.T) {
	flag := StorageYAML
	assert.Equal(t, "yaml", flag.String())

	var nilFlag *StorageFlag
	assert.Equal(t, "", nilFlag.String())
}

func TestNewRepository(t *testing.T) {
	t.Run("yaml mode", func(t *testing.T) {
		cfg := &config.Config{
			Storage: config.StorageConfig{
				Mode:        "yaml",
				ReviewsFile: t.TempDir() + "/reviews.yml",
			},
		}

		repo, closeRepo, err := newRepository(cfg)
		require.NoError(t, err)
		assert.IsType(t, &review.YAMLRepository{}, repo)
		assert.NoError(t, closeRepo())
	})

	t.Run("command line override wins", func(t *testing.T) {
		oldMode := storageMode
		storageMode = StorageYAML
		defer func() { storageMode = oldMode }()

		cfg := &config.Config{
			Storage: config.StorageConfig{
				Mode:        "mysql",
				ReviewsFile: t.TempDir() + "/reviews.yml",
			},
		}

		repo, closeRepo, err := newRepository(cfg)
		require.NoError(t, err)
		assert.IsType(t, &review.YAMLRepository{}, repo)
		assert.NoError(t, closeRepo())
	})
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	oldConfigFile := configFile
	configFile = cfgPath
	defer func() { configFile = oldConfigFile }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Storage.Mode)
	assert.Equal(t, 80, cfg.Study.GoodRecallThreshold)
}
