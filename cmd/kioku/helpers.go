package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/y-oshima/kioku/internal/config"
	"github.com/y-oshima/kioku/internal/database"
	"github.com/y-oshima/kioku/internal/review"
)

type StorageFlag string

// Set implements pflag.Value.
func (s *StorageFlag) Set(v string) error {
	switch v {
	case string(StorageYAML):
		*s = StorageYAML
	case string(StorageMySQL):
		*s = StorageMySQL
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, StorageYAML, StorageMySQL)
	}
	return nil
}

// String implements pflag.Value.
func (s *StorageFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *StorageFlag) Type() string {
	return "StorageFlag"
}

var (
	_ pflag.Value = (*StorageFlag)(nil)
)

const (
	StorageYAML  StorageFlag = "yaml"
	StorageMySQL StorageFlag = "mysql"
)

// storageMode overrides the configured storage mode when set on the command line.
var storageMode StorageFlag

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newRepository builds the review repository for the effective storage mode.
// The returned closer is a no-op for file storage.
func newRepository(cfg *config.Config) (review.Repository, func() error, error) {
	mode := cfg.Storage.Mode
	if storageMode != "" {
		mode = string(storageMode)
	}

	if mode == string(StorageMySQL) {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		return review.NewDBRepository(db), db.Close, nil
	}
	return review.NewYAMLRepository(cfg.Storage.ReviewsFile), func() error { return nil }, nil
}
