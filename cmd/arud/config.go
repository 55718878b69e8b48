package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/alfarahidi/arud/poem"
)

// fileConfig mirrors the analysis options in ~/.arud.yaml. Flags given
// on the command line win over the file.
type fileConfig struct {
	VowelTolerance *float64 `yaml:"vowel_tolerance"`
	MinConfidence  *float64 `yaml:"min_confidence"`
	Workers        *int     `yaml:"workers"`
}

// opts is the resolved analysis configuration for this invocation.
var opts = poem.DefaultOptions()

// loadConfig layers defaults, the config file, then explicit flags.
func loadConfig() error {
	path := cfgPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".arud.yaml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return fmt.Errorf("config %s: %w", path, err)
			}
			if fc.VowelTolerance != nil {
				opts.VowelTolerance = *fc.VowelTolerance
			}
			if fc.MinConfidence != nil {
				opts.MinConfidence = *fc.MinConfidence
			}
			if fc.Workers != nil {
				opts.Workers = *fc.Workers
			}
			logger.Debug("config loaded", zap.String("path", path))
		case errors.Is(err, os.ErrNotExist) && cfgPath == "":
			// No default config file is fine.
		default:
			return fmt.Errorf("config %s: %w", path, err)
		}
	}

	if tolerance >= 0 {
		opts.VowelTolerance = tolerance
	}
	if confidence >= 0 {
		opts.MinConfidence = confidence
	}
	if workers > 0 {
		opts.Workers = workers
	}

	return nil
}
