// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package util

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeySpec describes one key file to generate.
type KeySpec struct {
	AccountID string `yaml:"account_id" description:"Account the key belongs to (required)"`
	KeyType   string `yaml:"key_type" description:"Key algorithm (ed25519, secp256k1, falcon512)" default:"ed25519"`
	Seed      string `yaml:"seed" description:"Deterministic derivation seed (random key if empty)"`
	File      string `yaml:"file" description:"Output file name (derived from account_id if empty)"`
}

// BatchConfig holds keygen batch settings.
type BatchConfig struct {
	OutputDir string    `yaml:"output_dir" description:"Directory key files are written to" default:"."`
	Keys      []KeySpec `yaml:"keys" description:"Key files to generate"`
}

// DefaultBatchConfig returns the default batch configuration.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		OutputDir: ".",
	}
}

// LoadBatchConfig loads a batch configuration from the specified path.
// Missing values are filled from defaults; an empty key list is an error.
func LoadBatchConfig(path string) (BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BatchConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then overlay config file values
	config := DefaultBatchConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return BatchConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if len(config.Keys) == 0 {
		return BatchConfig{}, fmt.Errorf("config %s lists no keys to generate", path)
	}
	for i := range config.Keys {
		spec := &config.Keys[i]
		if spec.AccountID == "" {
			return BatchConfig{}, fmt.Errorf("keys[%d]: account_id is required", i)
		}
		if spec.KeyType == "" {
			spec.KeyType = "ed25519"
		}
		if spec.File == "" {
			spec.File = strings.ReplaceAll(spec.AccountID, "/", "_") + ".json"
		}
	}

	return config, nil
}
