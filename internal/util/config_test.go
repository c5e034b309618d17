// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lyrachain/lyra-crypto/internal/util"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBatchConfig(t *testing.T) {
	path := writeConfig(t, `
output_dir: keys
keys:
  - account_id: node0
    seed: node0
  - account_id: validator.lyra
    key_type: falcon512
    file: validator_key.json
`)
	config, err := util.LoadBatchConfig(path)
	if err != nil {
		t.Fatalf("LoadBatchConfig: %v", err)
	}
	if config.OutputDir != "keys" {
		t.Errorf("output dir = %q", config.OutputDir)
	}
	if len(config.Keys) != 2 {
		t.Fatalf("key count = %d", len(config.Keys))
	}
	if config.Keys[0].KeyType != "ed25519" {
		t.Errorf("default key type = %q, want ed25519", config.Keys[0].KeyType)
	}
	if config.Keys[0].File != "node0.json" {
		t.Errorf("derived file name = %q, want node0.json", config.Keys[0].File)
	}
	if config.Keys[1].File != "validator_key.json" {
		t.Errorf("explicit file name = %q", config.Keys[1].File)
	}
}

func TestLoadBatchConfigErrors(t *testing.T) {
	if _, err := util.LoadBatchConfig(writeConfig(t, "output_dir: keys\n")); err == nil {
		t.Error("empty key list accepted")
	}
	if _, err := util.LoadBatchConfig(writeConfig(t, "keys:\n  - key_type: ed25519\n")); err == nil {
		t.Error("missing account_id accepted")
	}
	if _, err := util.LoadBatchConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
