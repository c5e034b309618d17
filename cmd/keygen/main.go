// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// keygen generates node and account key files.
//
// Usage:
//
//	keygen -account-id <id> [-key-type ed25519|secp256k1|falcon512] [-seed <seed>] [-output <file>]
//	keygen -config <batch.yaml>
//
// In single mode one key file is written. In batch mode a YAML config
// describes a list of keys and an output directory:
//
//	output_dir: keys
//	keys:
//	  - account_id: node0
//	    key_type: ed25519
//	    seed: node0
//	  - account_id: validator.lyra
//	    key_type: falcon512
//
// Key files are written with owner-only permissions. Seeded keys are for
// tests and local networks; omit the seed for production keys.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lyrachain/lyra-crypto/account"
	"github.com/lyrachain/lyra-crypto/internal/fsutil"
	"github.com/lyrachain/lyra-crypto/internal/util"
	"github.com/lyrachain/lyra-crypto/keys"
	"github.com/lyrachain/lyra-crypto/signer"
)

func main() {
	accountID := flag.String("account-id", "", "account the key belongs to")
	keyType := flag.String("key-type", "ed25519", "key algorithm (ed25519, secp256k1, falcon512)")
	seed := flag.String("seed", "", "deterministic derivation seed (random key if empty)")
	output := flag.String("output", "", "output file (derived from account id if empty)")
	configPath := flag.String("config", "", "batch config file (overrides single-key flags)")
	flag.Parse()

	util.InitLogger()

	if *configPath != "" {
		if err := runBatch(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *accountID == "" {
		fmt.Fprintln(os.Stderr, "Usage: keygen -account-id <id> [-key-type <type>] [-seed <seed>] [-output <file>]")
		fmt.Fprintln(os.Stderr, "       keygen -config <batch.yaml>")
		os.Exit(2)
	}

	path := *output
	if path == "" {
		path = *accountID + ".json"
	}
	if err := generateKey(*accountID, *keyType, *seed, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runBatch(configPath string) error {
	config, err := util.LoadBatchConfig(configPath)
	if err != nil {
		return err
	}
	if err := fsutil.MkdirAll(config.OutputDir); err != nil {
		return fmt.Errorf("creating output directory %s: %w", config.OutputDir, err)
	}
	for _, spec := range config.Keys {
		path := filepath.Join(config.OutputDir, spec.File)
		if err := generateKey(spec.AccountID, spec.KeyType, spec.Seed, path); err != nil {
			return err
		}
	}
	return nil
}

func generateKey(accountID, keyType, seed, path string) error {
	id, err := account.Parse(accountID)
	if err != nil {
		return err
	}
	parsedType, err := keys.ParseKeyType(keyType)
	if err != nil {
		return err
	}

	var s *signer.InMemorySigner
	if seed != "" {
		s, err = signer.FromSeed(id, parsedType, seed)
	} else {
		s, err = signer.FromRandom(id, parsedType)
	}
	if err != nil {
		return fmt.Errorf("generating %s key for %s: %w", parsedType, id, err)
	}

	if err := s.WriteToFile(path); err != nil {
		return err
	}
	util.Debug("wrote key file", "path", path, "account_id", id.String(), "key_type", parsedType.String())
	fmt.Printf("%s  %s  %s\n", path, id, s.PublicKey())
	return nil
}
