// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package signer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lyrachain/lyra-crypto/account"
	"github.com/lyrachain/lyra-crypto/internal/fsutil"
	"github.com/lyrachain/lyra-crypto/keys"
)

// KeyFile is the on-disk JSON credential format. Keys serialize in their
// canonical text form. On read, the secret key accepts the legacy field
// name "private_key" as an alias of "secret_key"; supplying both is an
// error.
type KeyFile struct {
	AccountID account.ID
	PublicKey keys.PublicKey
	SecretKey keys.SecretKey
}

type keyFileJSON struct {
	AccountID string `json:"account_id"`
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
}

func (f KeyFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(keyFileJSON{
		AccountID: f.AccountID.String(),
		PublicKey: f.PublicKey.String(),
		SecretKey: f.SecretKey.String(),
	})
}

func (f *KeyFile) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var accountID, publicKey, secretKey *string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		field := tok.(string)
		switch field {
		case "account_id":
			if accountID != nil {
				return fmt.Errorf("duplicate field %q", field)
			}
			accountID = new(string)
			err = dec.Decode(accountID)
		case "public_key":
			if publicKey != nil {
				return fmt.Errorf("duplicate field %q", field)
			}
			publicKey = new(string)
			err = dec.Decode(publicKey)
		case "secret_key", "private_key":
			if secretKey != nil {
				return fmt.Errorf("duplicate field %q", "secret_key")
			}
			secretKey = new(string)
			err = dec.Decode(secretKey)
		default:
			var ignored json.RawMessage
			err = dec.Decode(&ignored)
		}
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
	}

	if accountID == nil {
		return fmt.Errorf("missing field %q", "account_id")
	}
	if publicKey == nil {
		return fmt.Errorf("missing field %q", "public_key")
	}
	if secretKey == nil {
		return fmt.Errorf("missing field %q", "secret_key")
	}

	parsedID, err := account.Parse(*accountID)
	if err != nil {
		return err
	}
	parsedPublic, err := keys.ParsePublicKey(*publicKey)
	if err != nil {
		return fmt.Errorf("field %q: %w", "public_key", err)
	}
	parsedSecret, err := keys.ParseSecretKey(*secretKey)
	if err != nil {
		return fmt.Errorf("field %q: %w", "secret_key", err)
	}
	if parsedPublic != parsedSecret.PublicKey() {
		return fmt.Errorf("public key %s does not match the secret key", parsedPublic)
	}

	f.AccountID = parsedID
	f.PublicKey = parsedPublic
	f.SecretKey = parsedSecret
	return nil
}

// WriteToFile persists the key file as indented JSON, readable by the
// owner only.
func (f KeyFile) WriteToFile(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding key file: %w", err)
	}
	if err := fsutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing key file %s: %w", path, err)
	}
	return nil
}

// ReadKeyFile loads and validates a key file from disk.
func ReadKeyFile(path string) (*KeyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file %s: %w", path, err)
	}
	var keyFile KeyFile
	if err := json.Unmarshal(data, &keyFile); err != nil {
		return nil, fmt.Errorf("parsing key file %s: %w", path, err)
	}
	return &keyFile, nil
}
