// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys_test

import (
	"errors"
	"testing"

	"github.com/lyrachain/lyra-crypto/keys"
)

func TestKeyTypeNames(t *testing.T) {
	cases := []struct {
		keyType keys.KeyType
		name    string
	}{
		{keys.ED25519, "ed25519"},
		{keys.SECP256K1, "secp256k1"},
		{keys.FALCON512, "falcon512"},
	}
	for _, tc := range cases {
		if got := tc.keyType.String(); got != tc.name {
			t.Errorf("KeyType(%d).String() = %q, want %q", tc.keyType, got, tc.name)
		}
		parsed, err := keys.ParseKeyType(tc.name)
		if err != nil {
			t.Fatalf("ParseKeyType(%q): %v", tc.name, err)
		}
		if parsed != tc.keyType {
			t.Errorf("ParseKeyType(%q) = %v, want %v", tc.name, parsed, tc.keyType)
		}
	}
}

func TestParseKeyTypeCaseInsensitive(t *testing.T) {
	for _, name := range []string{"ED25519", "Ed25519", "SECP256K1", "Falcon512"} {
		if _, err := keys.ParseKeyType(name); err != nil {
			t.Errorf("ParseKeyType(%q): %v", name, err)
		}
	}
}

func TestParseKeyTypeUnknown(t *testing.T) {
	_, err := keys.ParseKeyType("rsa2048")
	var unknown keys.UnknownKeyTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("ParseKeyType: got %v, want UnknownKeyTypeError", err)
	}
	if unknown.Value != "rsa2048" {
		t.Errorf("unknown value = %q, want %q", unknown.Value, "rsa2048")
	}
}

func TestKeyTypeDiscriminants(t *testing.T) {
	// Wire discriminants are part of the binary format and must not move.
	for b, want := range map[byte]keys.KeyType{0: keys.ED25519, 1: keys.SECP256K1, 2: keys.FALCON512} {
		got, err := keys.KeyTypeFromByte(b)
		if err != nil {
			t.Fatalf("KeyTypeFromByte(%d): %v", b, err)
		}
		if got != want {
			t.Errorf("KeyTypeFromByte(%d) = %v, want %v", b, got, want)
		}
	}
	if _, err := keys.KeyTypeFromByte(3); err == nil {
		t.Error("KeyTypeFromByte(3) succeeded, want error")
	}
}
