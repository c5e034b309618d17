// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package falconcrypto_test

import (
	"bytes"
	"testing"

	"github.com/lyrachain/lyra-crypto/internal/falconcrypto"
)

func TestGenerateKeyPairDeterministic(t *testing.T) {
	seed := make([]byte, falconcrypto.SeedSize)
	copy(seed, "deterministic")

	first, err := falconcrypto.GenerateKeyPair(seed)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if len(first) != falconcrypto.SecretKeySize {
		t.Fatalf("secret buffer length = %d, want %d", len(first), falconcrypto.SecretKeySize)
	}
	second, err := falconcrypto.GenerateKeyPair(seed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same seed produced different key pairs")
	}
}

func TestSignVerifyDetached(t *testing.T) {
	secret, err := falconcrypto.GenerateKeyPairRandom()
	if err != nil {
		t.Fatalf("GenerateKeyPairRandom: %v", err)
	}
	public := falconcrypto.PublicFromSecret(secret)
	if len(public) != falconcrypto.PublicKeySize {
		t.Fatalf("public key length = %d, want %d", len(public), falconcrypto.PublicKeySize)
	}

	data := []byte("falcon message")
	sig, err := falconcrypto.SignDetached(secret, data)
	if err != nil {
		t.Fatalf("SignDetached: %v", err)
	}
	if len(sig) != falconcrypto.SignatureSize {
		t.Fatalf("signature length = %d, want %d", len(sig), falconcrypto.SignatureSize)
	}
	if !falconcrypto.VerifyDetached(sig, data, public) {
		t.Error("signature did not verify")
	}
	if falconcrypto.VerifyDetached(sig, []byte("other message"), public) {
		t.Error("signature verified over different data")
	}

	other, err := falconcrypto.GenerateKeyPairRandom()
	if err != nil {
		t.Fatal(err)
	}
	if falconcrypto.VerifyDetached(sig, data, falconcrypto.PublicFromSecret(other)) {
		t.Error("signature verified under a different key")
	}

	if falconcrypto.VerifyDetached(sig[:10], data, public) {
		t.Error("truncated signature verified")
	}
}
