// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/lyrachain/lyra-crypto/keys"
)

// Curve order of secp256k1, big-endian.
const secp256K1OrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func secpSignature(t *testing.T, r, s []byte, recoveryID byte) keys.Secp256K1Signature {
	t.Helper()
	raw := make([]byte, 65)
	copy(raw[32-len(r):32], r)
	copy(raw[64-len(s):64], s)
	raw[64] = recoveryID
	signature, err := keys.SignatureFromParts(keys.SECP256K1, raw)
	if err != nil {
		t.Fatalf("SignatureFromParts: %v", err)
	}
	return signature.(keys.Secp256K1Signature)
}

func TestSecp256K1Recover(t *testing.T) {
	digest := sha256.Sum256([]byte("123"))
	secretKey := seededKey(t, keys.SECP256K1, "test")
	publicKey := secretKey.PublicKey().(keys.Secp256K1PublicKey)

	signature, err := secretKey.Sign(digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	recovered, err := signature.(keys.Secp256K1Signature).Recover(digest[:])
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if recovered != publicKey {
		t.Errorf("recovered %v, want %v", recovered, publicKey)
	}
}

func TestSecp256K1RecoverMalformed(t *testing.T) {
	digest := sha256.Sum256([]byte("123"))
	secretKey := seededKey(t, keys.SECP256K1, "test")
	signature := mustSign(t, secretKey, digest[:]).(keys.Secp256K1Signature)

	if _, err := signature.Recover(digest[:16]); err == nil {
		t.Error("Recover accepted a short digest")
	}

	bad := signature
	bad[64] = 4
	var invalidData keys.InvalidDataError
	if _, err := bad.Recover(digest[:]); !errors.As(err, &invalidData) {
		t.Errorf("bad recovery id: got %v, want InvalidDataError", err)
	}
}

func TestSecp256K1SignRequiresDigest(t *testing.T) {
	secretKey := seededKey(t, keys.SECP256K1, "test")
	var invalidLength keys.InvalidLengthError
	if _, err := secretKey.Sign([]byte("123")); !errors.As(err, &invalidLength) {
		t.Fatalf("got %v, want InvalidLengthError", err)
	}
	if invalidLength.Expected != 32 {
		t.Errorf("expected length = %d, want 32", invalidLength.Expected)
	}
}

func TestSecp256K1VerifyNonDigest(t *testing.T) {
	digest := sha256.Sum256([]byte("123"))
	secretKey := seededKey(t, keys.SECP256K1, "test")
	signature := mustSign(t, secretKey, digest[:])
	if signature.Verify([]byte("123"), secretKey.PublicKey()) {
		t.Error("signature verified over a non-digest input")
	}
}

func TestSecp256K1VerifyBadRecoveryID(t *testing.T) {
	digest := sha256.Sum256([]byte("123"))
	secretKey := seededKey(t, keys.SECP256K1, "test")
	signature := mustSign(t, secretKey, digest[:]).(keys.Secp256K1Signature)
	signature[64] = 4
	if signature.Verify(digest[:], secretKey.PublicKey()) {
		t.Error("signature with malformed recovery id verified")
	}
}

func TestCheckSignatureValues(t *testing.T) {
	order, err := hex.DecodeString(secp256K1OrderHex)
	if err != nil {
		t.Fatal(err)
	}
	orderMinusOne := make([]byte, 32)
	copy(orderMinusOne, order)
	orderMinusOne[31]-- // N-1: valid scalar in the upper half

	// Library signatures are already low-s.
	digest := sha256.Sum256([]byte("123"))
	secretKey := seededKey(t, keys.SECP256K1, "test")
	signed := mustSign(t, secretKey, digest[:]).(keys.Secp256K1Signature)
	if !signed.CheckSignatureValues(true) {
		t.Error("library signature rejected as malleable")
	}

	upperS := secpSignature(t, []byte{1}, orderMinusOne, 0)
	if !upperS.CheckSignatureValues(false) {
		t.Error("upper-half s rejected without rejectUpper")
	}
	if upperS.CheckSignatureValues(true) {
		t.Error("upper-half s accepted with rejectUpper")
	}

	overflowR := secpSignature(t, order, []byte{1}, 0)
	if overflowR.CheckSignatureValues(false) {
		t.Error("r at the curve order accepted")
	}
	overflowS := secpSignature(t, []byte{1}, order, 0)
	if overflowS.CheckSignatureValues(false) {
		t.Error("s at the curve order accepted")
	}
}

func TestSecp256K1SecretKeyValidation(t *testing.T) {
	var invalidData keys.InvalidDataError

	zero := make([]byte, 33)
	zero[0] = 1 // discriminant
	if _, err := keys.DecodeSecretKey(zero); !errors.As(err, &invalidData) {
		t.Errorf("zero scalar: got %v, want InvalidDataError", err)
	}

	overflow := make([]byte, 33)
	overflow[0] = 1
	for i := 1; i < len(overflow); i++ {
		overflow[i] = 0xff
	}
	if _, err := keys.DecodeSecretKey(overflow); !errors.As(err, &invalidData) {
		t.Errorf("overflowing scalar: got %v, want InvalidDataError", err)
	}
}

func mustSign(t *testing.T, secretKey keys.SecretKey, data []byte) keys.Signature {
	t.Helper()
	signature, err := secretKey.Sign(data)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return signature
}
