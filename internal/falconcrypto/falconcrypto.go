// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// Package falconcrypto adapts the linked Falcon implementation to the
// fixed-size operations the key layer needs: seeded key generation,
// detached constant-size signatures, and verification.
//
// The linked scheme is deterministic Falcon-1024 (degree n=1024, 1793-byte
// public keys), not a 512-degree parameter set. All sizes here come from
// its published constants.
//
// The scheme cannot re-derive the public key from the secret key, so the
// secret buffer handed out by GenerateKeyPair carries the raw secret key
// followed by the public key. PublicFromSecret reads the trailing half.
package falconcrypto

import (
	"crypto/rand"
	"fmt"

	"github.com/algorand/falcon"

	"github.com/lyrachain/lyra-crypto/internal/secmem"
)

// Sizes of the raw encodings, as published by the linked parameter set.
const (
	PublicKeySize = falcon.PublicKeySize
	SecretKeySize = falcon.PrivateKeySize + falcon.PublicKeySize
	SignatureSize = falcon.CTSignatureSize

	// SeedSize is the keygen seed length.
	SeedSize = 48
)

// GenerateKeyPair derives a key pair from seed. The same seed always
// produces the same pair. The returned buffer is secret||public.
func GenerateKeyPair(seed []byte) ([]byte, error) {
	pub, priv, err := falcon.GenerateKey(seed)
	if err != nil {
		return nil, fmt.Errorf("falcon key generation: %w", err)
	}
	secret := make([]byte, 0, SecretKeySize)
	secret = append(secret, priv[:]...)
	secret = append(secret, pub[:]...)
	secmem.ZeroBytes(priv[:])
	return secret, nil
}

// GenerateKeyPairRandom draws a fresh keygen seed from the system's
// secure random source.
func GenerateKeyPairRandom() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("falcon keygen seed: %w", err)
	}
	defer secmem.ZeroBytes(seed)
	return GenerateKeyPair(seed)
}

// PublicFromSecret returns the public half stored in a secret||public
// buffer produced by GenerateKeyPair.
func PublicFromSecret(secret []byte) []byte {
	return secret[falcon.PrivateKeySize:]
}

// SignDetached signs data and converts the signature to the fixed-size
// constant-time form. Signing is deterministic for a given key and input.
func SignDetached(secret, data []byte) ([]byte, error) {
	var priv falcon.PrivateKey
	copy(priv[:], secret[:falcon.PrivateKeySize])
	defer secmem.ZeroBytes(priv[:])

	compressed, err := priv.SignCompressed(data)
	if err != nil {
		return nil, fmt.Errorf("falcon sign: %w", err)
	}
	ct, err := compressed.ConvertToCT()
	if err != nil {
		return nil, fmt.Errorf("falcon signature conversion: %w", err)
	}
	return ct[:], nil
}

// VerifyDetached reports whether sig is a valid signature over data under
// public. Malformed inputs verify as false, never as an error.
func VerifyDetached(sig, data, public []byte) bool {
	if len(sig) != SignatureSize || len(public) != PublicKeySize {
		return false
	}
	var pub falcon.PublicKey
	copy(pub[:], public)
	var ct falcon.CTSignature
	copy(ct[:], sig)
	return pub.VerifyCTSignature(ct, data) == nil
}
