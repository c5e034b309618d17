// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
)

// ED25519PublicKey is a raw 32-byte Ed25519 verifying key.
type ED25519PublicKey [ed25519.PublicKeySize]byte

func (k ED25519PublicKey) KeyType() KeyType { return ED25519 }
func (k ED25519PublicKey) KeyData() []byte  { return k[:] }
func (k ED25519PublicKey) String() string   { return encodeText(ED25519, k[:]) }

// GoString renders the bare base58 form used in diagnostics.
func (k ED25519PublicKey) GoString() string { return base58.Encode(k[:]) }

func (k ED25519PublicKey) MarshalBinary() ([]byte, error) {
	return encodeBinary(ED25519, k[:]), nil
}

func (k ED25519PublicKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (ED25519PublicKey) sealedPublicKey() {}

// ED25519SecretKey is the 64-byte Ed25519 keypair encoding: the 32-byte
// seed followed by the 32-byte public key the seed derives. Both halves
// are stored because the signing primitive consumes the full keypair.
type ED25519SecretKey [ed25519.PrivateKeySize]byte

func (k ED25519SecretKey) KeyType() KeyType { return ED25519 }
func (k ED25519SecretKey) KeyData() []byte  { return k[:] }
func (k ED25519SecretKey) String() string   { return encodeText(ED25519, k[:]) }

// GoString renders only the seed half, in bare base58.
func (k ED25519SecretKey) GoString() string { return base58.Encode(k[:ed25519.SeedSize]) }

func (k ED25519SecretKey) MarshalBinary() ([]byte, error) {
	return encodeBinary(ED25519, k[:]), nil
}

func (k ED25519SecretKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// PublicKey returns the verifying key stored in the trailing half of the
// keypair encoding.
func (k ED25519SecretKey) PublicKey() PublicKey {
	var pub ED25519PublicKey
	copy(pub[:], k[ed25519.SeedSize:])
	return pub
}

// Sign produces a deterministic detached Ed25519 signature over data.
func (k ED25519SecretKey) Sign(data []byte) (Signature, error) {
	var sig ED25519Signature
	copy(sig[:], ed25519.Sign(ed25519.PrivateKey(k[:]), data))
	return sig, nil
}

func (k ED25519SecretKey) SignWithSeed(data, seed []byte) (Signature, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperation, ED25519)
}

func (ED25519SecretKey) sealedSecretKey() {}

// ED25519Signature is a raw 64-byte Ed25519 signature.
type ED25519Signature [ed25519.SignatureSize]byte

func (s ED25519Signature) KeyType() KeyType { return ED25519 }
func (s ED25519Signature) Bytes() []byte    { return s[:] }
func (s ED25519Signature) String() string   { return encodeText(ED25519, s[:]) }

// GoString renders the bare base58 form used in diagnostics.
func (s ED25519Signature) GoString() string { return base58.Encode(s[:]) }

func (s ED25519Signature) MarshalBinary() ([]byte, error) {
	return encodeBinary(ED25519, s[:]), nil
}

func (s ED25519Signature) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s ED25519Signature) Verify(data []byte, publicKey PublicKey) bool {
	pub, ok := publicKey.(ED25519PublicKey)
	if !ok {
		return false
	}
	// The all-zero placeholder encodes a small-order point that would
	// accept the zero signature; it must never authenticate anything.
	if pub == (ED25519PublicKey{}) {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub[:]), data, s[:])
}

func (ED25519Signature) sealedSignature() {}

func generateED25519SecretKey() (SecretKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("ed25519 key generation: %w", err)
	}
	var key ED25519SecretKey
	copy(key[:], priv)
	return key, nil
}

func ed25519SecretKeyFromSeed(seed string) SecretKey {
	buf := padSeed(seed)
	priv := ed25519.NewKeyFromSeed(buf[:])
	var key ED25519SecretKey
	copy(key[:], priv)
	return key
}
