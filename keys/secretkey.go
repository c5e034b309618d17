// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"crypto/ed25519"

	"github.com/lyrachain/lyra-crypto/internal/falconcrypto"
)

// SecretKey is a signing key of one of the supported algorithms. Like
// PublicKey it is a closed set of array-backed value types, one per
// algorithm.
type SecretKey interface {
	// KeyType reports the algorithm the key belongs to.
	KeyType() KeyType
	// KeyData returns a copy of the raw buffer backing the key. For
	// ED25519 this is the full 64-byte keypair encoding, for FALCON512
	// the secret||public buffer.
	KeyData() []byte
	// PublicKey derives the matching verifying key.
	PublicKey() PublicKey
	// Sign produces a detached signature over data. SECP256K1 signs
	// 32-byte digests only and rejects any other input length.
	Sign(data []byte) (Signature, error)
	// SignWithSeed signs using explicit signing randomness. Only
	// FALCON512 accepts it; the other algorithms report
	// ErrUnsupportedOperation.
	SignWithSeed(data, seed []byte) (Signature, error)
	// String renders the canonical "<algorithm>:<base58>" form.
	String() string
	// MarshalBinary renders the canonical discriminant-prefixed wire form.
	MarshalBinary() ([]byte, error)

	sealedSecretKey()
}

// GenerateSecretKey produces a fresh key pair of the given algorithm from
// the system's secure random source.
func GenerateSecretKey(t KeyType) (SecretKey, error) {
	switch t {
	case ED25519:
		return generateED25519SecretKey()
	case SECP256K1:
		return generateSecp256K1SecretKey()
	case FALCON512:
		return generateFalcon512SecretKey()
	default:
		return nil, UnknownKeyTypeError{Value: t.String()}
	}
}

// ParseSecretKey decodes the canonical text form. Input without an
// algorithm prefix is treated as a legacy ED25519 key.
func ParseSecretKey(value string) (SecretKey, error) {
	keyType, payload, err := splitKeyTypeData(value)
	if err != nil {
		return nil, err
	}
	data, err := decodeBase58(payload, secretKeySize(keyType))
	if err != nil {
		return nil, err
	}
	return secretKeyFromData(keyType, data)
}

// DecodeSecretKey decodes the canonical binary form.
func DecodeSecretKey(data []byte) (SecretKey, error) {
	keyType, payload, err := decodeBinary(data, secretKeySize)
	if err != nil {
		return nil, err
	}
	return secretKeyFromData(keyType, payload)
}

func secretKeySize(t KeyType) int {
	switch t {
	case ED25519:
		return ed25519.PrivateKeySize
	case SECP256K1:
		return secp256K1SecretKeySize
	case FALCON512:
		return falconcrypto.SecretKeySize
	default:
		panic("keys: invalid key type " + t.String())
	}
}

func secretKeyFromData(t KeyType, data []byte) (SecretKey, error) {
	switch t {
	case ED25519:
		var key ED25519SecretKey
		copy(key[:], data)
		return key, nil
	case SECP256K1:
		if err := checkSecp256K1Scalar(data); err != nil {
			return nil, err
		}
		var key Secp256K1SecretKey
		copy(key[:], data)
		return key, nil
	default:
		var key Falcon512SecretKey
		copy(key[:], data)
		return key, nil
	}
}
