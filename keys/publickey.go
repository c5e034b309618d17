// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"bytes"
	"crypto/ed25519"

	"github.com/lyrachain/lyra-crypto/internal/falconcrypto"
)

// PublicKey is a verifying key of one of the supported algorithms. The set
// of implementations is closed: exactly ED25519PublicKey, Secp256K1PublicKey
// and Falcon512PublicKey satisfy it. All three are array-backed value types,
// so two PublicKey values compare equal under == exactly when both the
// algorithm and the raw key bytes match, and any of them can serve as a map
// key.
type PublicKey interface {
	// KeyType reports the algorithm the key belongs to.
	KeyType() KeyType
	// KeyData returns a copy of the raw key material, without the
	// discriminant.
	KeyData() []byte
	// String renders the canonical "<algorithm>:<base58>" form.
	String() string
	// MarshalBinary renders the canonical discriminant-prefixed wire form.
	MarshalBinary() ([]byte, error)

	sealedPublicKey()
}

// EmptyPublicKey returns the all-zero placeholder key for the given
// algorithm. It round-trips through both encodings but never verifies
// anything.
func EmptyPublicKey(t KeyType) PublicKey {
	switch t {
	case ED25519:
		return ED25519PublicKey{}
	case SECP256K1:
		return Secp256K1PublicKey{}
	case FALCON512:
		return Falcon512PublicKey{}
	default:
		panic("keys: invalid key type " + t.String())
	}
}

// ParsePublicKey decodes the canonical text form. Input without an
// algorithm prefix is treated as a legacy ED25519 key.
func ParsePublicKey(value string) (PublicKey, error) {
	keyType, payload, err := splitKeyTypeData(value)
	if err != nil {
		return nil, err
	}
	data, err := decodeBase58(payload, publicKeySize(keyType))
	if err != nil {
		return nil, err
	}
	return publicKeyFromData(keyType, data), nil
}

// DecodePublicKey decodes the canonical binary form.
func DecodePublicKey(data []byte) (PublicKey, error) {
	keyType, payload, err := decodeBinary(data, publicKeySize)
	if err != nil {
		return nil, err
	}
	return publicKeyFromData(keyType, payload), nil
}

// PublicKeyFromParts builds a PublicKey from an algorithm tag and raw key
// material. The length must match the algorithm's fixed size.
func PublicKeyFromParts(t KeyType, data []byte) (PublicKey, error) {
	if !t.valid() {
		return nil, UnknownKeyTypeError{Value: t.String()}
	}
	if expected := publicKeySize(t); len(data) != expected {
		return nil, InvalidLengthError{Expected: expected, Received: len(data)}
	}
	return publicKeyFromData(t, data), nil
}

// ComparePublicKeys orders keys by algorithm discriminant first, then by
// raw bytes. The result follows the bytes.Compare convention.
func ComparePublicKeys(a, b PublicKey) int {
	if at, bt := a.KeyType(), b.KeyType(); at != bt {
		if at < bt {
			return -1
		}
		return 1
	}
	return bytes.Compare(a.KeyData(), b.KeyData())
}

func publicKeySize(t KeyType) int {
	switch t {
	case ED25519:
		return ed25519.PublicKeySize
	case SECP256K1:
		return secp256K1PublicKeySize
	case FALCON512:
		return falconcrypto.PublicKeySize
	default:
		panic("keys: invalid key type " + t.String())
	}
}

func publicKeyFromData(t KeyType, data []byte) PublicKey {
	switch t {
	case ED25519:
		var key ED25519PublicKey
		copy(key[:], data)
		return key
	case SECP256K1:
		var key Secp256K1PublicKey
		copy(key[:], data)
		return key
	default:
		var key Falcon512PublicKey
		copy(key[:], data)
		return key
	}
}
