// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"crypto/ed25519"

	"github.com/lyrachain/lyra-crypto/internal/falconcrypto"
)

// Signature is a detached signature of one of the supported algorithms,
// carrying its algorithm tag. The set of implementations is closed and all
// variants are comparable value types.
type Signature interface {
	// KeyType reports the algorithm that produced the signature.
	KeyType() KeyType
	// Bytes returns a copy of the raw signature material, without the
	// discriminant.
	Bytes() []byte
	// Verify reports whether the signature is valid over data under
	// publicKey. It is total: an algorithm mismatch or malformed material
	// yields false, never an error.
	Verify(data []byte, publicKey PublicKey) bool
	// String renders the canonical "<algorithm>:<base58>" form.
	String() string
	// MarshalBinary renders the canonical discriminant-prefixed wire form.
	MarshalBinary() ([]byte, error)

	sealedSignature()
}

// EmptySignature returns the all-zero placeholder signature for the given
// algorithm. It never verifies against anything.
func EmptySignature(t KeyType) Signature {
	switch t {
	case ED25519:
		return ED25519Signature{}
	case SECP256K1:
		return Secp256K1Signature{}
	case FALCON512:
		return Falcon512Signature{}
	default:
		panic("keys: invalid key type " + t.String())
	}
}

// SignatureFromParts builds a Signature from an algorithm tag and raw
// signature material. The length must match the algorithm's fixed size.
func SignatureFromParts(t KeyType, data []byte) (Signature, error) {
	if !t.valid() {
		return nil, UnknownKeyTypeError{Value: t.String()}
	}
	if expected := signatureSize(t); len(data) != expected {
		return nil, InvalidLengthError{Expected: expected, Received: len(data)}
	}
	return signatureFromData(t, data), nil
}

// ParseSignature decodes the canonical text form. Input without an
// algorithm prefix is treated as a legacy ED25519 signature.
func ParseSignature(value string) (Signature, error) {
	keyType, payload, err := splitKeyTypeData(value)
	if err != nil {
		return nil, err
	}
	data, err := decodeBase58(payload, signatureSize(keyType))
	if err != nil {
		return nil, err
	}
	return signatureFromData(keyType, data), nil
}

// DecodeSignature decodes the canonical binary form.
func DecodeSignature(data []byte) (Signature, error) {
	keyType, payload, err := decodeBinary(data, signatureSize)
	if err != nil {
		return nil, err
	}
	return signatureFromData(keyType, payload), nil
}

func signatureSize(t KeyType) int {
	switch t {
	case ED25519:
		return ed25519.SignatureSize
	case SECP256K1:
		return secp256K1SignatureSize
	case FALCON512:
		return falconcrypto.SignatureSize
	default:
		panic("keys: invalid key type " + t.String())
	}
}

func signatureFromData(t KeyType, data []byte) Signature {
	switch t {
	case ED25519:
		var sig ED25519Signature
		copy(sig[:], data)
		return sig
	case SECP256K1:
		var sig Secp256K1Signature
		copy(sig[:], data)
		return sig
	default:
		var sig Falcon512Signature
		copy(sig[:], data)
		return sig
	}
}
