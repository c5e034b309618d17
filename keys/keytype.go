// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// Package keys implements the multi-algorithm public keys, secret keys and
// signatures used across the chain, together with their canonical text and
// binary encodings.
//
// Three algorithms are supported: ED25519 for node and validator identity,
// SECP256K1 for recoverable ECDSA over 32-byte digests, and FALCON512 for
// post-quantum lattice signatures. Every key and signature value carries its
// algorithm, and the discriminant travels with the value in both encodings.
package keys

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyType identifies the signature algorithm behind a key or signature.
// The numeric values are wire discriminants and must never be reordered.
type KeyType uint8

const (
	ED25519 KeyType = iota
	SECP256K1
	FALCON512
)

// String returns the stable lowercase algorithm name. It doubles as the
// prefix of the text encoding and as the metric label value.
func (t KeyType) String() string {
	switch t {
	case ED25519:
		return "ed25519"
	case SECP256K1:
		return "secp256k1"
	case FALCON512:
		return "falcon512"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseKeyType parses an algorithm name, case-insensitively.
func ParseKeyType(value string) (KeyType, error) {
	switch strings.ToLower(value) {
	case "ed25519":
		return ED25519, nil
	case "secp256k1":
		return SECP256K1, nil
	case "falcon512":
		return FALCON512, nil
	default:
		return 0, UnknownKeyTypeError{Value: strings.ToLower(value)}
	}
}

// KeyTypeFromByte maps a wire discriminant back to its KeyType.
func KeyTypeFromByte(value byte) (KeyType, error) {
	switch value {
	case 0:
		return ED25519, nil
	case 1:
		return SECP256K1, nil
	case 2:
		return FALCON512, nil
	default:
		return 0, UnknownKeyTypeError{Value: strconv.Itoa(int(value))}
	}
}

func (t KeyType) valid() bool {
	return t <= FALCON512
}
