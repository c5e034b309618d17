// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"fmt"

	btcec "github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/chacha20"
)

// seedBufferSize is the fixed derivation buffer a text seed is fitted
// into before use.
const seedBufferSize = 32

// SecretKeyFromSeed derives a key pair deterministically from a short text
// seed. The same seed and algorithm always produce the same key, which
// makes it convenient for tests and local tooling. Never derive production
// secrets from it.
func SecretKeyFromSeed(t KeyType, seed string) (SecretKey, error) {
	switch t {
	case ED25519:
		return ed25519SecretKeyFromSeed(seed), nil
	case SECP256K1:
		return secp256K1SecretKeyFromSeed(seed)
	case FALCON512:
		return falcon512SecretKeyFromSeed(seed)
	default:
		return nil, UnknownKeyTypeError{Value: t.String()}
	}
}

// PublicKeyFromSeed derives the public half of the key pair
// SecretKeyFromSeed produces.
func PublicKeyFromSeed(t KeyType, seed string) (PublicKey, error) {
	secret, err := SecretKeyFromSeed(t, seed)
	if err != nil {
		return nil, err
	}
	return secret.PublicKey(), nil
}

// padSeed fits the seed text into the fixed derivation buffer, truncating
// long seeds and right-padding short ones with spaces.
func padSeed(seed string) [seedBufferSize]byte {
	var buf [seedBufferSize]byte
	for i := range buf {
		buf[i] = ' '
	}
	copy(buf[:], seed)
	return buf
}

// secp256K1SecretKeyFromSeed draws scalar candidates from a stream cipher
// keyed by the padded seed until one lands in [1, N).
func secp256K1SecretKeyFromSeed(seed string) (SecretKey, error) {
	buf := padSeed(seed)
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(buf[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("secp256k1 key from seed: %w", err)
	}
	for {
		var candidate [secp256K1SecretKeySize]byte
		stream.XORKeyStream(candidate[:], candidate[:])
		var scalar btcec.ModNScalar
		if scalar.SetByteSlice(candidate[:]) || scalar.IsZero() {
			continue
		}
		return Secp256K1SecretKey(candidate), nil
	}
}
