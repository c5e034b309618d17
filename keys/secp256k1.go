// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"fmt"

	btcec "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/mr-tron/base58"
)

const (
	secp256K1PublicKeySize = 64
	secp256K1SecretKeySize = 32
	// r||s||recovery id, with the recovery id in the last byte.
	secp256K1SignatureSize = 65

	secp256K1DigestSize = 32
)

// compactHeaderOffset is the value the underlying library adds to the
// recovery id in its header-first compact encoding.
const compactHeaderOffset = 27

// Secp256K1PublicKey is the 64-byte uncompressed curve point, without the
// SEC1 0x04 prefix byte.
type Secp256K1PublicKey [secp256K1PublicKeySize]byte

func (k Secp256K1PublicKey) KeyType() KeyType { return SECP256K1 }
func (k Secp256K1PublicKey) KeyData() []byte  { return k[:] }
func (k Secp256K1PublicKey) String() string   { return encodeText(SECP256K1, k[:]) }

// GoString renders the bare base58 form used in diagnostics.
func (k Secp256K1PublicKey) GoString() string { return base58.Encode(k[:]) }

func (k Secp256K1PublicKey) MarshalBinary() ([]byte, error) {
	return encodeBinary(SECP256K1, k[:]), nil
}

func (k Secp256K1PublicKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (Secp256K1PublicKey) sealedPublicKey() {}

// uncompressed returns the 65-byte SEC1 uncompressed point encoding.
func (k Secp256K1PublicKey) uncompressed() []byte {
	buf := make([]byte, secp256K1PublicKeySize+1)
	buf[0] = 4
	copy(buf[1:], k[:])
	return buf
}

// Secp256K1SecretKey is a raw 32-byte scalar in the range [1, N).
type Secp256K1SecretKey [secp256K1SecretKeySize]byte

func (k Secp256K1SecretKey) KeyType() KeyType { return SECP256K1 }
func (k Secp256K1SecretKey) KeyData() []byte  { return k[:] }
func (k Secp256K1SecretKey) String() string   { return encodeText(SECP256K1, k[:]) }

// GoString renders the bare base58 form used in diagnostics.
func (k Secp256K1SecretKey) GoString() string { return base58.Encode(k[:]) }

func (k Secp256K1SecretKey) MarshalBinary() ([]byte, error) {
	return encodeBinary(SECP256K1, k[:]), nil
}

func (k Secp256K1SecretKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// PublicKey derives the uncompressed verifying key for the scalar.
func (k Secp256K1SecretKey) PublicKey() PublicKey {
	priv, _ := btcec.PrivKeyFromBytes(k[:])
	serialized := priv.PubKey().SerializeUncompressed()
	var pub Secp256K1PublicKey
	copy(pub[:], serialized[1:])
	return pub
}

// Sign produces a recoverable ECDSA signature over a 32-byte digest. The
// scheme signs digests, not messages; any other input length is an error.
func (k Secp256K1SecretKey) Sign(data []byte) (Signature, error) {
	if len(data) != secp256K1DigestSize {
		return nil, InvalidLengthError{Expected: secp256K1DigestSize, Received: len(data)}
	}
	priv, _ := btcec.PrivKeyFromBytes(k[:])
	compact := ecdsa.SignCompact(priv, data, false)
	// The library emits [header][r][s]; the wire layout keeps the
	// recovery id in the last byte instead.
	var sig Secp256K1Signature
	copy(sig[:secp256K1SignatureSize-1], compact[1:])
	sig[secp256K1SignatureSize-1] = compact[0] - compactHeaderOffset
	return sig, nil
}

func (k Secp256K1SecretKey) SignWithSeed(data, seed []byte) (Signature, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperation, SECP256K1)
}

func (Secp256K1SecretKey) sealedSecretKey() {}

// Secp256K1Signature is a 65-byte recoverable ECDSA signature laid out as
// r||s||recovery id.
type Secp256K1Signature [secp256K1SignatureSize]byte

func (s Secp256K1Signature) KeyType() KeyType { return SECP256K1 }
func (s Secp256K1Signature) Bytes() []byte    { return s[:] }
func (s Secp256K1Signature) String() string   { return encodeText(SECP256K1, s[:]) }

// GoString renders the bare base58 form used in diagnostics.
func (s Secp256K1Signature) GoString() string { return base58.Encode(s[:]) }

func (s Secp256K1Signature) MarshalBinary() ([]byte, error) {
	return encodeBinary(SECP256K1, s[:]), nil
}

func (s Secp256K1Signature) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s Secp256K1Signature) Verify(data []byte, publicKey PublicKey) bool {
	pub, ok := publicKey.(Secp256K1PublicKey)
	if !ok || len(data) != secp256K1DigestSize {
		return false
	}
	if s[secp256K1SignatureSize-1] >= 4 {
		return false
	}
	var r, sc btcec.ModNScalar
	if r.SetByteSlice(s[:32]) {
		return false
	}
	if sc.SetByteSlice(s[32:64]) {
		return false
	}
	parsed, err := btcec.ParsePubKey(pub.uncompressed())
	if err != nil {
		return false
	}
	return ecdsa.NewSignature(&r, &sc).Verify(data, parsed)
}

func (Secp256K1Signature) sealedSignature() {}

// Recover reconstructs the signing public key from the 32-byte digest the
// signature was produced over.
func (s Secp256K1Signature) Recover(digest []byte) (Secp256K1PublicKey, error) {
	var pub Secp256K1PublicKey
	if len(digest) != secp256K1DigestSize {
		return pub, InvalidLengthError{Expected: secp256K1DigestSize, Received: len(digest)}
	}
	if recoveryID := s[secp256K1SignatureSize-1]; recoveryID >= 4 {
		return pub, InvalidDataError{Message: fmt.Sprintf("invalid recovery id %d", recoveryID)}
	}
	compact := make([]byte, secp256K1SignatureSize)
	compact[0] = s[secp256K1SignatureSize-1] + compactHeaderOffset
	copy(compact[1:], s[:secp256K1SignatureSize-1])
	parsed, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return pub, InvalidDataError{Message: err.Error()}
	}
	serialized := parsed.SerializeUncompressed()
	copy(pub[:], serialized[1:])
	return pub, nil
}

// CheckSignatureValues reports whether the r and s components are below
// the curve order. With rejectUpper set, s values above the half order are
// rejected as well, which closes the ECDSA low-s malleability twin.
func (s Secp256K1Signature) CheckSignatureValues(rejectUpper bool) bool {
	var r, sc btcec.ModNScalar
	if r.SetByteSlice(s[:32]) {
		return false
	}
	if sc.SetByteSlice(s[32:64]) {
		return false
	}
	if rejectUpper && sc.IsOverHalfOrder() {
		return false
	}
	return true
}

// checkSecp256K1Scalar rejects material that is not a valid non-zero
// scalar below the curve order.
func checkSecp256K1Scalar(data []byte) error {
	var scalar btcec.ModNScalar
	if scalar.SetByteSlice(data) {
		return InvalidDataError{Message: "secret key overflows the curve order"}
	}
	if scalar.IsZero() {
		return InvalidDataError{Message: "secret key is zero"}
	}
	return nil
}

func generateSecp256K1SecretKey() (SecretKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("secp256k1 key generation: %w", err)
	}
	var key Secp256K1SecretKey
	copy(key[:], priv.Serialize())
	return key, nil
}
