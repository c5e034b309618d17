// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/lyrachain/lyra-crypto/internal/falconcrypto"
)

// Falcon512PublicKey is the raw Falcon public key, sized by the linked
// parameter set (deterministic Falcon-1024; see internal/falconcrypto).
type Falcon512PublicKey [falconcrypto.PublicKeySize]byte

func (k Falcon512PublicKey) KeyType() KeyType { return FALCON512 }
func (k Falcon512PublicKey) KeyData() []byte  { return k[:] }
func (k Falcon512PublicKey) String() string   { return encodeText(FALCON512, k[:]) }

// GoString renders the bare base58 form used in diagnostics.
func (k Falcon512PublicKey) GoString() string { return base58.Encode(k[:]) }

func (k Falcon512PublicKey) MarshalBinary() ([]byte, error) {
	return encodeBinary(FALCON512, k[:]), nil
}

func (k Falcon512PublicKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (Falcon512PublicKey) sealedPublicKey() {}

// Falcon512SecretKey is the Falcon secret key followed by its public key.
// The scheme cannot re-derive the public key from the secret key, so the
// keypair buffer carries both, the same way the ED25519 encoding does.
type Falcon512SecretKey [falconcrypto.SecretKeySize]byte

func (k Falcon512SecretKey) KeyType() KeyType { return FALCON512 }
func (k Falcon512SecretKey) KeyData() []byte  { return k[:] }
func (k Falcon512SecretKey) String() string   { return encodeText(FALCON512, k[:]) }

// GoString renders only the secret half, in bare base58.
func (k Falcon512SecretKey) GoString() string {
	return base58.Encode(k[:falconcrypto.SecretKeySize-falconcrypto.PublicKeySize])
}

func (k Falcon512SecretKey) MarshalBinary() ([]byte, error) {
	return encodeBinary(FALCON512, k[:]), nil
}

func (k Falcon512SecretKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// PublicKey returns the verifying key stored in the trailing half of the
// keypair buffer.
func (k Falcon512SecretKey) PublicKey() PublicKey {
	var pub Falcon512PublicKey
	copy(pub[:], falconcrypto.PublicFromSecret(k[:]))
	return pub
}

// Sign produces a detached constant-size signature over data. Falcon
// signing is deterministic for a given key and input.
func (k Falcon512SecretKey) Sign(data []byte) (Signature, error) {
	raw, err := falconcrypto.SignDetached(k[:], data)
	if err != nil {
		return nil, err
	}
	var sig Falcon512Signature
	copy(sig[:], raw)
	return sig, nil
}

// SignWithSeed signs data with caller-provided randomness. The linked
// scheme signs deterministically, so the seed does not influence the
// output; it is accepted for interface compatibility.
func (k Falcon512SecretKey) SignWithSeed(data, _ []byte) (Signature, error) {
	return k.Sign(data)
}

func (Falcon512SecretKey) sealedSecretKey() {}

// Falcon512Signature is the fixed-size constant-time Falcon signature
// form.
type Falcon512Signature [falconcrypto.SignatureSize]byte

func (s Falcon512Signature) KeyType() KeyType { return FALCON512 }
func (s Falcon512Signature) Bytes() []byte    { return s[:] }
func (s Falcon512Signature) String() string   { return encodeText(FALCON512, s[:]) }

// GoString renders the bare base58 form used in diagnostics.
func (s Falcon512Signature) GoString() string { return base58.Encode(s[:]) }

func (s Falcon512Signature) MarshalBinary() ([]byte, error) {
	return encodeBinary(FALCON512, s[:]), nil
}

func (s Falcon512Signature) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s Falcon512Signature) Verify(data []byte, publicKey PublicKey) bool {
	pub, ok := publicKey.(Falcon512PublicKey)
	if !ok {
		return false
	}
	return falconcrypto.VerifyDetached(s[:], data, pub[:])
}

func (Falcon512Signature) sealedSignature() {}

func generateFalcon512SecretKey() (SecretKey, error) {
	secret, err := falconcrypto.GenerateKeyPairRandom()
	if err != nil {
		return nil, fmt.Errorf("falcon512 key generation: %w", err)
	}
	var key Falcon512SecretKey
	copy(key[:], secret)
	return key, nil
}

func falcon512SecretKeyFromSeed(seed string) (SecretKey, error) {
	buf := padSeed(seed)
	secret, err := falconcrypto.GenerateKeyPair(buf[:])
	if err != nil {
		return nil, fmt.Errorf("falcon512 key from seed: %w", err)
	}
	var key Falcon512SecretKey
	copy(key[:], secret)
	return key, nil
}
