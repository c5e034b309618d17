// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// Package vrf implements the ECVRF-EDWARDS25519-SHA512-TAI suite from
// RFC 9381 over Ed25519 identity keys. The prover derives the VRF scalar
// from the 32-byte Ed25519 seed, so a node's signing key and VRF key share
// one secret.
package vrf

import (
	"crypto/ed25519"
	"crypto/sha512"
	"errors"

	"filippo.io/edwards25519"
)

const (
	// ValueSize is the length of the pseudorandom output.
	ValueSize = 32
	// ProofSize is gamma(32) || c(16) || s(32).
	ProofSize = 80

	suiteID = 0x03

	challengeSize = 16
)

// Value is the pseudorandom VRF output.
type Value [ValueSize]byte

// Proof lets anyone holding the public key verify that a Value was
// computed honestly from the input.
type Proof [ProofSize]byte

// Prove evaluates the VRF for input under the Ed25519 seed and returns
// the output together with its proof. Evaluation is deterministic.
func Prove(seed, input []byte) (Value, Proof, error) {
	var value Value
	var proof Proof
	if len(seed) != ed25519.SeedSize {
		return value, proof, errors.New("vrf: seed must be 32 bytes")
	}

	expanded := sha512.Sum512(seed)
	x, err := edwards25519.NewScalar().SetBytesWithClamping(expanded[:32])
	if err != nil {
		return value, proof, err
	}
	public := new(edwards25519.Point).ScalarBaseMult(x).Bytes()

	h, err := hashToCurve(public, input)
	if err != nil {
		return value, proof, err
	}
	hBytes := h.Bytes()
	gamma := new(edwards25519.Point).ScalarMult(x, h)

	k, err := nonce(expanded[32:], hBytes)
	if err != nil {
		return value, proof, err
	}
	kB := new(edwards25519.Point).ScalarBaseMult(k)
	kH := new(edwards25519.Point).ScalarMult(k, h)

	c := challenge(public, hBytes, gamma.Bytes(), kB.Bytes(), kH.Bytes())
	// s = k + c*x
	s := edwards25519.NewScalar().MultiplyAdd(c, x, k)

	copy(proof[:32], gamma.Bytes())
	copy(proof[32:32+challengeSize], c.Bytes()[:challengeSize])
	copy(proof[32+challengeSize:], s.Bytes())
	value = proofToHash(gamma)
	return value, proof, nil
}

// Verify reports whether value and proof are the honest VRF evaluation of
// input under publicKey. It is total: malformed points, scalars or keys
// yield false.
func Verify(publicKey, input []byte, value Value, proof Proof) bool {
	y, err := new(edwards25519.Point).SetBytes(publicKey)
	if err != nil {
		return false
	}
	gamma, err := new(edwards25519.Point).SetBytes(proof[:32])
	if err != nil {
		return false
	}
	var cBytes [32]byte
	copy(cBytes[:], proof[32:32+challengeSize])
	c, err := edwards25519.NewScalar().SetCanonicalBytes(cBytes[:])
	if err != nil {
		return false
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(proof[32+challengeSize:])
	if err != nil {
		return false
	}

	h, err := hashToCurve(publicKey, input)
	if err != nil {
		return false
	}

	// U = s*B - c*Y, V = s*H - c*Gamma
	negC := edwards25519.NewScalar().Negate(c)
	u := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(negC, y, s)
	sH := new(edwards25519.Point).ScalarMult(s, h)
	cGamma := new(edwards25519.Point).ScalarMult(c, gamma)
	v := new(edwards25519.Point).Subtract(sH, cGamma)

	expected := challenge(publicKey, h.Bytes(), gamma.Bytes(), u.Bytes(), v.Bytes())
	if expected.Equal(c) != 1 {
		return false
	}
	return proofToHash(gamma) == value
}

// hashToCurve is the try-and-increment map of RFC 9381 section 5.4.1.1.
func hashToCurve(publicKey, alpha []byte) (*edwards25519.Point, error) {
	for ctr := 0; ctr < 256; ctr++ {
		digest := sha512.New()
		digest.Write([]byte{suiteID, 0x01})
		digest.Write(publicKey)
		digest.Write(alpha)
		digest.Write([]byte{byte(ctr), 0x00})
		candidate := digest.Sum(nil)

		p, err := new(edwards25519.Point).SetBytes(candidate[:32])
		if err != nil {
			continue
		}
		return p.MultByCofactor(p), nil
	}
	return nil, errors.New("vrf: no curve point found")
}

// nonce derives the per-evaluation scalar from the trailing half of the
// expanded seed, RFC 9381 section 5.4.2.2.
func nonce(suffix, hBytes []byte) (*edwards25519.Scalar, error) {
	digest := sha512.New()
	digest.Write(suffix)
	digest.Write(hBytes)
	return edwards25519.NewScalar().SetUniformBytes(digest.Sum(nil))
}

// challenge computes the truncated Fiat-Shamir challenge over five points,
// RFC 9381 section 5.4.3.
func challenge(publicKey []byte, points ...[]byte) *edwards25519.Scalar {
	digest := sha512.New()
	digest.Write([]byte{suiteID, 0x02})
	digest.Write(publicKey)
	for _, p := range points {
		digest.Write(p)
	}
	digest.Write([]byte{0x00})

	var buf [32]byte
	copy(buf[:], digest.Sum(nil)[:challengeSize])
	// 16 challenge bytes are always a canonical scalar.
	c, _ := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	return c
}

// proofToHash derives the pseudorandom output from gamma, RFC 9381
// section 5.2.
func proofToHash(gamma *edwards25519.Point) Value {
	cleared := new(edwards25519.Point).MultByCofactor(gamma)
	digest := sha512.New()
	digest.Write([]byte{suiteID, 0x03})
	digest.Write(cleared.Bytes())
	digest.Write([]byte{0x00})

	var value Value
	copy(value[:], digest.Sum(nil)[:ValueSize])
	return value
}
