// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// Package signer provides the signing identities a node runs with: an
// in-memory signer backed by a key pair, the JSON key file it persists to,
// and a placeholder signer for paths that must not authenticate anything.
package signer

import (
	"errors"
	"fmt"

	"github.com/lyrachain/lyra-crypto/account"
	"github.com/lyrachain/lyra-crypto/keys"
	"github.com/lyrachain/lyra-crypto/metrics"
	"github.com/lyrachain/lyra-crypto/vrf"
)

// Signer authenticates data on behalf of an account.
type Signer interface {
	// PublicKey returns the verifying key for this identity.
	PublicKey() keys.PublicKey
	// Sign produces a detached signature over data.
	Sign(data []byte) (keys.Signature, error)
	// Verify reports whether signature is valid over data under this
	// identity's public key.
	Verify(data []byte, signature keys.Signature) bool
	// ComputeVRFWithProof evaluates the identity's VRF on data. Only
	// ED25519 identities support it.
	ComputeVRFWithProof(data []byte) (vrf.Value, vrf.Proof, error)
	// WriteToFile persists the identity's credentials to a key file.
	WriteToFile(path string) error
}

// EmptySigner produces placeholder keys and signatures and never
// authenticates anything. It serves test paths that need a Signer without
// real key material.
type EmptySigner struct{}

func (EmptySigner) PublicKey() keys.PublicKey {
	return keys.EmptyPublicKey(keys.ED25519)
}

func (EmptySigner) Sign(_ []byte) (keys.Signature, error) {
	return keys.EmptySignature(keys.ED25519), nil
}

func (s EmptySigner) Verify(data []byte, signature keys.Signature) bool {
	return signature.Verify(data, s.PublicKey())
}

func (EmptySigner) ComputeVRFWithProof(_ []byte) (vrf.Value, vrf.Proof, error) {
	return vrf.Value{}, vrf.Proof{}, errors.New("empty signer cannot compute a vrf")
}

func (EmptySigner) WriteToFile(_ string) error {
	return errors.New("empty signer has no key material to persist")
}

// InMemorySigner holds a plain key pair in memory.
type InMemorySigner struct {
	accountID account.ID
	publicKey keys.PublicKey
	secretKey keys.SecretKey
}

// FromSecretKey builds a signer around an existing secret key.
func FromSecretKey(accountID account.ID, secretKey keys.SecretKey) *InMemorySigner {
	return &InMemorySigner{
		accountID: accountID,
		publicKey: secretKey.PublicKey(),
		secretKey: secretKey,
	}
}

// FromSeed builds a signer with a key pair derived deterministically from
// a text seed. Test and local tooling only.
func FromSeed(accountID account.ID, keyType keys.KeyType, seed string) (*InMemorySigner, error) {
	secretKey, err := keys.SecretKeyFromSeed(keyType, seed)
	if err != nil {
		return nil, err
	}
	return FromSecretKey(accountID, secretKey), nil
}

// FromRandom builds a signer with a fresh random key pair.
func FromRandom(accountID account.ID, keyType keys.KeyType) (*InMemorySigner, error) {
	secretKey, err := keys.GenerateSecretKey(keyType)
	if err != nil {
		return nil, err
	}
	return FromSecretKey(accountID, secretKey), nil
}

// FromFile loads a signer from a key file written by WriteToFile.
func FromFile(path string) (*InMemorySigner, error) {
	keyFile, err := ReadKeyFile(path)
	if err != nil {
		return nil, err
	}
	return &InMemorySigner{
		accountID: keyFile.AccountID,
		publicKey: keyFile.PublicKey,
		secretKey: keyFile.SecretKey,
	}, nil
}

// AccountID returns the account this signer authenticates for.
func (s *InMemorySigner) AccountID() account.ID { return s.accountID }

func (s *InMemorySigner) PublicKey() keys.PublicKey { return s.publicKey }

// SecretKey exposes the underlying secret key, for persistence and tests.
func (s *InMemorySigner) SecretKey() keys.SecretKey { return s.secretKey }

func (s *InMemorySigner) Sign(data []byte) (keys.Signature, error) {
	metrics.SignOperations.WithLabelValues(s.secretKey.KeyType().String()).Inc()
	return s.secretKey.Sign(data)
}

func (s *InMemorySigner) Verify(data []byte, signature keys.Signature) bool {
	keyType := s.publicKey.KeyType().String()
	metrics.VerifyOperations.WithLabelValues(keyType).Inc()
	ok := signature.Verify(data, s.publicKey)
	if !ok {
		metrics.VerifyFailures.WithLabelValues(keyType).Inc()
	}
	return ok
}

// ComputeVRFWithProof evaluates the signer's VRF on data. The VRF scalar
// is derived from the ED25519 seed, so only ED25519 signers support it.
func (s *InMemorySigner) ComputeVRFWithProof(data []byte) (vrf.Value, vrf.Proof, error) {
	secretKey, ok := s.secretKey.(keys.ED25519SecretKey)
	if !ok {
		return vrf.Value{}, vrf.Proof{}, fmt.Errorf("%w: %s", keys.ErrUnsupportedOperation, s.secretKey.KeyType())
	}
	return vrf.Prove(secretKey.KeyData()[:32], data)
}

// WriteToFile persists the signer's credentials as a key file readable by
// FromFile.
func (s *InMemorySigner) WriteToFile(path string) error {
	keyFile := KeyFile{
		AccountID: s.accountID,
		PublicKey: s.publicKey,
		SecretKey: s.secretKey,
	}
	return keyFile.WriteToFile(path)
}
