// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"strings"

	"github.com/mr-tron/base58"
)

// splitKeyTypeData splits the canonical "<algorithm>:<payload>" text form.
// Input without a separator is the legacy encoding and decodes as ED25519.
func splitKeyTypeData(value string) (KeyType, string, error) {
	if idx := strings.IndexByte(value, ':'); idx >= 0 {
		keyType, err := ParseKeyType(value[:idx])
		if err != nil {
			return 0, "", err
		}
		return keyType, value[idx+1:], nil
	}
	return ED25519, value, nil
}

// decodeBase58 decodes a text payload and enforces the algorithm's fixed
// length.
func decodeBase58(payload string, expected int) ([]byte, error) {
	data, err := base58.Decode(payload)
	if err != nil {
		return nil, InvalidDataError{Message: err.Error()}
	}
	if len(data) != expected {
		return nil, InvalidLengthError{Expected: expected, Received: len(data)}
	}
	return data, nil
}

func encodeText(t KeyType, data []byte) string {
	return t.String() + ":" + base58.Encode(data)
}

// encodeBinary prepends the one-byte discriminant to the raw material.
func encodeBinary(t KeyType, data []byte) []byte {
	out := make([]byte, 1+len(data))
	out[0] = byte(t)
	copy(out[1:], data)
	return out
}

// decodeBinary validates the canonical [discriminant][payload] wire layout
// and returns the algorithm and payload. Trailing bytes are an error.
func decodeBinary(data []byte, sizeOf func(KeyType) int) (KeyType, []byte, error) {
	if len(data) == 0 {
		return 0, nil, InvalidDataError{Message: "empty input"}
	}
	keyType, err := KeyTypeFromByte(data[0])
	if err != nil {
		return 0, nil, err
	}
	payload := data[1:]
	if expected := sizeOf(keyType); len(payload) != expected {
		return 0, nil, InvalidLengthError{Expected: expected, Received: len(payload)}
	}
	return keyType, payload, nil
}
