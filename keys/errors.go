// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package keys

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation is returned when an algorithm-specific operation
// is invoked on a key of a different algorithm.
var ErrUnsupportedOperation = errors.New("operation not supported for this key type")

// UnknownKeyTypeError reports an algorithm name or wire discriminant that
// does not match any supported algorithm.
type UnknownKeyTypeError struct {
	Value string
}

func (e UnknownKeyTypeError) Error() string {
	return fmt.Sprintf("unknown key type '%s'", e.Value)
}

// InvalidLengthError reports key or signature material whose length does
// not match the algorithm's fixed size.
type InvalidLengthError struct {
	Expected int
	Received int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length: expected %d bytes, received %d", e.Expected, e.Received)
}

// InvalidDataError reports material that has the right length but does not
// decode, such as malformed base58 or an out-of-range scalar.
type InvalidDataError struct {
	Message string
}

func (e InvalidDataError) Error() string {
	return "invalid data: " + e.Message
}
