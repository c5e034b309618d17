// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// Package account defines the chain account identifier and its validation
// rules.
package account

import (
	"fmt"
)

// ID length bounds, inclusive.
const (
	MinLength = 2
	MaxLength = 64
)

// ID is a validated account identifier: 2 to 64 characters of lowercase
// alphanumeric segments joined by single '.', '_' or '-' separators, with
// no leading, trailing or consecutive separators.
type ID string

func (id ID) String() string { return string(id) }

// Parse validates value and returns it as an ID.
func Parse(value string) (ID, error) {
	if len(value) < MinLength || len(value) > MaxLength {
		return "", fmt.Errorf("account id %q: length must be between %d and %d characters", value, MinLength, MaxLength)
	}
	lastWasSeparator := true
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			lastWasSeparator = false
		case c == '.' || c == '_' || c == '-':
			if lastWasSeparator {
				return "", fmt.Errorf("account id %q: separator at position %d must follow an alphanumeric character", value, i)
			}
			lastWasSeparator = true
		default:
			return "", fmt.Errorf("account id %q: invalid character %q at position %d", value, c, i)
		}
	}
	if lastWasSeparator {
		return "", fmt.Errorf("account id %q: must not end with a separator", value)
	}
	return ID(value), nil
}

// MustParse is Parse for static identifiers; it panics on invalid input.
func MustParse(value string) ID {
	id, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return id
}
