// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

package account_test

import (
	"strings"
	"testing"

	"github.com/lyrachain/lyra-crypto/account"
)

func TestParseValid(t *testing.T) {
	valid := []string{
		"ok",
		"bob",
		"test-account",
		"node0",
		"validator.lyra",
		"a-b_c.d-1",
		"100",
		strings.Repeat("a", 64),
	}
	for _, value := range valid {
		id, err := account.Parse(value)
		if err != nil {
			t.Errorf("Parse(%q): %v", value, err)
			continue
		}
		if id.String() != value {
			t.Errorf("Parse(%q) = %q", value, id)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{
		"",
		"a",
		strings.Repeat("a", 65),
		"Bob",
		"with space",
		"-leading",
		"trailing-",
		".leading",
		"trailing.",
		"double..separator",
		"mixed.-separators",
		"under__score",
		"emoji🚀",
	}
	for _, value := range invalid {
		if _, err := account.Parse(value); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", value)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := account.MustParse("test"); got != "test" {
		t.Errorf("MustParse = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	account.MustParse("Not Valid")
}
