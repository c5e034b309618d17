// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// Package fsutil provides filesystem helpers for persisted key material.
// Credential files are owner-only (0600 files, 0700 dirs) so that no other
// account on the host can read a node's secret keys.
package fsutil

import (
	"os"
)

// KeyDirPerm is the permission mode for key directories.
const KeyDirPerm os.FileMode = 0700

// KeyFilePerm is the permission mode for credential files.
const KeyFilePerm os.FileMode = 0600

// MkdirAll creates a directory and all parents with owner-only
// permissions. Unlike os.MkdirAll, this explicitly sets permissions after
// creation to bypass umask restrictions.
func MkdirAll(path string) error {
	if err := os.MkdirAll(path, KeyDirPerm); err != nil {
		return err
	}
	return os.Chmod(path, KeyDirPerm)
}

// WriteFile writes data to a file readable by the owner only. Unlike
// os.WriteFile, this explicitly sets permissions after creation to bypass
// umask restrictions.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, KeyFilePerm); err != nil {
		return err
	}
	return os.Chmod(path, KeyFilePerm)
}
