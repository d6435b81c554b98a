// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"testing"
)

// Symlink creates a symlink at link pointing to target, or fails the
// test. target may be relative (resolved by the kernel against link's
// directory) or absolute.
func Symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("creating symlink %s -> %s: %v", link, target, err)
	}
}

// WriteFile writes contents to path with mode 0644, or fails the test.
func WriteFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// Chdir changes the working directory to dir and restores the
// previous one when the test ends, or fails the test. Equivalent to
// testing.T.Chdir, which requires Go 1.24.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Errorf("restoring working directory %s: %v", oldwd, err)
		}
	})
}

// Mkdir creates the directory path (and any missing parents), or
// fails the test.
func Mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("creating directory %s: %v", path, err)
	}
}
