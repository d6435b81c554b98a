// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"io/fs"
	"log/slog"
)

// maxSymlinkFollows bounds how many ordinary symlinks one resolution
// will follow while looking for namespace boundaries, matching the
// kernel's MAXSYMLINKS. Past the bound the boundary scan reports
// nothing and plain host resolution takes over (and, for a genuine
// cycle, fails the same way the kernel would).
const maxSymlinkFollows = 40

// Resolver canonicalizes paths with namespace-boundary preservation.
// The zero Config is fine; a Resolver is stateless and safe for
// concurrent use.
type Resolver struct {
	logger *slog.Logger
}

// Config holds configuration for creating a Resolver.
type Config struct {
	// Logger receives debug-level traces of indirect boundary
	// discoveries. Defaults to slog.Default().
	Logger *slog.Logger
}

// New creates a Resolver.
func New(config Config) *Resolver {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// Canonicalize resolves path to an absolute, symlink-free form,
// preserving /proc/PID/root and /proc/PID/cwd boundary prefixes on
// Linux. Relative paths are resolved against the current working
// directory. The path must exist.
func (r *Resolver) Canonicalize(path string) (string, error) {
	if path == "" {
		// An empty path would otherwise resolve to the working
		// directory; the contract is resolve-or-fail.
		return "", &fs.PathError{Op: "canonicalize", Path: path, Err: fs.ErrNotExist}
	}
	return r.canonicalize(path)
}

// Canonicalize resolves path using a default Resolver. See
// [Resolver.Canonicalize].
func Canonicalize(path string) (string, error) {
	return New(Config{}).Canonicalize(path)
}
