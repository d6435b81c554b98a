// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bureau-foundation/procpath/lib/procfs"
)

// canonicalize dispatches one resolution. Cheap lexical matching runs
// first; the component scan only runs for paths that do not wear a
// boundary on their sleeve. When the scan discovers that symlinks lead
// into a boundary, the reconstructed path re-enters the loop (it now
// matches lexically, so the next pass terminates). The follow budget
// is shared between scan passes and re-entries, keeping total work
// bounded on pathological inputs.
func (r *Resolver) canonicalize(path string) (string, error) {
	budget := maxSymlinkFollows
	current := path
	for {
		if boundary, remainder, ok := procfs.Split(current); ok {
			return resolveBoundary(boundary, remainder)
		}

		reconstructed, err := r.scanForBoundary(current, &budget)
		if err != nil {
			return "", err
		}
		if reconstructed == "" {
			return hostCanonicalize(current)
		}

		r.logger.Debug("path reaches a namespace boundary through symlinks",
			"path", path, "boundary_path", reconstructed)
		current = reconstructed
	}
}

// resolveBoundary canonicalizes a path whose boundary prefix is
// already known: prefix alone, or prefix plus remainder.
func resolveBoundary(boundary procfs.Boundary, remainder string) (string, error) {
	prefix := boundary.Path()

	// Stat rather than a bare existence check so that "no such
	// process" and "access denied" surface as distinct error kinds.
	if _, err := os.Stat(prefix); err != nil {
		return "", err
	}

	if remainder == "" {
		// The path IS the boundary. Naive resolution would report the
		// magic link's target (usually the host root) instead.
		return prefix, nil
	}

	// The boundary's true host location. Not assumed to be "/": for a
	// containerized process it is the container's root as seen from
	// the host, and for cwd it is wherever that process sits.
	resolvedPrefix, err := filepath.EvalSymlinks(prefix)
	if err != nil {
		return "", err
	}

	// Resolve the full path through the host. This walks straight
	// through the magic link, so the result comes back in host terms
	// with the boundary semantics stripped off.
	resolved, err := filepath.EvalSymlinks(prefix + "/" + remainder)
	if err != nil {
		return "", err
	}

	// Re-base onto the symbolic prefix when the result stayed inside
	// the boundary's subtree. If it escaped — an absolute symlink
	// pointing elsewhere, or ".." walking past the subtree top — the
	// literal host path is the only correct answer; claiming
	// containment that does not hold would be a security defect.
	if suffix, ok := pathSuffix(resolvedPrefix, resolved); ok {
		if suffix == "" {
			return prefix, nil
		}
		return prefix + "/" + suffix, nil
	}
	return resolved, nil
}

// pathSuffix expresses path as base plus a relative suffix, by whole
// components. Returns ("", false) when path is not base or a
// descendant of it.
func pathSuffix(base, path string) (string, bool) {
	if path == base {
		return "", true
	}
	if base == "/" {
		return strings.TrimPrefix(path, "/"), true
	}
	if strings.HasPrefix(path, base) && len(path) > len(base) && path[len(base)] == '/' {
		return path[len(base)+1:], true
	}
	return "", false
}
