// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/procpath/lib/procfs"
)

// scanForBoundary walks path component by component looking for
// ordinary symlinks whose targets land on a namespace boundary. It
// returns the reconstructed boundary path ("" when the path has no
// boundary involvement, or the follow budget ran out).
//
// Lexical normalization cannot do this job: normalizing "link/.."
// deletes "link" before anyone asks what it points at. So the walk
// keeps an accumulated resolved-so-far prefix, processes one component
// at a time, and whenever it substitutes a symlink target it restarts
// from the top of the new candidate path — the substituted prefix may
// itself contain symlinks that have to be discovered in order, and the
// boundary checks need a fully accumulated prefix at every step.
//
// budget is decremented once per symlink followed and is shared with
// the caller's dispatch loop.
func (r *Resolver) scanForBoundary(path string, budget *int) (string, error) {
	current := path
	if !filepath.IsAbs(current) {
		workingDir, err := os.Getwd()
		if err != nil {
			return "", err
		}
		// Plain concatenation: filepath.Join would Clean the result,
		// folding away exactly the "symlink/.." shapes this scan
		// exists to look inside.
		current = workingDir + "/" + current
	}

scan:
	for {
		if *budget <= 0 {
			return "", nil
		}

		// The candidate may already be a boundary path, either as
		// given or because the previous pass substituted a symlink
		// target that is one.
		if procfs.HasBoundary(current) {
			return current, nil
		}

		accumulated := "/"
		tokens := procfs.Components(current)
		for i := 0; i < len(tokens); i++ {
			token := tokens[i]
			if token == ".." {
				accumulated = parentPath(accumulated)
				// Popping can land exactly on a boundary (stepping
				// out of a subdirectory that lives under it).
				if procfs.HasBoundary(accumulated) {
					return joinTokens(accumulated, tokens[i+1:]), nil
				}
				continue
			}

			next := childPath(accumulated, token)
			info, err := os.Lstat(next)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR) {
					// Nothing there (or a prefix is a plain file, so
					// nothing can be there). Not a symlink either
					// way; keep walking and let plain resolution
					// report the miss if it matters.
					accumulated = next
					continue
				}
				// Permission or I/O failure: the scan cannot tell
				// what this component is, so it cannot vouch for the
				// path. Surface the probe's error as-is.
				return "", err
			}

			if info.Mode()&fs.ModeSymlink != 0 {
				*budget--
				target, err := os.Readlink(next)
				if err != nil {
					return "", err
				}
				// A relative target is relative to the symlink's own
				// directory, not the caller's working directory.
				resolved := target
				if !filepath.IsAbs(target) {
					resolved = childPath(accumulated, target)
				}
				current = joinTokens(resolved, tokens[i+1:])
				continue scan
			}

			accumulated = next
		}

		// Whole path walked with no symlink left. accumulated is now
		// effectively normalized; one last boundary check covers paths
		// whose dots and doubled slashes hid the match from the
		// pre-walk check.
		if procfs.HasBoundary(accumulated) {
			return accumulated, nil
		}
		return "", nil
	}
}

// childPath appends one component to a clean absolute path. The
// component may itself be a multi-segment relative path (a symlink
// target); the result is re-split by the caller, never Cleaned.
func childPath(dir, name string) string {
	if dir == "/" {
		return "/" + name
	}
	return dir + "/" + name
}

// parentPath pops the last component of a clean absolute path. The
// parent of "/" is "/".
func parentPath(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i <= 0 {
		return "/"
	}
	return path[:i]
}

// joinTokens appends not-yet-processed components onto a base path.
func joinTokens(base string, tokens []string) string {
	if len(tokens) == 0 {
		return base
	}
	return childPath(base, strings.Join(tokens, "/"))
}
