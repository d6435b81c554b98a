// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"os"
	"path/filepath"
)

// hostCanonicalize is the plain host resolution primitive: absolute,
// fully symlink-resolved, or an error. Everything boundary-related in
// this package is a special case layered around this; it is never
// reimplemented.
//
// Relative inputs are prefixed with the working directory by plain
// concatenation. filepath.Abs would Clean the path, lexically folding
// "link/.." before the resolver could follow the link;
// filepath.EvalSymlinks applies ".." against the resolved-so-far
// prefix, which is the behavior canonicalization requires.
func hostCanonicalize(path string) (string, error) {
	if !filepath.IsAbs(path) {
		workingDir, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = workingDir + string(os.PathSeparator) + path
	}
	return filepath.EvalSymlinks(path)
}
