// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package resolve

// Without procfs there are no namespace boundaries to preserve;
// canonicalization is exactly what the host gives us.
func (r *Resolver) canonicalize(path string) (string, error) {
	return hostCanonicalize(path)
}
