// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolve canonicalizes filesystem paths while preserving
// procfs namespace boundaries.
//
// [Canonicalize] behaves like resolving a path to its absolute,
// symlink-free form, with one deliberate departure: on Linux,
// /proc/PID/root and /proc/PID/cwd prefixes are kept symbolic instead
// of being collapsed to the host's own root or working directory.
// Plain resolution of /proc/self/root yields "/"; Canonicalize yields
// /proc/self/root. Paths beneath a boundary keep the boundary prefix
// for as long as they actually stay inside the target process's
// subtree:
//
//	Canonicalize("/proc/self/root")      → /proc/self/root
//	Canonicalize("/proc/self/root/etc")  → /proc/self/root/etc
//	Canonicalize("/proc/self/cwd/..")    → the literal parent of the
//	                                       working directory (escaped,
//	                                       so no prefix is claimed)
//
// Ordinary symlinks that lead into a boundary — directly, through a
// chain, or through ".." components that lexical normalization would
// have eaten — are detected by walking the path component by
// component, so a symlink at /tmp/container pointing at
// /proc/self/root canonicalizes to /proc/self/root as well.
//
// A result therefore either starts with the exact boundary prefix (the
// real path stayed inside the boundary's subtree) or is a plain
// absolute host path (it provably escaped). The package never claims
// containment that does not hold: a symlink inside the boundary that
// points outside the target subtree resolves to its literal host
// location.
//
// On platforms without procfs, Canonicalize is a direct pass-through
// to host resolution.
//
// Errors are surfaced verbatim as the underlying probes produced them,
// typically *fs.PathError; use errors.Is with [fs.ErrNotExist] and
// [fs.ErrPermission] to classify. The boundary prefix is probed up
// front specifically so those two cases stay distinguishable. Symlink
// cycles fail with the host resolver's too-many-links error: the
// boundary scan gives up after the kernel's MAXSYMLINKS bound and
// defers to plain resolution, which hits the same cycle on disk.
//
// Each call is independent and reads only the filesystem; there is no
// cache, no shared state, and no retry.
package resolve
