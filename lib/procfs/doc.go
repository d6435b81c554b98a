// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package procfs identifies Linux procfs namespace-boundary paths by
// lexical inspection.
//
// /proc/PID/root and /proc/PID/cwd are magic symlinks: following one
// crosses into another process's mount namespace or working directory.
// The kernel reports their targets relative to the host's own view
// (readlink on /proc/self/root returns "/"), so any resolver that
// blindly follows them silently discards the namespace the path was
// meant to denote. Tooling that uses these entries as a security
// boundary — reading a container's files from the host, for example —
// needs to recognize the boundary before resolution destroys it.
//
// [Split] performs that recognition. It is purely syntactic: it never
// touches the filesystem, and a match carries no guarantee that the
// process exists or that the caller may access it. The accepted shapes
// are:
//
//	/proc/PID/root          /proc/PID/cwd
//	/proc/PID/task/TID/root /proc/PID/task/TID/cwd
//
// where PID is a non-empty ASCII-digit string (any length, leading
// zeros allowed), "self", or "thread-self", and TID is a digit string.
// Matching is case-sensitive; relative paths never match.
//
// Known limitation: a bind mount of /proc (mount --bind /proc
// /mnt/proc) produces boundary entries this package cannot see, since
// detecting them requires reading the live mount table and reopens the
// TOCTOU window this package exists to narrow. Creating such a mount
// requires root; callers whose threat model includes it should audit
// /proc/self/mountinfo themselves.
package procfs
