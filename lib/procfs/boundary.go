// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package procfs

import "strings"

// Kind selects which view of a process a boundary names.
type Kind string

const (
	// KindRoot is the process's root directory (mount namespace view).
	KindRoot Kind = "root"

	// KindCWD is the process's current working directory.
	KindCWD Kind = "cwd"
)

// SelfToken and ThreadSelfToken are the reserved PID tokens the kernel
// accepts in place of a numeric process ID.
const (
	SelfToken       = "self"
	ThreadSelfToken = "thread-self"
)

// Boundary is a namespace-boundary prefix: the path up to and
// including the "root" or "cwd" segment. It is always absolute and
// always renders back to exactly the shape Split accepted.
type Boundary struct {
	// PID is the process token: an all-digit string, "self", or
	// "thread-self".
	PID string

	// TID is the thread token for task-scoped boundaries
	// (/proc/PID/task/TID/...), empty otherwise.
	TID string

	// Kind is the boundary view, root or cwd.
	Kind Kind
}

// Path renders the boundary as an absolute path.
func (b Boundary) Path() string {
	var sb strings.Builder
	sb.WriteString("/proc/")
	sb.WriteString(b.PID)
	if b.TID != "" {
		sb.WriteString("/task/")
		sb.WriteString(b.TID)
	}
	sb.WriteByte('/')
	sb.WriteString(string(b.Kind))
	return sb.String()
}

// Split matches a namespace boundary at the start of path. On a match
// it returns the boundary, the remainder (the components after the
// boundary, slash-joined, with ".." preserved), and true. The match is
// purely lexical: no filesystem access, no existence guarantee.
//
// Relative paths never match, and the comparison is case-sensitive:
// /PROC/self/root is not a boundary.
func Split(path string) (Boundary, string, bool) {
	if path == "" || path[0] != '/' {
		return Boundary{}, "", false
	}

	tokens := Components(path)
	if len(tokens) < 3 || tokens[0] != "proc" || !validPID(tokens[1]) {
		return Boundary{}, "", false
	}

	switch tokens[2] {
	case "root", "cwd":
		boundary := Boundary{PID: tokens[1], Kind: Kind(tokens[2])}
		return boundary, strings.Join(tokens[3:], "/"), true
	case "task":
		// /proc/PID/task/TID/root or /proc/PID/task/TID/cwd. The TID
		// position accepts digits only, not the reserved tokens.
		if len(tokens) < 5 || !allDigits(tokens[3]) {
			return Boundary{}, "", false
		}
		if tokens[4] != "root" && tokens[4] != "cwd" {
			return Boundary{}, "", false
		}
		boundary := Boundary{PID: tokens[1], TID: tokens[3], Kind: Kind(tokens[4])}
		return boundary, strings.Join(tokens[5:], "/"), true
	}
	return Boundary{}, "", false
}

// HasBoundary reports whether path starts with a namespace boundary,
// with or without trailing components.
func HasBoundary(path string) bool {
	_, _, ok := Split(path)
	return ok
}

// Components splits path on "/" and drops empty and "." segments.
// ".." segments are kept: they are positional information that lexical
// normalization would destroy, and they never match any boundary
// token, so keeping them is both safe and necessary.
func Components(path string) []string {
	parts := strings.Split(path, "/")
	tokens := parts[:0]
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}

// validPID reports whether token is acceptable in the PID position:
// the reserved "self"/"thread-self" tokens or a non-empty digit
// string. No numeric range check: the kernel decides whether the
// process exists, we only decide whether the path could name one.
func validPID(token string) bool {
	return token == SelfToken || token == ThreadSelfToken || allDigits(token)
}

// allDigits reports whether s is non-empty ASCII digits. Leading zeros
// and arbitrary length are fine; "-1" fails because '-' is not a digit.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
