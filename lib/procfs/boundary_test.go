// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package procfs

import (
	"strings"
	"testing"
)

func TestSplitMatches(t *testing.T) {
	tests := []struct {
		path      string
		boundary  Boundary
		remainder string
	}{
		{"/proc/1234/root/etc/passwd", Boundary{PID: "1234", Kind: KindRoot}, "etc/passwd"},
		{"/proc/5678/cwd/some/file.txt", Boundary{PID: "5678", Kind: KindCWD}, "some/file.txt"},
		{"/proc/self/root/etc/passwd", Boundary{PID: "self", Kind: KindRoot}, "etc/passwd"},
		{"/proc/thread-self/root/app/config", Boundary{PID: "thread-self", Kind: KindRoot}, "app/config"},
		{"/proc/1234/root", Boundary{PID: "1234", Kind: KindRoot}, ""},
		{"/proc/self/cwd", Boundary{PID: "self", Kind: KindCWD}, ""},
		{"/proc/99/task/100/root/var/log", Boundary{PID: "99", TID: "100", Kind: KindRoot}, "var/log"},
		{"/proc/self/task/42/cwd", Boundary{PID: "self", TID: "42", Kind: KindCWD}, ""},

		// Trailing slashes and dot components are lexical noise.
		{"/proc/1234/root/", Boundary{PID: "1234", Kind: KindRoot}, ""},
		{"//proc//self//root", Boundary{PID: "self", Kind: KindRoot}, ""},
		{"/proc/1234/root/./etc/../etc", Boundary{PID: "1234", Kind: KindRoot}, "etc/../etc"},

		// PID is validated as a digit string, not a number.
		{"/proc/0/root", Boundary{PID: "0", Kind: KindRoot}, ""},
		{"/proc/0001234/root", Boundary{PID: "0001234", Kind: KindRoot}, ""},
		{"/proc/" + strings.Repeat("9", 100) + "/root", Boundary{PID: strings.Repeat("9", 100), Kind: KindRoot}, ""},
	}

	for _, tt := range tests {
		boundary, remainder, ok := Split(tt.path)
		if !ok {
			t.Errorf("Split(%q): no match, want %+v", tt.path, tt.boundary)
			continue
		}
		if boundary != tt.boundary {
			t.Errorf("Split(%q) boundary = %+v, want %+v", tt.path, boundary, tt.boundary)
		}
		if remainder != tt.remainder {
			t.Errorf("Split(%q) remainder = %q, want %q", tt.path, remainder, tt.remainder)
		}
	}
}

func TestSplitRejects(t *testing.T) {
	paths := []string{
		"",
		"/",
		"/home/user/file.txt",

		// Only "root" and "cwd" are namespace boundaries. status, exe,
		// fd and friends are ordinary procfs entries.
		"/proc/1234/status",
		"/proc/1234/exe",
		"/proc/1234/fd/0",
		"/proc/self/fd",

		// Relative paths never match.
		"proc/1234/root",
		"proc/self/root",
		"./proc/self/root",

		// PID token validation.
		"/proc/abc/root",
		"/proc/123abc/root",
		"/proc/-1/root",
		"/proc//root",
		"/proc/root",
		"/proc/parent/root",
		"/proc/init/root",
		"/proc/current/root",
		"/proc/me/root",

		// Case-sensitive.
		"/PROC/self/root",
		"/proc/SELF/root",
		"/proc/self/ROOT",

		// Task sub-pattern must be complete.
		"/proc/1234/task",
		"/proc/1234/task/root",
		"/proc/1234/task/abc/root",
		"/proc/1234/task/self/root",
		"/proc/1234/task/56/exe",

		// ".." is not a valid token in any boundary position.
		"/proc/../root",
		"/proc/self/../root",
	}

	for _, path := range paths {
		if boundary, remainder, ok := Split(path); ok {
			t.Errorf("Split(%q) matched (%+v, %q), want no match", path, boundary, remainder)
		}
	}
}

func TestBoundaryPath(t *testing.T) {
	tests := []struct {
		boundary Boundary
		want     string
	}{
		{Boundary{PID: "self", Kind: KindRoot}, "/proc/self/root"},
		{Boundary{PID: "1234", Kind: KindCWD}, "/proc/1234/cwd"},
		{Boundary{PID: "thread-self", Kind: KindRoot}, "/proc/thread-self/root"},
		{Boundary{PID: "99", TID: "100", Kind: KindRoot}, "/proc/99/task/100/root"},
		{Boundary{PID: "self", TID: "42", Kind: KindCWD}, "/proc/self/task/42/cwd"},
	}

	for _, tt := range tests {
		if got := tt.boundary.Path(); got != tt.want {
			t.Errorf("(%+v).Path() = %q, want %q", tt.boundary, got, tt.want)
		}
	}
}

func TestSplitRoundTrip(t *testing.T) {
	// A matched boundary renders back to a path that matches again,
	// with nothing lost.
	paths := []string{
		"/proc/self/root",
		"/proc/1234/cwd",
		"/proc/thread-self/cwd",
		"/proc/7/task/7/root",
	}
	for _, path := range paths {
		boundary, remainder, ok := Split(path)
		if !ok || remainder != "" {
			t.Fatalf("Split(%q) = (%+v, %q, %v), want clean match", path, boundary, remainder, ok)
		}
		if boundary.Path() != path {
			t.Errorf("round trip of %q produced %q", path, boundary.Path())
		}
	}
}

func TestHasBoundary(t *testing.T) {
	if !HasBoundary("/proc/self/root/etc") {
		t.Error("HasBoundary should accept boundary with trailing components")
	}
	if HasBoundary("/tmp/proc/self/root") {
		t.Error("HasBoundary should reject boundary not at path start")
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/a/b/c", []string{"a", "b", "c"}},
		{"/a/./b//c/", []string{"a", "b", "c"}},
		{"/a/../b", []string{"a", "..", "b"}},
		{"/", nil},
	}
	for _, tt := range tests {
		got := Components(tt.path)
		if len(got) != len(tt.want) {
			t.Errorf("Components(%q) = %v, want %v", tt.path, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Components(%q) = %v, want %v", tt.path, got, tt.want)
				break
			}
		}
	}
}
