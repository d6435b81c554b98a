// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared filesystem fixture helpers for
// procpath tests.
//
// Resolution tests build small symlink topologies — chains, loops,
// links into /proc — and the setup is the same every time: create the
// entry, fail the test if that setup step fails. [Symlink],
// [WriteFile], and [Mkdir] encapsulate that so the tests read as the
// topology they construct.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since fixture creation failures are not recoverable. Helpers take
// full paths and create nothing outside what the caller chose, so
// cleanup rides on t.TempDir.
//
// This package has no procpath-internal dependencies.
package testutil
