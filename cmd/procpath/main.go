// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// procpath canonicalizes filesystem paths while preserving
// /proc/PID/root and /proc/PID/cwd namespace boundaries.
//
// Usage:
//
//	procpath [flags] PATH...
//
// Each path is resolved and printed on its own line. With --json the
// results are emitted as a JSON array instead. Exit status is 1 if
// any path failed to resolve.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/procpath/lib/resolve"
	"github.com/bureau-foundation/procpath/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// result is one entry of --json output.
type result struct {
	Input    string `json:"input"`
	Resolved string `json:"resolved,omitempty"`
	Error    string `json:"error,omitempty"`
}

func run() error {
	var jsonOutput bool
	var verbose bool

	flagSet := pflag.NewFlagSet("procpath", pflag.ContinueOnError)
	flagSet.BoolVar(&jsonOutput, "json", false, "emit results as a JSON array")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log resolution steps to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("procpath")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		printHelp(flagSet)
		return fmt.Errorf("no paths given")
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	resolver := resolve.New(resolve.Config{Logger: logger})

	results := make([]result, 0, len(paths))
	failed := false
	for _, path := range paths {
		resolved, err := resolver.Canonicalize(path)
		entry := result{Input: path}
		if err != nil {
			entry.Error = err.Error()
			failed = true
		} else {
			entry.Resolved = resolved
		}
		results = append(results, entry)
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, entry := range results {
			if entry.Error != "" {
				fmt.Fprintf(os.Stderr, "procpath: %s: %s\n", entry.Input, entry.Error)
				continue
			}
			fmt.Println(entry.Resolved)
		}
	}

	if failed {
		return fmt.Errorf("some paths failed to resolve")
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Print(`procpath - canonicalize paths, preserving /proc namespace boundaries

USAGE
    procpath [flags] PATH...

Resolves each PATH to absolute, symlink-free form. Unlike plain
realpath, /proc/PID/root and /proc/PID/cwd prefixes are preserved for
paths that stay inside the target process's view, so results remain
usable as container filesystem boundaries.

FLAGS
`)
	fmt.Print(flagSet.FlagUsages())
}
