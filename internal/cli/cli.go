// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses parley's command line. There is one real command (the
// TUI); everything else is flags, version, and help.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	Verbose bool

	// Overrides for the config file
	Server  string
	DataDir string
	Config  string
}

const usageText = `parley - a terminal chat client

Your messages live locally: everything you send or receive is kept in a
room-partitioned log on disk and merged with what arrives over the relay.

Usage:
  parley [flags]

Flags:
  --server URL      relay websocket URL (overrides config)
  --data-dir DIR    data directory (overrides config)
  --config FILE     config file path (default ~/.parley/config.toml)
  --verbose         debug logging to ~/.parley/logs/parley.log
  --version         print version and exit
  --help            show this help

Keys inside the TUI:
  tab / shift+tab   switch rooms
  ctrl+n            create a room
  ctrl+t            toggle dark mode
  enter             send
  /name NAME        change display name
  ctrl+c            quit
`

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, Args) {
	args := Args{}
	argv := os.Args[1:]

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--version", "-v":
			return CmdVersion, args
		case "--help", "-h", "help":
			return CmdHelp, args
		case "--verbose":
			args.Verbose = true
		case "--server":
			if i+1 < len(argv) {
				i++
				args.Server = argv[i]
			}
		case "--data-dir":
			if i+1 < len(argv) {
				i++
				args.DataDir = argv[i]
			}
		case "--config":
			if i+1 < len(argv) {
				i++
				args.Config = argv[i]
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown argument: %s\n\n%s", argv[i], usageText)
			os.Exit(2)
		}
	}
	return CmdTUI, args
}

// PrintVersion writes build information to stdout.
func PrintVersion() {
	fmt.Printf("parley %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// PrintUsage writes the help text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}
