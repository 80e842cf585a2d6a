// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func parseArgv(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"parley"}, argv...)
	t.Cleanup(func() { os.Args = old })
	return Parse()
}

func TestParse_Defaults(t *testing.T) {
	cmd, args := parseArgv(t)
	if cmd != CmdTUI {
		t.Errorf("cmd = %v, want CmdTUI", cmd)
	}
	if args.Verbose || args.Server != "" || args.DataDir != "" {
		t.Errorf("args = %+v, want zero values", args)
	}
}

func TestParse_Version(t *testing.T) {
	cmd, _ := parseArgv(t, "--version")
	if cmd != CmdVersion {
		t.Errorf("cmd = %v, want CmdVersion", cmd)
	}
}

func TestParse_Help(t *testing.T) {
	cmd, _ := parseArgv(t, "--help")
	if cmd != CmdHelp {
		t.Errorf("cmd = %v, want CmdHelp", cmd)
	}
}

func TestParse_Flags(t *testing.T) {
	cmd, args := parseArgv(t, "--verbose", "--server", "ws://x:1/chat", "--data-dir", "/tmp/p")
	if cmd != CmdTUI {
		t.Errorf("cmd = %v, want CmdTUI", cmd)
	}
	if !args.Verbose {
		t.Error("Verbose should be set")
	}
	if args.Server != "ws://x:1/chat" {
		t.Errorf("Server = %q", args.Server)
	}
	if args.DataDir != "/tmp/p" {
		t.Errorf("DataDir = %q", args.DataDir)
	}
}
