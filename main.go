// parley - a terminal chat client with an offline-first message log.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/parley-tui/internal/cli"
	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/directory"
	"github.com/jeranaias/parley-tui/internal/history"
	"github.com/jeranaias/parley-tui/internal/logging"
	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/prefs"
	"github.com/jeranaias/parley-tui/internal/reconcile"
	"github.com/jeranaias/parley-tui/internal/session"
	"github.com/jeranaias/parley-tui/internal/store"
	"github.com/jeranaias/parley-tui/internal/transport"
	"github.com/jeranaias/parley-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()
	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
		return
	case cli.CmdHelp:
		cli.PrintUsage()
		return
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "parley: %v\n", err)
		os.Exit(1)
	}
}

func run(args cli.Args) error {
	// ---- Configuration -----------------------------------------------------
	var cfg *config.Config
	var err error
	if args.Config != "" {
		cfg, err = config.LoadFromPath(args.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if args.Server != "" {
		cfg.Server.URL = args.Server
	}
	if args.DataDir != "" {
		cfg.Storage.DataDir = args.DataDir
	}

	// ---- Logging (file-backed; the TUI owns the terminal) ------------------
	baseDir, err := config.Dir()
	if err != nil {
		return err
	}
	logger, err := logging.New(baseDir, args.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// ---- Persistent store --------------------------------------------------
	var st store.Store
	switch cfg.Storage.Backend {
	case "sqlite":
		st, err = store.NewSQLiteStore(filepath.Join(cfg.Storage.DataDir, "parley.db"))
	default:
		st, err = store.NewFileStore(cfg.Storage.DataDir)
	}
	if err != nil {
		return err
	}
	defer st.Close()

	// ---- Core collaborators ------------------------------------------------
	log, err := history.New(st)
	if err != nil {
		return err
	}
	dir, err := directory.New(st)
	if err != nil {
		return err
	}

	pref := prefs.New(st)
	identity := session.NewIdentity()
	identity.SetUserName(pref.UserName())

	// The read loop starts delivering only after Open, which happens once
	// the reconciler is in place; the guard covers the construction window.
	var rec *reconcile.Reconciler
	conn := transport.NewConnector(cfg.Server.URL, func(ev model.Event) {
		if rec != nil {
			rec.HandleInbound(ev)
		}
	}, logger)

	rec = reconcile.New(identity, log, dir, conn, st, logger)

	// ---- UI ----------------------------------------------------------------
	program := tea.NewProgram(chat.New(rec, conn, pref, identity), tea.WithAltScreen())
	rec.SetOnChange(func() {
		program.Send(chat.RefreshMsg{})
	})

	// A failed dial is not fatal: sends are dropped silently and everything
	// still lands in the local log.
	if err := conn.Open(context.Background()); err != nil {
		logger.Warn("starting offline", zap.Error(err))
	}
	defer conn.Close()

	// Surface concurrent writers on a shared data directory. This makes the
	// last-writer-wins hazard visible; it does not serialize the writers.
	if fs, ok := st.(*store.FileStore); ok {
		if watcher, werr := store.NewWatcher(fs.Dir); werr == nil {
			defer watcher.Close()
			go func() {
				for key := range watcher.C {
					logger.Debug("store blob changed", zap.String("key", key))
					program.Send(chat.RefreshMsg{})
				}
			}()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}
