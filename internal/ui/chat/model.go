// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley-tui/internal/prefs"
	"github.com/jeranaias/parley-tui/internal/reconcile"
	"github.com/jeranaias/parley-tui/internal/session"
	"github.com/jeranaias/parley-tui/internal/transport"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// RefreshMsg tells the UI that core state changed and the panes should be
// rebuilt. It is sent from the reconciler's change hook and from the store
// watcher.
type RefreshMsg struct{}

// =============================================================================
// MODES
// =============================================================================

// mode selects what the input line is currently composing.
type mode int

const (
	modeCompose mode = iota
	modeNewRoom
	modeRename
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat surface.
type Model struct {
	rec      *reconcile.Reconciler
	conn     *transport.Connector
	prefs    *prefs.Prefs
	identity *session.Identity

	theme *styles.Theme
	input textinput.Model
	pane  viewport.Model

	mode   mode
	width  int
	height int
	ready  bool
}

// New assembles the UI over an already-wired core.
func New(rec *reconcile.Reconciler, conn *transport.Connector, p *prefs.Prefs, id *session.Identity) Model {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.CharLimit = 2000
	input.Focus()

	return Model{
		rec:      rec,
		conn:     conn,
		prefs:    p,
		identity: id,
		theme:    styles.NewTheme(p.DarkMode()),
		input:    input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
