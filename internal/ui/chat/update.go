// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley-tui/internal/ui/styles"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pane.Width = m.messagePaneWidth()
		m.pane.Height = m.messagePaneHeight()
		m.ready = true
		m.refreshPane()
		return m, nil

	case RefreshMsg:
		m.refreshPane()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes one key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.mode != modeCompose {
			m.mode = modeCompose
			m.input.Placeholder = "Type a message..."
			m.input.SetValue("")
		}
		return m, nil

	case "enter":
		return m.handleSubmit()

	case "tab":
		return m.cycleRoom(1)

	case "shift+tab":
		return m.cycleRoom(-1)

	case "ctrl+n":
		m.mode = modeNewRoom
		m.input.Placeholder = "New room name..."
		m.input.SetValue("")
		return m, nil

	case "ctrl+t":
		dark := !m.theme.IsDark
		m.prefs.SetDarkMode(dark)
		m.theme = styles.NewTheme(dark)
		m.refreshPane()
		return m, nil

	case "pgup":
		m.pane.HalfViewUp()
		return m, nil

	case "pgdown":
		m.pane.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit acts on the input line according to the current mode.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	switch m.mode {
	case modeNewRoom:
		m.mode = modeCompose
		m.input.Placeholder = "Type a message..."
		m.input.SetValue("")
		return m, m.createRoomCmd(text)

	case modeRename:
		m.identity.SetUserName(text)
		m.prefs.SetUserName(text)
		m.mode = modeCompose
		m.input.Placeholder = "Type a message..."
		m.input.SetValue("")
		return m, nil
	}

	// Slash commands mirror the modal flows from the keyboard.
	if cmd, rest, ok := parseCommand(text); ok {
		switch cmd {
		case "new":
			m.input.SetValue("")
			if rest == "" {
				m.mode = modeNewRoom
				m.input.Placeholder = "New room name..."
				return m, nil
			}
			return m, m.createRoomCmd(rest)
		case "name":
			m.input.SetValue("")
			if rest == "" {
				m.mode = modeRename
				m.input.Placeholder = "Your name..."
				return m, nil
			}
			m.identity.SetUserName(rest)
			m.prefs.SetUserName(rest)
			return m, nil
		case "quit", "q":
			return m, tea.Quit
		}
		// Unknown command: fall through and send it verbatim.
	}

	m.input.SetValue("")
	m.rec.SendMessage(text)
	m.refreshPane()
	m.pane.GotoBottom()
	return m, nil
}

// cycleRoom moves the active room selection through the recency-ordered
// list. The switch runs as a command because it redials the transport.
func (m Model) cycleRoom(delta int) (tea.Model, tea.Cmd) {
	rooms := m.rec.Rooms()
	if len(rooms) == 0 {
		return m, nil
	}

	active := m.rec.ActiveRoom()
	idx := 0
	for i, r := range rooms {
		if r.ID == active {
			idx = i
			break
		}
	}
	next := rooms[((idx+delta)%len(rooms)+len(rooms))%len(rooms)].ID

	return m, func() tea.Msg {
		m.rec.SelectRoom(context.Background(), next)
		return RefreshMsg{}
	}
}

// createRoomCmd creates and enters a room off the UI goroutine.
func (m Model) createRoomCmd(name string) tea.Cmd {
	return func() tea.Msg {
		m.rec.CreateRoom(context.Background(), name)
		return RefreshMsg{}
	}
}

// parseCommand splits "/cmd rest" input lines.
func parseCommand(text string) (cmd, rest string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	parts := strings.SplitN(strings.TrimPrefix(text, "/"), " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		rest = strings.TrimSpace(parts[1])
	}
	return cmd, rest, true
}
