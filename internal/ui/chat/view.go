// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/transport"
	"github.com/jeranaias/parley-tui/internal/util"
)

const sidebarWidth = 28

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	sidebar := m.renderSidebar()
	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.pane.View(),
		m.theme.InputBox.Width(m.messagePaneWidth()-2).Render(m.renderInput()),
		m.renderStatusBar(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Sidebar.Height(m.height).Render(sidebar),
		main,
	)
}

// =============================================================================
// PANES
// =============================================================================

func (m Model) messagePaneWidth() int {
	w := m.width - sidebarWidth
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) messagePaneHeight() int {
	// Header, input box (3 with border), status bar.
	h := m.height - 1 - 3 - 1
	if h < 3 {
		h = 3
	}
	return h
}

// refreshPane rebuilds the message pane content from the projected view and
// keeps the scroll pinned to the bottom when it already was.
func (m *Model) refreshPane() {
	atBottom := m.pane.AtBottom()
	m.pane.SetContent(m.renderMessages())
	if atBottom {
		m.pane.GotoBottom()
	}
}

// =============================================================================
// RENDERING
// =============================================================================

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("parley"))
	b.WriteString("\n")
	b.WriteString(m.theme.SenderLabel.Render(m.identity.UserName()))
	b.WriteString("\n\n")

	// Truncate by display width, not rune count: CJK names take two columns
	// apiece and would otherwise overflow the fixed sidebar.
	cols := sidebarWidth - 4
	active := m.rec.ActiveRoom()
	for _, room := range m.rec.Rooms() {
		preview := room.LastMessage
		if preview == "" {
			preview = "No messages yet"
		}
		preview = util.PadWidth(util.TruncateWidth(preview, cols), cols)
		name := util.PadWidth(util.TruncateWidth(room.Name, cols), cols)

		item := m.theme.RoomName.Render(name) +
			"\n" + m.theme.RoomPreview.Render(preview)
		if room.ID == active {
			b.WriteString(m.theme.RoomSelected.Render(item))
		} else {
			b.WriteString(m.theme.RoomItem.Render(item))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderInput prefixes the input line with a titled label while a prompt
// mode is collecting a room name or display name.
func (m Model) renderInput() string {
	switch m.mode {
	case modeNewRoom:
		return m.theme.PromptTitle.Render("New room") + " " + m.input.View()
	case modeRename:
		return m.theme.PromptTitle.Render("Set name") + " " + m.input.View()
	}
	return m.input.View()
}

func (m Model) renderHeader() string {
	title := "New Chat"
	if room, ok := m.rec.Room(m.rec.ActiveRoom()); ok {
		title = room.Name
	}
	return m.theme.Header.Width(m.messagePaneWidth()).Render(title)
}

func (m Model) renderMessages() string {
	msgs := m.rec.Messages()
	if len(msgs) == 0 {
		return m.theme.EmptyRoom.Render("Start a new conversation")
	}

	width := m.messagePaneWidth()
	var b strings.Builder
	for _, msg := range msgs {
		b.WriteString(m.renderMessage(msg, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMessage(msg model.Message, width int) string {
	label := msg.SenderName
	bubble := m.theme.RemoteBubble
	align := lipgloss.Left
	if msg.Sender == model.SenderSelf {
		label = "You"
		bubble = m.theme.SelfBubble
		align = lipgloss.Right
	}

	stamp := time.UnixMilli(msg.Timestamp).Format("3:04 pm")
	block := lipgloss.JoinVertical(align,
		m.theme.SenderLabel.Render(label),
		bubble.MaxWidth(width*2/3).Render(msg.Text),
		m.theme.Timestamp.Render(stamp),
	)
	return lipgloss.PlaceHorizontal(width, align, block)
}

func (m Model) renderStatusBar() string {
	state := m.conn.State()
	conn := m.theme.ConnClosed.Render(state.String())
	if state == transport.StateOpen {
		conn = m.theme.ConnOpen.Render(state.String())
	}

	help := "tab: rooms | ctrl+n: new room | ctrl+t: theme | /name: rename | ctrl+c: quit"
	return m.theme.StatusBar.Width(m.messagePaneWidth()).Render(conn + "  " + help)
}
