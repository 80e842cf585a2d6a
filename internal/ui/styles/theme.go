// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the parley TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds the styled components for the application, in a light and a
// dark variant.
type Theme struct {
	IsDark bool

	// Sidebar (room list)
	Sidebar      lipgloss.Style
	RoomItem     lipgloss.Style
	RoomSelected lipgloss.Style
	RoomName     lipgloss.Style
	RoomPreview  lipgloss.Style

	// Header and status bar
	Header     lipgloss.Style
	StatusBar  lipgloss.Style
	ConnOpen   lipgloss.Style
	ConnClosed lipgloss.Style

	// Message area
	SelfBubble   lipgloss.Style
	RemoteBubble lipgloss.Style
	SenderLabel  lipgloss.Style
	Timestamp    lipgloss.Style
	EmptyRoom    lipgloss.Style

	// Input and prompts
	InputBox    lipgloss.Style
	PromptTitle lipgloss.Style
}

// NewTheme builds the theme for the given mode.
func NewTheme(dark bool) *Theme {
	t := &Theme{IsDark: dark}

	text := lipgloss.Color("236")
	dim := lipgloss.Color("244")
	accent := lipgloss.Color("33")
	surface := lipgloss.Color("255")
	if dark {
		text = lipgloss.Color("252")
		dim = lipgloss.Color("243")
		accent = lipgloss.Color("39")
		surface = lipgloss.Color("236")
	}

	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(dim).
		Padding(0, 1)

	t.RoomItem = lipgloss.NewStyle().Foreground(text).Padding(0, 1)
	t.RoomSelected = lipgloss.NewStyle().
		Foreground(accent).
		Background(surface).
		Bold(true).
		Padding(0, 1)
	t.RoomName = lipgloss.NewStyle().Bold(true)
	t.RoomPreview = lipgloss.NewStyle().Foreground(dim)

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Padding(0, 1)
	t.StatusBar = lipgloss.NewStyle().Foreground(dim).Padding(0, 1)
	t.ConnOpen = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	t.ConnClosed = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))

	t.SelfBubble = lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(accent).
		Padding(0, 1)
	t.RemoteBubble = lipgloss.NewStyle().
		Foreground(text).
		Background(surface).
		Padding(0, 1)
	t.SenderLabel = lipgloss.NewStyle().Foreground(dim)
	t.Timestamp = lipgloss.NewStyle().Foreground(dim).Faint(true)
	t.EmptyRoom = lipgloss.NewStyle().Foreground(dim).Italic(true)

	t.InputBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1)
	t.PromptTitle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	return t
}
