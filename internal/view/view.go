// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view derives the message sequence for the active room from the
// full log.
package view

import (
	"slices"

	"github.com/jeranaias/parley-tui/internal/history"
	"github.com/jeranaias/parley-tui/internal/model"
)

// =============================================================================
// VIEW PROJECTOR
// =============================================================================

// Projector holds the projection of the log for the currently active room.
// Switching rooms replaces the projection wholesale; there is no incremental
// diffing against the previous room's view.
type Projector struct {
	log      *history.Log
	roomID   string
	messages []model.Message
}

// NewProjector creates a projector over the log with no active room.
func NewProjector(log *history.Log) *Projector {
	return &Projector{log: log}
}

// SetRoom recomputes the projection synchronously for the new room.
func (p *Projector) SetRoom(roomID string) {
	p.roomID = roomID
	p.messages = slices.Collect(p.log.Query(roomID))
}

// Extend appends one freshly accepted message to the live projection. The
// caller is responsible for only extending with messages of the active room.
func (p *Projector) Extend(msg model.Message) {
	p.messages = append(p.messages, msg)
}

// RoomID returns the room the projection currently covers.
func (p *Projector) RoomID() string {
	return p.roomID
}

// Messages returns a snapshot of the projected sequence.
func (p *Projector) Messages() []model.Message {
	out := make([]model.Message, len(p.messages))
	copy(out, p.messages)
	return out
}
