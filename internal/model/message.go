// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// SENDER
// =============================================================================

// Sender distinguishes locally composed messages from messages that arrived
// over the wire.
type Sender string

const (
	// SenderSelf marks a message composed in this instance.
	SenderSelf Sender = "self"

	// SenderRemote marks a message accepted from the relay.
	SenderRemote Sender = "remote"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is one immutable unit of chat content. The ID is unique across the
// entire log, not just within a room. RoomID is a value reference only: a
// message may name a room that has no directory entry.
type Message struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Sender     Sender `json:"sender"`
	SenderName string `json:"sender_name"`

	// Timestamp is epoch milliseconds.
	Timestamp int64 `json:"timestamp"`

	RoomID string `json:"room_id"`
}
