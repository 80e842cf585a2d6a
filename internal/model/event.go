// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// WIRE EVENT
// =============================================================================

// Event is the JSON frame exchanged with the relay server, in both
// directions. There is no version field, no acknowledgment frame, and no
// heartbeat; the relay echoes frames verbatim to every other participant.
type Event struct {
	ID   string `json:"id"`
	Text string `json:"text"`

	// SenderID tags outbound frames with the ephemeral session identity.
	// On inbound frames it is only consulted for self-echo detection.
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`

	// Timestamp is epoch milliseconds.
	Timestamp int64 `json:"timestamp"`

	// RoomID may be absent on inbound frames; the reconciler defaults it to
	// the room that was active at the moment of receipt.
	RoomID string `json:"roomId,omitempty"`
}
