// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// ROOM TYPE
// =============================================================================

// Room is a summary entry in the room directory. It carries just enough to
// render a sidebar row: the name, a preview of the latest message, and the
// recency used for ordering.
type Room struct {
	// ID uniquely identifies the room within the directory.
	ID string `json:"id"`

	// Name is the human-readable room name.
	Name string `json:"name"`

	// LastMessage is a preview of the most recently accepted message text.
	// Empty until the first message lands.
	LastMessage string `json:"last_message"`

	// LastUpdated is the epoch-millisecond timestamp of the most recently
	// accepted message, or the creation time if the room has none.
	LastUpdated int64 `json:"last_updated"`
}
