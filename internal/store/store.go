// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

// =============================================================================
// WELL-KNOWN KEYS
// =============================================================================

// Keys used by the chat core. Each maps to one whole-collection blob that is
// replaced in full on every write.
const (
	KeyRooms      = "rooms"      // room directory
	KeyMessages   = "messages"   // flat message log, not partitioned by room
	KeyActiveRoom = "activeRoom" // active room id
	KeyDarkMode   = "darkMode"   // UI preference
	KeyUserName   = "userName"   // display name
)

// =============================================================================
// STORE CONTRACT
// =============================================================================

// Store is durable key/value blob storage. Writes are visible to subsequent
// reads from the same instance immediately. There is no atomic
// read-modify-write primitive; the whole get/mutate/set cycle is non-atomic
// across concurrent writers.
type Store interface {
	// Get returns the blob for key. The second return is false when the key
	// has never been written.
	Get(key string) ([]byte, bool, error)

	// Set replaces the blob for key wholesale.
	Set(key string, blob []byte) error

	// Close releases backend resources.
	Close() error
}
