// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history is the append-only log of every message this instance has
// ever accepted, across all rooms. The log is the single owner of message
// records; the room directory only relates to it through room id values.
package history
