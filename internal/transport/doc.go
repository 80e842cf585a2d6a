// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transport owns the single live relay connection.
//
// The connection is scoped to the active room: selecting a room tears the
// connection down and dials again, and whatever arrived in that gap is
// gone. Sends are fire-and-forget; when the connection is not open the frame
// is dropped without queueing, retrying, or surfacing an error. There is no
// automatic reconnect.
package transport
