// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the Bubble Tea front end for parley: the room sidebar, the
// message pane for the active room, and the compose line.
//
// The package is a pure consumer of the reconciler's derived surface. It
// renders room list, projected messages, and connection state, and drives
// the SelectRoom / CreateRoom / SendMessage callbacks; none of the merge
// rules live here.
package chat
