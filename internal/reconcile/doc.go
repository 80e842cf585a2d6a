// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reconcile is the merge engine at the center of parley. It decides,
// for every inbound frame and local send, whether the message is new, a
// duplicate, or an echo of our own send; which room it belongs to; and keeps
// the message log, the room directory, and the projected view consistent as
// the user switches rooms.
//
// Nothing here is fatal: malformed input, duplicate delivery, unknown rooms,
// and transport failures all degrade to silently dropping the offending
// event while local state stays coherent.
package reconcile
