// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the ephemeral identity of one running parley
// instance. The identity tags outbound frames and is how the reconciler
// recognizes its own sends echoed back by the relay. It is never persisted
// and is not an account: two processes never share one, and restarting
// produces a fresh one.
package session
