// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides durable key/value blob storage for parley.
//
// The contract is deliberately minimal: Get returns the current blob for a
// key, Set replaces it wholesale. There is no compare-and-swap; callers that
// read, modify, and write a collection must accept last-writer-wins when
// several processes share one data directory.
//
// Two backends are available: a one-file-per-key directory (default) and a
// single SQLite database, selected by configuration.
package store
