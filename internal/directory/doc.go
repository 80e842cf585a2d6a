// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package directory maintains the ordered collection of room summaries shown
// in the sidebar: name, last message preview, and recency.
package directory
