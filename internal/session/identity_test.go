// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"
	"testing"
)

func TestNewIdentity(t *testing.T) {
	id := NewIdentity()

	if !strings.HasPrefix(id.ID(), "user_") {
		t.Errorf("ID should start with 'user_', got %q", id.ID())
	}
	if id.UserName() != DefaultUserName {
		t.Errorf("UserName = %q, want %q", id.UserName(), DefaultUserName)
	}
}

func TestIdentity_IDStable(t *testing.T) {
	id := NewIdentity()
	if id.ID() != id.ID() {
		t.Error("ID should be stable across calls")
	}
}

func TestIdentity_Distinct(t *testing.T) {
	a := NewIdentity()
	b := NewIdentity()
	if a.ID() == b.ID() {
		t.Errorf("two identities collided: %q", a.ID())
	}
}

func TestIdentity_SetUserName(t *testing.T) {
	id := NewIdentity()

	id.SetUserName("Alice")
	if id.UserName() != "Alice" {
		t.Errorf("UserName = %q, want %q", id.UserName(), "Alice")
	}

	// Blank submit must not wipe the current name.
	id.SetUserName("")
	if id.UserName() != "Alice" {
		t.Errorf("UserName after empty set = %q, want %q", id.UserName(), "Alice")
	}
}
