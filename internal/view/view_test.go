// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package view

import (
	"testing"

	"github.com/jeranaias/parley-tui/internal/history"
	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/store"
)

func newTestLog(t *testing.T) *history.Log {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	l, err := history.New(s)
	if err != nil {
		t.Fatalf("history.New failed: %v", err)
	}
	return l
}

func TestSetRoom_ReplacesProjectionWholesale(t *testing.T) {
	l := newTestLog(t)
	l.Append(model.Message{ID: "a", RoomID: "1", Text: "room one"})
	l.Append(model.Message{ID: "b", RoomID: "2", Text: "room two"})
	l.Append(model.Message{ID: "c", RoomID: "1", Text: "room one again"})

	p := NewProjector(l)
	p.SetRoom("1")
	if len(p.Messages()) != 2 {
		t.Fatalf("projection of room 1 has %d messages, want 2", len(p.Messages()))
	}

	p.SetRoom("2")
	msgs := p.Messages()
	if len(msgs) != 1 {
		t.Fatalf("projection of room 2 has %d messages, want 1", len(msgs))
	}
	for _, m := range msgs {
		if m.RoomID == "1" {
			t.Error("projection of room 2 must contain zero room-1 messages")
		}
	}
}

func TestExtend(t *testing.T) {
	l := newTestLog(t)
	p := NewProjector(l)
	p.SetRoom("1")

	p.Extend(model.Message{ID: "a", RoomID: "1", Text: "live"})
	if len(p.Messages()) != 1 {
		t.Errorf("projection has %d messages, want 1", len(p.Messages()))
	}
}

func TestMessages_Snapshot(t *testing.T) {
	l := newTestLog(t)
	l.Append(model.Message{ID: "a", RoomID: "1"})

	p := NewProjector(l)
	p.SetRoom("1")

	snap := p.Messages()
	snap[0].Text = "mutated"
	if p.Messages()[0].Text == "mutated" {
		t.Error("Messages must return a copy, not the backing slice")
	}
}
