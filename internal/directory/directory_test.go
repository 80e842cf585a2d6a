// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package directory

import (
	"strings"
	"testing"

	"github.com/jeranaias/parley-tui/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNew_BootstrapsDefaultRooms(t *testing.T) {
	d, err := New(newTestStore(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	rooms := d.List()
	if len(rooms) != 2 {
		t.Fatalf("List returned %d rooms, want 2", len(rooms))
	}

	names := map[string]bool{}
	for _, r := range rooms {
		names[r.Name] = true
	}
	if !names["General"] || !names["Support"] {
		t.Errorf("expected General and Support, got %v", names)
	}
}

func TestNew_LoadsPersistedRooms(t *testing.T) {
	s := newTestStore(t)

	d1, err := New(s)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	created, err := d1.Create("Random")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	d2, err := New(s)
	if err != nil {
		t.Fatalf("New (reload) failed: %v", err)
	}
	if _, ok := d2.Get(created.ID); !ok {
		t.Error("created room should survive a reload")
	}
	if len(d2.List()) != 3 {
		t.Errorf("List returned %d rooms, want 3", len(d2.List()))
	}
}

func TestCreate(t *testing.T) {
	d, _ := New(newTestStore(t))

	room, err := d.Create("Design")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if room.ID == "" {
		t.Error("expected a generated id")
	}
	if room.Name != "Design" {
		t.Errorf("Name = %q, want %q", room.Name, "Design")
	}
	if room.LastMessage != "" {
		t.Errorf("new room should have an empty preview, got %q", room.LastMessage)
	}
	if room.LastUpdated == 0 {
		t.Error("new room should carry a creation timestamp")
	}
}

func TestTouch_UpdatesPreviewAndRecency(t *testing.T) {
	d, _ := New(newTestStore(t))

	if err := d.Touch("1", "hi there", 9999999999999); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}

	room, ok := d.Get("1")
	if !ok {
		t.Fatal("room 1 should exist")
	}
	if room.LastMessage != "hi there" {
		t.Errorf("LastMessage = %q, want %q", room.LastMessage, "hi there")
	}
	if room.LastUpdated != 9999999999999 {
		t.Errorf("LastUpdated = %d, want 9999999999999", room.LastUpdated)
	}
}

func TestTouch_UnknownRoomIsNoOp(t *testing.T) {
	d, _ := New(newTestStore(t))

	if err := d.Touch("ghost", "boo", 1); err != nil {
		t.Fatalf("Touch of unknown room should not error: %v", err)
	}
	if len(d.List()) != 2 {
		t.Error("Touch must never create a room")
	}
	if _, ok := d.Get("ghost"); ok {
		t.Error("ghost room should not exist")
	}
}

func TestList_OrdersByRecencyDescending(t *testing.T) {
	d, _ := New(newTestStore(t))

	d.Touch("2", "newer", 2000)
	d.Touch("1", "older", 1000)

	rooms := d.List()
	if rooms[0].ID != "2" || rooms[1].ID != "1" {
		t.Errorf("order = [%s %s], want [2 1]", rooms[0].ID, rooms[1].ID)
	}
}

func TestList_StableOnTies(t *testing.T) {
	d, _ := New(newTestStore(t))

	// Same recency for both; insertion order must hold.
	d.Touch("1", "a", 5000)
	d.Touch("2", "b", 5000)

	rooms := d.List()
	if rooms[0].ID != "1" || rooms[1].ID != "2" {
		t.Errorf("tie order = [%s %s], want [1 2]", rooms[0].ID, rooms[1].ID)
	}
}

func TestTouch_CapsStoredPreview(t *testing.T) {
	d, _ := New(newTestStore(t))

	long := strings.Repeat("あ", 200)
	if err := d.Touch("1", long, 1000); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}

	room, ok := d.Get("1")
	if !ok {
		t.Fatal("room 1 missing")
	}
	if got := len([]rune(room.LastMessage)); got > 80 {
		t.Errorf("preview is %d runes, want at most 80", got)
	}
	if !strings.HasSuffix(room.LastMessage, "...") {
		t.Errorf("capped preview %q should end with ellipsis", room.LastMessage)
	}
}
