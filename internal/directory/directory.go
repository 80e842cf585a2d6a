// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package directory

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/store"
	"github.com/jeranaias/parley-tui/internal/util"
)

// previewRunes caps the stored preview; the full text lives in the log.
const previewRunes = 80

// =============================================================================
// ROOM DIRECTORY
// =============================================================================

// Directory owns the room summary collection. Every mutation rewrites the
// whole "rooms" blob in the store; the in-memory slice keeps insertion order
// so recency ties sort stably.
type Directory struct {
	store store.Store
	rooms []model.Room
}

// New loads the directory from the store. An empty store is bootstrapped
// with the two default rooms.
func New(s store.Store) (*Directory, error) {
	d := &Directory{store: s}

	blob, ok, err := s.Get(store.KeyRooms)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	if !ok {
		now := time.Now().UnixMilli()
		d.rooms = []model.Room{
			{ID: "1", Name: "General", LastUpdated: now},
			{ID: "2", Name: "Support", LastUpdated: now},
		}
		if err := d.persist(); err != nil {
			return nil, err
		}
		return d, nil
	}

	if err := json.Unmarshal(blob, &d.rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return d, nil
}

// List returns the rooms ordered by recency, most recent first. Ties keep
// their prior relative order.
func (d *Directory) List() []model.Room {
	out := make([]model.Room, len(d.rooms))
	copy(out, d.rooms)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUpdated > out[j].LastUpdated
	})
	return out
}

// Get returns the room with the given id, if present.
func (d *Directory) Get(id string) (model.Room, bool) {
	for _, r := range d.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return model.Room{}, false
}

// Create appends a new room with a fresh id, empty preview, and the current
// time as recency, and persists the directory.
func (d *Directory) Create(name string) (model.Room, error) {
	room := model.Room{
		ID:          uuid.NewString(),
		Name:        name,
		LastUpdated: time.Now().UnixMilli(),
	}
	d.rooms = append(d.rooms, room)
	if err := d.persist(); err != nil {
		return model.Room{}, err
	}
	return room, nil
}

// Touch updates a room's preview and recency after a message was accepted
// for it. When no room has that id the call is a no-op: the message stays in
// the log but no summary reflects it. That gap is part of the contract, not
// a defect to repair here.
func (d *Directory) Touch(roomID, preview string, timestamp int64) error {
	for i := range d.rooms {
		if d.rooms[i].ID == roomID {
			d.rooms[i].LastMessage = util.TruncateRunes(preview, previewRunes)
			d.rooms[i].LastUpdated = timestamp
			return d.persist()
		}
	}
	return nil
}

// persist rewrites the whole rooms blob. Non-atomic with respect to other
// processes sharing the store; last writer wins.
func (d *Directory) persist() error {
	blob, err := json.Marshal(d.rooms)
	if err != nil {
		return fmt.Errorf("failed to encode rooms: %w", err)
	}
	if err := d.store.Set(store.KeyRooms, blob); err != nil {
		return fmt.Errorf("failed to persist rooms: %w", err)
	}
	return nil
}
