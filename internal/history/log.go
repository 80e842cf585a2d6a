// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/store"
)

// =============================================================================
// MESSAGE LOG
// =============================================================================

// Log is the append-only message collection. Messages keep global insertion
// order; ids are unique across the whole log, not per room. Every append
// rewrites the flat "messages" blob in the store.
type Log struct {
	store    store.Store
	messages []model.Message
	ids      map[string]struct{}
}

// New loads the log from the store, or starts empty.
func New(s store.Store) (*Log, error) {
	l := &Log{store: s, ids: make(map[string]struct{})}

	blob, ok, err := s.Get(store.KeyMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	if ok {
		if err := json.Unmarshal(blob, &l.messages); err != nil {
			return nil, fmt.Errorf("failed to decode messages: %w", err)
		}
		for _, m := range l.messages {
			l.ids[m.ID] = struct{}{}
		}
	}
	return l, nil
}

// Append inserts the message at the end of the global order and persists the
// log. A duplicate id is a silent no-op, not an error: duplicate delivery is
// normal on the wire and idempotence is the contract here.
func (l *Log) Append(msg model.Message) error {
	if _, dup := l.ids[msg.ID]; dup {
		return nil
	}
	l.messages = append(l.messages, msg)
	l.ids[msg.ID] = struct{}{}
	return l.persist()
}

// Contains reports whether a message with the given id is already logged.
func (l *Log) Contains(id string) bool {
	_, ok := l.ids[id]
	return ok
}

// Len returns the total number of logged messages across all rooms.
func (l *Log) Len() int {
	return len(l.messages)
}

// Query yields the messages belonging to roomID in their original global
// insertion order, never re-sorted by timestamp. The sequence is lazy and
// restartable: ranging over it twice replays it from the start.
func (l *Log) Query(roomID string) iter.Seq[model.Message] {
	return func(yield func(model.Message) bool) {
		for _, m := range l.messages {
			if m.RoomID != roomID {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// persist rewrites the whole messages blob. Non-atomic with respect to other
// processes sharing the store; last writer wins.
func (l *Log) persist() error {
	blob, err := json.Marshal(l.messages)
	if err != nil {
		return fmt.Errorf("failed to encode messages: %w", err)
	}
	if err := l.store.Set(store.KeyMessages, blob); err != nil {
		return fmt.Errorf("failed to persist messages: %w", err)
	}
	return nil
}
