// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package reconcile

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/parley-tui/internal/directory"
	"github.com/jeranaias/parley-tui/internal/history"
	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/session"
	"github.com/jeranaias/parley-tui/internal/store"
	"github.com/jeranaias/parley-tui/internal/view"
)

// DefaultRoomID is the room selected when no preference is stored.
const DefaultRoomID = "1"

// Transport is the slice of the connector the reconciler drives: fire and
// forget sends, and a teardown-and-redial on every room switch.
type Transport interface {
	Send(ev model.Event)
	Open(ctx context.Context) error
}

// =============================================================================
// RECONCILER
// =============================================================================

// Reconciler serializes every event (user action or inbound frame) through
// one mutex: each runs to completion, including its store mutation, before
// the next is admitted. That is the whole concurrency model; the structures
// behind the mutex need no further locking.
type Reconciler struct {
	mu sync.Mutex

	identity  *session.Identity
	log       *history.Log
	dir       *directory.Directory
	projector *view.Projector
	conn      Transport
	store     store.Store
	logger    *zap.Logger

	activeRoom string

	// onChange, when set, is invoked after any state change so the
	// rendering layer can refresh. Called with the mutex released.
	onChange func()
}

// New assembles a reconciler over already-loaded collaborators. The active
// room is restored from the store (default "1") and the projection is
// computed for it. The transport is not opened here; the caller opens it
// once the process is ready to receive.
func New(id *session.Identity, log *history.Log, dir *directory.Directory, conn Transport, s store.Store, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Reconciler{
		identity:   id,
		log:        log,
		dir:        dir,
		projector:  view.NewProjector(log),
		conn:       conn,
		store:      s,
		logger:     logger,
		activeRoom: DefaultRoomID,
	}

	if blob, ok, err := s.Get(store.KeyActiveRoom); err == nil && ok {
		var saved string
		if json.Unmarshal(blob, &saved) == nil && saved != "" {
			r.activeRoom = saved
		}
	}
	r.projector.SetRoom(r.activeRoom)
	return r
}

// SetOnChange registers the refresh hook for the rendering layer.
func (r *Reconciler) SetOnChange(fn func()) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// =============================================================================
// DERIVED SURFACE (consumed by the rendering layer)
// =============================================================================

// Rooms returns the directory ordered by recency.
func (r *Reconciler) Rooms() []model.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dir.List()
}

// Room returns the directory entry for id, if present.
func (r *Reconciler) Room(id string) (model.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dir.Get(id)
}

// Messages returns the projected view of the active room.
func (r *Reconciler) Messages() []model.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.projector.Messages()
}

// ActiveRoom returns the id of the currently active room.
func (r *Reconciler) ActiveRoom() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeRoom
}

// =============================================================================
// INBOUND PATH
// =============================================================================

// HandleInbound merges one frame from the relay.
//
// The rules, in order: discard our own echo; default a missing room id to
// the room active right now; discard duplicate ids; otherwise accept the
// message, refresh the directory, and extend the live view only when the
// message lands in the active room.
func (r *Reconciler) HandleInbound(ev model.Event) {
	r.mu.Lock()

	if ev.SenderID == r.identity.ID() {
		r.mu.Unlock()
		r.logger.Debug("inbound discarded: self echo", zap.String("id", ev.ID))
		return
	}

	roomID := ev.RoomID
	if roomID == "" {
		roomID = r.activeRoom
	}

	if r.log.Contains(ev.ID) {
		r.mu.Unlock()
		r.logger.Debug("inbound discarded: duplicate", zap.String("id", ev.ID))
		return
	}

	senderName := ev.SenderName
	if senderName == "" {
		senderName = session.DefaultUserName
	}
	timestamp := ev.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	msg := model.Message{
		ID:         ev.ID,
		Text:       ev.Text,
		Sender:     model.SenderRemote,
		SenderName: senderName,
		Timestamp:  timestamp,
		RoomID:     roomID,
	}

	if err := r.log.Append(msg); err != nil {
		r.logger.Warn("failed to persist inbound message", zap.Error(err))
	}
	if err := r.dir.Touch(roomID, msg.Text, msg.Timestamp); err != nil {
		r.logger.Warn("failed to refresh directory", zap.Error(err))
	}
	// The projection target is the authority on what the view shows, so the
	// extend guard asks it rather than re-deriving from activeRoom.
	if roomID == r.projector.RoomID() {
		r.projector.Extend(msg)
	}

	r.mu.Unlock()
	r.notify()
}

// =============================================================================
// OUTBOUND PATH
// =============================================================================

// SendMessage composes and sends a message in the active room. The transport
// attempt never gates the local bookkeeping: the message lands in the log,
// the directory, and the view whether or not a frame actually left. The
// resulting local/remote divergence is the documented contract of a
// fire-and-forget send, not a bug.
func (r *Reconciler) SendMessage(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	r.mu.Lock()

	now := time.Now().UnixMilli()
	ev := model.Event{
		ID:         generateMessageID(now),
		Text:       text,
		SenderID:   r.identity.ID(),
		SenderName: r.identity.UserName(),
		Timestamp:  now,
		RoomID:     r.activeRoom,
	}

	r.conn.Send(ev)

	msg := model.Message{
		ID:         ev.ID,
		Text:       ev.Text,
		Sender:     model.SenderSelf,
		SenderName: ev.SenderName,
		Timestamp:  ev.Timestamp,
		RoomID:     ev.RoomID,
	}

	if err := r.log.Append(msg); err != nil {
		r.logger.Warn("failed to persist sent message", zap.Error(err))
	}
	if err := r.dir.Touch(msg.RoomID, msg.Text, msg.Timestamp); err != nil {
		r.logger.Warn("failed to refresh directory", zap.Error(err))
	}
	r.projector.Extend(msg)

	r.mu.Unlock()
	r.notify()
}

// =============================================================================
// ROOM SWITCHING
// =============================================================================

// SelectRoom makes id the active room: the choice is persisted, the
// projection is recomputed wholesale, and the transport is torn down and
// redialed so the subscription boundary matches the room boundary. Frames
// the relay delivered in the close/dial gap are lost; that window is part of
// the reproduced behavior.
func (r *Reconciler) SelectRoom(ctx context.Context, id string) {
	r.mu.Lock()

	r.activeRoom = id
	if blob, err := json.Marshal(id); err == nil {
		if err := r.store.Set(store.KeyActiveRoom, blob); err != nil {
			r.logger.Warn("failed to persist active room", zap.Error(err))
		}
	}
	r.projector.SetRoom(id)

	r.mu.Unlock()

	if err := r.conn.Open(ctx); err != nil {
		r.logger.Warn("failed to reopen transport", zap.Error(err))
	}
	r.notify()
}

// CreateRoom adds a room to the directory and selects it, mirroring the
// compose flow where a fresh room is entered immediately.
func (r *Reconciler) CreateRoom(ctx context.Context, name string) (model.Room, error) {
	r.mu.Lock()
	room, err := r.dir.Create(name)
	r.mu.Unlock()
	if err != nil {
		return model.Room{}, err
	}

	r.SelectRoom(ctx, room.ID)
	return room, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func (r *Reconciler) notify() {
	r.mu.Lock()
	fn := r.onChange
	r.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// generateMessageID combines the clock with fresh entropy. Uniqueness rests
// on that combination; there is no global counter behind it.
func generateMessageID(nowMillis int64) string {
	bytes := make([]byte, 5)
	rand.Read(bytes)
	return strconv.FormatInt(nowMillis, 10) + "-" + hex.EncodeToString(bytes)
}
