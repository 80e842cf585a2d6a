// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jeranaias/parley-tui/internal/model"
)

// =============================================================================
// CONNECTION STATE
// =============================================================================

// State is the connection lifecycle state.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateOpen
	StateClosing
	StateClosed
)

// String returns the state name for status display.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// =============================================================================
// CONNECTOR
// =============================================================================

// sendBurst bounds how many frames may leave in a burst before the limiter
// starts dropping. Dropped frames follow the same silent-loss contract as
// sends while disconnected.
const sendBurst = 20

// Connector manages one websocket connection to the relay. Inbound frames
// are parsed and handed to the onEvent callback; frames that fail to parse
// are discarded and the connection stays up.
type Connector struct {
	url     string
	onEvent func(model.Event)
	logger  *zap.Logger
	limiter *rate.Limiter

	mu    sync.Mutex
	state State
	conn  *websocket.Conn
	gen   int
}

// NewConnector creates a connector for the given ws:// or wss:// URL.
// onEvent is invoked from the read goroutine for every parsed inbound frame.
func NewConnector(url string, onEvent func(model.Event), logger *zap.Logger) *Connector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connector{
		url:     url,
		onEvent: onEvent,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(10), sendBurst),
		state:   StateDisconnected,
	}
}

// State returns the current connection state.
func (c *Connector) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Open tears down any existing connection and dials a fresh one. It is
// called once at startup and again on every room switch; the close/dial gap
// is a real loss window and is left that way on purpose.
func (c *Connector) Open(ctx context.Context) error {
	c.Close()

	c.mu.Lock()
	c.state = StateConnecting
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		c.mu.Lock()
		if c.gen == gen {
			c.state = StateClosed
		}
		c.mu.Unlock()
		return fmt.Errorf("failed to dial %q: %w", c.url, err)
	}

	c.mu.Lock()
	if c.gen != gen {
		// A newer Open or Close raced us; this connection is already stale.
		c.mu.Unlock()
		conn.Close()
		return nil
	}
	c.conn = conn
	c.state = StateOpen
	c.mu.Unlock()

	c.logger.Info("transport open", zap.String("url", c.url))
	go c.readLoop(conn, gen)
	return nil
}

// Close tears down the connection if one exists.
func (c *Connector) Close() {
	c.mu.Lock()
	conn := c.conn
	if conn != nil {
		c.state = StateClosing
	}
	c.conn = nil
	c.gen++
	c.mu.Unlock()

	if conn != nil {
		conn.Close()
		c.mu.Lock()
		c.state = StateClosed
		c.mu.Unlock()
		c.logger.Info("transport closed")
	}
}

// Send transmits the event if the connection is open. In every other case
// the frame is dropped: no queue, no retry, no error to the caller. Local
// state is the caller's concern and advances regardless.
func (c *Connector) Send(ev model.Event) {
	c.mu.Lock()
	conn := c.conn
	open := c.state == StateOpen
	c.mu.Unlock()

	if !open || conn == nil {
		c.logger.Debug("send dropped: not open", zap.String("id", ev.ID))
		return
	}
	// Warn, not debug: unlike the other drop cases this one is reachable by
	// a user typing fast enough, and the loss is otherwise invisible.
	if !c.limiter.Allow() {
		c.logger.Warn("send dropped: rate limited", zap.String("id", ev.ID))
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		c.logger.Debug("send dropped: encode failed", zap.Error(err))
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.logger.Debug("send dropped: write failed", zap.Error(err))
	}
}

// readLoop reads frames until the connection dies. A frame that cannot be
// parsed is discarded without tearing the connection down.
func (c *Connector) readLoop(conn *websocket.Conn, gen int) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			if c.gen == gen {
				c.state = StateClosed
				c.conn = nil
			}
			c.mu.Unlock()
			c.logger.Info("transport read loop ended", zap.Error(err))
			return
		}

		var ev model.Event
		if err := json.Unmarshal(payload, &ev); err != nil {
			c.logger.Debug("inbound frame discarded: parse failed", zap.Error(err))
			continue
		}
		c.onEvent(ev)
	}
}
