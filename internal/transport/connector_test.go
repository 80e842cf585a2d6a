// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jeranaias/parley-tui/internal/model"
)

// =============================================================================
// TEST RELAY
// =============================================================================

// testRelay is a minimal websocket endpoint that records frames it receives
// and can push raw frames to the most recent client.
type testRelay struct {
	srv      *httptest.Server
	upgrader websocket.Upgrader

	mu       sync.Mutex
	conn     *websocket.Conn
	received chan []byte
}

func newTestRelay(t *testing.T) *testRelay {
	t.Helper()
	r := &testRelay{received: make(chan []byte, 16)}

	r.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := r.upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		r.mu.Lock()
		r.conn = conn
		r.mu.Unlock()

		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			r.received <- payload
		}
	}))
	t.Cleanup(r.srv.Close)
	return r
}

func (r *testRelay) url() string {
	return "ws" + strings.TrimPrefix(r.srv.URL, "http")
}

func (r *testRelay) push(t *testing.T, payload string) {
	t.Helper()
	r.mu.Lock()
	conn := r.conn
	r.mu.Unlock()
	if conn == nil {
		t.Fatal("no client connected")
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
		t.Fatalf("relay write failed: %v", err)
	}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

// =============================================================================
// CONNECTOR TESTS
// =============================================================================

func TestConnector_InitialState(t *testing.T) {
	c := NewConnector("ws://localhost:1", nil, nil)
	if c.State() != StateDisconnected {
		t.Errorf("State = %v, want disconnected", c.State())
	}
}

func TestConnector_OpenAndClose(t *testing.T) {
	relay := newTestRelay(t)
	c := NewConnector(relay.url(), func(model.Event) {}, nil)

	if err := c.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if c.State() != StateOpen {
		t.Errorf("State after Open = %v, want open", c.State())
	}

	c.Close()
	if c.State() != StateClosed {
		t.Errorf("State after Close = %v, want closed", c.State())
	}
}

func TestConnector_OpenFailure(t *testing.T) {
	c := NewConnector("ws://127.0.0.1:1", nil, nil)

	if err := c.Open(context.Background()); err == nil {
		t.Fatal("Open against a dead port should fail")
	}
	if c.State() != StateClosed {
		t.Errorf("State after failed Open = %v, want closed", c.State())
	}
}

func TestConnector_SendWhileNotOpenIsDropped(t *testing.T) {
	relay := newTestRelay(t)
	c := NewConnector(relay.url(), func(model.Event) {}, nil)

	// Never opened: the send must vanish without error or panic.
	c.Send(model.Event{ID: "x", Text: "hi"})

	select {
	case payload := <-relay.received:
		t.Errorf("relay should have received nothing, got %q", payload)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestConnector_SendWhileOpen(t *testing.T) {
	relay := newTestRelay(t)
	c := NewConnector(relay.url(), func(model.Event) {}, nil)

	if err := c.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	c.Send(model.Event{ID: "m1", Text: "hello", SenderID: "user_ab", RoomID: "1"})

	select {
	case payload := <-relay.received:
		if !strings.Contains(string(payload), `"id":"m1"`) {
			t.Errorf("frame = %s, want id m1", payload)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not receive the frame")
	}
}

func TestConnector_InboundDelivery(t *testing.T) {
	relay := newTestRelay(t)

	var mu sync.Mutex
	var events []model.Event
	c := NewConnector(relay.url(), func(ev model.Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}, nil)

	if err := c.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	relay.push(t, `{"id":"m1","text":"hello","senderId":"userX","senderName":"X","timestamp":123,"roomId":"1"}`)

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 1
	}, "inbound event was not delivered")

	mu.Lock()
	defer mu.Unlock()
	if events[0].ID != "m1" || events[0].RoomID != "1" || events[0].Timestamp != 123 {
		t.Errorf("event = %+v", events[0])
	}
}

func TestConnector_MalformedFrameDiscarded(t *testing.T) {
	relay := newTestRelay(t)

	var mu sync.Mutex
	var events []model.Event
	c := NewConnector(relay.url(), func(ev model.Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}, nil)

	if err := c.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	relay.push(t, `{{{not json`)
	relay.push(t, `{"id":"m2","text":"still alive"}`)

	// The valid frame after the junk proves the connection survived.
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 1
	}, "valid frame after malformed one was not delivered")

	mu.Lock()
	defer mu.Unlock()
	if events[0].ID != "m2" {
		t.Errorf("event = %+v, want id m2", events[0])
	}
	if c.State() != StateOpen {
		t.Errorf("State = %v, want open after malformed frame", c.State())
	}
}

func TestConnector_RateLimitedSendDroppedWithWarning(t *testing.T) {
	relay := newTestRelay(t)
	core, logs := observer.New(zap.WarnLevel)
	c := NewConnector(relay.url(), func(model.Event) {}, zap.New(core))

	if err := c.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	// Offer far more frames than the burst admits in one instant. The
	// overflow must drop silently toward the caller but leave a warning,
	// since this is the one drop a user can trigger by hand.
	offered := 3 * sendBurst
	for i := 0; i < offered; i++ {
		c.Send(model.Event{ID: fmt.Sprintf("m%d", i), Text: "spam"})
	}

	waitFor(t, func() bool {
		return logs.FilterMessage("send dropped: rate limited").Len() > 0
	}, "no rate-limit drop was logged")

	delivered := 0
	for {
		select {
		case <-relay.received:
			delivered++
		case <-time.After(300 * time.Millisecond):
			if delivered >= offered {
				t.Errorf("delivered = %d of %d, expected the limiter to shed some", delivered, offered)
			}
			return
		}
	}
}

func TestConnector_ReopenReplacesConnection(t *testing.T) {
	relay := newTestRelay(t)
	c := NewConnector(relay.url(), func(model.Event) {}, nil)

	if err := c.Open(context.Background()); err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := c.Open(context.Background()); err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer c.Close()

	if c.State() != StateOpen {
		t.Errorf("State after reopen = %v, want open", c.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateDisconnected, "disconnected"},
		{StateConnecting, "connecting"},
		{StateOpen, "open"},
		{StateClosing, "closing"},
		{StateClosed, "closed"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
