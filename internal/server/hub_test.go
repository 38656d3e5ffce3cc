package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/alkime/selector/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Clients here have nil connections; the hub guards against nil on close.

func newTestHub(t *testing.T, sendBuf, broadcastBuf int) *Hub {
	t.Helper()
	return NewHub(slog.Default(), HubConfig{SendBuf: sendBuf, BroadcastBuf: broadcastBuf})
}

func testClient(hub *Hub, name string, buf int) *Client {
	return &Client{
		hub:        hub,
		send:       make(chan []byte, buf),
		remoteAddr: name,
		logger:     slog.Default(),
	}
}

func register(t *testing.T, hub *Hub, c *Client) {
	t.Helper()
	hub.register <- c
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		_, ok := hub.clients[c]
		return ok
	}, 500*time.Millisecond, time.Millisecond, "client not registered in time")
}

func TestHub_BroadcastDeliveredToAllClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := newTestHub(t, 4, 8)
	go hub.Run(ctx)

	c1 := testClient(hub, "c1", 4)
	c2 := testClient(hub, "c2", 4)
	register(t, hub, c1)
	register(t, hub, c2)

	msg := []byte(`{"type":"mode_selected"}`)
	hub.broadcast <- msg

	for _, c := range []*Client{c1, c2} {
		select {
		case got := <-c.send:
			assert.Equal(t, msg, got)
		case <-time.After(time.Second):
			t.Fatalf("%s did not receive broadcast", c.remoteAddr)
		}
	}
}

func TestHub_SlowClientDisconnected(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := newTestHub(t, 1, 8)
	go hub.Run(ctx)

	slow := testClient(hub, "slow", 1)
	register(t, hub, slow)

	hub.broadcast <- []byte("one")
	hub.broadcast <- []byte("two")

	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, time.Millisecond)

	// the queued frame is still readable, then send is closed
	<-slow.send
	_, open := <-slow.send
	assert.False(t, open)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hub := newTestHub(t, 4, 8)
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	c := testClient(hub, "c", 4)
	register(t, hub, c)

	cancel()
	<-done

	_, open := <-c.send
	assert.False(t, open)
	assert.Equal(t, 0, hub.Clients())
}

func TestRunBroadcaster_CoalescesKnobFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sw, err := selector.New(selector.DefaultConfig())
	require.NoError(t, err)

	hub := newTestHub(t, 16, 16)
	src := make(chan selector.Event, 16)
	go RunBroadcaster(ctx, hub, sw, src, slog.Default())

	// frames arrive faster than the coalesce window; only the done frame and
	// the following state change must go out, in order
	for a := 10.0; a < 100; a += 10 {
		src <- selector.Event{Kind: selector.KnobMoved, Angle: a}
	}
	src <- selector.Event{Kind: selector.KnobMoved, Angle: 120, Done: true}
	src <- selector.Event{Kind: selector.ColorsChanged}

	var types []string
	var angles []float64
	deadline := time.After(2 * time.Second)
	for len(types) < 3 {
		select {
		case msg := <-hub.broadcast:
			var env struct {
				Type string         `json:"type"`
				Data map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal(msg, &env))
			types = append(types, env.Type)
			if env.Type == string(selector.KnobMoved) {
				angles = append(angles, env.Data["angle"].(float64))
			}
		case <-deadline:
			t.Fatalf("got %v before timing out", types)
		}
	}

	assert.Equal(t, []string{"knob_moved", "knob_moved", "colors_changed"}, types)
	assert.Equal(t, []float64{90, 120}, angles, "the pending frame flushes before the final one")
}
