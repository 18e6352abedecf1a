package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"
)

func recvEvent(t *testing.T, c *Client) *Event {
	t.Helper()
	select {
	case raw := <-c.send:
		var e Event
		if err := json.Unmarshal(raw, &e); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		return &e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestHubBroadcastsToRegisteredClients(t *testing.T) {
	hub := NewHub(nil, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := NewClient(hub, nil, &ClientAuth{AdminID: 1, Email: "ops@voltride.in", Role: "admin"})
	hub.Register <- client

	welcome := recvEvent(t, client)
	if welcome.Type != EventConnected {
		t.Fatalf("expected %q first, got %q", EventConnected, welcome.Type)
	}

	hub.Publish(NewEvent(EventLeadCreated, map[string]interface{}{"id": 42}))

	got := recvEvent(t, client)
	if got.Type != EventLeadCreated {
		t.Fatalf("expected %q, got %q", EventLeadCreated, got.Type)
	}
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub(nil, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := NewClient(hub, nil, &ClientAuth{AdminID: 2})
	hub.Register <- client
	recvEvent(t, client)

	hub.unregister <- client

	deadline := time.After(2 * time.Second)
	for hub.TotalClients() != 0 {
		select {
		case <-deadline:
			t.Fatal("client was not unregistered")
		case <-time.After(10 * time.Millisecond):
		}
	}

	hub.Publish(NewEvent(EventBookingCreated, nil))
	select {
	case raw := <-client.send:
		t.Fatalf("unexpected delivery after unregister: %s", raw)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPublishDoesNotBlockWithoutRunningHub(t *testing.T) {
	hub := NewHub(nil, nil, zap.NewNop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.Publish(NewEvent(EventLeadCreated, nil))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked when backlog was full")
	}
}
