package websocket

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, id, adminID string, buffer int) *Client {
	return &Client{
		ID:      id,
		AdminID: adminID,
		hub:     hub,
		send:    make(chan []byte, buffer),
	}
}

func startHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Shutdown)

	return hub
}

func receive(t *testing.T, client *Client) Message {
	t.Helper()

	select {
	case payload := <-client.send:
		var msg Message
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for feed message")
		return Message{}
	}
}

func TestHubCreation(t *testing.T) {
	hub := NewHub()
	require.NotNil(t, hub)
	assert.NotNil(t, hub.Unregister)
	assert.NotNil(t, hub.Broadcast)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := startHub(t)
	client := newTestClient(hub, "client-1", "admin-1", 8)

	require.NoError(t, hub.Register(client))
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Unregister <- client
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
	assert.True(t, client.IsClosed())
}

func TestHubPublishBrief(t *testing.T) {
	hub := startHub(t)
	first := newTestClient(hub, "client-1", "admin-1", 8)
	second := newTestClient(hub, "client-2", "admin-2", 8)

	require.NoError(t, hub.Register(first))
	require.NoError(t, hub.Register(second))

	brief := &briefs.Brief{ID: "3f2b8c1e-9d4a-4e5f-8a6b-7c8d9e0f1a2b", Organization: "Gandaki Province Hospital", Status: briefs.StatusNew}
	hub.PublishBrief(TypeBriefCreated, brief)

	for _, client := range []*Client{first, second} {
		msg := receive(t, client)
		assert.Equal(t, TypeBriefCreated, msg.Type)
		require.NotNil(t, msg.Brief)
		assert.Equal(t, brief.ID, msg.Brief.ID)
		assert.Equal(t, uint64(1), msg.Sequence)
	}

	hub.PublishBrief(TypeBriefUpdated, brief)

	msg := receive(t, first)
	assert.Equal(t, TypeBriefUpdated, msg.Type)
	assert.Equal(t, uint64(2), msg.Sequence)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := startHub(t)
	slow := newTestClient(hub, "slow", "admin-1", 1)
	fast := newTestClient(hub, "fast", "admin-2", 8)

	require.NoError(t, hub.Register(slow))
	require.NoError(t, hub.Register(fast))

	brief := &briefs.Brief{ID: "3f2b8c1e-9d4a-4e5f-8a6b-7c8d9e0f1a2b"}
	hub.PublishBrief(TypeBriefCreated, brief)
	hub.PublishBrief(TypeBriefUpdated, brief)

	receive(t, fast)
	receive(t, fast)

	assert.Eventually(t, slow.IsClosed, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.ClientCount())
}

func TestHubConnectionLimitPerAdmin(t *testing.T) {
	hub := startHub(t)

	for i := range maxConnectionsPerAdmin {
		require.NoError(t, hub.Register(newTestClient(hub, string(rune('a'+i)), "admin-1", 1)))
	}

	assert.Equal(t, maxConnectionsPerAdmin, hub.ClientCount())
	assert.False(t, hub.CanAcceptConnection("admin-1"))
	assert.True(t, hub.CanAcceptConnection("admin-2"))

	err := hub.Register(newTestClient(hub, "overflow", "admin-1", 1))
	assert.ErrorIs(t, err, ErrTooManyConnections)
	assert.Equal(t, maxConnectionsPerAdmin, hub.ClientCount())

	require.NoError(t, hub.Register(newTestClient(hub, "other", "admin-2", 1)))
}

func TestHubConnectionLimitUnderConcurrentRegistration(t *testing.T) {
	hub := startHub(t)

	const attempts = 20
	results := make(chan error, attempts)

	for i := range attempts {
		go func() {
			results <- hub.Register(newTestClient(hub, fmt.Sprintf("client-%d", i), "admin-1", 1))
		}()
	}

	accepted := 0
	for range attempts {
		err := <-results
		if err == nil {
			accepted++
			continue
		}

		assert.ErrorIs(t, err, ErrTooManyConnections)
	}

	assert.Equal(t, maxConnectionsPerAdmin, accepted)
	assert.Equal(t, maxConnectionsPerAdmin, hub.ClientCount())
}

func TestHubRegisterAfterShutdown(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Shutdown()

	done := make(chan error, 1)
	go func() {
		done <- hub.Register(newTestClient(hub, "late", "admin-1", 1))
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrHubClosed)
	case <-time.After(time.Second):
		t.Fatal("Register blocked on a hub that has shut down")
	}
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, "client-1", "admin-1", 8)
	require.NoError(t, hub.Register(client))

	hub.Shutdown()
	hub.Shutdown() // second call is a no-op

	msg := receive(t, client)
	assert.Equal(t, TypeServerShutdown, msg.Type)

	_, open := <-client.send
	assert.False(t, open)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubShutdownWithoutRun(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		hub.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Shutdown blocked on a hub that never ran")
	}
}

func TestClientEnqueueAfterClose(t *testing.T) {
	client := newTestClient(NewHub(), "client-1", "admin-1", 1)
	client.Close()
	client.Close()

	assert.ErrorIs(t, client.enqueue([]byte("{}")), ErrConnectionClosed)
}

func TestOriginChecker(t *testing.T) {
	allowed := []string{"https://trigonaltechnology.com", "http://localhost:3000"}

	dev := NewOriginChecker(allowed, false)
	prod := NewOriginChecker(allowed, true)

	req := httptest.NewRequest("GET", "/api/admin/briefs/stream", nil)
	assert.True(t, dev(req), "no origin allowed outside production")
	assert.False(t, prod(req), "no origin rejected in production")

	req.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, prod(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, dev(req))
	assert.False(t, prod(req))
}

func TestGenerateClientID(t *testing.T) {
	a, err := GenerateClientID()
	require.NoError(t, err)

	b, err := GenerateClientID()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
