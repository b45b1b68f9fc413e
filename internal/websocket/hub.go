package websocket

import (
	"encoding/json"
	"time"

	"codeberg.org/trigonal/backend/internal/logger"
	"codeberg.org/trigonal/backend/trigonal/briefs"
)

func NewHub() *Hub {
	return &Hub{
		clients:          make(map[string]*Client),
		adminConnections: make(map[string]int),
		register:         make(chan *registration),
		Unregister:       make(chan *Client),
		Broadcast:        make(chan *Message, broadcastBufferSize),
		shutdown:         make(chan struct{}),
		done:             make(chan struct{}),
	}
}

// starts the hub's main loop
func (h *Hub) Run() {
	h.running.Store(true)
	defer close(h.done)

	for {
		select {
		case reg := <-h.register:
			reg.result <- h.registerClient(reg.client)

		case client := <-h.Unregister:
			h.unregisterClient(client)

		case message := <-h.Broadcast:
			h.broadcast(message)

		case <-h.shutdown:
			h.closeAllConnections()
			return
		}
	}
}

// queues a brief event for every connected client without blocking the caller
func (h *Hub) PublishBrief(eventType string, brief *briefs.Brief) {
	msg := &Message{
		Type:      eventType,
		Brief:     brief,
		Timestamp: time.Now().UTC(),
	}

	select {
	case h.Broadcast <- msg:
	default:
		logger.Warn("feed broadcast queue full, dropping event",
			"type", eventType,
			"brief_id", brief.ID,
		)
	}
}

// adds client to the running hub; fails at the per-admin cap or after Shutdown
func (h *Hub) Register(client *Client) error {
	reg := &registration{client: client, result: make(chan error, 1)}

	select {
	case h.register <- reg:
	case <-h.shutdown:
		return ErrHubClosed
	}

	return <-reg.result
}

func (h *Hub) registerClient(client *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.AdminID != "" && h.adminConnections[client.AdminID] >= maxConnectionsPerAdmin {
		return ErrTooManyConnections
	}

	h.clients[client.ID] = client

	if client.AdminID != "" {
		h.adminConnections[client.AdminID]++
	}

	logger.Info("feed client registered",
		"client_id", client.ID,
		"admin_id", client.AdminID,
		"clients", len(h.clients),
	)

	return nil
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeClient(client)
}

// must be called with lock held
func (h *Hub) removeClient(client *Client) {
	if _, exists := h.clients[client.ID]; !exists {
		return
	}

	delete(h.clients, client.ID)
	client.Close()

	if client.AdminID != "" {
		h.adminConnections[client.AdminID]--

		if h.adminConnections[client.AdminID] <= 0 {
			delete(h.adminConnections, client.AdminID)
		}
	}

	logger.Info("feed client unregistered",
		"client_id", client.ID,
		"admin_id", client.AdminID,
	)
}

// sends a message to every client, dropping clients that cannot keep up
func (h *Hub) broadcast(msg *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sequence++
	msg.Sequence = h.sequence

	payload, err := json.Marshal(msg)
	if err != nil {
		logger.ErrorErr(err, "failed to marshal feed message", "type", msg.Type)
		return
	}

	for _, client := range h.clients {
		if err := client.enqueue(payload); err != nil {
			logger.Warn("dropping slow feed client",
				"client_id", client.ID,
				"admin_id", client.AdminID,
			)

			h.removeClient(client)
		}
	}
}

// reports whether adminID may open another feed connection; Register has the final say
func (h *Hub) CanAcceptConnection(adminID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.adminConnections[adminID] < maxConnectionsPerAdmin
}

// returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// stops the main loop and closes every client; safe to call more than once
func (h *Hub) Shutdown() {
	h.shutdownOnce.Do(func() {
		close(h.shutdown)
	})

	if h.running.Load() {
		<-h.done
	}
}

func (h *Hub) closeAllConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	logger.Info("closing feed connections", "clients", len(h.clients))

	payload, err := json.Marshal(&Message{
		Type:      TypeServerShutdown,
		Reason:    "server is shutting down",
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logger.ErrorErr(err, "failed to marshal shutdown message")
	}

	for _, client := range h.clients {
		// queued messages are still flushed by the write pump after Close
		if payload != nil {
			client.enqueue(payload) //nolint:errcheck,gosec // best-effort notification
		}

		client.Close()
	}

	h.clients = make(map[string]*Client)
	h.adminConnections = make(map[string]int)
}
