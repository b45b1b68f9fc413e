package websocket

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/gorilla/websocket"
)

// message type constants for the admin feed
const (
	// is sent when a consult form submission is stored
	TypeBriefCreated = "brief_created"

	// is sent when an admin changes a brief's status
	TypeBriefUpdated = "brief_updated"

	// is sent by server before shutdown
	TypeServerShutdown = "server_shutdown"
)

// client connection constants
const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// the feed is push-only; inbound frames are control traffic at most
	maxMessageSize = 512

	// queued messages per client before it is dropped
	sendBufferSize = 256

	// queued broadcasts before Publish starts dropping events
	broadcastBufferSize = 256
)

// concurrent feed connections allowed per admin
const maxConnectionsPerAdmin = 5

var (
	ErrConnectionClosed   = errors.New("connection closed")
	ErrTooManyConnections = errors.New("too many feed connections")
	ErrHubClosed          = errors.New("feed hub is shut down")
)

// one event on the admin feed
type Message struct {
	Type      string        `json:"type"`
	Brief     *briefs.Brief `json:"brief,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Sequence  uint64        `json:"sequence"`
	Timestamp time.Time     `json:"timestamp"`
}

// fans brief events out to connected admin clients
type Hub struct {
	clients          map[string]*Client
	adminConnections map[string]int
	sequence         uint64

	register   chan *registration
	Unregister chan *Client
	Broadcast  chan *Message

	running      atomic.Bool
	shutdown     chan struct{}
	shutdownOnce sync.Once
	done         chan struct{}
	mu           sync.RWMutex
}

// a pending Register call; result receives exactly one value
type registration struct {
	client *Client
	result chan error
}

// a single admin feed connection
type Client struct {
	ID        string
	AdminID   string
	IPAddress string

	conn   *websocket.Conn
	hub    *Hub
	send   chan []byte
	closed bool
	mu     sync.RWMutex
}
