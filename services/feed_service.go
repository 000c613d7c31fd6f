// The feed hub pushes full collection snapshots to subscribed clients. A
// snapshot always replaces whatever the client held before - there are no
// deltas - and it only ever contains the subscriber's own records.
package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// Snapshot is one full point-in-time copy of a subscribed collection.
type Snapshot struct {
	Collection string    `json:"collection"`
	Records    any       `json:"records"`
	At         time.Time `json:"at"`
}

// SnapshotLoader produces the current full collection for one user.
type SnapshotLoader func(ctx context.Context, clerkID string) (any, error)

type FeedService struct {
	mu      sync.Mutex
	loaders map[string]SnapshotLoader
	clients map[string]map[*FeedClient]bool // clerkID + "/" + collection
}

func NewFeedService() *FeedService {
	return &FeedService{
		loaders: make(map[string]SnapshotLoader),
		clients: make(map[string]map[*FeedClient]bool),
	}
}

// RegisterLoader wires a collection name to its loader. Called once at
// startup for "journal" and "goal".
func (f *FeedService) RegisterLoader(collection string, loader SnapshotLoader) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaders[collection] = loader
}

// HasCollection reports whether a collection can be subscribed to.
func (f *FeedService) HasCollection(collection string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.loaders[collection]
	return ok
}

// FeedClient is the middleman between one websocket and the hub. Send is
// never closed; done marks the client as gone so a publish racing a
// disconnect cannot write to a dead client.
type FeedClient struct {
	Conn       *websocket.Conn
	Send       chan []byte
	ClerkID    string
	Collection string
	feed       *FeedService
	done       chan struct{}
}

func (f *FeedService) NewClient(conn *websocket.Conn, clerkID, collection string) *FeedClient {
	return &FeedClient{
		Conn:       conn,
		Send:       make(chan []byte, 4),
		ClerkID:    clerkID,
		Collection: collection,
		feed:       f,
		done:       make(chan struct{}),
	}
}

// Register adds the client and immediately sends it the current snapshot so
// a fresh subscriber never waits for the first mutation.
func (f *FeedService) Register(ctx context.Context, c *FeedClient) {
	key := c.ClerkID + "/" + c.Collection

	f.mu.Lock()
	if f.clients[key] == nil {
		f.clients[key] = make(map[*FeedClient]bool)
	}
	f.clients[key][c] = true
	f.mu.Unlock()

	if data, ok := f.loadSnapshot(ctx, c.ClerkID, c.Collection); ok {
		c.deliver(data)
	}
}

func (f *FeedService) Unregister(c *FeedClient) {
	key := c.ClerkID + "/" + c.Collection

	f.mu.Lock()
	defer f.mu.Unlock()
	if subs, ok := f.clients[key]; ok {
		if subs[c] {
			delete(subs, c)
			close(c.done)
		}
		if len(subs) == 0 {
			delete(f.clients, key)
		}
	}
}

// Publish loads a fresh snapshot for one user's collection and fans it out
// to every subscriber. Services call this after each confirmed mutation.
func (f *FeedService) Publish(ctx context.Context, clerkID, collection string) {
	data, ok := f.loadSnapshot(ctx, clerkID, collection)
	if !ok {
		return
	}

	key := clerkID + "/" + collection
	f.mu.Lock()
	targets := make([]*FeedClient, 0, len(f.clients[key]))
	for c := range f.clients[key] {
		targets = append(targets, c)
	}
	f.mu.Unlock()

	for _, c := range targets {
		c.deliver(data)
	}
}

func (f *FeedService) loadSnapshot(ctx context.Context, clerkID, collection string) ([]byte, bool) {
	f.mu.Lock()
	loader, ok := f.loaders[collection]
	f.mu.Unlock()
	if !ok {
		log.Printf("Feed: no loader registered for collection %s", collection)
		return nil, false
	}

	records, err := loader(ctx, clerkID)
	if err != nil {
		log.Printf("Feed: failed to load %s snapshot for %s: %v", collection, clerkID, err)
		return nil, false
	}

	snap := Snapshot{
		Collection: collection,
		Records:    records,
		At:         time.Now(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Feed: failed to marshal snapshot: %v", err)
		return nil, false
	}
	return data, true
}

// deliver queues a snapshot for the client. When the client is too slow the
// oldest queued snapshot is dropped: the latest one always supersedes it
// anyway. Delivery to a client that unregistered mid-publish is a no-op.
func (c *FeedClient) deliver(data []byte) {
	for {
		select {
		case <-c.done:
			return
		case c.Send <- data:
			return
		default:
			select {
			case <-c.Send:
			default:
			}
		}
	}
}

// ReadPump drains the connection. Subscribers send nothing meaningful; this
// exists to process pongs and to notice the peer going away.
func (c *FeedClient) ReadPump() {
	defer func() {
		c.feed.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// WritePump handles snapshots going TO the client.
func (c *FeedClient) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.done:
			// The hub dropped the client.
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
