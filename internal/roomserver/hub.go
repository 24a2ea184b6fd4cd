package roomserver

import (
	"time"

	"github.com/roomvar/roomvar/internal/logging"
	"github.com/roomvar/roomvar/internal/roomapi"
)

// SnapshotFunc builds the variable list for the snapshot event sent to
// a newly registered subscriber.
type SnapshotFunc func(roomID string) []roomapi.Variable

// Hub maintains the set of active event subscribers and fans variable
// events out to the subscribers of the matching room.
type Hub struct {
	// Registered clients.
	clients map[*client]bool

	// Inbound events to fan out.
	broadcast chan roomapi.Event

	// Register requests from new clients.
	register chan *client

	// Unregister requests from clients.
	unregister chan *client

	// Closed to terminate the run loop.
	stop chan struct{}

	// snapshot supplies the initial event for a new subscriber.
	snapshot SnapshotFunc
}

func newHub(snapshot SnapshotFunc) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan roomapi.Event, 16),
		register:   make(chan *client),
		unregister: make(chan *client),
		stop:       make(chan struct{}),
		snapshot:   snapshot,
	}
}

// run processes register, unregister and broadcast requests until Stop
// is called. All access to the clients map happens on this goroutine.
func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			logging.LogConnection(client.remoteAddr, "event_client_registered")

			// A subscriber first receives the current room state, then
			// the individual change events as they happen.
			if h.snapshot != nil {
				h.deliver(client, roomapi.Event{
					Type:      roomapi.EventSnapshot,
					RoomID:    client.roomID,
					Variables: h.snapshot(client.roomID),
					Timestamp: time.Now().UTC(),
				})
			}

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				logging.LogConnection(client.remoteAddr, "event_client_unregistered")
			}

		case event := <-h.broadcast:
			for client := range h.clients {
				if client.roomID != event.RoomID {
					continue
				}
				h.deliver(client, event)
			}

		case <-h.stop:
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// deliver queues an event for one client. A client whose send buffer is
// full is dropped rather than allowed to stall the hub.
func (h *Hub) deliver(c *client, event roomapi.Event) {
	select {
	case c.send <- event:
	default:
		delete(h.clients, c)
		close(c.send)
		logging.LogConnection(c.remoteAddr, "event_client_dropped_slow")
	}
}

// Broadcast fans an event out to all subscribers of the event's room.
// Events broadcast after Stop are discarded.
func (h *Hub) Broadcast(event roomapi.Event) {
	select {
	case h.broadcast <- event:
	case <-h.stop:
	}
}

// Stop terminates the run loop and disconnects all clients.
func (h *Hub) Stop() {
	close(h.stop)
}
