package roomapi

import (
	"context"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/roomvar/roomvar/internal/urls"
)

// Watch subscribes to a room's event stream. The returned channel first
// delivers a snapshot event holding the room's current variables, then one
// event per change, until the context is canceled or the server closes the
// connection. The channel is closed when the stream ends.
func (c *Client) Watch(ctx context.Context, baseURL, roomID string) (<-chan Event, error) {
	baseURL = strings.TrimSpace(baseURL)
	roomID = strings.TrimSpace(roomID)

	if baseURL == "" || roomID == "" {
		return nil, NewMissingInputError("Please provide both Base URL and Room ID.")
	}

	wsURL := eventStreamURL(baseURL, roomID)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, NewNetworkError("Failed to connect to event stream", err)
	}

	events := make(chan Event, 16)

	// Closing the connection on cancellation unblocks the read loop.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		defer close(events)
		defer conn.Close()
		for {
			var ev Event
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// eventStreamURL converts an HTTP base URL into the WebSocket URL of a
// room's event stream.
func eventStreamURL(baseURL, roomID string) string {
	httpURL := joinURL(baseURL, urls.Events(roomID))
	switch {
	case strings.HasPrefix(httpURL, "https://"):
		return "wss://" + strings.TrimPrefix(httpURL, "https://")
	case strings.HasPrefix(httpURL, "http://"):
		return "ws://" + strings.TrimPrefix(httpURL, "http://")
	default:
		return httpURL
	}
}
