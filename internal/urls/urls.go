package urls

import "net/url"

// Route patterns registered by the practice server. The :roomId and :name
// placeholders follow gin's parameter syntax.
const (
	// VariablesPattern matches the variable collection of a room,
	// serving both list (GET) and create (POST).
	VariablesPattern = "/api/rooms/:roomId/variables"

	// VariablePattern matches a single named variable, serving update (POST).
	VariablePattern = "/api/rooms/:roomId/variables/:name"

	// EventsPattern matches the WebSocket event stream of a room.
	EventsPattern = "/api/rooms/:roomId/events"
)

// Variables returns the path to a room's variable collection.
func Variables(roomID string) string {
	return "/api/rooms/" + url.PathEscape(roomID) + "/variables"
}

// Variable returns the path to a single named variable in a room.
func Variable(roomID, name string) string {
	return Variables(roomID) + "/" + url.PathEscape(name)
}

// Events returns the path to a room's event stream.
func Events(roomID string) string {
	return "/api/rooms/" + url.PathEscape(roomID) + "/events"
}
