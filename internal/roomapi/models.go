package roomapi

import "time"

// Variable is the wire representation of a named, typed value scoped to a
// room. The console never interprets Value beyond display; servers populate
// it with whatever JSON type the variable holds (bool, number, or string).
type Variable struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Value     any       `json:"value"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Event types carried on a room's event stream.
const (
	EventSnapshot        = "snapshot"
	EventVariableCreated = "variable_created"
	EventVariableUpdated = "variable_updated"
)

// Event is one message on a room's event stream. Snapshot events carry the
// full variable list; change events carry the single affected variable.
type Event struct {
	Type      string     `json:"type"`
	RoomID    string     `json:"roomId"`
	Variable  *Variable  `json:"variable,omitempty"`
	Variables []Variable `json:"variables,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// CreatePayload is the POST body for creating a variable.
type CreatePayload struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// UpdatePayload is the POST body for updating a variable's value.
type UpdatePayload struct {
	Value any `json:"value"`
}

// ErrorResponse is the error body returned by the practice server.
type ErrorResponse struct {
	Error string `json:"error"`
}
