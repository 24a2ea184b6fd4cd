package roomapi

import (
	"strings"

	"github.com/roomvar/roomvar/internal/urls"
)

// Request is one fully prepared API call: a supported method, the complete
// URL, and an optional JSON payload. Construct these with the New*Request
// functions, which validate required fields before any request can exist.
type Request struct {
	Method  string
	URL     string
	Payload any // nil for GET requests
}

// NewListRequest prepares the call that retrieves all variables in a room.
// Both the base URL and the room ID are required.
func NewListRequest(baseURL, roomID string) (*Request, error) {
	baseURL = strings.TrimSpace(baseURL)
	roomID = strings.TrimSpace(roomID)

	if baseURL == "" || roomID == "" {
		return nil, NewMissingInputError("Please provide both Base URL and Room ID.")
	}

	return &Request{
		Method: "GET",
		URL:    joinURL(baseURL, urls.Variables(roomID)),
	}, nil
}

// NewUpdateRequest prepares the call that updates a named variable. The base
// URL, room ID, and variable name are required; the value may be empty, in
// which case the variable is set to the empty string.
func NewUpdateRequest(baseURL, roomID, name, rawValue string) (*Request, error) {
	baseURL = strings.TrimSpace(baseURL)
	roomID = strings.TrimSpace(roomID)
	name = strings.TrimSpace(name)
	rawValue = strings.TrimSpace(rawValue)

	if baseURL == "" || roomID == "" || name == "" {
		return nil, NewMissingInputError("Please provide Base URL, Room ID, and Variable Name.")
	}

	return &Request{
		Method:  "POST",
		URL:     joinURL(baseURL, urls.Variable(roomID, name)),
		Payload: UpdatePayload{Value: Coerce(rawValue)},
	}, nil
}

// NewCreateRequest prepares the call that creates a new variable. The base
// URL, room ID, variable name, and type are required; the initial value may
// be empty.
func NewCreateRequest(baseURL, roomID, name, varType, rawValue string) (*Request, error) {
	baseURL = strings.TrimSpace(baseURL)
	roomID = strings.TrimSpace(roomID)
	name = strings.TrimSpace(name)
	varType = strings.TrimSpace(varType)
	rawValue = strings.TrimSpace(rawValue)

	if baseURL == "" || roomID == "" || name == "" || varType == "" {
		return nil, NewMissingInputError("Please fill in all fields to create a variable.")
	}

	return &Request{
		Method: "POST",
		URL:    joinURL(baseURL, urls.Variables(roomID)),
		Payload: CreatePayload{
			Name:  name,
			Type:  varType,
			Value: Coerce(rawValue),
		},
	}, nil
}

// joinURL glues an API path onto a base URL, tolerating a trailing slash on
// the base so "http://host:3000/" and "http://host:3000" build the same URL.
func joinURL(baseURL, path string) string {
	return strings.TrimSuffix(baseURL, "/") + path
}
