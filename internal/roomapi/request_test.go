package roomapi

import (
	"encoding/json"
	"testing"
)

func TestNewListRequest(t *testing.T) {
	req, err := NewListRequest("http://localhost:3000", "R1")
	if err != nil {
		t.Fatalf("NewListRequest() error = %v", err)
	}

	if req.Method != "GET" {
		t.Errorf("Method = %q, want GET", req.Method)
	}
	if req.URL != "http://localhost:3000/api/rooms/R1/variables" {
		t.Errorf("URL = %q, want http://localhost:3000/api/rooms/R1/variables", req.URL)
	}
	if req.Payload != nil {
		t.Errorf("Payload = %v, want nil", req.Payload)
	}
}

func TestNewListRequest_TrailingSlash(t *testing.T) {
	req, err := NewListRequest("http://localhost:3000/", "R1")
	if err != nil {
		t.Fatalf("NewListRequest() error = %v", err)
	}

	if req.URL != "http://localhost:3000/api/rooms/R1/variables" {
		t.Errorf("URL = %q, trailing slash on base should not double up", req.URL)
	}
}

func TestNewListRequest_TrimsWhitespace(t *testing.T) {
	req, err := NewListRequest("  http://localhost:3000  ", "  R1  ")
	if err != nil {
		t.Fatalf("NewListRequest() error = %v", err)
	}

	if req.URL != "http://localhost:3000/api/rooms/R1/variables" {
		t.Errorf("URL = %q, inputs should be trimmed", req.URL)
	}
}

func TestNewUpdateRequest(t *testing.T) {
	req, err := NewUpdateRequest("http://localhost:3000", "R1", "score", "15")
	if err != nil {
		t.Fatalf("NewUpdateRequest() error = %v", err)
	}

	if req.Method != "POST" {
		t.Errorf("Method = %q, want POST", req.Method)
	}
	if req.URL != "http://localhost:3000/api/rooms/R1/variables/score" {
		t.Errorf("URL = %q, want http://localhost:3000/api/rooms/R1/variables/score", req.URL)
	}

	body, err := json.Marshal(req.Payload)
	if err != nil {
		t.Fatalf("payload does not marshal: %v", err)
	}
	// The value must be sent as a number, not a string.
	if string(body) != `{"value":15}` {
		t.Errorf("payload = %s, want {\"value\":15}", body)
	}
}

func TestNewUpdateRequest_EmptyValueAllowed(t *testing.T) {
	req, err := NewUpdateRequest("http://localhost:3000", "R1", "hint", "")
	if err != nil {
		t.Fatalf("NewUpdateRequest() error = %v", err)
	}

	body, _ := json.Marshal(req.Payload)
	if string(body) != `{"value":""}` {
		t.Errorf("payload = %s, want {\"value\":\"\"}", body)
	}
}

func TestNewCreateRequest(t *testing.T) {
	req, err := NewCreateRequest("http://localhost:3000", "R1", "isActive", "boolean", "true")
	if err != nil {
		t.Fatalf("NewCreateRequest() error = %v", err)
	}

	if req.Method != "POST" {
		t.Errorf("Method = %q, want POST", req.Method)
	}
	if req.URL != "http://localhost:3000/api/rooms/R1/variables" {
		t.Errorf("URL = %q, want http://localhost:3000/api/rooms/R1/variables", req.URL)
	}

	body, err := json.Marshal(req.Payload)
	if err != nil {
		t.Fatalf("payload does not marshal: %v", err)
	}
	if string(body) != `{"name":"isActive","type":"boolean","value":true}` {
		t.Errorf("payload = %s, want {\"name\":\"isActive\",\"type\":\"boolean\",\"value\":true}", body)
	}
}

func TestRequestValidation_MissingInput(t *testing.T) {
	tests := []struct {
		name        string
		build       func() (*Request, error)
		wantMessage string
	}{
		{
			name:        "list without base URL",
			build:       func() (*Request, error) { return NewListRequest("", "R1") },
			wantMessage: "Please provide both Base URL and Room ID.",
		},
		{
			name:        "list without room ID",
			build:       func() (*Request, error) { return NewListRequest("http://localhost:3000", "") },
			wantMessage: "Please provide both Base URL and Room ID.",
		},
		{
			name:        "list with whitespace-only room ID",
			build:       func() (*Request, error) { return NewListRequest("http://localhost:3000", "   ") },
			wantMessage: "Please provide both Base URL and Room ID.",
		},
		{
			name: "update without variable name",
			build: func() (*Request, error) {
				return NewUpdateRequest("http://localhost:3000", "R1", "", "15")
			},
			wantMessage: "Please provide Base URL, Room ID, and Variable Name.",
		},
		{
			name: "update without room ID",
			build: func() (*Request, error) {
				return NewUpdateRequest("http://localhost:3000", "", "score", "15")
			},
			wantMessage: "Please provide Base URL, Room ID, and Variable Name.",
		},
		{
			name: "create without type",
			build: func() (*Request, error) {
				return NewCreateRequest("http://localhost:3000", "R1", "isActive", "", "true")
			},
			wantMessage: "Please fill in all fields to create a variable.",
		},
		{
			name: "create without name",
			build: func() (*Request, error) {
				return NewCreateRequest("http://localhost:3000", "R1", "", "boolean", "true")
			},
			wantMessage: "Please fill in all fields to create a variable.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.build()
			if req != nil {
				t.Errorf("expected no request, got %+v", req)
			}
			if !IsMissingInputError(err) {
				t.Fatalf("expected missing-input error, got %T: %v", err, err)
			}
			apiErr := err.(*APIError)
			if apiErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestRequestPathEscaping(t *testing.T) {
	req, err := NewUpdateRequest("http://localhost:3000", "room one", "door state", "open")
	if err != nil {
		t.Fatalf("NewUpdateRequest() error = %v", err)
	}

	want := "http://localhost:3000/api/rooms/room%20one/variables/door%20state"
	if req.URL != want {
		t.Errorf("URL = %q, want %q", req.URL, want)
	}
}

func TestRequestValueCoercionInPayloads(t *testing.T) {
	tests := []struct {
		raw      string
		wantJSON string
	}{
		{"true", `{"value":true}`},
		{"False", `{"value":false}`},
		{"42", `{"value":42}`},
		{"3.14", `{"value":3.14}`},
		{"some_string", `{"value":"some_string"}`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req, err := NewUpdateRequest("http://localhost:3000", "R1", "v", tt.raw)
			if err != nil {
				t.Fatalf("NewUpdateRequest() error = %v", err)
			}
			body, _ := json.Marshal(req.Payload)
			if string(body) != tt.wantJSON {
				t.Errorf("payload for %q = %s, want %s", tt.raw, body, tt.wantJSON)
			}
		})
	}
}
