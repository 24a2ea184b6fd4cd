package roomserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/roomvar/roomvar/internal/roomapi"
)

const testRoom = "test-room"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	srv, err := New(&Config{
		Host:        "127.0.0.1",
		LogLevel:    "error",
		DefaultRoom: testRoom,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(srv.hub.Stop)
	return srv
}

// doJSON sends a request through the router and returns the recorder.
func doJSON(srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	buf := &bytes.Buffer{}
	if body != nil {
		_ = json.NewEncoder(buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decodeVariable(t *testing.T, w *httptest.ResponseRecorder) roomapi.Variable {
	t.Helper()

	var v roomapi.Variable
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode variable response %q: %v", w.Body.String(), err)
	}
	return v
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) roomapi.ErrorResponse {
	t.Helper()

	var e roomapi.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("Failed to decode error response %q: %v", w.Body.String(), err)
	}
	return e
}

func TestHandleListVariables_EmptyRoom(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(srv, http.MethodGet, "/api/rooms/"+testRoom+"/variables", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("GET variables status = %d, want 200", w.Code)
	}

	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("GET variables body = %q, want []", w.Body.String())
	}
}

func TestHandleListVariables_UnknownRoom(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(srv, http.MethodGet, "/api/rooms/nowhere/variables", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("GET variables status = %d, want 404", w.Code)
	}

	if e := decodeError(t, w); e.Error != "room not found" {
		t.Errorf("error = %q, want 'room not found'", e.Error)
	}
}

func TestHandleCreateVariable(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", roomapi.CreatePayload{
		Name:  "doorLocked",
		Type:  "boolean",
		Value: true,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("POST create status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}

	v := decodeVariable(t, w)
	if v.ID == "" {
		t.Error("created variable should have a non-empty ID")
	}
	if v.Name != "doorLocked" || v.Type != "boolean" || v.Value != true {
		t.Errorf("created variable = %+v, want doorLocked/boolean/true", v)
	}

	// The variable shows up in the listing
	w = doJSON(srv, http.MethodGet, "/api/rooms/"+testRoom+"/variables", nil)
	var vars []roomapi.Variable
	if err := json.Unmarshal(w.Body.Bytes(), &vars); err != nil {
		t.Fatalf("Failed to decode listing: %v", err)
	}
	if len(vars) != 1 || vars[0].Name != "doorLocked" {
		t.Errorf("listing = %+v, want single doorLocked entry", vars)
	}
}

func TestHandleCreateVariable_ImplicitRoom(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(srv, http.MethodPost, "/api/rooms/brand-new/variables", roomapi.CreatePayload{
		Name:  "hintCount",
		Type:  "number",
		Value: 0,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("POST create status = %d, want 201", w.Code)
	}

	w = doJSON(srv, http.MethodGet, "/api/rooms/brand-new/variables", nil)
	if w.Code != http.StatusOK {
		t.Errorf("GET after implicit room creation status = %d, want 200", w.Code)
	}
}

func TestHandleCreateVariable_Duplicate(t *testing.T) {
	srv := newTestServer(t)

	payload := roomapi.CreatePayload{Name: "doorLocked", Type: "boolean", Value: true}

	if w := doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", payload); w.Code != http.StatusCreated {
		t.Fatalf("first POST create status = %d, want 201", w.Code)
	}

	w := doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate POST create status = %d, want 409", w.Code)
	}

	if e := decodeError(t, w); e.Error != "variable already exists" {
		t.Errorf("error = %q, want 'variable already exists'", e.Error)
	}
}

func TestHandleCreateVariable_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{"missing name", roomapi.CreatePayload{Type: "boolean", Value: true}},
		{"missing type", roomapi.CreatePayload{Name: "doorLocked", Value: true}},
		{"whitespace name", roomapi.CreatePayload{Name: "   ", Type: "boolean"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}

	// Malformed JSON
	req := httptest.NewRequest(http.MethodPost, "/api/rooms/"+testRoom+"/variables", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed JSON status = %d, want 400", w.Code)
	}
}

func TestHandleUpdateVariable(t *testing.T) {
	srv := newTestServer(t)

	doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", roomapi.CreatePayload{
		Name:  "score",
		Type:  "number",
		Value: 0,
	})

	w := doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables/score", roomapi.UpdatePayload{
		Value: 15,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("POST update status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	v := decodeVariable(t, w)
	if v.Value != float64(15) {
		t.Errorf("updated value = %v (%T), want 15", v.Value, v.Value)
	}
}

func TestHandleUpdateVariable_NotFound(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(srv, http.MethodPost, "/api/rooms/nowhere/variables/score", roomapi.UpdatePayload{Value: 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("update in unknown room status = %d, want 404", w.Code)
	}
	if e := decodeError(t, w); e.Error != "room not found" {
		t.Errorf("error = %q, want 'room not found'", e.Error)
	}

	w = doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables/ghost", roomapi.UpdatePayload{Value: 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("update of unknown variable status = %d, want 404", w.Code)
	}
	if e := decodeError(t, w); e.Error != "variable not found" {
		t.Errorf("error = %q, want 'variable not found'", e.Error)
	}
}

func TestHandleUpdateVariable_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", roomapi.CreatePayload{
		Name: "score", Type: "number", Value: 0,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/rooms/"+testRoom+"/variables/score", strings.NewReader("{oops"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed update body status = %d, want 400", w.Code)
	}
}

func TestEventsSnapshotThenChanges(t *testing.T) {
	srv := newTestServer(t)

	doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", roomapi.CreatePayload{
		Name: "doorLocked", Type: "boolean", Value: true,
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/rooms/" + testRoom + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("WebSocket dial error = %v", err)
	}
	defer conn.Close()

	readEvent := func() roomapi.Event {
		t.Helper()
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var ev roomapi.Event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		return ev
	}

	// First frame is the snapshot with the current state
	snapshot := readEvent()
	if snapshot.Type != roomapi.EventSnapshot {
		t.Fatalf("first event type = %q, want %q", snapshot.Type, roomapi.EventSnapshot)
	}
	if snapshot.RoomID != testRoom {
		t.Errorf("snapshot room = %q, want %q", snapshot.RoomID, testRoom)
	}
	if len(snapshot.Variables) != 1 || snapshot.Variables[0].Name != "doorLocked" {
		t.Errorf("snapshot variables = %+v, want single doorLocked entry", snapshot.Variables)
	}

	// A create after subscribing streams as variable_created
	doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", roomapi.CreatePayload{
		Name: "hintCount", Type: "number", Value: 0,
	})

	created := readEvent()
	if created.Type != roomapi.EventVariableCreated {
		t.Fatalf("second event type = %q, want %q", created.Type, roomapi.EventVariableCreated)
	}
	if created.Variable == nil || created.Variable.Name != "hintCount" {
		t.Errorf("created event variable = %+v, want hintCount", created.Variable)
	}

	// An update streams as variable_updated
	doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables/doorLocked", roomapi.UpdatePayload{
		Value: false,
	})

	updated := readEvent()
	if updated.Type != roomapi.EventVariableUpdated {
		t.Fatalf("third event type = %q, want %q", updated.Type, roomapi.EventVariableUpdated)
	}
	if updated.Variable == nil || updated.Variable.Name != "doorLocked" || updated.Variable.Value != false {
		t.Errorf("updated event variable = %+v, want doorLocked=false", updated.Variable)
	}
}

func TestEventsUnknownRoomRejectsUpgrade(t *testing.T) {
	srv := newTestServer(t)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/rooms/nowhere/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		conn.Close()
		t.Fatal("Dial() to unknown room succeeded, want handshake failure")
	}

	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("handshake response = %+v, want status 404", resp)
	}
}

// TestWatchEndToEnd drives the full loop: the API client's Watch stream
// against the practice server over a real socket.
func TestWatchEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := roomapi.NewClient().Watch(ctx, ts.URL, testRoom)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	// Snapshot arrives first
	select {
	case ev := <-events:
		if ev.Type != roomapi.EventSnapshot {
			t.Fatalf("first event type = %q, want %q", ev.Type, roomapi.EventSnapshot)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot event")
	}

	doJSON(srv, http.MethodPost, "/api/rooms/"+testRoom+"/variables", roomapi.CreatePayload{
		Name: "timerSeconds", Type: "number", Value: 3600,
	})

	select {
	case ev := <-events:
		if ev.Type != roomapi.EventVariableCreated {
			t.Fatalf("second event type = %q, want %q", ev.Type, roomapi.EventVariableCreated)
		}
		if ev.Variable == nil || ev.Variable.Name != "timerSeconds" {
			t.Errorf("event variable = %+v, want timerSeconds", ev.Variable)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for variable_created event")
	}

	// Cancelling the context closes the stream
	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel not closed after context cancel")
		}
	}
}
