package roomserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/roomvar/roomvar/internal/logging"
	"github.com/roomvar/roomvar/internal/roomapi"
	"github.com/roomvar/roomvar/internal/urls"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The practice server serves local tooling, not browsers.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// registerRoutes wires the variable API onto the router.
func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET(urls.VariablesPattern, s.handleListVariables)
	router.POST(urls.VariablesPattern, s.handleCreateVariable)
	router.POST(urls.VariablePattern, s.handleUpdateVariable)
	router.GET(urls.EventsPattern, s.handleEvents)
}

// handleListVariables returns all variables of a room, sorted by name.
func (s *Server) handleListVariables(c *gin.Context) {
	roomID := c.Param("roomId")

	vars, ok := s.store.List(roomID)
	if !ok {
		c.JSON(http.StatusNotFound, roomapi.ErrorResponse{Error: "room not found"})
		return
	}

	c.JSON(http.StatusOK, vars)
}

// handleCreateVariable creates a variable. The room is created on first
// use so a fresh server can be seeded by POSTing alone.
func (s *Server) handleCreateVariable(c *gin.Context) {
	roomID := c.Param("roomId")

	var payload roomapi.CreatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, roomapi.ErrorResponse{Error: "invalid request body"})
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Type = strings.TrimSpace(payload.Type)
	if payload.Name == "" || payload.Type == "" {
		c.JSON(http.StatusBadRequest, roomapi.ErrorResponse{Error: "name and type are required"})
		return
	}

	variable, err := s.store.Create(roomID, payload.Name, payload.Type, payload.Value)
	if err != nil {
		c.JSON(http.StatusConflict, roomapi.ErrorResponse{Error: "variable already exists"})
		return
	}

	s.hub.Broadcast(roomapi.Event{
		Type:      roomapi.EventVariableCreated,
		RoomID:    roomID,
		Variable:  &variable,
		Timestamp: time.Now().UTC(),
	})

	c.JSON(http.StatusCreated, variable)
}

// handleUpdateVariable sets the value of an existing variable.
func (s *Server) handleUpdateVariable(c *gin.Context) {
	roomID := c.Param("roomId")
	name := c.Param("name")

	var payload roomapi.UpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, roomapi.ErrorResponse{Error: "invalid request body"})
		return
	}

	variable, err := s.store.Update(roomID, name, payload.Value)
	switch {
	case errors.Is(err, ErrRoomNotFound):
		c.JSON(http.StatusNotFound, roomapi.ErrorResponse{Error: "room not found"})
		return
	case errors.Is(err, ErrVariableNotFound):
		c.JSON(http.StatusNotFound, roomapi.ErrorResponse{Error: "variable not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, roomapi.ErrorResponse{Error: err.Error()})
		return
	}

	s.hub.Broadcast(roomapi.Event{
		Type:      roomapi.EventVariableUpdated,
		RoomID:    roomID,
		Variable:  &variable,
		Timestamp: time.Now().UTC(),
	})

	c.JSON(http.StatusOK, variable)
}

// handleEvents upgrades the connection to WebSocket and streams room
// events: a snapshot first, then changes as they happen.
func (s *Server) handleEvents(c *gin.Context) {
	roomID := c.Param("roomId")

	if !s.store.HasRoom(roomID) {
		c.JSON(http.StatusNotFound, roomapi.ErrorResponse{Error: "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", c.ClientIP()),
			zap.Error(err),
		)
		return
	}

	cl := &client{
		hub:        s.hub,
		conn:       conn,
		send:       make(chan roomapi.Event, sendBuffer),
		roomID:     roomID,
		remoteAddr: conn.RemoteAddr().String(),
	}
	cl.hub.register <- cl

	go cl.writePump()
	go cl.readPump()
}
