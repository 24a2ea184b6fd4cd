package roomserver

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roomvar/roomvar/internal/roomapi"
)

// Store errors, mapped to HTTP statuses by the handlers.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrVariableNotFound = errors.New("variable not found")
	ErrVariableExists   = errors.New("variable already exists")
)

// Store is the in-memory variable store backing the practice server.
// All methods are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]map[string]*roomapi.Variable
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		rooms: make(map[string]map[string]*roomapi.Variable),
	}
}

// EnsureRoom creates an empty room if it does not exist yet.
func (s *Store) EnsureRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[roomID]; !ok {
		s.rooms[roomID] = make(map[string]*roomapi.Variable)
	}
}

// HasRoom reports whether a room exists.
func (s *Store) HasRoom(roomID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.rooms[roomID]
	return ok
}

// List returns copies of all variables in a room, sorted by name.
// The second return value is false when the room does not exist.
func (s *Store) List(roomID string) ([]roomapi.Variable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vars, ok := s.rooms[roomID]
	if !ok {
		return nil, false
	}

	out := make([]roomapi.Variable, 0, len(vars))
	for _, v := range vars {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, true
}

// Get returns a copy of a single variable by name.
func (s *Store) Get(roomID, name string) (roomapi.Variable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vars, ok := s.rooms[roomID]
	if !ok {
		return roomapi.Variable{}, false
	}

	v, exists := vars[name]
	if !exists {
		return roomapi.Variable{}, false
	}
	return *v, true
}

// Create adds a new variable to a room. The room is created implicitly
// when it does not exist yet. Returns ErrVariableExists when the name
// is already taken in that room.
func (s *Store) Create(roomID, name, varType string, value any) (roomapi.Variable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vars, ok := s.rooms[roomID]
	if !ok {
		vars = make(map[string]*roomapi.Variable)
		s.rooms[roomID] = vars
	}

	if _, exists := vars[name]; exists {
		return roomapi.Variable{}, ErrVariableExists
	}

	now := time.Now().UTC()
	v := &roomapi.Variable{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      varType,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	vars[name] = v
	return *v, nil
}

// Update changes the value of an existing variable.
// Returns ErrRoomNotFound or ErrVariableNotFound as appropriate.
func (s *Store) Update(roomID, name string, value any) (roomapi.Variable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vars, ok := s.rooms[roomID]
	if !ok {
		return roomapi.Variable{}, ErrRoomNotFound
	}

	v, exists := vars[name]
	if !exists {
		return roomapi.Variable{}, ErrVariableNotFound
	}

	v.Value = value
	v.UpdatedAt = time.Now().UTC()
	return *v, nil
}

// Rooms returns the IDs of all rooms, sorted.
func (s *Store) Rooms() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.rooms))
	for id := range s.rooms {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
