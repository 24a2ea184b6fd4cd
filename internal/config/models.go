package config

import (
	"time"

	"github.com/roomvar/roomvar/internal/roomapi"
)

// Registry represents the entire user configuration file.
// This stores user-defined metadata for room servers and application preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Servers     map[string]*Server `yaml:"servers,omitempty"` // Keyed by server base URL
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Server represents user-defined metadata for a single room server.
// This is keyed by the server's base URL in the Registry.
type Server struct {
	Nickname   string    `yaml:"nickname,omitempty"`     // User-friendly name (e.g., "Studio B Controller")
	LastRoomID string    `yaml:"last_room_id,omitempty"` // Last room ID used against this server
	LastSeen   time.Time `yaml:"last_seen,omitempty"`    // Last discovery/request time
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	BaseURL      string `yaml:"base_url"`      // Server base URL pre-filled on startup
	RoomID       string `yaml:"room_id"`       // Room ID pre-filled on startup
	AutoDiscover bool   `yaml:"auto_discover"` // Enable automatic mDNS discovery on startup
	ScanTimeout  int    `yaml:"scan_timeout"`  // mDNS discovery timeout in seconds
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Servers: make(map[string]*Server),
		Preferences: &Preferences{
			BaseURL:      roomapi.DefaultBaseURL,
			RoomID:       roomapi.DefaultRoomID,
			AutoDiscover: false,
			ScanTimeout:  10,
		},
	}
}

// GetServer retrieves server metadata by base URL.
// Returns nil if the server doesn't exist in the registry.
func (r *Registry) GetServer(baseURL string) *Server {
	return r.Servers[baseURL]
}

// EnsureServer ensures a server entry exists in the registry.
// If the server doesn't exist, creates a new entry with default values.
// Returns the server entry (existing or newly created).
func (r *Registry) EnsureServer(baseURL string) *Server {
	if r.Servers == nil {
		r.Servers = make(map[string]*Server)
	}

	if server, exists := r.Servers[baseURL]; exists {
		return server
	}

	// Create new server entry
	server := &Server{}
	r.Servers[baseURL] = server
	return server
}

// TouchServer updates the last seen timestamp and last used room ID for a server.
// An empty roomID leaves the recorded room untouched.
func (r *Registry) TouchServer(baseURL, roomID string) {
	server := r.EnsureServer(baseURL)
	server.LastSeen = time.Now()
	if roomID != "" {
		server.LastRoomID = roomID
	}
}

// SetServerNickname sets a user-friendly nickname for a server.
func (r *Registry) SetServerNickname(baseURL, nickname string) {
	server := r.EnsureServer(baseURL)
	server.Nickname = nickname
}
