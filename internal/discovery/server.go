package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Server represents a discovered room server on the network
type Server struct {
	// Name is the mDNS instance name (e.g., "Escape Room Controller")
	Name string

	// Hostname is the mDNS hostname (e.g., "roomctl.local.")
	Hostname string

	// IP is the IPv4 address (e.g., "192.168.1.50")
	IP string

	// Port is the HTTP port (typically 3000)
	Port int

	// Room is the default room ID advertised by the server, if any
	Room string

	// Version is the server version advertised by the server, if any
	Version string

	// Metadata contains additional mDNS TXT record data
	// Common fields: "room=V7as_cLh2m8UX2EIrRCjh", "version=1.2.0"
	Metadata map[string]string

	// DiscoveredAt is when the server was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the server
func (s *Server) String() string {
	return fmt.Sprintf("Room server %q at %s:%d", s.Name, s.IP, s.Port)
}

// BaseURL returns the HTTP base URL for the server.
// IPv6 addresses are bracketed so the result is usable as-is.
func (s *Server) BaseURL() string {
	return "http://" + net.JoinHostPort(s.IP, strconv.Itoa(s.Port))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (s *Server) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}
