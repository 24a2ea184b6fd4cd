// Package discovery provides mDNS-based discovery of room servers.
//
// This package implements multicast DNS (mDNS) service discovery to
// automatically locate room servers on the local network. Room servers
// advertise themselves using the "_roomvar._tcp" service type.
//
// # Discovery Process
//
// The discovery process works as follows:
//  1. Broadcasts mDNS queries on the local network
//  2. Listens for "_roomvar._tcp" service advertisements
//  3. Collects server information (instance name, IP, port, TXT records)
//  4. Returns a list of discovered servers after the timeout period
//
// # Usage Example
//
//	// Discover servers with 10-second timeout
//	servers, err := discovery.ScanForServers(10 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Print discovered servers
//	for _, server := range servers {
//	    fmt.Printf("Found: %s (default room: %s)\n",
//	        server.BaseURL(), server.Room)
//	}
//
// # Advertised Information
//
// Each discovered server includes:
//   - Name: mDNS instance name (e.g., "Escape Room Controller")
//   - IP: IPv4 address (IPv6 when no IPv4 address was advertised)
//   - Port: HTTP API port (typically 3000)
//   - Room: default room ID from the "room=" TXT record, if present
//   - Version: server version from the "version=" TXT record, if present
//
// The server side of the protocol is available through Announce, which
// publishes the same service type with room and version TXT records.
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Servers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
//
// # Thread Safety
//
// This package is safe for concurrent use. Multiple discovery sessions can run
// simultaneously without interference.
package discovery
