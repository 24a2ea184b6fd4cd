// Package roomserver implements a practice room server for the variable API.
//
// This package provides a small in-memory server exposing the same HTTP
// surface that real escape room controllers expose, so the console and the
// CLI can be exercised without touching show hardware. State lives in memory
// only and is lost when the process exits.
//
// # HTTP API
//
// The server exposes three endpoints per room:
//
//	GET  /api/rooms/:roomId/variables        list variables (sorted by name)
//	POST /api/rooms/:roomId/variables        create a variable {name, type, value}
//	POST /api/rooms/:roomId/variables/:name  update a variable {value}
//
// Unknown rooms yield 404 with {"error": "room not found"}, except on
// create, which creates the room implicitly so a fresh server can be
// seeded by POSTing alone. Duplicate names yield 409.
//
// # Event Stream
//
// GET /api/rooms/:roomId/events upgrades to a WebSocket. A subscriber first
// receives a "snapshot" event carrying the full variable list, then
// "variable_created" and "variable_updated" events as changes happen. A
// single hub goroutine owns the subscriber set; slow subscribers are
// dropped rather than allowed to stall the hub.
//
// # Usage Example
//
//	// Create server configuration
//	config := &roomserver.Config{
//	    Host:        "",    // Listen on all interfaces
//	    Port:        3000,  // Default room server port
//	    LogLevel:    "info",
//	    Announce:    true,  // Advertise over mDNS
//	    DefaultRoom: "V7as_cLh2m8UX2EIrRCjh",
//	}
//
//	// Create and start server (blocks until SIGINT/SIGTERM)
//	srv, err := roomserver.New(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Discovery
//
// With Announce enabled the server registers "_roomvar._tcp" over mDNS,
// publishing the default room ID and server version as TXT records. The
// console's scan screen and 'roomvar scan' find it without configuration.
package roomserver
