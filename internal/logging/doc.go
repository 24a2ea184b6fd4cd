// Package logging provides structured logging for the roomvar tools.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the console and the practice server. It provides
// both general logging functions and specialized functions for API-specific
// logging needs.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (event traffic, request bodies)
//   - Info: Normal operations (connections, requests, state changes)
//   - Warn: Non-fatal issues (dropped event clients, slow responses)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Variable updated",
//	    zap.String("room_id", "V7as_cLh2m8UX2EIrRCjh"),
//	    zap.String("variable", "doorLocked"),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
// Connection Logging:
//
//	logging.LogConnection(remoteAddr, "event_client_registered")
//	logging.LogConnection(remoteAddr, "event_client_unregistered")
//
// HTTP Logging:
//
//	logging.LogHTTPRequest(remoteAddr, "POST", "/api/rooms/R1/variables")
//	logging.LogHTTPResponse(remoteAddr, 201, elapsed)
//
// Event Logging:
//
//	logging.LogEvent(remoteAddr, "send", "variable_updated")
//
// # Configuration
//
// Logging is silent unless enabled. CLI commands initialize from the
// environment so casual use produces no log noise:
//
//	_ = logging.InitializeFromEnv() // honors ROOMVAR_LOG_LEVEL
//	defer logging.Sync()
//
// The server initializes with an explicit level from its --log-level flag.
//
// # Output Format
//
// Logs are written to stdout in console format (human-readable):
//
//	2025-11-25T10:30:45.123-0800  INFO  HTTP request received
//	  remote_addr=192.168.1.100
//	  method=GET
//	  path=/api/rooms/R1/variables
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
