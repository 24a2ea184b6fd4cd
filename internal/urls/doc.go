// Package urls provides centralized construction of the room API paths used
// throughout the application.
//
// This package is the single source of truth for the API surface: the client
// builds request paths from it and the server registers its routes from the
// matching patterns, so the two sides cannot drift apart.
//
// Usage:
//
//	import "github.com/roomvar/roomvar/internal/urls"
//
//	path := urls.Variables("V7as_cLh2m8UX2EIrRCjh")
//	// "/api/rooms/V7as_cLh2m8UX2EIrRCjh/variables"
package urls
