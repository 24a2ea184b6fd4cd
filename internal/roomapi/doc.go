// Package roomapi provides an HTTP client for the escape room variables API.
//
// This package implements the client side of a room server's variable
// endpoints: listing the variables of a room, updating a variable's value,
// and creating new variables. It also carries the value coercion policy,
// the request transcript used by every display surface, and a WebSocket
// subscriber for a room's live event stream.
//
// # Operations
//
// The API exposes three operations on a room's variable collection:
//   - List: GET /api/rooms/{roomId}/variables
//   - Update: POST /api/rooms/{roomId}/variables/{name} with {"value": v}
//   - Create: POST /api/rooms/{roomId}/variables with {"name", "type", "value"}
//
// # Usage Example
//
//	client := roomapi.NewClient()
//
//	req, err := roomapi.NewUpdateRequest(base, room, "doorLocked", "false")
//	if err != nil {
//	    // A required field was empty; nothing was sent.
//	    return err
//	}
//
//	tr := roomapi.NewTranscript()
//	tr.BeginRequest(req)
//
//	res, err := client.Do(ctx, req)
//	if err != nil {
//	    tr.Failure(err)
//	} else {
//	    tr.Success(res.StatusCode, res.Body)
//	}
//	fmt.Println(tr.String())
//
// # Value Coercion
//
// Operators type values as plain text; Coerce maps each string to the most
// specific JSON value it can represent (bool, integer, float, or the string
// itself). The mapping is total: no input ever fails to coerce.
//
// # Error Handling
//
// Every failure is an *APIError with a Type that drives presentation:
// missing-input errors block the request before any network activity,
// network and HTTP-status failures take the request error path, and
// anything else is reported as unexpected. GetShortErrorMessage,
// GetErrorTitle, and GetTroubleshootingHint turn an error into
// operator-facing text. Nothing is retried.
//
// # Concurrency
//
// A Client issues one call per Do invocation and holds no per-request
// state; the console keeps a single request in flight at a time.
package roomapi
