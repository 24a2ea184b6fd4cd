// Package ui provides terminal UI components for the roomvar CLI.
//
// This package uses Lipgloss to render polished terminal output for
// one-shot commands. Unlike the interactive TUI console, these components
// follow a "run once and exit" pattern - they render output compellingly
// but don't require user interaction.
//
// # Architecture
//
// The UI package provides three main component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Result: Success/failure boxes with styled information
//   - ResponseOutput: Server response box with pretty-printed JSON
//
// One-shot commands print a header, perform their request, then print
// either a success result with the response body or a failure result
// with troubleshooting hints.
//
// # Usage Pattern
//
// Commands use this package by:
//
//  1. Rendering a Header with the operation name and parameters
//  2. Performing the request through the roomapi client
//  3. Rendering a Result (and ResponseOutput on success)
//
// Example:
//
//	fmt.Println(ui.RenderCommandHeader(ui.HeaderConfig{
//	    Title:   "Get All Variables",
//	    Command: "roomvar vars",
//	    Params:  map[string]string{"Server": baseURL, "Room": roomID},
//	}))
//
//	req, _ := roomapi.NewListRequest(baseURL, roomID)
//	result, err := roomapi.NewClient().Do(ctx, req)
//	if err != nil {
//	    fmt.Println(ui.RenderFailure("Request failed", err, []string{
//	        "Check that the room server is running",
//	        "Verify the base URL with: roomvar scan",
//	    }))
//	    os.Exit(1)
//	}
//
//	fmt.Println(ui.RenderSuccess("Variables retrieved", map[string]string{
//	    "Status": fmt.Sprintf("%d", result.StatusCode),
//	}))
//	fmt.Println(ui.RenderResponse(result.StatusCode, result.Body))
//
// # Responsive Design
//
// All components adapt to terminal width:
//
//   - Minimum width: 60 characters
//   - Maximum content width: 100 characters
//   - Headers and boxes scale between these bounds
//
// Use GetTerminalWidth() to detect the current terminal size, and
// IsInteractive() to decide whether the interactive console can run.
//
// # Color Scheme
//
// The package uses a consistent color palette:
//
//   - Primary (purple): Headers and structural elements
//   - Success (green): Completed operations
//   - Error (red): Failed operations
//   - Warning (orange): Partial results and cautions
//   - Muted (gray): Secondary information and response boxes
package ui
