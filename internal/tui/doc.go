// Package tui implements the terminal user interface for the roomvar variable console.
//
// This package provides an interactive, full-screen TUI for exercising a room
// server's variable API: listing variables, updating and creating them, and
// watching live change events. Built using the Bubble Tea framework, it follows
// the Elm architecture with immutable state updates and a clean Model-Update-View
// pattern.
//
// # Architecture
//
// The TUI is organized into two screens:
//   - Console: Tabbed request builder with a live transcript viewport
//   - Scan: Discover room servers on the network or enter a URL manually
//
// Both screens use a unified container pattern (RenderApplicationContainer) for
// consistent layout with header, content area, and context-sensitive footer.
//
// # Framework Components
//
// The TUI leverages Bubble Tea framework components throughout:
//   - bubbles/spinner: Request and scan progress indicators
//   - bubbles/textinput: Target and variable entry fields
//   - bubbles/progress: Progress bars for in-flight requests and scans
//   - bubbles/list: Discovered server cards with filtering
//   - bubbles/help: Context-aware help system
//   - bubbles/viewport: Scrolling transcript and event feed
//   - lipgloss: Styling and layout
//
// # Usage Example
//
//	// Create and run the console
//	app := tui.NewAppModel()
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Screen Flow
//
// The typical user flow through the console:
//
//  1. Console Screen:
//     - Four tabs select the operation:
//       * Get All: List every variable in the room
//       * Update: Set a named variable to a new value
//       * Create: Define a new variable with name, type, and initial value
//       * Watch: Stream live change events over WebSocket
//     - Shared target section (base URL + room ID) used by every tab
//     - Per-tab input fields appear below the target section
//     - Send button fires the request; the transcript viewport shows the
//       outgoing request and the formatted response
//     - Successful requests remember the target in the configuration registry
//
//  2. Scan Screen (Ctrl+S from the console):
//     - Automatically scans the network for room servers (mDNS)
//     - Displays found servers as cards with URL, room, and version
//     - Allows manual URL entry if the server is not announced
//     - Selecting a server fills the console target and returns to it
//
// # Modal Overlays
//
// The console shows request states as modals centered over a dimmed background:
//   - Sending: Spinner plus a progress bar tracking the request timeout
//   - Input Missing: Warning naming the field that must be filled in
//   - Error: Classified error title, short message, and troubleshooting hints
//
// Modals consume all input until dismissed; Enter, Space, or ESC closes the
// warning and error modals.
//
// # Watch Mode
//
// The Watch tab toggles a WebSocket subscription to the room's event stream:
//   - Starting the watch opens the stream and appends events to the feed
//   - Each event line carries a local timestamp:
//     [15:04:05] updated   doorLocked = false
//   - The subscription is cancelled when toggled off or when switching tabs
//
// # Key Bindings
//
// Each screen has context-aware key bindings:
//   - Console (Tab Bar): ←/→ switch tabs, Tab/↓ into the form, q quit
//   - Console (Fields): Tab/↓ next field, Shift+Tab/↑ previous, Enter advance
//   - Console (Button): Enter/Space send or toggle watch, q quit
//   - Console (Global): Ctrl+S scan for servers, PgUp/PgDn scroll transcript
//   - Scan: ↑/↓ navigate, Enter select, r rescan, m manual URL, ESC back
//
// Help text automatically updates based on screen state (e.g., during scanning,
// manual entry).
//
// # Styling
//
// All styling uses lipgloss for consistency:
//   - Color palette: Purple primary, green highlights, orange warnings, red errors
//   - Borders: Rounded borders for tabs, cards, and modals
//   - Spacing: Consistent padding and margins
//   - Layout: Flexbox-style alignment and centering
//
// # State Management
//
// The TUI maintains immutable state with explicit updates:
//   - Models contain all state (no global variables)
//   - Update() returns new model + commands
//   - View() is pure function of model state
//   - Commands represent async operations (requests, scans, event reads)
//
// # Error Handling
//
// Request failures surface through the roomapi error taxonomy:
//   - Missing input: Warning modal before any request is sent
//   - Network errors: Classified as timeout, connection refused, or DNS failure
//   - HTTP errors: Status code and server message in the transcript
//   - Every error modal includes actionable troubleshooting hints
//
// # Thread Safety
//
// The Bubble Tea framework ensures thread safety through message passing.
// All model updates occur in a single goroutine, preventing race conditions.
package tui
