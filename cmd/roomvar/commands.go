package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/roomvar/roomvar/internal/config"
	"github.com/roomvar/roomvar/internal/discovery"
	"github.com/roomvar/roomvar/internal/logging"
	"github.com/roomvar/roomvar/internal/roomapi"
	"github.com/roomvar/roomvar/internal/tui"
	"github.com/roomvar/roomvar/internal/ui"
)

// Command flags
var (
	baseURL      string
	roomID       string
	outputFormat string
	scanTimeout  int
)

func init() {
	// Target flags shared by every command (persistent on root)
	rootCmd.PersistentFlags().StringVar(&baseURL, "base", "", "Server base URL (default: last used)")
	rootCmd.PersistentFlags().StringVar(&roomID, "room", "", "Room ID (default: last used)")

	// Add subcommands directly to root
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(scanCmd)
}

// newClient prepares the API client for a one-shot command.
func newClient() *roomapi.Client {
	// Initialize logging from environment variable (silent by default)
	// Set ROOMVAR_LOG_LEVEL=debug to see detailed logs
	if err := logging.InitializeFromEnv(); err != nil {
		// Ignore error, GetLogger will create fallback logger
		_ = err
	}
	return roomapi.NewClient()
}

// resolveTarget returns the base URL and room ID for this invocation:
// flags first, then saved preferences, then the built-in defaults.
func resolveTarget() (string, string) {
	base := baseURL
	room := roomID

	if base == "" || room == "" {
		if registry, err := config.LoadRegistry(); err == nil && registry.Preferences != nil {
			if base == "" {
				base = registry.Preferences.BaseURL
			}
			if room == "" {
				room = registry.Preferences.RoomID
			}
		}
	}

	if base == "" {
		base = roomapi.DefaultBaseURL
	}
	if room == "" {
		room = roomapi.DefaultRoomID
	}

	return base, room
}

// consoleCmd launches the interactive TUI console
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Launch the interactive console",
	Long: `Launch the interactive full-screen console.

The console provides a form-based interface for:
- Listing all variables in a room
- Updating a variable's value
- Creating new variables
- Watching the room's live event stream
- Discovering room servers on the network

This is the recommended way to work with a room for most operators.`,
	Example: `  # Launch the console (console is the default command)
  roomvar console
  # Or simply:
  roomvar

  # Launch pointed at a specific server
  roomvar --base http://192.168.1.50:3000 --room V7as_cLh2m8UX2EIrRCjh`,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractive() {
		return fmt.Errorf("the interactive console requires a terminal; use 'roomvar vars' for scripted output")
	}

	model := tui.NewAppModel()

	// Flags override the saved preferences for this run
	if baseURL != "" || roomID != "" {
		model.Console.SetTarget(baseURL, roomID)
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

// varsCmd lists all variables in a room
var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List all variables in a room",
	Long: `Retrieve every variable in a room and display the server response.

The default text format shows the request transcript in styled boxes.
Use --format json for the raw response body, suitable for piping into
jq or other tools.`,
	Example: `  # List variables using the saved target
  roomvar vars

  # List variables on a specific server
  roomvar vars --base http://192.168.1.50:3000 --room V7as_cLh2m8UX2EIrRCjh

  # Raw JSON for scripting
  roomvar vars --format json | jq '.[].name'`,
	RunE: runVars,
}

func init() {
	varsCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
}

func runVars(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("invalid format %q (expected text or json)", outputFormat)
	}

	base, room := resolveTarget()

	req, err := roomapi.NewListRequest(base, room)
	if err != nil {
		return errors.New(roomapi.GetShortErrorMessage(err))
	}

	if outputFormat == "json" {
		return runRawRequest(req)
	}

	return runStyledRequest("Get All Variables", "roomvar vars", req, map[string]string{
		"Server": base,
		"Room":   room,
	})
}

// setCmd updates a variable's value
var setCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Update a variable's value",
	Long: `Update the value of an existing variable in a room.

The value is coerced to the most specific JSON type it can represent:
booleans first ("true"/"false" in any case), then integers, then
floating-point numbers, then plain text.`,
	Example: `  # Unlock the door
  roomvar set doorLocked false

  # Set a numeric value (sent as a number, not a string)
  roomvar set attemptsRemaining 3

  # Set a text value
  roomvar set hintText "Look under the rug"`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	base, room := resolveTarget()
	name, rawValue := args[0], args[1]

	req, err := roomapi.NewUpdateRequest(base, room, name, rawValue)
	if err != nil {
		return errors.New(roomapi.GetShortErrorMessage(err))
	}

	return runStyledRequest("Update Variable", "roomvar set", req, map[string]string{
		"Server":   base,
		"Room":     room,
		"Variable": name,
	})
}

// createCmd creates a new variable
var createCmd = &cobra.Command{
	Use:   "create <name> <type> [value]",
	Short: "Create a new variable",
	Long: `Create a new variable in a room with a name, a type label, and an
optional initial value.

The type label is free text recorded by the server (the usual values
are "boolean", "number", and "string"). The initial value is coerced
the same way as 'roomvar set'; omitting it creates the variable with
an empty string value.`,
	Example: `  # Create a boolean variable
  roomvar create isActive boolean true

  # Create a counter starting at zero
  roomvar create hintCount number 0

  # Create a text variable with no initial value
  roomvar create lastMessage string`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	base, room := resolveTarget()
	name, varType := args[0], args[1]

	rawValue := ""
	if len(args) >= 3 {
		rawValue = args[2]
	}

	req, err := roomapi.NewCreateRequest(base, room, name, varType, rawValue)
	if err != nil {
		return errors.New(roomapi.GetShortErrorMessage(err))
	}

	return runStyledRequest("Create Variable", "roomvar create", req, map[string]string{
		"Server":   base,
		"Room":     room,
		"Variable": name,
		"Type":     varType,
	})
}

// runStyledRequest performs one prepared request and prints the outcome
// through the styled printer: transcript box first, result box last.
func runStyledRequest(title, command string, req *roomapi.Request, params map[string]string) error {
	printer := ui.NewPrinter(nil)
	printer.PrintHeader(title, command, params)

	tr := roomapi.NewTranscript()
	tr.BeginRequest(req)

	client := newClient()
	result, err := client.Do(context.Background(), req)
	if err != nil {
		tr.Failure(err)
		printer.PrintTranscript(tr.String())
		printer.PrintError(
			roomapi.GetErrorTitle(err),
			errors.New(roomapi.GetShortErrorMessage(err)),
			troubleshootingTips(err),
		)
		return fmt.Errorf("request failed")
	}

	tr.Success(result.StatusCode, result.Body)
	printer.PrintTranscript(tr.String())
	printer.PrintSuccess(title+" complete", map[string]string{
		"Status": fmt.Sprintf("%d", result.StatusCode),
		"Target": req.URL,
	})

	return nil
}

// runRawRequest performs one prepared request and prints the raw response
// body with no styling, for piping into other tools.
func runRawRequest(req *roomapi.Request) error {
	client := newClient()
	result, err := client.Do(context.Background(), req)
	if err != nil {
		return errors.New(roomapi.GetShortErrorMessage(err))
	}

	fmt.Println(string(result.Body))
	return nil
}

// troubleshootingTips builds the failure-box bullet list for an error
func troubleshootingTips(err error) []string {
	var apiErr *roomapi.APIError
	if !errors.As(err, &apiErr) {
		return []string{
			"Try the request again",
			"Run with ROOMVAR_LOG_LEVEL=debug for more detail",
		}
	}

	switch apiErr.Type {
	case roomapi.ErrTypeTimeout:
		return []string{
			"Check that the room server is running",
			"Verify the base URL and port are correct",
			"Try 'roomvar scan' to locate servers on the network",
		}

	case roomapi.ErrTypeConnectionRefused:
		return []string{
			"Ensure the room server is running on that port (default is 3000)",
			"Check the base URL for typos",
			"Start a practice server with 'roomvar-server' to test against",
		}

	case roomapi.ErrTypeDNS:
		return []string{
			"Use the IP address instead of a hostname",
			"Check your network DNS settings",
			"Verify you're on the same network as the server",
		}

	case roomapi.ErrTypeNetwork:
		return []string{
			"Check your network connection",
			"Verify the room server is running",
			"Try 'roomvar scan' to locate servers on the network",
		}

	case roomapi.ErrTypeHTTP:
		if apiErr.StatusCode == 404 {
			return []string{
				"Check the room ID - it must match an existing room",
				"For updates, the variable must already exist (create it first)",
			}
		}
		if apiErr.StatusCode >= 500 {
			return []string{
				"Check the server logs",
				"Try the request again once the server recovers",
			}
		}
		return []string{
			"Check the request parameters",
			"Use 'roomvar vars' to inspect the room's current variables",
		}

	default:
		return []string{
			"Check the error message for details",
			"Run with ROOMVAR_LOG_LEVEL=debug for more detail",
		}
	}
}

// watchCmd streams live room events to stdout
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream live variable events from a room",
	Long: `Subscribe to a room's event stream and print each event as it
happens.

On connect the server sends a snapshot of the room's current variables,
followed by one event per change. The stream runs until interrupted
with Ctrl+C or the server closes the connection.`,
	Example: `  # Watch the saved target room
  roomvar watch

  # Watch a specific room
  roomvar watch --base http://192.168.1.50:3000 --room V7as_cLh2m8UX2EIrRCjh`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	base, room := resolveTarget()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := newClient()
	events, err := client.Watch(ctx, base, room)
	if err != nil {
		return errors.New(roomapi.GetShortErrorMessage(err))
	}

	fmt.Printf("Watching room %s at %s (Ctrl+C to stop)\n\n", room, base)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopped.")
			return nil

		case ev, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					fmt.Println("\nStopped.")
					return nil
				}
				return fmt.Errorf("event stream closed")
			}
			printEvent(ev)
		}
	}
}

// printEvent writes one stream event as a feed line (or lines, for the
// initial snapshot)
func printEvent(ev roomapi.Event) {
	stamp := ev.Timestamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	prefix := stamp.Local().Format("15:04:05")

	switch ev.Type {
	case roomapi.EventSnapshot:
		fmt.Printf("[%s] snapshot  %d variable(s)\n", prefix, len(ev.Variables))
		for _, v := range ev.Variables {
			fmt.Printf("           %s = %v (%s)\n", v.Name, v.Value, v.Type)
		}

	case roomapi.EventVariableCreated:
		if ev.Variable != nil {
			fmt.Printf("[%s] created   %s = %v (%s)\n", prefix, ev.Variable.Name, ev.Variable.Value, ev.Variable.Type)
		}

	case roomapi.EventVariableUpdated:
		if ev.Variable != nil {
			fmt.Printf("[%s] updated   %s = %v\n", prefix, ev.Variable.Name, ev.Variable.Value)
		}

	default:
		fmt.Printf("[%s] %s\n", prefix, ev.Type)
	}
}

// scanCmd discovers room servers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for room servers on the network",
	Long: `Scan for room servers using mDNS/DNS-SD discovery.

This command listens for mDNS broadcasts from room servers and displays
all discovered servers with their URLs, advertised rooms, and versions.`,
	Example: `  # Scan for 10 seconds (default)
  roomvar scan

  # Quick 3-second scan
  roomvar scan --timeout 3

  # Longer scan for congested networks
  roomvar scan --timeout 30`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 10, "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	fmt.Printf("Scanning for room servers (timeout: %ds)...\n\n", scanTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second

	servers, err := scanner.ScanForServers()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(servers) == 0 {
		fmt.Println("No room servers found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Start a practice server with 'roomvar-server --announce'")
		fmt.Println("  - Check that this machine is on the same network as the server")
		fmt.Println("  - Some networks block mDNS (multicast) traffic")
		fmt.Println("  - Use --base to target a server directly if discovery fails")
		fmt.Println("  - Try increasing --timeout for slower networks")
		return nil
	}

	fmt.Printf("Found %d server(s):\n\n", len(servers))

	for i, server := range servers {
		fmt.Printf("%d. %s\n", i+1, server.Name)
		fmt.Printf("   URL:     %s\n", server.BaseURL())
		if server.Room != "" {
			fmt.Printf("   Room:    %s\n", server.Room)
		}
		if server.Version != "" {
			fmt.Printf("   Version: %s\n", server.Version)
		}
		fmt.Println()
	}

	fmt.Println("Use 'roomvar vars --base <url>' to list a room's variables")
	fmt.Println("Use 'roomvar' for the interactive console")

	return nil
}
