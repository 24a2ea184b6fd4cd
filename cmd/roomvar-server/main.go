// Roomvar-server is a practice room server for the roomvar console.
//
// It implements the escape room variable API over HTTP: listing,
// creating, and updating named variables in rooms, plus a WebSocket
// event stream per room. State is held in memory, making it a
// disposable target for operator training, console development, and
// scripted testing.
//
// Usage:
//
//	roomvar-server [serve] [flags]
//
// See 'roomvar-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roomvar/roomvar/internal/roomapi"
	"github.com/roomvar/roomvar/internal/roomserver"
	"github.com/roomvar/roomvar/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roomvar-server",
	Short: "Practice Room Server",
	Long: `A standalone practice server implementing the escape room variable API.

The server holds rooms and their variables in memory and streams
variable changes to WebSocket subscribers. Point the 'roomvar' console
at it to try requests without touching a production room controller.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: serve when no subcommand provided
		return runServe(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	host        string
	port        int
	logLevel    string
	announce    bool
	defaultRoom string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the practice room server",
	Long: `Start the practice room server and block until interrupted.

The default room is created at startup so a freshly launched console
gets a valid response immediately. Additional rooms are created
implicitly the first time a variable is created in them.

With --announce, the server advertises itself over mDNS so consoles
on the same network can find it with 'roomvar scan'.`,
	Example: `  # Start on the default port (3000)
  roomvar-server serve
  # Or simply (serve is the default):
  roomvar-server

  # Start with mDNS announcement and debug logging
  roomvar-server serve --announce --log-level debug

  # Start on a custom port with a custom default room
  roomvar-server serve --port 8080 --room trainingRoom`,
	RunE: runServe,
}

func init() {
	// Persistent on root so the flags also work without the 'serve' word
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "Interface to bind (empty = all interfaces)")
	rootCmd.PersistentFlags().IntVar(&port, "port", 3000, "HTTP port")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&announce, "announce", false, "Advertise the server over mDNS while running")
	rootCmd.PersistentFlags().StringVar(&defaultRoom, "room", roomapi.DefaultRoomID, "Room pre-created at startup")
}

func runServe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d (expected 1-65535)", port)
	}

	config := &roomserver.Config{
		Host:        host,
		Port:        port,
		LogLevel:    logLevel,
		Announce:    announce,
		DefaultRoom: defaultRoom,
	}

	srv, err := roomserver.New(config)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roomvar-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
