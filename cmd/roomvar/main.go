// Roomvar is an operator console for escape room variable APIs.
//
// It lets a room operator inspect and manipulate the variables of a
// running room server: listing all variables in a room, updating a
// variable's value, creating new variables, and watching the live
// event stream. Servers on the local network can be located over mDNS.
//
// Usage:
//
//	roomvar [command] [flags]
//
// Running without arguments launches the interactive console.
// See 'roomvar --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roomvar/roomvar/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roomvar",
	Short: "Escape Room Variable Console",
	Long: `An operator console for escape room variable APIs.

Provides an interactive full-screen console plus one-shot commands for
listing, updating, and creating room variables, watching a room's live
event stream, and discovering room servers on the local network.

If no command is specified, the interactive console will launch
automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the console when no subcommand provided
		return runConsole(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roomvar %s (commit: %s)\n", version.Version, version.Commit)
	},
}
