//go:build ignore

// Seed populates a running room server with a themed set of sample
// variables, giving the console something to look at right away.
//
// Usage:
//
//	go run tools/seed.go [baseURL [roomID]]
//
// Defaults to http://localhost:3000 and the sample room. Variables that
// already exist are reported and skipped (the server answers 409).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/roomvar/roomvar/internal/roomapi"
)

type seedVariable struct {
	name    string
	varType string
	value   string
}

// A small escape-room scenario: door locks, a countdown, puzzle state,
// and operator bookkeeping.
var seedVariables = []seedVariable{
	{"doorLocked", "boolean", "true"},
	{"vaultLocked", "boolean", "true"},
	{"blackoutActive", "boolean", "false"},
	{"countdownSeconds", "number", "3600"},
	{"hintCount", "number", "0"},
	{"maxHints", "number", "3"},
	{"keypadCode", "string", "4-2-7-1"},
	{"currentPuzzle", "string", "cipher-wheel"},
	{"difficultyScale", "number", "1.5"},
	{"lastMessage", "string", "Welcome, agents."},
}

func main() {
	baseURL := roomapi.DefaultBaseURL
	roomID := roomapi.DefaultRoomID

	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}
	if len(os.Args) > 2 {
		roomID = os.Args[2]
	}

	fmt.Printf("Seeding %s (room %s) with %d variables...\n\n", baseURL, roomID, len(seedVariables))

	client := roomapi.NewClient()
	created := 0

	for _, v := range seedVariables {
		req, err := roomapi.NewCreateRequest(baseURL, roomID, v.name, v.varType, v.value)
		if err != nil {
			fmt.Printf("  ✗ %-18s %v\n", v.name, err)
			continue
		}

		result, err := client.Do(context.Background(), req)
		if err != nil {
			if roomapi.IsHTTPError(err) {
				fmt.Printf("  - %-18s skipped (%s)\n", v.name, roomapi.GetShortErrorMessage(err))
				continue
			}
			fmt.Printf("\nSeeding aborted: %s\n", roomapi.GetShortErrorMessage(err))
			os.Exit(1)
		}

		created++
		fmt.Printf("  ✓ %-18s = %-18s (%s, status %d)\n", v.name, v.value, v.varType, result.StatusCode)
	}

	fmt.Printf("\nDone. Created %d of %d variables.\n", created, len(seedVariables))
	fmt.Println("Try 'roomvar vars' or 'roomvar watch' against the same room.")
}
