package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/roomvar/roomvar/internal/config"
	"github.com/roomvar/roomvar/internal/logging"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenConsole Screen = "console"
	ScreenScan    Screen = "scan"
)

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	// Current screen state
	CurrentScreen Screen

	// Screen models
	Console ConsoleModel
	Scan    ScanModel

	// Shared application state
	Registry *config.Registry

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the application model, starting at the console
func NewAppModel() AppModel {
	registry, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("Failed to load registry, using defaults", zap.Error(err))
		registry = config.NewRegistry()
	}

	return AppModel{
		CurrentScreen: ScreenConsole,
		Console:       NewConsoleModel(registry),
		Registry:      registry,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.Console.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Both screens resize, not just the visible one, so a transition
		// never lands on a stale layout.
		var cmds []tea.Cmd
		updated, cmd := m.Console.Update(msg)
		m.Console = updated.(ConsoleModel)
		cmds = append(cmds, cmd)
		updated, cmd = m.Scan.Update(msg)
		m.Scan = updated.(ScanModel)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Route to current screen
	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenConsole:
		updated, c := m.Console.Update(msg)
		m.Console = updated.(ConsoleModel)
		cmd = c

		// Check if the console asked for the scan screen
		if m.Console.ScanRequested {
			m.Console.ScanRequested = false
			return m.transitionToScan()
		}

	case ScreenScan:
		updated, c := m.Scan.Update(msg)
		m.Scan = updated.(ScanModel)
		cmd = c

		// Check if the user selected a server
		if m.Scan.Selected {
			if server := m.Scan.GetSelectedServer(); server != nil {
				m.Console.SetTarget(server.BaseURL(), server.Room)
			}
			return m.transitionToConsole()
		}

		// Check if the user backed out without selecting
		if m.Scan.BackRequested {
			return m.transitionToConsole()
		}
	}

	return m, cmd
}

// transitionToScan opens a fresh scan screen and starts scanning
func (m AppModel) transitionToScan() (tea.Model, tea.Cmd) {
	timeout := time.Duration(m.Registry.Preferences.ScanTimeout) * time.Second

	m.CurrentScreen = ScreenScan
	m.Scan = NewScanModel(timeout)
	m.Scan.Width = m.Width
	m.Scan.Height = m.Height
	m.Scan.ServerList.SetWidth(m.Width - 4)
	m.Scan.ServerList.SetHeight(m.Height - 10)

	return m, m.Scan.Init()
}

// transitionToConsole returns to the console screen
func (m AppModel) transitionToConsole() (tea.Model, tea.Cmd) {
	m.CurrentScreen = ScreenConsole
	return m, m.Console.Init()
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenConsole:
		return m.Console.View()
	case ScreenScan:
		return m.Scan.View()
	default:
		return "Unknown screen"
	}
}
