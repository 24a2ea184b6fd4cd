package tui

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/roomvar/roomvar/internal/discovery"
)

// Messages for async operations
type scanStartMsg struct{}
type scanCompleteMsg struct {
	servers []*discovery.Server
	err     error
}

// scanKeyMap defines key bindings for the scan screen
type scanKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Rescan key.Binding
	Manual key.Binding
	Back   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k scanKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Rescan, k.Manual, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k scanKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Rescan, k.Manual, k.Back},
	}
}

// manualModeKeyMap defines key bindings for manual URL entry mode
type manualModeKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (m manualModeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Confirm, m.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (m manualModeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Confirm, m.Cancel},
	}
}

// scanningKeyMap defines key bindings while a scan is running
type scanningKeyMap struct {
	Manual key.Binding
	Back   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (s scanningKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{s.Manual, s.Back}
}

// FullHelp returns keybindings for the expanded help view
func (s scanningKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{s.Manual, s.Back},
	}
}

// serverItem wraps a discovered Server for use with bubbles/list
type serverItem struct {
	server *discovery.Server
}

// FilterValue lets the list filter by name, address, or room
func (s serverItem) FilterValue() string {
	return s.server.Name + " " + s.server.IP + " " + s.server.Room
}

// Title returns the server name for list display
func (s serverItem) Title() string {
	if s.server.Name == "manual" {
		return fmt.Sprintf("Manual: %s", s.server.BaseURL())
	}
	return s.server.Name
}

// Description returns server details for list display
func (s serverItem) Description() string {
	room := s.server.Room
	if room == "" {
		room = "unknown"
	}
	return fmt.Sprintf("%s:%d • Room: %s", s.server.IP, s.server.Port, room)
}

// serverDelegate is a custom list delegate for rendering server cards
type serverDelegate struct {
	width int
}

func (d serverDelegate) Height() int { return 8 } // Card height including borders

func (d serverDelegate) Spacing() int { return 1 } // Spacing between cards

func (d serverDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d serverDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(serverItem)
	if !ok {
		return
	}

	server := si.server
	selected := index == m.Index()

	// Build server name
	name := server.Name
	if name == "manual" {
		name = fmt.Sprintf("Manual: %s", server.BaseURL())
	}

	room := server.Room
	if room == "" {
		room = "unknown"
	}

	version := server.Version
	if version == "" {
		version = "unknown"
	}

	// Build content lines
	var content strings.Builder

	// Add selection indicator to server name
	if selected {
		content.WriteString(SelectedMenuItemStyle.Render("→ " + name))
	} else {
		content.WriteString("  " + name)
	}
	content.WriteString("\n\n")

	// Server details
	content.WriteString(fmt.Sprintf("  URL:     %s\n", server.BaseURL()))
	content.WriteString(fmt.Sprintf("  Room:    %s\n", room))
	content.WriteString(fmt.Sprintf("  Version: %s\n", version))

	// Status with inline color styling
	statusStyle := lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)
	content.WriteString(fmt.Sprintf("  Status:  %s", statusStyle.Render("Online")))

	// Create responsive card style
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2).
		MarginLeft(2)

	// Calculate card width (leave room for margins and borders)
	cardWidth := d.width - 6 // 2 for margin-left, 4 for border + padding
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	if cardWidth > MaxContentWidth-6 {
		cardWidth = MaxContentWidth - 6
	}

	cardStyle = cardStyle.Width(cardWidth)

	// Highlight selected card
	if selected {
		cardStyle = cardStyle.BorderForeground(HighlightColor)
	}

	fmt.Fprint(w, cardStyle.Render(content.String()))
}

// ScanModel represents the server scan screen state
type ScanModel struct {
	// Scan state
	Scanning   bool
	ServerList list.Model
	Selected   bool
	Err        error

	// Manual URL entry state
	ManualMode bool
	URLInput   textinput.Model

	// Navigation results (read by the app coordinator)
	BackRequested bool

	// UI state
	Width         int
	Height        int
	Spinner       spinner.Model
	ProgressBar   progress.Model
	ScanStartTime time.Time
	ScanTimeout   time.Duration
	Help          help.Model
	Keys          scanKeyMap
	ManualKeys    manualModeKeyMap
	ScanningKeys  scanningKeyMap
}

// NewScanModel creates a new scan screen model
func NewScanModel(scanTimeout time.Duration) ScanModel {
	if scanTimeout <= 0 {
		scanTimeout = discovery.DefaultScanTimeout
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	// Initialize URL input for manual entry
	urlInput := textinput.New()
	urlInput.Placeholder = "http://192.168.1.50:3000"
	urlInput.CharLimit = 253
	urlInput.Width = 40

	// Initialize progress bar
	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.Width = 40

	// Initialize server list with custom delegate
	delegate := serverDelegate{width: MinTerminalWidth}
	serverList := list.New([]list.Item{}, delegate, 0, 0)
	serverList.Title = "Discovered Room Servers"
	serverList.SetShowStatusBar(false)
	serverList.SetFilteringEnabled(true)
	serverList.Styles.Title = TitleStyle

	// Initialize help
	h := help.New()

	// Initialize key bindings for normal mode
	keys := scanKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Manual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manual URL"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("esc", "back"),
		),
	}

	// Initialize key bindings for manual entry mode
	manualKeys := manualModeKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}

	// Initialize key bindings for scanning mode
	scanningKeys := scanningKeyMap{
		Manual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manual URL"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("esc", "back"),
		),
	}

	return ScanModel{
		Scanning:     false,
		ServerList:   serverList,
		Selected:     false,
		ManualMode:   false,
		URLInput:     urlInput,
		Spinner:      s,
		ProgressBar:  progressBar,
		ScanTimeout:  scanTimeout,
		Help:         h,
		Keys:         keys,
		ManualKeys:   manualKeys,
		ScanningKeys: scanningKeys,
	}
}

// Init starts scanning immediately
func (m ScanModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return scanStartMsg{} },
		scanServersCmd(m.ScanTimeout),
		m.Spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ManualMode {
			return m.updateManualMode(msg)
		}
		return m.updateNormalMode(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Update list size
		m.ServerList.SetWidth(msg.Width - 4)
		m.ServerList.SetHeight(msg.Height - 10) // Leave room for header/footer

	case scanStartMsg:
		m.Scanning = true
		m.ScanStartTime = time.Now()

	case scanCompleteMsg:
		m.Scanning = false
		m.Err = msg.err
		// Convert servers to list items
		items := make([]list.Item, len(msg.servers))
		for i, srv := range msg.servers {
			items[i] = serverItem{server: srv}
		}
		m.ServerList.SetItems(items)

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Update list if not in manual mode or scanning
	if !m.ManualMode && !m.Scanning {
		m.ServerList, cmd = m.ServerList.Update(msg)
	}

	return m, cmd
}

// updateNormalMode handles keyboard input in normal server list mode
func (m ScanModel) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q", "esc":
		// Back to the console without selecting
		if !m.Scanning {
			m.BackRequested = true
			return m, nil
		}

	case "enter", " ":
		// Get selected server from list
		if !m.Scanning && m.ServerList.SelectedItem() != nil {
			m.Selected = true
			return m, nil
		}

	case "r":
		// Rescan
		if !m.Scanning {
			m.ServerList.SetItems([]list.Item{})
			m.Err = nil
			return m, tea.Batch(
				func() tea.Msg { return scanStartMsg{} },
				scanServersCmd(m.ScanTimeout),
				m.Spinner.Tick,
			)
		}

	case "m":
		// Switch to manual URL entry mode
		m.ManualMode = true
		m.URLInput.SetValue("")
		m.URLInput.Focus()
	}

	// Let the list handle up/down navigation
	var cmd tea.Cmd
	if !m.Scanning {
		m.ServerList, cmd = m.ServerList.Update(msg)
	}
	return m, cmd
}

// updateManualMode handles keyboard input in manual URL entry mode
func (m ScanModel) updateManualMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		// Cancel manual entry
		m.ManualMode = false
		m.URLInput.SetValue("")
		m.URLInput.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.URLInput.Value())
		if value != "" {
			server := serverFromManualURL(value)
			// Add to the top of the list and select it
			newItem := serverItem{server: server}
			items := append([]list.Item{newItem}, m.ServerList.Items()...)
			m.ServerList.SetItems(items)
			m.ServerList.Select(0)
			m.ManualMode = false
			m.URLInput.SetValue("")
			m.URLInput.Blur()
			return m, nil
		}
	}

	// Update the text input
	m.URLInput, cmd = m.URLInput.Update(msg)
	return m, cmd
}

// serverFromManualURL builds a Server entry from a hand-typed base URL.
// Bare host[:port] input is accepted; the port defaults to 3000.
func serverFromManualURL(value string) *discovery.Server {
	if !strings.Contains(value, "://") {
		value = "http://" + value
	}

	host := value
	port := discovery.DefaultPort

	if u, err := url.Parse(value); err == nil && u.Hostname() != "" {
		host = u.Hostname()
		if p := u.Port(); p != "" {
			if n, err := strconv.Atoi(p); err == nil {
				port = n
			}
		}
	}

	return &discovery.Server{
		Name:         "manual",
		Hostname:     host,
		IP:           host,
		Port:         port,
		DiscoveredAt: time.Now(),
	}
}

// View renders the scan screen
func (m ScanModel) View() string {
	// Use default width if not set
	width := m.Width
	if width == 0 {
		width = MinTerminalWidth
	}

	// Build main content area
	var content string
	if m.ManualMode {
		content = m.renderManualEntry()
	} else if m.Scanning {
		content = m.renderScanning(width)
	} else {
		content = m.renderScanResults()
	}

	// Determine context-sensitive help text using bubbles/help
	var helpText string
	if m.ManualMode {
		helpText = m.Help.View(m.ManualKeys)
	} else if m.Scanning {
		helpText = m.Help.View(m.ScanningKeys)
	} else {
		helpText = m.Help.View(m.Keys)
	}

	// Wrap with application container (full-screen layout with height)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderScanning renders a centered scanning progress display
func (m ScanModel) renderScanning(width int) string {
	elapsed := time.Since(m.ScanStartTime)
	elapsedSec := int(elapsed.Seconds())

	// Progress against the scan timeout
	totalSec := int(m.ScanTimeout.Seconds())
	if totalSec <= 0 {
		totalSec = 1
	}
	progressPercent := minInt(100, (elapsedSec*100)/totalSec)
	progressFloat := float64(progressPercent) / 100.0

	// Build content components
	title := fmt.Sprintf("%s SEARCHING FOR ROOM SERVERS", m.Spinner.View())
	subtitle := "Scanning your network for roomvar practice servers..."

	// Use bubbles/progress component (ViewAs already includes percentage display)
	progressBar := m.ProgressBar.ViewAs(progressFloat)
	elapsedText := fmt.Sprintf("Elapsed: %ds", elapsedSec)

	// Use lipgloss.JoinVertical for layout composition
	content := lipgloss.JoinVertical(lipgloss.Center,
		"", // Top spacing
		TitleStyle.Render(title),
		"",
		SubtitleStyle.Render(subtitle),
		"",
		progressBar,
		"",
		SubtitleStyle.Render(elapsedText),
		"", // Bottom spacing
	)

	// Height = 0 means "no vertical constraint" so content determines height
	return lipgloss.Place(width, 0, lipgloss.Center, lipgloss.Top, content)
}

// renderScanResults renders the server list or the empty/error message
func (m ScanModel) renderScanResults() string {
	var b strings.Builder

	b.WriteString("\n")

	if m.Err != nil {
		// Error state
		b.WriteString(RenderError(fmt.Sprintf("Scan failed: %v", m.Err)))
		b.WriteString("\n\n")

		b.WriteString("  Troubleshooting:\n")
		b.WriteString("    • Check that this machine is on the same network as the server\n")
		b.WriteString("    • Some networks block mDNS (multicast) traffic\n")
		b.WriteString("    • Use 'm' to enter the server URL manually\n")

	} else if len(m.ServerList.Items()) == 0 {
		// No servers found
		b.WriteString("  ")
		warningStyle := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
		b.WriteString(warningStyle.Render("⚠ No room servers found on your network"))
		b.WriteString("\n\n")

		b.WriteString("  Troubleshooting:\n")
		b.WriteString("    • Start a practice server with 'roomvar-server --announce'\n")
		b.WriteString("    • Check that this machine is on the same network as the server\n")
		b.WriteString("    • Some networks block mDNS (multicast) traffic\n")
		b.WriteString("    • Use 'm' to enter the server URL manually, or 'r' to rescan\n")
		b.WriteString("\n")

	} else {
		// Servers found, render the list
		b.WriteString(m.ServerList.View())
	}

	return b.String()
}

// renderManualEntry renders the manual URL entry dialog
func (m ScanModel) renderManualEntry() string {
	var b strings.Builder

	b.WriteString(RenderSubtitle("Enter the room server base URL"))
	b.WriteString("\n\n")

	b.WriteString("  Base URL: ")
	b.WriteString(m.URLInput.View())
	b.WriteString("\n\n")

	return b.String()
}

// GetSelectedServer returns the selected server (if any)
func (m ScanModel) GetSelectedServer() *discovery.Server {
	if m.Selected {
		if selectedItem := m.ServerList.SelectedItem(); selectedItem != nil {
			if item, ok := selectedItem.(serverItem); ok {
				return item.server
			}
		}
	}
	return nil
}

// scanServersCmd performs the mDNS scan off the update loop
func scanServersCmd(timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		scanner := discovery.NewScanner()
		scanner.Timeout = timeout

		servers, err := scanner.ScanForServers()
		return scanCompleteMsg{
			servers: servers,
			err:     err,
		}
	}
}

// minInt returns the minimum of two integers
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
