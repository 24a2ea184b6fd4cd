package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/roomvar/roomvar/internal/config"
	"github.com/roomvar/roomvar/internal/logging"
	"github.com/roomvar/roomvar/internal/roomapi"
)

// Message types for async operations
type requestCompleteMsg struct {
	result *roomapi.Result
	err    error
}

type watchStartedMsg struct {
	events <-chan roomapi.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event roomapi.Event
	ok    bool
}

// Tab identifies one of the console's action tabs
type Tab int

const (
	TabGetAll Tab = iota
	TabUpdate
	TabCreate
	TabWatch
)

// tabLabels in display order
var tabLabels = []string{"Get All", "Update", "Create", "Watch"}

// Focus positions shared by every tab. Positions past focusRoom depend on
// the active tab; the send/watch button is always the last position.
const (
	focusTabBar = 0
	focusBase   = 1
	focusRoom   = 2
	focusFields = 3 // First tab-specific field (when the tab has any)
)

// consoleKeyMap defines key bindings for the console screen
type consoleKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	SwitchTab key.Binding
	Send      key.Binding
	Scan      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k consoleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.SwitchTab, k.Send, k.Scan, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k consoleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.SwitchTab},
		{k.Send, k.Scan, k.Quit},
	}
}

// ConsoleModel is the main console screen: target fields, action tabs, and
// the response transcript. One request is in flight at a time; while the
// sending modal is up all other input is ignored.
type ConsoleModel struct {
	// Target fields (shared by every tab)
	BaseInput textinput.Model
	RoomInput textinput.Model

	// Per-tab fields
	NameInput  textinput.Model // Update, Create
	TypeInput  textinput.Model // Create
	ValueInput textinput.Model // Update, Create

	// Navigation
	ActiveTab Tab
	Focus     int

	// Request state machine: idle until Send, then the sending modal owns
	// the screen until the completion message arrives.
	Sending      bool
	RequestStart time.Time
	LastRequest  *roomapi.Request

	// Modal state
	ShowingWarning bool   // Missing input
	WarningMessage string //
	ShowingError   bool   // Request or unexpected error
	LastError      error  //

	// Response transcript
	Transcript *roomapi.Transcript
	Viewport   viewport.Model

	// Watch state
	Watching        bool
	WatchConnecting bool
	WatchCancel     context.CancelFunc
	WatchEvents     <-chan roomapi.Event
	EventLines      []string

	// Shared services
	Client   *roomapi.Client
	Registry *config.Registry

	// Navigation results (read by the app coordinator)
	ScanRequested bool

	// UI state
	Width       int
	Height      int
	Spinner     spinner.Model
	ProgressBar progress.Model
	Help        help.Model
	Keys        consoleKeyMap
}

// NewConsoleModel creates the console screen, prefilled from the registry
func NewConsoleModel(registry *config.Registry) ConsoleModel {
	if registry == nil {
		registry = config.NewRegistry()
	}

	baseURL := registry.Preferences.BaseURL
	if baseURL == "" {
		baseURL = roomapi.DefaultBaseURL
	}
	roomID := registry.Preferences.RoomID
	if roomID == "" {
		roomID = roomapi.DefaultRoomID
	}

	// Target inputs
	baseInput := textinput.New()
	baseInput.Placeholder = roomapi.DefaultBaseURL
	baseInput.CharLimit = 253
	baseInput.Width = 50
	baseInput.SetValue(baseURL)
	baseInput.Focus()

	roomInput := textinput.New()
	roomInput.Placeholder = roomapi.DefaultRoomID
	roomInput.CharLimit = 64
	roomInput.Width = 50
	roomInput.SetValue(roomID)

	// Per-tab inputs
	nameInput := textinput.New()
	nameInput.Placeholder = "doorLocked"
	nameInput.CharLimit = 64
	nameInput.Width = 40

	typeInput := textinput.New()
	typeInput.Placeholder = "boolean"
	typeInput.CharLimit = 32
	typeInput.Width = 40

	valueInput := textinput.New()
	valueInput.Placeholder = "true"
	valueInput.CharLimit = 128
	valueInput.Width = 40

	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	// Initialize progress bar
	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.Width = 40

	// Initialize viewport for the response area
	vp := viewport.New(60, 8)

	// Initialize help
	h := help.New()

	// Initialize key bindings
	keys := consoleKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "switch action"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Scan: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "scan"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	return ConsoleModel{
		BaseInput:   baseInput,
		RoomInput:   roomInput,
		NameInput:   nameInput,
		TypeInput:   typeInput,
		ValueInput:  valueInput,
		ActiveTab:   TabGetAll,
		Focus:       focusBase,
		Transcript:  roomapi.NewTranscript(),
		Viewport:    vp,
		Client:      roomapi.NewClient(),
		Registry:    registry,
		Spinner:     s,
		ProgressBar: progressBar,
		Help:        h,
		Keys:        keys,
	}
}

// Init initializes the console screen
func (m ConsoleModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Modals consume all input until dismissed
	if m.Sending {
		return m.updateSendingModal(msg)
	}
	if m.ShowingWarning {
		return m.updateWarningModal(msg)
	}
	if m.ShowingError {
		return m.updateErrorModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layoutViewport()
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case watchStartedMsg:
		return m.handleWatchStarted(msg)

	case watchEventMsg:
		return m.handleWatchEvent(msg)

	case spinner.TickMsg:
		// Keeps the connecting indicator animated
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Everything else (mouse wheel etc.) goes to the viewport
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// updateKeys handles keyboard input in normal (idle) mode
func (m ConsoleModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.stopWatch()
		return m, tea.Quit

	case "ctrl+s":
		// Hand off to the scan screen
		m.stopWatch()
		m.ScanRequested = true
		return m, nil

	case "tab", "down":
		m.setFocus(m.Focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.setFocus(m.Focus - 1)
		return m, nil

	case "left", "right":
		if m.Focus == focusTabBar {
			if msg.String() == "left" {
				m.switchTab(m.ActiveTab - 1)
			} else {
				m.switchTab(m.ActiveTab + 1)
			}
			return m, nil
		}

	case "q":
		// q only quits from non-text positions; elsewhere it types
		if m.Focus == focusTabBar || m.Focus == m.buttonFocus() {
			m.stopWatch()
			return m, tea.Quit
		}

	case "enter", " ":
		if m.Focus == m.buttonFocus() {
			if m.ActiveTab == TabWatch {
				return m.toggleWatch()
			}
			return m.startRequest()
		}
		if msg.String() == "enter" {
			// Enter on a field advances toward the button, form style
			m.setFocus(m.Focus + 1)
			return m, nil
		}

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	// Route remaining keys to the focused text input
	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a key to whichever text input has focus
func (m ConsoleModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.Focus {
	case focusBase:
		m.BaseInput, cmd = m.BaseInput.Update(msg)
	case focusRoom:
		m.RoomInput, cmd = m.RoomInput.Update(msg)
	default:
		switch m.fieldAt(m.Focus) {
		case "name":
			m.NameInput, cmd = m.NameInput.Update(msg)
		case "type":
			m.TypeInput, cmd = m.TypeInput.Update(msg)
		case "value":
			m.ValueInput, cmd = m.ValueInput.Update(msg)
		}
	}

	return m, cmd
}

// fieldAt maps a focus position to the tab-specific field it addresses.
// Returns "" for the tab bar, the target inputs, and the button.
func (m ConsoleModel) fieldAt(focus int) string {
	idx := focus - focusFields
	if idx < 0 {
		return ""
	}

	var fields []string
	switch m.ActiveTab {
	case TabUpdate:
		fields = []string{"name", "value"}
	case TabCreate:
		fields = []string{"name", "type", "value"}
	default:
		fields = nil
	}

	if idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// fieldCount returns how many tab-specific fields the active tab has
func (m ConsoleModel) fieldCount() int {
	switch m.ActiveTab {
	case TabUpdate:
		return 2
	case TabCreate:
		return 3
	default:
		return 0
	}
}

// buttonFocus returns the focus position of the send/watch button
func (m ConsoleModel) buttonFocus() int {
	return focusFields + m.fieldCount()
}

// setFocus moves focus, wrapping at both ends, and syncs input focus state
func (m *ConsoleModel) setFocus(focus int) {
	last := m.buttonFocus()
	if focus < 0 {
		focus = last
	}
	if focus > last {
		focus = 0
	}
	m.Focus = focus

	// Blur everything, then focus the input under the cursor
	m.BaseInput.Blur()
	m.RoomInput.Blur()
	m.NameInput.Blur()
	m.TypeInput.Blur()
	m.ValueInput.Blur()

	switch {
	case focus == focusBase:
		m.BaseInput.Focus()
	case focus == focusRoom:
		m.RoomInput.Focus()
	default:
		switch m.fieldAt(focus) {
		case "name":
			m.NameInput.Focus()
		case "type":
			m.TypeInput.Focus()
		case "value":
			m.ValueInput.Focus()
		}
	}
}

// switchTab changes the active action tab, wrapping at both ends. Leaving
// the watch tab stops a running watch.
func (m *ConsoleModel) switchTab(tab Tab) {
	if tab < TabGetAll {
		tab = TabWatch
	}
	if tab > TabWatch {
		tab = TabGetAll
	}
	if tab == m.ActiveTab {
		return
	}

	if m.ActiveTab == TabWatch {
		m.stopWatch()
	}

	m.ActiveTab = tab
	m.setFocus(focusTabBar)
	m.refreshViewport()
	m.layoutViewport()
}

// startRequest validates the active tab's fields, writes the request header
// to the transcript, and fires the network call. Validation failures raise
// the warning modal and leave the transcript untouched.
func (m ConsoleModel) startRequest() (tea.Model, tea.Cmd) {
	req, err := m.buildRequest()
	if err != nil {
		m.ShowingWarning = true
		m.WarningMessage = roomapi.GetShortErrorMessage(err)
		return m, nil
	}

	m.Transcript.Reset()
	m.Transcript.BeginRequest(req)
	m.refreshViewport()

	m.Sending = true
	m.RequestStart = time.Now()
	m.LastRequest = req

	return m, tea.Batch(m.Spinner.Tick, sendRequestCmd(m.Client, req))
}

// buildRequest constructs the request for the active tab from field values
func (m ConsoleModel) buildRequest() (*roomapi.Request, error) {
	base := m.BaseInput.Value()
	room := m.RoomInput.Value()

	switch m.ActiveTab {
	case TabUpdate:
		return roomapi.NewUpdateRequest(base, room, m.NameInput.Value(), m.ValueInput.Value())
	case TabCreate:
		return roomapi.NewCreateRequest(base, room, m.NameInput.Value(), m.TypeInput.Value(), m.ValueInput.Value())
	default:
		return roomapi.NewListRequest(base, room)
	}
}

// sendRequestCmd performs the API call off the update loop
func sendRequestCmd(client *roomapi.Client, req *roomapi.Request) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Do(context.Background(), req)
		return requestCompleteMsg{result: result, err: err}
	}
}

// updateSendingModal handles messages while a request is in flight.
// Key input is swallowed so a second request cannot start.
func (m ConsoleModel) updateSendingModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case requestCompleteMsg:
		m.Sending = false

		if msg.err != nil {
			m.Transcript.Failure(msg.err)
			m.LastError = msg.err
			m.ShowingError = true
		} else {
			m.Transcript.Success(msg.result.StatusCode, msg.result.Body)
			m.rememberTarget()
		}

		m.refreshViewport()
		m.Viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

// updateWarningModal handles input while the missing-input warning shows
func (m ConsoleModel) updateWarningModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter", " ", "esc":
			m.ShowingWarning = false
			m.WarningMessage = ""
		}
	}
	return m, nil
}

// updateErrorModal handles input while the request/unexpected error shows
func (m ConsoleModel) updateErrorModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter", " ", "esc":
			m.ShowingError = false
		}
	}
	return m, nil
}

// toggleWatch starts or stops the event stream subscription
func (m ConsoleModel) toggleWatch() (tea.Model, tea.Cmd) {
	if m.Watching || m.WatchConnecting {
		m.stopWatch()
		m.EventLines = append(m.EventLines, "--- stream stopped ---")
		m.refreshViewport()
		m.Viewport.GotoBottom()
		return m, nil
	}

	base := strings.TrimSpace(m.BaseInput.Value())
	room := strings.TrimSpace(m.RoomInput.Value())
	if base == "" || room == "" {
		m.ShowingWarning = true
		m.WarningMessage = "Please provide both Base URL and Room ID."
		return m, nil
	}

	m.WatchConnecting = true
	m.EventLines = nil
	m.refreshViewport()

	return m, tea.Batch(m.Spinner.Tick, startWatchCmd(m.Client, base, room))
}

// startWatchCmd dials the event stream off the update loop
func startWatchCmd(client *roomapi.Client, baseURL, roomID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		events, err := client.Watch(ctx, baseURL, roomID)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{events: events, cancel: cancel}
	}
}

// waitForEventCmd blocks on the event channel for the next message
func waitForEventCmd(events <-chan roomapi.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		return watchEventMsg{event: ev, ok: ok}
	}
}

// handleWatchStarted transitions into (or out of) the watching state
func (m ConsoleModel) handleWatchStarted(msg watchStartedMsg) (tea.Model, tea.Cmd) {
	m.WatchConnecting = false

	if msg.err != nil {
		m.LastError = msg.err
		m.ShowingError = true
		return m, nil
	}

	m.Watching = true
	m.WatchCancel = msg.cancel
	m.WatchEvents = msg.events
	m.EventLines = []string{fmt.Sprintf("Watching room %s for changes...", strings.TrimSpace(m.RoomInput.Value())), ""}
	m.refreshViewport()
	m.Viewport.GotoBottom()

	return m, waitForEventCmd(msg.events)
}

// handleWatchEvent appends one event to the feed and re-arms the listener
func (m ConsoleModel) handleWatchEvent(msg watchEventMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		// Stream ended: server closed, network dropped, or watch stopped
		if m.Watching {
			m.stopWatch()
			m.EventLines = append(m.EventLines, "", "--- stream closed ---")
			m.refreshViewport()
			m.Viewport.GotoBottom()
		}
		return m, nil
	}

	m.EventLines = append(m.EventLines, formatEventLines(msg.event)...)
	m.refreshViewport()
	m.Viewport.GotoBottom()

	return m, waitForEventCmd(m.WatchEvents)
}

// stopWatch cancels a running subscription, if any
func (m *ConsoleModel) stopWatch() {
	if m.WatchCancel != nil {
		m.WatchCancel()
		m.WatchCancel = nil
	}
	m.Watching = false
	m.WatchConnecting = false
}

// formatEventLines renders one stream event as feed lines
func formatEventLines(ev roomapi.Event) []string {
	stamp := ev.Timestamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	prefix := stamp.Local().Format("[15:04:05]")

	switch ev.Type {
	case roomapi.EventSnapshot:
		lines := []string{fmt.Sprintf("%s snapshot  %d variable(s)", prefix, len(ev.Variables))}
		for _, v := range ev.Variables {
			lines = append(lines, fmt.Sprintf("           %s = %v (%s)", v.Name, v.Value, v.Type))
		}
		return lines

	case roomapi.EventVariableCreated:
		if ev.Variable != nil {
			return []string{fmt.Sprintf("%s created   %s = %v (%s)", prefix, ev.Variable.Name, ev.Variable.Value, ev.Variable.Type)}
		}

	case roomapi.EventVariableUpdated:
		if ev.Variable != nil {
			return []string{fmt.Sprintf("%s updated   %s = %v", prefix, ev.Variable.Name, ev.Variable.Value)}
		}
	}

	return []string{fmt.Sprintf("%s %s", prefix, ev.Type)}
}

// rememberTarget persists the last-used base URL and room ID after a
// successful request. Failures here never interrupt the console.
func (m *ConsoleModel) rememberTarget() {
	base := strings.TrimSpace(m.BaseInput.Value())
	room := strings.TrimSpace(m.RoomInput.Value())
	if base == "" {
		return
	}

	m.Registry.TouchServer(base, room)
	m.Registry.Preferences.BaseURL = base
	if room != "" {
		m.Registry.Preferences.RoomID = room
	}

	if err := m.Registry.Save(); err != nil {
		logging.Warn("Failed to save registry", zap.Error(err))
	}
}

// SetTarget points the console at a new server, keeping the room ID when
// the caller has none. Used when the scan screen hands back a selection.
func (m *ConsoleModel) SetTarget(baseURL, roomID string) {
	if baseURL != "" {
		m.BaseInput.SetValue(baseURL)
	}
	if roomID != "" {
		m.RoomInput.SetValue(roomID)
	}
}

// refreshViewport swaps the viewport content for the active tab: the event
// feed on the watch tab, the request transcript everywhere else.
func (m *ConsoleModel) refreshViewport() {
	if m.ActiveTab == TabWatch {
		m.Viewport.SetContent(strings.Join(m.EventLines, "\n"))
		return
	}
	m.Viewport.SetContent(m.Transcript.String())
}

// layoutViewport sizes the response area to the remaining terminal space
func (m *ConsoleModel) layoutViewport() {
	width := m.Width
	if width == 0 {
		width = MinTerminalWidth
	}

	vpWidth := width - 10
	if vpWidth < 40 {
		vpWidth = 40
	}
	m.Viewport.Width = vpWidth

	// Rows consumed above and below the response area: outer chrome,
	// tab bar, target fields, tab fields, button, response frame.
	overhead := 20 + m.fieldCount()
	vpHeight := m.Height - overhead
	if vpHeight < 4 {
		vpHeight = 4
	}
	if vpHeight > 30 {
		vpHeight = 30
	}
	m.Viewport.Height = vpHeight
}

// View renders the console screen
func (m ConsoleModel) View() string {
	// Modals take over the whole screen
	if m.Sending {
		return RenderModal(m.renderSendingModalContent(), m.Width, m.Height)
	}
	if m.ShowingWarning {
		return RenderModal(m.renderWarningModalContent(), m.Width, m.Height)
	}
	if m.ShowingError {
		return RenderModal(m.renderErrorModalContent(), m.Width, m.Height)
	}

	content := m.renderConsoleContent()
	helpText := m.Help.View(m.Keys)

	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderConsoleContent builds the main console layout
func (m ConsoleModel) renderConsoleContent() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	// Target section
	b.WriteString("  ")
	b.WriteString(SectionLabelStyle.Render("Target"))
	b.WriteString("\n")
	b.WriteString(m.renderField("Base URL", m.BaseInput.View(), focusBase))
	b.WriteString(m.renderField("Room ID", m.RoomInput.View(), focusRoom))
	b.WriteString("\n")

	// Tab-specific section
	switch m.ActiveTab {
	case TabGetAll:
		b.WriteString("  ")
		b.WriteString(SubtitleStyle.Render("Retrieves every variable in the room."))
		b.WriteString("\n")

	case TabUpdate:
		b.WriteString("  ")
		b.WriteString(SectionLabelStyle.Render("Variable"))
		b.WriteString("\n")
		b.WriteString(m.renderField("Name", m.NameInput.View(), focusFields))
		b.WriteString(m.renderField("New Value", m.ValueInput.View(), focusFields+1))

	case TabCreate:
		b.WriteString("  ")
		b.WriteString(SectionLabelStyle.Render("Variable"))
		b.WriteString("\n")
		b.WriteString(m.renderField("Name", m.NameInput.View(), focusFields))
		b.WriteString(m.renderField("Type", m.TypeInput.View(), focusFields+1))
		b.WriteString(m.renderField("Value", m.ValueInput.View(), focusFields+2))

	case TabWatch:
		b.WriteString(m.renderWatchStatus())
	}

	b.WriteString("\n")
	b.WriteString(m.renderButton())
	b.WriteString("\n\n")

	// Response area
	b.WriteString("  ")
	b.WriteString(SectionLabelStyle.Render(m.responseTitle()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(
		TranscriptFrameStyle.Render(m.Viewport.View())))
	b.WriteString("\n")

	return b.String()
}

// renderTabBar renders the action tabs with the active one highlighted
func (m ConsoleModel) renderTabBar() string {
	tabs := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		if Tab(i) == m.ActiveTab {
			tabs[i] = ActiveTabStyle.Render(label)
		} else {
			tabs[i] = InactiveTabStyle.Render(label)
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	// Arrow hints only make sense when the tab bar has focus
	if m.Focus == focusTabBar {
		hint := SubtitleStyle.Render("  ←/→ to switch")
		bar = lipgloss.JoinHorizontal(lipgloss.Center, bar, hint)
	}

	return lipgloss.NewStyle().MarginLeft(2).Render(bar)
}

// renderField renders one labeled input row with a focus indicator
func (m ConsoleModel) renderField(label, inputView string, focusPos int) string {
	focused := m.Focus == focusPos

	indicator := "  "
	labelStyled := FieldLabelStyle.Render(fmt.Sprintf("%-10s", label))
	if focused {
		indicator = SelectedMenuItemStyle.Render("→ ")
		labelStyled = FocusedFieldLabelStyle.Render(fmt.Sprintf("%-10s", label))
	}

	return fmt.Sprintf("  %s%s %s\n", indicator, labelStyled, inputView)
}

// renderWatchStatus renders the watch tab's connection status line
func (m ConsoleModel) renderWatchStatus() string {
	var status string
	switch {
	case m.WatchConnecting:
		status = fmt.Sprintf("%s Connecting to event stream...", m.Spinner.View())
	case m.Watching:
		live := lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)
		status = live.Render("● Live") + SubtitleStyle.Render("  snapshot first, then one line per change")
	default:
		status = SubtitleStyle.Render("Streams variable changes as they happen.")
	}

	return "  " + status + "\n"
}

// renderButton renders the send/watch action button
func (m ConsoleModel) renderButton() string {
	label := "Send Request"
	if m.ActiveTab == TabWatch {
		if m.Watching || m.WatchConnecting {
			label = "Stop Watching"
		} else {
			label = "Start Watching"
		}
	}

	style := ButtonStyle
	if m.Focus == m.buttonFocus() {
		style = FocusedButtonStyle
	}

	return lipgloss.NewStyle().MarginLeft(4).Render(style.Render(label))
}

// responseTitle returns the heading over the viewport for the active tab
func (m ConsoleModel) responseTitle() string {
	if m.ActiveTab == TabWatch {
		return "Event Feed"
	}
	return "Response"
}

// renderSendingModalContent renders the in-flight request modal
func (m ConsoleModel) renderSendingModalContent() string {
	titleStyle := lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)
	title := titleStyle.Render(fmt.Sprintf("%s SENDING REQUEST", m.Spinner.View()))

	var target string
	if m.LastRequest != nil {
		target = fmt.Sprintf("%s %s", m.LastRequest.Method, m.LastRequest.URL)
	}

	// Progress against the fixed request timeout
	elapsed := time.Since(m.RequestStart)
	fraction := elapsed.Seconds() / roomapi.RequestTimeout.Seconds()
	if fraction > 0.95 {
		fraction = 0.95
	}
	progressBar := m.ProgressBar.ViewAs(fraction)

	timeStyle := lipgloss.NewStyle().Foreground(SubtleColor)
	elapsedText := timeStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed.Round(100*time.Millisecond)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		timeStyle.Render(target),
		"",
		progressBar,
		"",
		elapsedText,
	)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2).
		Width(SafeModalWidth(64, m.Width))

	return modalStyle.Render(content)
}

// renderWarningModalContent renders the missing-input warning modal
func (m ConsoleModel) renderWarningModalContent() string {
	titleStyle := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	title := titleStyle.Render("⚠ INPUT MISSING")

	hintStyle := lipgloss.NewStyle().Foreground(SubtleColor)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.WarningMessage,
		"",
		hintStyle.Render("Press Enter to continue"),
	)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Padding(1, 2).
		Width(SafeModalWidth(56, m.Width))

	return modalStyle.Render(content)
}

// renderErrorModalContent renders the request/unexpected error modal
func (m ConsoleModel) renderErrorModalContent() string {
	titleStyle := lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	title := titleStyle.Render("✗ " + strings.ToUpper(roomapi.GetErrorTitle(m.LastError)))

	message := roomapi.GetShortErrorMessage(m.LastError)
	hint := roomapi.GetTroubleshootingHint(m.LastError)

	hintStyle := lipgloss.NewStyle().Foreground(SubtleColor)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		message,
		"",
		hint,
		"",
		hintStyle.Render("Press Enter to continue"),
	)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Padding(1, 2).
		Width(SafeModalWidth(72, m.Width))

	return modalStyle.Render(content)
}
