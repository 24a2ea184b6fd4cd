package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResponseOutput represents a box for displaying a server response body.
// Used by one-shot commands to show what the room server returned.
type ResponseOutput struct {
	Title    string   // e.g., "Response (Status: 200)"
	Content  string   // The response body, pretty-printed when it is JSON
	Lines    []string // Split content lines (for truncation)
	Width    int      // Terminal width
	MaxLines int      // Maximum lines to display (0 = unlimited)
}

// NewResponseOutput creates a new response box from a raw body.
// JSON bodies are re-indented for readability; anything else is shown as-is.
func NewResponseOutput(statusCode int, body []byte) *ResponseOutput {
	content := prettyBody(body)
	return &ResponseOutput{
		Title:    fmt.Sprintf("Response (Status: %d)", statusCode),
		Content:  content,
		Lines:    strings.Split(content, "\n"),
		Width:    GetTerminalWidth(),
		MaxLines: 0,
	}
}

// prettyBody re-indents JSON bodies and passes everything else through.
func prettyBody(body []byte) string {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}

	pretty, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return string(body)
	}
	return string(pretty)
}

// SetWidth sets the terminal width for responsive rendering
func (r *ResponseOutput) SetWidth(width int) *ResponseOutput {
	r.Width = width
	return r
}

// SetTitle sets a custom title for the box
func (r *ResponseOutput) SetTitle(title string) *ResponseOutput {
	r.Title = title
	return r
}

// SetMaxLines limits the number of lines displayed
func (r *ResponseOutput) SetMaxLines(max int) *ResponseOutput {
	r.MaxLines = max
	return r
}

// Render returns the styled response box as a string
func (r *ResponseOutput) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	// Apply max lines limit
	lines := r.Lines
	if r.MaxLines > 0 && len(lines) > r.MaxLines {
		lines = lines[:r.MaxLines]
		lines = append(lines, "... (output truncated)")
	}

	// Title styled
	titleStyled := ResponseTitleStyle.Render(r.Title)

	// Content styled (preserve monospace formatting)
	contentStyled := ResponseContentStyle.Render(strings.Join(lines, "\n"))

	// Combine title and content
	inner := lipgloss.JoinVertical(lipgloss.Left, titleStyled, "", contentStyled)

	// Box with muted border
	boxWidth := width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(boxWidth).
		Padding(0, 1).
		MarginLeft(2).
		Render(inner)
}

// String implements fmt.Stringer
func (r *ResponseOutput) String() string {
	return r.Render()
}

// RenderResponse renders a response box for the given status and body
func RenderResponse(statusCode int, body []byte) string {
	return NewResponseOutput(statusCode, body).Render()
}
