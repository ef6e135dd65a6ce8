// Package style holds the colours and icons shared by the logger and the progress renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Log level colours.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Play    = "▶"
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
