// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/saltbundle/internal/ui/output"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Palette holds the text styles of one output stream.
type Palette struct {
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// NewPalette builds the styles for w. Colors are dropped when w is not a
// terminal or NO_COLOR is set.
func NewPalette(w io.Writer) Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.Profile(w, output.Detect))
	return Palette{
		Label:   r.NewStyle().Foreground(Slate),
		Value:   r.NewStyle().Foreground(Iris),
		Success: r.NewStyle().Foreground(Green).Bold(true),
		Failure: r.NewStyle().Foreground(Red).Bold(true),
	}
}
