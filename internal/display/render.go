// internal/display/render.go
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGlass   = lipgloss.Color("#1b3d1b")
	colorSegment = lipgloss.Color("#b6f0a0")
	colorBezel   = lipgloss.Color("#484f58")
	colorLampOn  = lipgloss.Color("#f85149")
	colorLampOff = lipgloss.Color("#30363d")
	colorLabel   = lipgloss.Color("#8b949e")
)

var (
	screenStyle = lipgloss.NewStyle().
			Background(colorGlass).
			Foreground(colorSegment).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBezel)

	lampOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorLampOn)
	lampOffStyle = lipgloss.NewStyle().Foreground(colorLampOff)
	labelStyle   = lipgloss.NewStyle().Foreground(colorLabel)
)

// Lamp is one indicator as shown next to the screen.
type Lamp struct {
	Label string
	On    bool
}

// Render draws the buffer contents inside a bezel.
// Cells are printed verbatim; no wrapping or trimming is applied.
func Render(b *Buffer) string {
	return screenStyle.Render(strings.Join(b.Lines(), "\n"))
}

// RenderLamps draws a single row of indicator lamps.
func RenderLamps(lamps []Lamp) string {
	parts := make([]string, 0, len(lamps))
	for _, l := range lamps {
		dot := lampOffStyle.Render("○")
		if l.On {
			dot = lampOnStyle.Render("●")
		}
		parts = append(parts, dot+" "+labelStyle.Render(l.Label))
	}
	return strings.Join(parts, "   ")
}

// RenderPanel stacks the screen above its lamps.
func RenderPanel(b *Buffer, lamps []Lamp) string {
	return lipgloss.JoinVertical(lipgloss.Left, Render(b), " "+RenderLamps(lamps))
}
