// internal/sim/model.go
package sim

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/cockpit-panel/internal/display"
	"github.com/tamzrod/cockpit-panel/internal/event"
	"github.com/tamzrod/cockpit-panel/internal/indicator"
	"github.com/tamzrod/cockpit-panel/internal/layout"
	"github.com/tamzrod/cockpit-panel/internal/panel"
)

// Simulated input wiring: one keypad, one encoder.
const (
	simKeypad  uint8 = 1
	simEncoder uint8 = 1

	buttonEncCCW uint8 = 20
	buttonEncCW  uint8 = 21

	// scratchpad number runs from column 4 up to the first separator
	fa18cNumberWidth = 8
)

var (
	modeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58a6ff"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#484f58"))
)

// Model is the bubbletea model of the panel simulator.
// All panel calls happen inside Update, so the single-loop rule holds.
type Model struct {
	panel *panel.Panel
	buf   *display.Buffer
	bank  *indicator.Bank

	scratch []byte // text typed into the active mode's scratchpad
}

// New builds a simulator over the panel, the buffer it draws on and the
// bank its indicators write to.
func New(p *panel.Panel, buf *display.Buffer, bank *indicator.Bank) Model {
	return Model{panel: p, buf: buf, bank: bank}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "f1":
		m.start(layout.A10C)
		return m, nil
	case "f2":
		m.start(layout.FA18C)
		return m, nil
	case "f3":
		m.start(layout.Debug)
		return m, nil
	}

	switch m.panel.Mode() {
	case layout.A10C:
		m.updateA10C(key)
	case layout.FA18C:
		m.updateFA18C(key)
	case layout.Debug:
		m.updateDebug(key)
	}
	return m, nil
}

func (m *Model) start(mode layout.Mode) {
	m.scratch = m.scratch[:0]
	m.panel.StartMode(mode)
}

func (m *Model) updateA10C(key tea.KeyMsg) {
	limit := 2 * m.panel.Geometry().Columns
	if !m.edit(key, limit) {
		if key.String() == "ctrl+w" {
			m.panel.A10CMasterCaution(!m.bank.State(indicator.Warning))
		}
		return
	}
	// trailing blank erases the cell freed by a backspace
	m.panel.A10CScratchpad(string(m.scratch) + " ")
}

func (m *Model) updateFA18C(key tea.KeyMsg) {
	switch key.String() {
	case "ctrl+w":
		m.panel.FA18CMasterCaution(!m.bank.State(indicator.Warning))
		return
	case "ctrl+r":
		m.panel.FA18CApuReady(!m.bank.State(indicator.Ready))
		return
	}
	if !m.edit(key, fa18cNumberWidth) {
		return
	}
	m.panel.FA18CScratchpadNumber(fmt.Sprintf("%-*s", fa18cNumberWidth, m.scratch))
}

func (m *Model) updateDebug(key tea.KeyMsg) {
	s := key.String()

	switch s {
	case "left":
		m.pulse(event.Encoder(false, true, simEncoder), event.Encoder(false, false, simEncoder), buttonEncCCW)
		return
	case "right":
		m.pulse(event.Encoder(true, true, simEncoder), event.Encoder(true, false, simEncoder), buttonEncCW)
		return
	}

	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		k := s[0] - '0'
		m.pulse(event.Key(true, simKeypad, k), event.Key(false, simKeypad, k), k)
	}
}

// pulse renders a press and its release, mapped one-to-one onto button.
func (m *Model) pulse(down, up event.Input, button uint8) {
	m.panel.ShowEvent(down, event.Output{Action: event.ActionPress, Button: button})
	m.panel.ShowEvent(up, event.Output{Action: event.ActionRelease, Button: button})
}

// edit applies a rune or backspace to the scratch text and reports
// whether it changed.
func (m *Model) edit(key tea.KeyMsg, limit int) bool {
	switch key.Type {
	case tea.KeyBackspace:
		if len(m.scratch) == 0 {
			return false
		}
		m.scratch = m.scratch[:len(m.scratch)-1]
		return true

	case tea.KeyRunes, tea.KeySpace:
		changed := false
		for _, r := range key.Runes {
			if r < 0x20 || r > 0x7E || len(m.scratch) >= limit {
				continue
			}
			m.scratch = append(m.scratch, strings.ToUpper(string(r))[0])
			changed = true
		}
		return changed
	}
	return false
}

func (m Model) View() string {
	lamps := make([]display.Lamp, 0, indicator.Count)
	for _, id := range indicator.IDs() {
		lamps = append(lamps, display.Lamp{Label: id.String(), On: m.bank.State(id)})
	}

	mode := "no mode"
	if m.panel.Mode().Valid() {
		mode = m.panel.Mode().Label()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		modeStyle.Render(mode),
		display.RenderPanel(m.buf, lamps),
		helpStyle.Render(m.help()),
	)
}

func (m Model) help() string {
	base := "f1 A-10C · f2 F/A-18C · f3 debug · esc quit"
	switch m.panel.Mode() {
	case layout.A10C:
		return base + "\ntype to fill the scratchpad · ctrl+w master caution"
	case layout.FA18C:
		return base + "\ntype to fill the scratchpad number · ctrl+w caution · ctrl+r APU ready"
	case layout.Debug:
		return base + "\n0-9 keypad · ←/→ encoder"
	}
	return base
}
