// internal/panel/panel.go
package panel

import (
	"fmt"

	"github.com/tamzrod/cockpit-panel/internal/display"
	"github.com/tamzrod/cockpit-panel/internal/event"
	"github.com/tamzrod/cockpit-panel/internal/indicator"
	"github.com/tamzrod/cockpit-panel/internal/layout"
)

// Panel translates field updates into display writes for the active mode.
//
// Panel is not safe for concurrent use: every write moves the shared
// display cursor, so one control loop must drive all calls. Finish any
// pending field updates before calling StartMode.
type Panel struct {
	lcd   display.Surface
	geom  display.Geometry
	leds  indicator.Writer
	mode  layout.Mode
	debug *Formatter
}

// New builds a panel over an already initialized display and indicator set.
func New(lcd display.Surface, geom display.Geometry, leds indicator.Writer) *Panel {
	return &Panel{
		lcd:   lcd,
		geom:  geom,
		leds:  leds,
		debug: NewFormatter(lcd, geom.Rows),
	}
}

// Mode returns the active mode, zero before the first StartMode.
func (p *Panel) Mode() layout.Mode { return p.mode }

// Geometry returns the display geometry.
func (p *Panel) Geometry() display.Geometry { return p.geom }

// Formatter returns the diagnostic formatter owned by the panel.
func (p *Panel) Formatter() *Formatter { return p.debug }

// StartMode clears the display, draws the mode's separators and resets
// mode-local state.
func (p *Panel) StartMode(m layout.Mode) {
	if !m.Valid() {
		panic(fmt.Sprintf("panel: invalid mode %d", m))
	}
	p.mode = m

	p.lcd.Clear()
	for _, s := range layout.Separators(m) {
		p.lcd.SetCursor(s.Col, s.Row)
		p.lcd.Print(layout.SeparatorGlyph)
	}

	if m == layout.Debug {
		p.debug.Reset()
	}
}

// SetField writes text at the anchor of f. Text is neither wrapped nor
// truncated; it must fit the rest of the row.
func (p *Panel) SetField(f layout.Field, text string) {
	a := layout.Lookup(p.mode, f)
	p.lcd.SetCursor(a.Col, a.Row)
	p.lcd.Print(text)
}

// SetScratchpadFreeform writes text from the home position and leaves
// overflow to the display's own wrapping.
func (p *Panel) SetScratchpadFreeform(text string) {
	p.lcd.Home()
	p.lcd.Print(text)
}

// ShowModeName clears the display and centers "* name *" on row 0.
// The label must fit the display width.
func (p *Panel) ShowModeName(name string) {
	line := "* " + name + " *"
	col := (p.geom.Columns - len(line)) / 2

	p.lcd.Clear()
	p.lcd.SetCursor(col, 0)
	p.lcd.Print(line)
}

// ShowError clears the display and shows msg under an "ERROR:" heading.
func (p *Panel) ShowError(msg string) {
	p.lcd.Clear()
	p.lcd.Print("ERROR:")
	p.lcd.SetCursor(0, 1)
	p.lcd.Print(msg)
}

// SetIndicator forwards straight to the indicator set.
func (p *Panel) SetIndicator(id indicator.ID, on bool) {
	p.leds.Write(id, on)
}

// ShowEvent renders one diagnostic line. Debug mode only.
func (p *Panel) ShowEvent(in event.Input, out event.Output) {
	if p.mode != layout.Debug {
		panic(fmt.Sprintf("panel: ShowEvent in mode %s", p.mode))
	}
	p.debug.Render(in, out)
}
