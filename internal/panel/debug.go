// internal/panel/debug.go
package panel

import (
	"fmt"

	"github.com/tamzrod/cockpit-panel/internal/display"
	"github.com/tamzrod/cockpit-panel/internal/event"
)

// Both templates render exactly 20 columns while the counter is below 1000.
// Past that the ordinal widens and the line runs off the row.
const (
	lineKey = "%03d Key:%c%d/%02d Dx:%c%02d"
	lineEnc = "%03d Enc:%c%d%-3s Dx:%c%02d"
)

const (
	press   = 'P'
	release = 'R'
)

// Formatter prints one line per input event and the output it mapped to,
// cycling through the display rows.
type Formatter struct {
	lcd  display.Surface
	rows int
	line uint
}

// NewFormatter returns a formatter writing to lcd, which has rows rows.
func NewFormatter(lcd display.Surface, rows int) *Formatter {
	if rows <= 0 {
		panic("panel: formatter needs at least one row")
	}
	return &Formatter{lcd: lcd, rows: rows}
}

// Reset restarts the line counter at 0.
func (f *Formatter) Reset() { f.line = 0 }

// Line returns the counter value the next line will use.
func (f *Formatter) Line() uint { return f.line }

// Render writes the line for (in, out) at column 0 of row counter%rows,
// then advances the counter.
func (f *Formatter) Render(in event.Input, out event.Output) {
	text := FormatEvent(f.line, in, out)

	f.lcd.SetCursor(0, int(f.line%uint(f.rows)))
	f.lcd.Print(text)

	f.line++
}

// FormatEvent renders the diagnostic text of one event.
// in.Kind must not be event.None.
func FormatEvent(line uint, in event.Input, out event.Output) string {
	dx := byte(press)
	if out.Action == event.ActionRelease {
		dx = release
	}

	state := byte(press)
	if in.Kind.IsRelease() {
		state = release
	}

	switch {
	case in.Kind.IsKey():
		return fmt.Sprintf(lineKey, line, state, in.Keypad, in.Key, dx, out.Button)

	case in.Kind.IsEncoder():
		dir := "CW"
		if in.Kind.IsCCW() {
			dir = "CCW"
		}
		return fmt.Sprintf(lineEnc, line, state, in.Encoder, dir, dx, out.Button)
	}

	panic(fmt.Sprintf("panel: cannot format input event %s", in.Kind))
}
