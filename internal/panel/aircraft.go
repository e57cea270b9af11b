// internal/panel/aircraft.go
package panel

import (
	"github.com/tamzrod/cockpit-panel/internal/indicator"
	"github.com/tamzrod/cockpit-panel/internal/layout"
)

// ---- A-10C ----

// A10CScratchpad shows the CDU scratchpad. It may run over two rows.
func (p *Panel) A10CScratchpad(text string) { p.SetScratchpadFreeform(text) }

// A10CMasterCaution drives the master caution light.
func (p *Panel) A10CMasterCaution(on bool) { p.SetIndicator(indicator.Warning, on) }

// ---- F/A-18C ----

// FA18CScratchpadStr1 updates the first scratchpad cue string.
func (p *Panel) FA18CScratchpadStr1(text string) {
	p.SetField(layout.ScratchpadStr1, text)
}

// FA18CScratchpadStr2 updates the second scratchpad cue string.
func (p *Panel) FA18CScratchpadStr2(text string) {
	p.SetField(layout.ScratchpadStr2, text)
}

// FA18CScratchpadNumber updates the scratchpad number.
func (p *Panel) FA18CScratchpadNumber(text string) {
	p.SetField(layout.ScratchpadNumber, text)
}

// FA18COptionCue updates the cue glyph of option id (0..4).
func (p *Panel) FA18COptionCue(id int, text string) {
	p.SetField(layout.OptionCue(id), text)
}

// FA18COptionStr updates the label of option id (0..4).
func (p *Panel) FA18COptionStr(id int, text string) {
	p.SetField(layout.OptionStr(id), text)
}

// FA18CComm1 updates the COMM1 channel readout.
func (p *Panel) FA18CComm1(text string) { p.SetField(layout.Comm1, text) }

// FA18CComm2 updates the COMM2 channel readout.
func (p *Panel) FA18CComm2(text string) { p.SetField(layout.Comm2, text) }

// FA18CMasterCaution drives the master caution light.
func (p *Panel) FA18CMasterCaution(on bool) { p.SetIndicator(indicator.Warning, on) }

// FA18CApuReady drives the APU ready light.
func (p *Panel) FA18CApuReady(on bool) { p.SetIndicator(indicator.Ready, on) }
