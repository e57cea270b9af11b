// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/cockpit-panel/internal/indicator"
	"github.com/tamzrod/cockpit-panel/internal/layout"
)

// Maximum HD44780 geometry.
const (
	maxRows           = 4
	maxColumns        = 40
	maxColumnsFourRow = 20
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// Zero values are accepted where Normalize supplies a default.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	p := cfg.Panel

	// ------------------------------------------------------------
	// MODE
	// ------------------------------------------------------------

	if p.Mode != "" {
		if _, err := layout.ParseMode(p.Mode); err != nil {
			return fmt.Errorf("panel.mode: %w", err)
		}
	}

	// ------------------------------------------------------------
	// DISPLAY GEOMETRY
	// ------------------------------------------------------------

	d := p.Display
	if d.Rows < 0 || d.Rows > maxRows {
		return fmt.Errorf("panel.display.rows: %d out of range 1..%d", d.Rows, maxRows)
	}
	if d.Columns < 0 || d.Columns > maxColumns {
		return fmt.Errorf("panel.display.columns: %d out of range 1..%d", d.Columns, maxColumns)
	}
	// 4-line modules split two DDRAM lines in half.
	if d.Rows > 2 && d.Columns > maxColumnsFourRow {
		return fmt.Errorf(
			"panel.display: %dx%d not addressable, %d-row displays allow at most %d columns",
			d.Columns, d.Rows, d.Rows, maxColumnsFourRow,
		)
	}

	switch strings.ToLower(d.Polarity) {
	case "", "positive", "negative":
	default:
		return fmt.Errorf("panel.display.polarity: unknown polarity %q", d.Polarity)
	}

	// ------------------------------------------------------------
	// INDICATORS
	// ------------------------------------------------------------

	ind := p.Indicators
	switch strings.ToLower(ind.Backend) {
	case "", BackendMemory:

	case BackendGPIO:
		if len(ind.Pins) != int(indicator.Count) {
			return fmt.Errorf(
				"panel.indicators.pins: gpio backend needs %d pins (%s), got %d",
				indicator.Count, indicatorNames(), len(ind.Pins),
			)
		}
		seen := make(map[string]int)
		for i, pin := range ind.Pins {
			if pin == "" {
				return fmt.Errorf("panel.indicators.pins[%d]: empty pin name", i)
			}
			if prev, ok := seen[pin]; ok {
				return fmt.Errorf(
					"panel.indicators.pins: pin %q used by %s and %s",
					pin, indicator.ID(prev), indicator.ID(i),
				)
			}
			seen[pin] = i
		}

	case BackendModbus:
		m := ind.Modbus
		if m.Endpoint == "" {
			return fmt.Errorf("panel.indicators.modbus.endpoint: required for modbus backend")
		}
		if m.TimeoutMs < 0 {
			return fmt.Errorf("panel.indicators.modbus.timeout_ms: must be >= 0")
		}
		if len(m.Coils) != int(indicator.Count) {
			return fmt.Errorf(
				"panel.indicators.modbus.coils: need %d coils (%s), got %d",
				indicator.Count, indicatorNames(), len(m.Coils),
			)
		}
		seen := make(map[uint16]int)
		for i, c := range m.Coils {
			if prev, ok := seen[c]; ok {
				return fmt.Errorf(
					"panel.indicators.modbus.coils: coil %d used by %s and %s",
					c, indicator.ID(prev), indicator.ID(i),
				)
			}
			seen[c] = i
		}

	default:
		return fmt.Errorf("panel.indicators.backend: unknown backend %q", ind.Backend)
	}

	return nil
}

func indicatorNames() string {
	ids := indicator.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return strings.Join(out, ", ")
}
