// internal/config/normalize.go
package config

import (
	"strings"
	"time"

	"github.com/tamzrod/cockpit-panel/internal/display"
	"github.com/tamzrod/cockpit-panel/internal/indicator"
	"github.com/tamzrod/cockpit-panel/internal/layout"
)

// Defaults for a 20x4 I2C LCD backpack.
const (
	DefaultColumns   = 20
	DefaultRows      = 4
	DefaultAddress   = 0x27
	DefaultTimeoutMs = 1000
	DefaultMode      = "fa18c"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	p := &cfg.Panel

	if p.Mode == "" {
		p.Mode = DefaultMode
	}
	p.Mode = strings.ToLower(p.Mode)

	if p.Display.Columns == 0 {
		p.Display.Columns = DefaultColumns
	}
	if p.Display.Rows == 0 {
		p.Display.Rows = DefaultRows
	}
	if p.Display.Address == 0 {
		p.Display.Address = DefaultAddress
	}
	if p.Display.Polarity == "" {
		p.Display.Polarity = "positive"
	}
	p.Display.Polarity = strings.ToLower(p.Display.Polarity)

	if p.Indicators.Backend == "" {
		p.Indicators.Backend = BackendMemory
	}
	p.Indicators.Backend = strings.ToLower(p.Indicators.Backend)

	if p.Indicators.Modbus.TimeoutMs == 0 {
		p.Indicators.Modbus.TimeoutMs = DefaultTimeoutMs
	}
}

// InitialMode returns the mode to start in. Normalized config only.
func (p PanelConfig) InitialMode() layout.Mode {
	m, err := layout.ParseMode(p.Mode)
	if err != nil {
		return layout.FA18C
	}
	return m
}

// Params converts to the pass-through display parameters.
func (d DisplayConfig) Params() display.Config {
	pol := display.PolarityPositive
	if d.Polarity == "negative" {
		pol = display.PolarityNegative
	}
	return display.Config{
		Geometry: display.Geometry{Columns: d.Columns, Rows: d.Rows},
		Address:  d.Address,
		Pins: display.Pins{
			En:        d.Pins.En,
			Rw:        d.Pins.Rw,
			Rs:        d.Pins.Rs,
			D4:        d.Pins.D4,
			D5:        d.Pins.D5,
			D6:        d.Pins.D6,
			D7:        d.Pins.D7,
			Backlight: d.Pins.Backlight,
		},
		Polarity: pol,
	}
}

// ModbusParams converts to the indicator Modbus backend config.
func (i IndicatorsConfig) ModbusParams() indicator.ModbusConfig {
	return indicator.ModbusConfig{
		Endpoint:  i.Modbus.Endpoint,
		UnitID:    i.Modbus.UnitID,
		Timeout:   time.Duration(i.Modbus.TimeoutMs) * time.Millisecond,
		Coils:     i.Modbus.Coils,
		ActiveLow: i.ActiveLow,
	}
}
