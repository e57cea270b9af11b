// cmd/panel/build.go
package main

import (
	"fmt"

	"periph.io/x/host/v3"

	cfg "github.com/tamzrod/cockpit-panel/internal/config"
	"github.com/tamzrod/cockpit-panel/internal/display"
	"github.com/tamzrod/cockpit-panel/internal/indicator"
	"github.com/tamzrod/cockpit-panel/internal/panel"
)

// device is one constructed panel with its collaborators.
type device struct {
	panel *panel.Panel
	buf   *display.Buffer
	bank  *indicator.Bank
	close func() error
}

// loadConfig runs Load, Validate, Normalize in that order.
func loadConfig(path string) (*cfg.Config, error) {
	c, err := cfg.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	cfg.Normalize(c)
	return c, nil
}

// buildDevice wires the display buffer and the indicator backend.
// The bank always mirrors indicator state so the terminal view can show it;
// hardware backends receive the same writes.
func buildDevice(c *cfg.Config) (*device, error) {
	buf := display.NewBuffer(c.Panel.Display.Params())
	bank := &indicator.Bank{}

	hw, closeHW, err := buildIndicators(c.Panel.Indicators)
	if err != nil {
		return nil, err
	}

	var leds indicator.Writer = bank
	if hw != nil {
		leds = indicator.Fanout{bank, hw}
	}

	return &device{
		panel: panel.New(buf, buf.Geometry(), leds),
		buf:   buf,
		bank:  bank,
		close: closeHW,
	}, nil
}

// buildIndicators constructs the hardware indicator backend, if any.
// One attempt, fail fast at startup.
func buildIndicators(ic cfg.IndicatorsConfig) (indicator.Writer, func() error, error) {
	noop := func() error { return nil }

	switch ic.Backend {
	case cfg.BackendGPIO:
		if _, err := host.Init(); err != nil {
			return nil, nil, fmt.Errorf("gpio host init failed: %w", err)
		}
		g, err := indicator.NewGPIO(ic.Pins, ic.ActiveLow)
		if err != nil {
			return nil, nil, err
		}
		return g, noop, nil

	case cfg.BackendModbus:
		m, err := indicator.NewModbus(ic.ModbusParams())
		if err != nil {
			return nil, nil, err
		}
		return m, m.Close, nil
	}

	return nil, noop, nil
}
