// internal/config/validate_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tamzrod/cockpit-panel/internal/display"
	"github.com/tamzrod/cockpit-panel/internal/layout"
)

// helper to build a panel config quickly
func panel(cols, rows int, backend string) *Config {
	return &Config{
		Panel: PanelConfig{
			Mode: "fa18c",
			Display: DisplayConfig{
				Columns: cols,
				Rows:    rows,
			},
			Indicators: IndicatorsConfig{
				Backend: backend,
			},
		},
	}
}

// ---- tests ----

func TestValidate_DefaultsAccepted(t *testing.T) {
	if err := Validate(&Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Geometry(t *testing.T) {
	cases := []struct {
		cols, rows int
		ok         bool
	}{
		{20, 4, true},
		{16, 2, true},
		{40, 2, true},
		{40, 4, false}, // not addressable
		{20, 5, false},
		{41, 1, false},
	}

	for _, c := range cases {
		err := Validate(panel(c.cols, c.rows, ""))
		if c.ok && err != nil {
			t.Fatalf("%dx%d: unexpected error: %v", c.cols, c.rows, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%dx%d: expected error, got nil", c.cols, c.rows)
		}
	}
}

func TestValidate_UnknownMode(t *testing.T) {
	cfg := panel(20, 4, "")
	cfg.Panel.Mode = "m2000c"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected mode error, got nil")
	}
}

func TestValidate_GPIOPinCount(t *testing.T) {
	cfg := panel(20, 4, BackendGPIO)
	cfg.Panel.Indicators.Pins = []string{"GPIO17", "GPIO27"}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected pin count error, got nil")
	}

	cfg.Panel.Indicators.Pins = []string{"GPIO17", "GPIO27", "GPIO22"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_GPIODuplicatePin(t *testing.T) {
	cfg := panel(20, 4, BackendGPIO)
	cfg.Panel.Indicators.Pins = []string{"GPIO17", "GPIO27", "GPIO17"}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected duplicate pin error, got nil")
	}
}

func TestValidate_ModbusRequiresEndpointAndCoils(t *testing.T) {
	cfg := panel(20, 4, BackendModbus)
	cfg.Panel.Indicators.Modbus.Coils = []uint16{0, 1, 2}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}

	cfg.Panel.Indicators.Modbus.Endpoint = "127.0.0.1:502"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Panel.Indicators.Modbus.Coils = []uint16{0, 1, 1}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected duplicate coil error, got nil")
	}
}

func TestValidate_UnknownBackend(t *testing.T) {
	if err := Validate(panel(20, 4, "spi")); err == nil {
		t.Fatalf("expected backend error, got nil")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{}
	Normalize(cfg)

	d := cfg.Panel.Display.Params()
	if d.Geometry != (display.Geometry{Columns: 20, Rows: 4}) {
		t.Fatalf("unexpected geometry: %+v", d.Geometry)
	}
	if d.Address != DefaultAddress || d.Polarity != display.PolarityPositive {
		t.Fatalf("unexpected display params: %+v", d)
	}
	if cfg.Panel.InitialMode() != layout.FA18C {
		t.Fatalf("unexpected initial mode: %v", cfg.Panel.InitialMode())
	}
	if cfg.Panel.Indicators.Backend != BackendMemory {
		t.Fatalf("unexpected backend: %q", cfg.Panel.Indicators.Backend)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.yaml")
	raw := `
panel:
  mode: Debug
  display:
    columns: 16
    rows: 2
    address: 0x3f
    polarity: negative
  indicators:
    backend: modbus
    active_low: true
    modbus:
      endpoint: 10.0.0.5:502
      unit_id: 3
      coils: [8, 9, 10]
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	Normalize(cfg)

	if cfg.Panel.InitialMode() != layout.Debug {
		t.Fatalf("unexpected mode: %v", cfg.Panel.InitialMode())
	}
	d := cfg.Panel.Display.Params()
	if d.Address != 0x3f || d.Polarity != display.PolarityNegative {
		t.Fatalf("unexpected display params: %+v", d)
	}
	m := cfg.Panel.Indicators.ModbusParams()
	if m.UnitID != 3 || !m.ActiveLow || m.Timeout.Milliseconds() != DefaultTimeoutMs || len(m.Coils) != 3 {
		t.Fatalf("unexpected modbus params: %+v", m)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
