// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Panel PanelConfig `yaml:"panel"`
}

type PanelConfig struct {
	Mode       string           `yaml:"mode"` // initial mode
	Display    DisplayConfig    `yaml:"display"`
	Indicators IndicatorsConfig `yaml:"indicators"`
}

// ---- DISPLAY ----

// DisplayConfig is pass-through: only geometry is interpreted here.
type DisplayConfig struct {
	Columns  int       `yaml:"columns"`
	Rows     int       `yaml:"rows"`
	Address  uint8     `yaml:"address"`
	Pins     PinConfig `yaml:"pins"`
	Polarity string    `yaml:"polarity"` // positive | negative
}

type PinConfig struct {
	En        uint8 `yaml:"en"`
	Rw        uint8 `yaml:"rw"`
	Rs        uint8 `yaml:"rs"`
	D4        uint8 `yaml:"d4"`
	D5        uint8 `yaml:"d5"`
	D6        uint8 `yaml:"d6"`
	D7        uint8 `yaml:"d7"`
	Backlight uint8 `yaml:"backlight"`
}

// ---- INDICATORS ----

const (
	BackendMemory = "memory"
	BackendGPIO   = "gpio"
	BackendModbus = "modbus"
)

type IndicatorsConfig struct {
	Backend   string       `yaml:"backend"`
	ActiveLow bool         `yaml:"active_low"`
	Pins      []string     `yaml:"pins"` // gpio: one per indicator, canonical order
	Modbus    ModbusConfig `yaml:"modbus"`
}

type ModbusConfig struct {
	Endpoint  string   `yaml:"endpoint"`
	UnitID    uint8    `yaml:"unit_id"`
	TimeoutMs int      `yaml:"timeout_ms"`
	Coils     []uint16 `yaml:"coils"` // one per indicator, canonical order
}

// Load reads and decodes a YAML config file.
// It does not validate; call Validate then Normalize.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
