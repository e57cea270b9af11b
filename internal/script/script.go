// internal/script/script.go
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of panel updates.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step sets exactly one operation.
type Step struct {
	Mode       string  `yaml:"mode"`
	Name       *string `yaml:"name"`
	Error      *string `yaml:"error"`
	Scratchpad *string `yaml:"scratchpad"`

	Field string  `yaml:"field"`
	Text  *string `yaml:"text"`

	Indicator string `yaml:"indicator"`
	On        *bool  `yaml:"on"`

	Event *EventStep `yaml:"event"`
	Dx    *DxStep    `yaml:"dx"`
}

// EventStep is a keypad or encoder input.
type EventStep struct {
	Kind    string `yaml:"kind"`
	Keypad  uint8  `yaml:"keypad"`
	Key     uint8  `yaml:"key"`
	Encoder uint8  `yaml:"encoder"`
}

// DxStep is the output action the input was mapped to.
type DxStep struct {
	Action string `yaml:"action"`
	Button uint8  `yaml:"button"`
}

// Load reads and decodes a YAML script file.
func Load(path string) (*Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML script.
func Parse(raw []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("script: parse: %w", err)
	}
	return &s, nil
}
