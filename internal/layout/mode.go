// internal/layout/mode.go
package layout

import (
	"fmt"
	"strings"
)

// Mode is the aircraft layout the panel is emulating.
// The zero value means no mode has been started yet.
type Mode uint8

const (
	A10C Mode = iota + 1
	FA18C
	Debug
)

// Modes lists every mode in canonical order.
var Modes = []Mode{A10C, FA18C, Debug}

var modeNames = map[Mode]string{
	A10C:  "a10c",
	FA18C: "fa18c",
	Debug: "debug",
}

// Label is the short human label shown by the mode banner.
func (m Mode) Label() string {
	switch m {
	case A10C:
		return "A-10C"
	case FA18C:
		return "F/A-18C"
	case Debug:
		return "DEBUG"
	}
	return ""
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Valid reports whether m is one of the closed set of modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode resolves a config/script mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("layout: unknown mode %q", s)
}
