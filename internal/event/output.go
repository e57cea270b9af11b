// internal/event/output.go
package event

import (
	"fmt"
	"strings"
)

// Action is the host-side action an input was mapped to.
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionRelease
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionPress:   "press",
	ActionRelease: "release",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction resolves a script action name.
func ParseAction(s string) (Action, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == key {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("event: unknown action %q", s)
}

// Output is the mapped output event (a virtual button action).
// Only Action and Button are read for diagnostics.
type Output struct {
	Action Action
	Button uint8
}
