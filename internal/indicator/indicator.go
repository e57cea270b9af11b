// internal/indicator/indicator.go
package indicator

import (
	"fmt"
	"strings"
)

// ID names one binary panel output.
type ID uint8

const (
	Warning ID = iota // master caution
	Ready             // APU ready / green
	Status            // spare status lamp

	// Count is the number of indicators. Hardware id lists carry exactly
	// Count entries, in ID order.
	Count
)

var names = [Count]string{
	Warning: "warning",
	Ready:   "ready",
	Status:  "status",
}

func (id ID) String() string {
	if id < Count {
		return names[id]
	}
	return fmt.Sprintf("indicator(%d)", uint8(id))
}

// IDs lists every indicator in canonical order.
func IDs() []ID {
	out := make([]ID, Count)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}

// Parse resolves an indicator name.
func Parse(s string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("indicator: unknown indicator %q", s)
}

// Writer is the Indicator Set contract: write-only, fire-and-forget.
type Writer interface {
	Write(id ID, on bool)
}

// Bank is an in-memory indicator set. It is the backend of the simulator
// and of replays without hardware.
type Bank struct {
	state [Count]bool
}

func (b *Bank) Write(id ID, on bool) {
	b.state[id] = on
}

// State returns the last written state of id.
func (b *Bank) State(id ID) bool {
	return b.state[id]
}

// Fanout mirrors every write to all writers, in order.
type Fanout []Writer

func (f Fanout) Write(id ID, on bool) {
	for _, w := range f {
		w.Write(id, on)
	}
}
