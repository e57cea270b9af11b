// internal/indicator/gpio.go
package indicator

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// outPin is the part of a periph pin the LED backend drives.
type outPin interface {
	Out(l gpio.Level) error
}

type pinLookup func(name string) (outPin, error)

func registryLookup(name string) (outPin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("indicator gpio: pin %q not found", name)
	}
	return p, nil
}

// GPIO drives each indicator from one host GPIO line.
// Host drivers must be initialized before NewGPIO (see Build).
type GPIO struct {
	pins      [Count]outPin
	names     [Count]string
	activeLow bool
}

// NewGPIO resolves one pin name per indicator, in ID order, configures
// them as outputs and turns every indicator off.
func NewGPIO(pinNames []string, activeLow bool) (*GPIO, error) {
	return newGPIO(pinNames, activeLow, registryLookup)
}

func newGPIO(pinNames []string, activeLow bool, lookup pinLookup) (*GPIO, error) {
	if len(pinNames) != int(Count) {
		return nil, fmt.Errorf("indicator gpio: need %d pins, got %d", Count, len(pinNames))
	}

	g := &GPIO{activeLow: activeLow}
	for i, name := range pinNames {
		p, err := lookup(name)
		if err != nil {
			return nil, err
		}
		g.pins[i] = p
		g.names[i] = name

		if err := p.Out(g.level(false)); err != nil {
			return nil, fmt.Errorf("indicator gpio: init pin %s: %w", name, err)
		}
	}
	return g, nil
}

// Write sets the pin of id. Pin faults are logged, never returned.
func (g *GPIO) Write(id ID, on bool) {
	if err := g.pins[id].Out(g.level(on)); err != nil {
		log.Printf("indicator gpio write failed (indicator=%s pin=%s): %v", id, g.names[id], err)
	}
}

func (g *GPIO) level(on bool) gpio.Level {
	if g.activeLow {
		return gpio.Level(!on)
	}
	return gpio.Level(on)
}
