// internal/indicator/modbus.go
package indicator

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

const (
	coilOn  uint16 = 0xFF00
	coilOff uint16 = 0x0000
)

// coilClient is the part of modbus.Client the backend uses.
type coilClient interface {
	WriteSingleCoil(address, value uint16) ([]byte, error)
}

// ModbusConfig is the transport config of a Modbus TCP I/O module.
type ModbusConfig struct {
	Endpoint  string
	UnitID    uint8
	Timeout   time.Duration
	Coils     []uint16 // one per indicator, ID order
	ActiveLow bool
}

// Modbus drives each indicator as one coil of a remote I/O module.
// It serializes requests on a single TCP connection.
type Modbus struct {
	mu        sync.Mutex
	handler   *modbus.TCPClientHandler
	client    coilClient
	coils     [Count]uint16
	activeLow bool
}

// NewModbus connects to the I/O module and turns every indicator off.
func NewModbus(cfg ModbusConfig) (*Modbus, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("indicator modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("indicator modbus: connect %s: %w", cfg.Endpoint, err)
	}

	m, err := newModbus(modbus.NewClient(h), cfg)
	if err != nil {
		_ = h.Close()
		return nil, err
	}
	m.handler = h
	return m, nil
}

func newModbus(cli coilClient, cfg ModbusConfig) (*Modbus, error) {
	if len(cfg.Coils) != int(Count) {
		return nil, fmt.Errorf("indicator modbus: need %d coils, got %d", Count, len(cfg.Coils))
	}

	m := &Modbus{client: cli, activeLow: cfg.ActiveLow}
	copy(m.coils[:], cfg.Coils)

	for _, id := range IDs() {
		if err := m.write(id, false); err != nil {
			return nil, fmt.Errorf("indicator modbus: init coil %d: %w", m.coils[id], err)
		}
	}
	return m, nil
}

// Close closes the TCP connection.
func (m *Modbus) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handler == nil {
		return nil
	}
	return m.handler.Close()
}

// Write sets the coil of id. Transport errors are logged, never returned.
func (m *Modbus) Write(id ID, on bool) {
	if err := m.write(id, on); err != nil {
		log.Printf("indicator modbus write failed (indicator=%s coil=%d): %v", id, m.coils[id], err)
	}
}

func (m *Modbus) write(id ID, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	value := coilOff
	if on != m.activeLow {
		value = coilOn
	}
	_, err := m.client.WriteSingleCoil(m.coils[id], value)
	return err
}
