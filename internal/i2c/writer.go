package i2c

import (
	"fmt"
	"sync"
)

// DevicePathFormat is the character device of an i2c bus, formatted with the bus id.
const DevicePathFormat = "/dev/i2c-%d"

// Writer performs a blocking write of a single register value to a device on a bus.
type Writer interface {
	WriteRegister(bus int, addr uint16, reg byte, value byte) error
}

// Adapter is a Writer backed by the /dev/i2c-* character devices of the kernel.
// Opened buses are kept open until Close is called.
type Adapter struct {
	pathFormat string

	mu    sync.Mutex
	buses map[int]*Bus
}

func NewAdapter() *Adapter {
	return NewAdapterWithPathFormat(DevicePathFormat)
}

func NewAdapterWithPathFormat(pathFormat string) *Adapter {
	return &Adapter{
		pathFormat: pathFormat,
		buses:      map[int]*Bus{},
	}
}

func (a *Adapter) WriteRegister(bus int, addr uint16, reg byte, value byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, err := a.openBus(bus)
	if err != nil {
		return err
	}

	err = b.Dev(addr).WriteReg(reg, value)
	if err != nil {
		// the device node may have been recreated, reopen on the next write
		_ = b.Close()
		delete(a.buses, bus)
		return fmt.Errorf("i2c write to bus %d addr 0x%02X reg %d failed: %w", bus, addr, reg, err)
	}
	return nil
}

func (a *Adapter) openBus(bus int) (*Bus, error) {
	if b, ok := a.buses[bus]; ok {
		return b, nil
	}
	b, err := Open(fmt.Sprintf(a.pathFormat, bus))
	if err != nil {
		return nil, fmt.Errorf("unable to open i2c bus %d: %w", bus, err)
	}
	a.buses[bus] = b
	return b, nil
}

// Close closes all buses opened by this adapter.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var firstErr error
	for id, b := range a.buses {
		if err := b.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(a.buses, id)
	}
	return firstErr
}
