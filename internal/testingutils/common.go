package testingutils

import (
	"os"
	"sync"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/fans"
	"github.com/openvoiceos/mk2fan/internal/persistence"
	"github.com/openvoiceos/mk2fan/internal/sensors"
)

// MockFan records every pwm value written to it. If Err is set, writes fail with an *fans.IoError.
type MockFan struct {
	mu     sync.Mutex
	ID     string
	Writes []int
	Err    error
}

func (fan *MockFan) GetId() string {
	return fan.ID
}

func (fan *MockFan) GetConfig() configuration.FanConfig {
	return configuration.FanConfig{ID: fan.ID}
}

func (fan *MockFan) SetPwm(pwm int) error {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	if fan.Err != nil {
		return &fans.IoError{FanId: fan.ID, Pwm: pwm, Err: fan.Err}
	}
	fan.Writes = append(fan.Writes, pwm)
	return nil
}

func (fan *MockFan) SetErr(err error) {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	fan.Err = err
}

func (fan *MockFan) WriteCount() int {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return len(fan.Writes)
}

func (fan *MockFan) GetWrites() []int {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	result := make([]int, len(fan.Writes))
	copy(result, fan.Writes)
	return result
}

type Sample struct {
	Value float64
	Err   error
}

// Temperatures creates successful samples for the given values.
func Temperatures(values ...float64) []Sample {
	var result []Sample
	for _, v := range values {
		result = append(result, Sample{Value: v})
	}
	return result
}

// MockSensor returns its samples in order and repeats the last one afterwards.
type MockSensor struct {
	mu      sync.Mutex
	ID      string
	Samples []Sample
	next    int
}

func (sensor *MockSensor) GetId() string {
	return sensor.ID
}

func (sensor *MockSensor) GetConfig() configuration.SensorConfig {
	return configuration.SensorConfig{ID: sensor.ID}
}

func (sensor *MockSensor) GetValue() (float64, error) {
	sensor.mu.Lock()
	defer sensor.mu.Unlock()
	s := sensor.Samples[sensor.next]
	if sensor.next < len(sensor.Samples)-1 {
		sensor.next++
	}
	if s.Err != nil {
		return 0, &sensors.SensorError{SensorId: sensor.ID, Err: s.Err}
	}
	return s.Value, nil
}

// MockBus records register writes as {bus, address, register, value}.
type MockBus struct {
	mu     sync.Mutex
	Writes [][4]int
	Err    error
}

func (b *MockBus) WriteRegister(bus int, addr uint16, reg byte, value byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return b.Err
	}
	b.Writes = append(b.Writes, [4]int{bus, int(addr), int(reg), int(value)})
	return nil
}

type MockPersistence struct {
	mu     sync.Mutex
	States map[string]persistence.FanState
	Err    error
}

func NewMockPersistence() *MockPersistence {
	return &MockPersistence{States: map[string]persistence.FanState{}}
}

func (p *MockPersistence) Init() error { return nil }

func (p *MockPersistence) LoadFanSpeed(fanId string) (*persistence.FanState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	state, ok := p.States[fanId]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &state, nil
}

func (p *MockPersistence) SaveFanSpeed(fanId string, state persistence.FanState) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.States[fanId] = state
	return nil
}

func (p *MockPersistence) DeleteFanSpeed(fanId string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.States, fanId)
	return nil
}
