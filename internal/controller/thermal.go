package controller

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/openvoiceos/mk2fan/internal/bands"
	"github.com/openvoiceos/mk2fan/internal/fans"
	"github.com/openvoiceos/mk2fan/internal/persistence"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/openvoiceos/mk2fan/internal/util"
)

type ThermalController interface {
	// Run blocks until ctx is cancelled, updating the fan speed once per interval.
	Run(ctx context.Context) error
	// UpdateFanSpeed runs a single sample and apply cycle.
	UpdateFanSpeed() error

	GetFanId() string
	GetStatistics() Statistics
}

type Statistics struct {
	Ticks        int `json:"ticks"`
	SensorErrors int `json:"sensorErrors"`
	BusErrors    int `json:"busErrors"`

	// LastTemperature is the most recent successfully read temperature in °C
	LastTemperature float64 `json:"lastTemperature"`
	AvgTemperature  float64 `json:"avgTemperature"`
	MaxTemperature  float64 `json:"maxTemperature"`

	LastSpeed  int       `json:"lastSpeed"`
	LastPwm    int       `json:"lastPwm"`
	LastBand   string    `json:"lastBand"`
	LastUpdate time.Time `json:"lastUpdate"`
}

type thermalController struct {
	control     FanControl
	table       *bands.Table
	persistence persistence.Persistence
	interval    time.Duration

	windowSize int
	window     *rolling.PointPolicy

	mu         sync.RWMutex
	stats      Statistics
	hasSample  bool
	atMaxSpeed bool
}

// NewThermalController creates a controller that drives control according to table.
// persistence may be nil, in which case the applied speed is not stored.
func NewThermalController(
	control FanControl,
	table *bands.Table,
	persistence persistence.Persistence,
	interval time.Duration,
	windowSize int,
) ThermalController {
	if windowSize < 1 {
		windowSize = 1
	}
	return &thermalController{
		control:     control,
		table:       table,
		persistence: persistence,
		interval:    interval,
		windowSize:  windowSize,
		window:      util.CreateRollingWindow(windowSize),
	}
}

func (c *thermalController) GetFanId() string {
	return c.control.GetFan().GetId()
}

func (c *thermalController) GetStatistics() Statistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *thermalController) Run(ctx context.Context) error {
	fanId := c.GetFanId()

	if ctx.Err() != nil {
		return nil
	}
	c.restoreFanSpeed()

	ui.Info("Starting thermal controller for fan '%s' (interval: %s)", fanId, c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			ui.Info("Stopping thermal controller for fan '%s'", fanId)
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				ui.Info("Stopping thermal controller for fan '%s'", fanId)
				return nil
			}
			err := c.UpdateFanSpeed()
			if err != nil {
				ui.Error("Error in thermal controller for fan %s: %v", fanId, err)
			}
		}
	}
}

func (c *thermalController) UpdateFanSpeed() error {
	fanId := c.GetFanId()

	temperature, err := c.control.GetCpuTemp()
	if err != nil {
		c.mu.Lock()
		c.stats.Ticks++
		c.stats.SensorErrors++
		c.mu.Unlock()
		return err
	}

	index := c.table.SelectIndex(temperature)
	band := c.table.Bands()[index]
	description := c.table.Describe(index)
	ui.Debug("CPU temperature %.1f°C, band '%s' -> speed %d%%", temperature, description, band.Speed)

	err = c.control.SetFanSpeed(band.Speed)

	c.mu.Lock()
	c.stats.Ticks++
	c.recordTemperature(temperature)
	if err != nil {
		c.stats.BusErrors++
		c.mu.Unlock()
		return err
	}
	enteredMax := band.Speed >= c.table.MaxSpeed() && !c.atMaxSpeed
	c.atMaxSpeed = band.Speed >= c.table.MaxSpeed()
	c.stats.LastSpeed = band.Speed
	c.stats.LastPwm = c.control.GetPwm()
	c.stats.LastBand = description
	c.stats.LastUpdate = time.Now()
	c.mu.Unlock()

	if enteredMax {
		ui.WarningAndNotify("Fan at full speed", "CPU temperature is %.1f°C, fan %s set to %d%%", temperature, fanId, band.Speed)
	}

	c.persistSpeed(band.Speed)
	return nil
}

// must be called with c.mu held
func (c *thermalController) recordTemperature(temperature float64) {
	if !c.hasSample {
		util.FillWindow(c.window, c.windowSize, temperature)
		c.hasSample = true
	} else {
		c.window.Append(temperature)
	}
	c.stats.LastTemperature = temperature
	c.stats.AvgTemperature = util.GetWindowAvg(c.window)
	c.stats.MaxTemperature = util.GetWindowMax(c.window)
}

// restoreFanSpeed re-applies the last persisted speed, or stops the fan if none is known.
func (c *thermalController) restoreFanSpeed() {
	fanId := c.GetFanId()
	speed := fans.MinSpeed

	if c.persistence != nil {
		state, err := c.persistence.LoadFanSpeed(fanId)
		switch {
		case err == nil && state != nil:
			speed = state.Speed
			ui.Info("Restoring last speed of fan '%s': %d%%", fanId, speed)
		case errors.Is(err, os.ErrNotExist):
			ui.Debug("No persisted speed for fan '%s'", fanId)
		case err != nil:
			ui.Warning("Unable to load persisted speed of fan '%s': %v", fanId, err)
		}
	}

	err := c.control.SetFanSpeed(speed)
	if err != nil {
		ui.Error("Unable to set initial speed of fan '%s': %v", fanId, err)
		c.mu.Lock()
		c.stats.BusErrors++
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.stats.LastSpeed = speed
	c.stats.LastPwm = c.control.GetPwm()
	c.mu.Unlock()
}

func (c *thermalController) persistSpeed(speed int) {
	if c.persistence == nil {
		return
	}
	fanId := c.GetFanId()
	err := c.persistence.SaveFanSpeed(fanId, persistence.FanState{
		Speed:     speed,
		Pwm:       c.control.GetPwm(),
		Timestamp: time.Now(),
	})
	if err != nil {
		ui.Warning("Unable to persist speed of fan '%s': %v", fanId, err)
	}
}
