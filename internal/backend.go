package internal

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/oklog/run"
	"github.com/openvoiceos/mk2fan/internal/api"
	"github.com/openvoiceos/mk2fan/internal/bands"
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/controller"
	"github.com/openvoiceos/mk2fan/internal/fans"
	"github.com/openvoiceos/mk2fan/internal/hwmon"
	"github.com/openvoiceos/mk2fan/internal/i2c"
	"github.com/openvoiceos/mk2fan/internal/persistence"
	"github.com/openvoiceos/mk2fan/internal/sensors"
	"github.com/openvoiceos/mk2fan/internal/statistics"
	"github.com/openvoiceos/mk2fan/internal/ui"
)

// Objects are the runtime objects created from a configuration.
type Objects struct {
	Fan     fans.Fan
	Sensor  sensors.Sensor
	Table   *bands.Table
	Control controller.FanControl
}

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to be able to write to the i2c bus, please run mk2fan as root")
	}

	config := configuration.CurrentConfig
	ui.SetNotificationsEnabled(config.Notifications)

	bus := i2c.NewAdapter()

	objects, err := InitializeObjects(config, bus)
	if err != nil {
		ui.Fatal("%v", err)
	}

	var pers persistence.Persistence = persistence.NewPersistence(config.DbPath)
	if err := pers.Init(); err != nil {
		ui.Warning("Unable to initialize database at %s, fan speed will not be persisted: %v", config.DbPath, err)
		pers = nil
	}

	thermal := controller.NewThermalController(
		objects.Control,
		objects.Table,
		pers,
		config.Controller.Interval,
		config.Controller.TemperatureWindowSize,
	)

	statistics.Register(statistics.NewFanCollector([]controller.FanControl{objects.Control}))
	statistics.Register(statistics.NewSensorCollector([]sensors.Sensor{objects.Sensor}))
	statistics.Register(statistics.NewControllerCollector([]controller.ThermalController{thermal}))

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	if config.Statistics.Enabled {
		// === Prometheus Exporter
		server := statistics.NewServer(config.Statistics)
		g.Add(server.Run, func(err error) {
			if err := server.Shutdown(); err != nil {
				ui.Warning("Error stopping statistics server: %v", err)
			} else {
				ui.Info("Statistics server stopped.")
			}
		})
	}
	if config.Api.Enabled {
		// === REST api
		server := api.NewServer(config.Api, api.Backend{
			Controls:    []controller.FanControl{objects.Control},
			Controllers: []controller.ThermalController{thermal},
			Table:       objects.Table,
		})
		g.Add(server.Run, func(err error) {
			if err := server.Shutdown(); err != nil {
				ui.Warning("Error stopping REST api: %v", err)
			} else {
				ui.Info("REST api stopped.")
			}
		})
	}
	{
		// === thermal control loop
		g.Add(func() error {
			err := thermal.Run(ctx)
			ui.Info("Thermal controller for fan %s stopped.", thermal.GetFanId())
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		stop := make(chan struct{})

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-stop:
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			close(stop)
			cancel()
		})
	}

	err = g.Run()
	_ = bus.Close()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// InitializeObjects creates the fan, sensor and band table described by config and
// registers fan and sensor in fans.FanMap and sensors.SensorMap.
func InitializeObjects(config configuration.Configuration, bus i2c.Writer) (*Objects, error) {
	sensor, err := CreateSensor(config.Sensor)
	if err != nil {
		return nil, err
	}

	value, err := sensor.GetValue()
	if err != nil {
		ui.Warning("Error reading sensor %s: %v", sensor.GetId(), err)
	} else {
		ui.Info("Current temperature of %s: %.1f°C", sensor.GetId(), value)
	}

	fan, err := CreateFan(config.Fan, bus)
	if err != nil {
		return nil, err
	}

	table, err := bands.NewTable(config.Bands)
	if err != nil {
		return nil, err
	}

	sensors.SensorMap.Set(sensor.GetId(), sensor)
	fans.FanMap.Set(fan.GetId(), fan)

	return &Objects{
		Fan:     fan,
		Sensor:  sensor,
		Table:   table,
		Control: controller.NewFanControl(fan, sensor),
	}, nil
}

// CreateSensor creates the sensor described by config, resolving hwmon inputs if necessary.
func CreateSensor(config configuration.SensorConfig) (sensors.Sensor, error) {
	if config.HwMon != nil {
		hwMonConfig := *config.HwMon
		err := hwmon.ResolveSensorInput(&hwMonConfig, hwmon.GetChips())
		if err != nil {
			return nil, fmt.Errorf("sensor %s: %w. Run 'mk2fan detect' and correct the configuration", config.ID, err)
		}
		config.HwMon = &hwMonConfig
	}

	sensor, err := sensors.NewSensor(config)
	if err != nil {
		return nil, fmt.Errorf("unable to process sensor configuration %s: %w", config.ID, err)
	}
	return sensor, nil
}

// CreateFan creates the fan output described by config.
func CreateFan(config configuration.FanConfig, bus i2c.Writer) (fans.Fan, error) {
	fan, err := fans.NewFan(config, bus)
	if err != nil {
		return nil, fmt.Errorf("unable to process fan configuration %s: %w", config.ID, err)
	}
	return fan, nil
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
	}
	return strings.TrimSpace(string(stdout))
}
