package statistics

import (
	"github.com/openvoiceos/mk2fan/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controllers []controller.ThermalController

	ticks          *prometheus.Desc
	sensorErrors   *prometheus.Desc
	busErrors      *prometheus.Desc
	temperatureAvg *prometheus.Desc
	temperatureMax *prometheus.Desc
}

func NewControllerCollector(controllers []controller.ThermalController) *ControllerCollector {
	return &ControllerCollector{
		controllers: controllers,
		ticks: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "ticks_total"),
			"Number of control cycles run by this controller",
			[]string{"id"}, nil,
		),
		sensorErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "sensor_errors_total"),
			"Number of control cycles skipped because the sensor could not be read",
			[]string{"id"}, nil,
		),
		busErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "bus_errors_total"),
			"Number of failed writes to the fan",
			[]string{"id"}, nil,
		),
		temperatureAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "temperature_avg_celsius"),
			"Average of the recent temperature samples of this controller",
			[]string{"id"}, nil,
		),
		temperatureMax: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "temperature_max_celsius"),
			"Maximum of the recent temperature samples of this controller",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.ticks
	ch <- collector.sensorErrors
	ch <- collector.busErrors
	ch <- collector.temperatureAvg
	ch <- collector.temperatureMax
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, contr := range collector.controllers {
		fanId := contr.GetFanId()
		stats := contr.GetStatistics()
		ch <- prometheus.MustNewConstMetric(collector.ticks, prometheus.CounterValue, float64(stats.Ticks), fanId)
		ch <- prometheus.MustNewConstMetric(collector.sensorErrors, prometheus.CounterValue, float64(stats.SensorErrors), fanId)
		ch <- prometheus.MustNewConstMetric(collector.busErrors, prometheus.CounterValue, float64(stats.BusErrors), fanId)
		ch <- prometheus.MustNewConstMetric(collector.temperatureAvg, prometheus.GaugeValue, stats.AvgTemperature, fanId)
		ch <- prometheus.MustNewConstMetric(collector.temperatureMax, prometheus.GaugeValue, stats.MaxTemperature, fanId)
	}
}
