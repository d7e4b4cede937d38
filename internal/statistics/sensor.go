package statistics

import (
	"github.com/openvoiceos/mk2fan/internal/sensors"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

type SensorCollector struct {
	sensors     []sensors.Sensor
	temperature *prometheus.Desc
}

func NewSensorCollector(sensors []sensors.Sensor) *SensorCollector {
	return &SensorCollector{
		sensors: sensors,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "temperature_celsius"),
			"Current temperature reported by the sensor",
			[]string{"id"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
}

// Collect implements required collect function for all prometheus collectors.
// Sensors that cannot be read are left out of the scrape.
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	for _, sensor := range collector.sensors {
		sensorId := sensor.GetId()
		value, err := sensor.GetValue()
		if err != nil {
			ui.Debug("Skipping sensor %s in metrics: %v", sensorId, err)
			continue
		}
		ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, value, sensorId)
	}
}
