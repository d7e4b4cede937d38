package statistics

import (
	"github.com/openvoiceos/mk2fan/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const fanSubsystem = "fan"

type FanCollector struct {
	controls []controller.FanControl
	pwm      *prometheus.Desc
	speed    *prometheus.Desc
}

func NewFanCollector(controls []controller.FanControl) *FanCollector {
	return &FanCollector{
		controls: controls,
		pwm: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "pwm"),
			"Last PWM value written to the fan",
			[]string{"id"}, nil,
		),
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "speed"),
			"Last speed (0..100) applied to the fan",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.pwm
	ch <- collector.speed
}

// Collect implements required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	for _, control := range collector.controls {
		fanId := control.GetFan().GetId()
		ch <- prometheus.MustNewConstMetric(collector.pwm, prometheus.GaugeValue, float64(control.GetPwm()), fanId)
		ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, float64(control.GetFanSpeed()), fanId)
	}
}
