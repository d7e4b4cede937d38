package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "mk2fan"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}
