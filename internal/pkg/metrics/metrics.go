// Package metrics holds the Prometheus collectors exported by the gateway.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "exit_nonzero"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nmgateway",
		Name:      "commands_total",
		Help:      "External commands run, by program, sub-command and outcome.",
	}, []string{"program", "subcommand", "outcome"})

	commandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nmgateway",
		Name:      "command_duration_seconds",
		Help:      "Wall time of external commands.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"program", "subcommand"})
)

// ObserveCommand records one finished command.
func ObserveCommand(program, subcommand, outcome string, elapsed time.Duration) {
	commandsTotal.WithLabelValues(program, subcommand, outcome).Inc()
	commandDuration.WithLabelValues(program, subcommand).Observe(elapsed.Seconds())
}
