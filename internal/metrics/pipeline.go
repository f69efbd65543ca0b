package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "provenance",
		Subsystem: "pipeline",
		Name:      "steps_total",
		Help:      "Count of report pipeline steps by outcome.",
	}, []string{"step", "network", "status"})
	pipelineStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "provenance",
		Subsystem: "pipeline",
		Name:      "step_duration_seconds",
		Help:      "Duration of report pipeline steps.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"step", "network", "status"})
	pipelineRecipientMatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "provenance",
		Subsystem: "pipeline",
		Name:      "recipient_matches_total",
		Help:      "Count of output classifications by recipient match kind.",
	}, []string{"kind", "network"})
)

// Pipeline tracks metrics for the provenance report pipeline.
type Pipeline struct {
	network model.Network
}

// NewPipeline creates a Pipeline metrics collector.
func NewPipeline(network model.Network) *Pipeline {
	if network == "" {
		network = "unknown"
	}
	return &Pipeline{network: network}
}

// ObserveStep records the outcome and duration of one pipeline step.
func (m Pipeline) ObserveStep(step string, err error, started time.Time) {
	status := statusLabel(err)

	pipelineStepsTotal.WithLabelValues(step, string(m.network), status).Inc()
	pipelineStepDuration.WithLabelValues(step, string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveRecipientMatch counts how the recipient address matched the outputs.
func (m Pipeline) ObserveRecipientMatch(kind string) {
	pipelineRecipientMatchesTotal.WithLabelValues(kind, string(m.network)).Inc()
}
