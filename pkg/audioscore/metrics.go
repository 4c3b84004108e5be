package audioscore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "soundscore"

// Metrics counts the work of one run. Each Metrics owns its registry so a
// run can be written out as a node-exporter textfile.
type Metrics struct {
	registry *prometheus.Registry

	ChunksProcessed  prometheus.Counter
	FramesScored     prometheus.Counter
	FilesWritten     prometheus.Counter
	BytesWritten     prometheus.Counter
	InferenceSeconds prometheus.Histogram
	AudioSeconds     prometheus.Gauge
}

// NewMetrics creates and registers all run metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		ChunksProcessed: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "chunks_processed_total",
			Help:      "Classifier calls completed, one per chunk or one per whole file",
		}),
		FramesScored: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "frames_scored_total",
			Help:      "Score frames returned by the classifier",
		}),
		FilesWritten: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "files_written_total",
			Help:      "Result files written",
		}),
		BytesWritten: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "bytes_written_total",
			Help:      "Bytes of JSON written",
		}),
		InferenceSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "inference_duration_seconds",
			Help:      "Duration of one classifier call",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}),
		AudioSeconds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "audio_duration_seconds",
			Help:      "Duration of the input recording",
		}),
	}
}

// WriteTextfile writes all metrics in the Prometheus text format to path,
// atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return IOError.Wrap(err, "write metrics %s", path)
	}
	return nil
}
