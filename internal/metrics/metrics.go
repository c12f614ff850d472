package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"keyscout/internal/models"
)

// Query outcome labels.
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
)

// Recorder holds the keyscout collectors.
type Recorder struct {
	queries       *prometheus.CounterVec
	rowsByGrade   *prometheus.CounterVec
	sourceLatency *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keyscout_queries_total",
			Help: "Total keyword queries by outcome",
		}, []string{"outcome"}),
		rowsByGrade: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keyscout_scored_rows_total",
			Help: "Total scored keyword rows by grade",
		}, []string{"grade"}),
		sourceLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keyscout_source_duration_seconds",
			Help:    "Row source call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"source", "outcome"}),
	}
	reg.MustRegister(r.queries, r.rowsByGrade, r.sourceLatency)
	return r
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init() {
	recorderOnce.Do(func() {
		recorder = NewRecorder(prometheus.DefaultRegisterer)
	})
}

// RecordQuery counts a query outcome. No-op before Init.
func RecordQuery(outcome string) {
	if recorder == nil {
		return
	}
	recorder.queries.WithLabelValues(outcome).Inc()
}

// ObserveSource records how long a row source call took.
func ObserveSource(source, outcome string, d time.Duration) {
	if recorder == nil {
		return
	}
	recorder.sourceLatency.WithLabelValues(source, outcome).Observe(d.Seconds())
}

// RecordGrades counts scored rows per grade.
func RecordGrades(counts map[models.Grade]int) {
	if recorder == nil {
		return
	}
	for grade, n := range counts {
		recorder.rowsByGrade.WithLabelValues(string(grade)).Add(float64(n))
	}
}
