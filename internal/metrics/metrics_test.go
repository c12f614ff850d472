package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"keyscout/internal/models"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	prev := recorder
	recorder = r
	t.Cleanup(func() { recorder = prev })

	RecordQuery(OutcomeOK)
	RecordQuery(OutcomeOK)
	RecordQuery(OutcomeInvalid)
	RecordGrades(map[models.Grade]int{models.GradeTop: 1, models.GradeGood: 2})
	ObserveSource("primary", OutcomeOK, 20*time.Millisecond)

	if got := testutil.ToFloat64(r.queries.WithLabelValues(OutcomeOK)); got != 2 {
		t.Errorf("ok queries = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.queries.WithLabelValues(OutcomeInvalid)); got != 1 {
		t.Errorf("invalid queries = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.rowsByGrade.WithLabelValues("good")); got != 2 {
		t.Errorf("good rows = %v, want 2", got)
	}
	if got := testutil.CollectAndCount(r.sourceLatency); got != 1 {
		t.Errorf("latency series = %d, want 1", got)
	}
}

func TestRecordBeforeInit(t *testing.T) {
	prev := recorder
	recorder = nil
	t.Cleanup(func() { recorder = prev })

	// Must not panic.
	RecordQuery(OutcomeOK)
	RecordGrades(map[models.Grade]int{models.GradeTop: 1})
	ObserveSource("primary", OutcomeOK, time.Millisecond)
}
