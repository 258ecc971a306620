package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resource labels
const (
	ResourceGuards      = "guards"
	ResourceInspections = "inspections"
	ResourceExercises   = "exercises"
)

var (
	RecordsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardroster", Name: "records_created_total", Help: "Records added, by resource",
	}, []string{"resource"})
	RecordsDeleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardroster", Name: "records_deleted_total", Help: "Delete requests served, by resource",
	}, []string{"resource"})
	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardroster", Name: "login_attempts_total", Help: "Login attempts, by outcome",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(RecordsCreated, RecordsDeleted, LoginAttempts)
}

func Created(resource string) { RecordsCreated.WithLabelValues(resource).Inc() }

func Deleted(resource string) { RecordsDeleted.WithLabelValues(resource).Inc() }

func Login(ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	LoginAttempts.WithLabelValues(outcome).Inc()
}
