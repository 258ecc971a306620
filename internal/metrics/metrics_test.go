package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(RecordsCreated.WithLabelValues(ResourceGuards))
	Created(ResourceGuards)
	assert.Equal(t, before+1, testutil.ToFloat64(RecordsCreated.WithLabelValues(ResourceGuards)))

	before = testutil.ToFloat64(RecordsDeleted.WithLabelValues(ResourceExercises))
	Deleted(ResourceExercises)
	assert.Equal(t, before+1, testutil.ToFloat64(RecordsDeleted.WithLabelValues(ResourceExercises)))

	before = testutil.ToFloat64(LoginAttempts.WithLabelValues("failure"))
	Login(false)
	assert.Equal(t, before+1, testutil.ToFloat64(LoginAttempts.WithLabelValues("failure")))
}
