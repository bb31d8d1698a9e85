package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/attendance-bot/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAttendance(t *testing.T) {
	ObserveAttendance(entity.AttendanceSnapshot{
		Attending: []string{"U1", "U2"},
		Skipping:  map[string]string{"U3": ""},
		Canceled:  true,
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(Members.WithLabelValues("attending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(Members.WithLabelValues("skipping")))
	assert.Equal(t, 1.0, testutil.ToFloat64(Canceled))

	ObserveAttendance(entity.AttendanceSnapshot{})
	assert.Equal(t, 0.0, testutil.ToFloat64(Members.WithLabelValues("attending")))
	assert.Equal(t, 0.0, testutil.ToFloat64(Canceled))
}

func TestHandler(t *testing.T) {
	RemindersSent.WithLabelValues("tonight").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "attendance_reminders_sent_total")
}
