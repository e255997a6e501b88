package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveRender(t *testing.T) {
	r := NewRecorder()

	r.ObserveRender(YearStats{
		Year:       2024,
		ActiveDays: 12,
		Hours:      map[string]float64{"manuscript": 30.5, "grant": 4},
		MaxHours:   map[string]float64{"manuscript": 6, "grant": 2},
	}, 1500*time.Millisecond, time.Unix(1700000000, 0))
	r.ObserveFailure()

	assert.Equal(t, 1.0, promtest.ToFloat64(r.renders.WithLabelValues("success")))
	assert.Equal(t, 1.0, promtest.ToFloat64(r.renders.WithLabelValues("failure")))
	assert.Equal(t, 12.0, promtest.ToFloat64(r.activeDays.WithLabelValues("2024")))
	assert.Equal(t, 30.5, promtest.ToFloat64(r.hoursTotal.WithLabelValues("2024", "manuscript")))
	assert.Equal(t, 2.0, promtest.ToFloat64(r.hoursMax.WithLabelValues("2024", "grant")))
	assert.Equal(t, 1700000000.0, promtest.ToFloat64(r.lastSuccess))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder(WithNamespace("cal"))
	r.ObserveRender(YearStats{Year: 2023, ActiveDays: 1}, time.Second, time.Now())

	path := filepath.Join(t.TempDir(), "effortcal.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cal_active_days{year="2023"} 1`)
	assert.Contains(t, string(data), "cal_render_duration_seconds_count 1")
}
