package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegisterAll(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()

	require.NoError(t, m.Register(reg))

	// Double registration fails cleanly.
	assert.Error(t, m.Register(reg))
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.ResolutionsTotal.WithLabelValues("success").Inc()
	m.ResolutionsTotal.WithLabelValues("error").Add(2)
	m.DefinitionsLoaded.Inc()
	m.MessagesPublished.WithLabelValues("sensors.imu").Inc()

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DefinitionsLoaded))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.MessagesPublished.WithLabelValues("sensors.imu")))
}
