package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDatasetFetch(t *testing.T) {
	RecordDatasetFetch("DATASET SP", 42, 150*time.Millisecond)

	var rows dto.Metric
	require.NoError(t, DatasetRows.WithLabelValues("DATASET SP").Write(&rows))
	assert.Equal(t, 42.0, rows.GetGauge().GetValue())

	var fetches dto.Metric
	require.NoError(t, DatasetFetchesTotal.WithLabelValues("DATASET SP", "success").Write(&fetches))
	assert.GreaterOrEqual(t, fetches.GetCounter().GetValue(), 1.0)
}

func TestRecordDatasetFetch_OverwritesRowGauge(t *testing.T) {
	RecordDatasetFetch("DATASET BERITA", 10, time.Millisecond)
	RecordDatasetFetch("DATASET BERITA", 3, time.Millisecond)

	var rows dto.Metric
	require.NoError(t, DatasetRows.WithLabelValues("DATASET BERITA").Write(&rows))
	assert.Equal(t, 3.0, rows.GetGauge().GetValue())
}

func TestRecordDatasetFetchError(t *testing.T) {
	RecordDatasetFetchError("DATASET SP")

	var fetches dto.Metric
	require.NoError(t, DatasetFetchesTotal.WithLabelValues("DATASET SP", "failure").Write(&fetches))
	assert.GreaterOrEqual(t, fetches.GetCounter().GetValue(), 1.0)
}

func TestRecordDashboardRender(t *testing.T) {
	RecordDashboardRender("trends", 5*time.Millisecond)

	var hist dto.Metric
	h := DashboardRenderDuration.WithLabelValues("trends")
	require.NoError(t, h.(prometheus.Metric).Write(&hist))
	assert.GreaterOrEqual(t, hist.GetHistogram().GetSampleCount(), uint64(1))
}
