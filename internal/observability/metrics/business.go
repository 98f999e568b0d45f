package metrics

import "time"

// RecordDatasetFetch records a successful dataset load: attempt result,
// duration, and the row count observed.
func RecordDatasetFetch(sheet string, rows int, duration time.Duration) {
	DatasetFetchesTotal.WithLabelValues(sheet, "success").Inc()
	DatasetFetchDuration.WithLabelValues(sheet).Observe(duration.Seconds())
	DatasetRows.WithLabelValues(sheet).Set(float64(rows))
}

// RecordDatasetFetchError records a dataset load that failed after retries.
func RecordDatasetFetchError(sheet string) {
	DatasetFetchesTotal.WithLabelValues(sheet, "failure").Inc()
}

// RecordDashboardRender records the time taken to compute one dashboard
// panel, e.g. "trends" or "effectiveness".
func RecordDashboardRender(panel string, duration time.Duration) {
	DashboardRenderDuration.WithLabelValues(panel).Observe(duration.Seconds())
}
