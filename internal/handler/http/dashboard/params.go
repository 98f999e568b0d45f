package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/iboet2004/db-rilis/internal/handler/http/respond"
	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
	"github.com/iboet2004/db-rilis/internal/usecase/trend"
)

// DefaultTopN bounds ranked panels when the client does not ask otherwise.
const DefaultTopN = 10

// topParam parses the top query parameter. Absent means DefaultTopN;
// top=0 means unbounded.
func topParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("top")
	if raw == "" {
		return DefaultTopN, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("top must be a non-negative integer, got %q", raw)
	}
	return n, nil
}

// granularityParam parses the granularity query parameter, defaulting to
// weekly buckets.
func granularityParam(r *http.Request) (trend.Granularity, error) {
	raw := r.URL.Query().Get("granularity")
	if raw == "" {
		return trend.Weekly, nil
	}
	return trend.ParseGranularity(raw)
}

// datasetParam reads the sp/news selector, defaulting to press releases.
func datasetParam(r *http.Request) string {
	if v := r.URL.Query().Get("dataset"); v != "" {
		return v
	}
	return dashUC.DatasetPressReleases
}

// fail maps service errors onto HTTP responses: selector and parameter
// errors are the client's fault, anything else means the upstream sheet
// could not be loaded.
func fail(w http.ResponseWriter, err error) {
	if errors.Is(err, dashUC.ErrUnknownDataset) {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.SafeError(w, http.StatusBadGateway, err)
}
