package dashboard

import (
	"net/http"

	"github.com/iboet2004/db-rilis/internal/handler/http/respond"
	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
)

const bucketDateLayout = "2006-01-02"

type TrendsHandler struct{ Svc dashUC.Service }

func (h TrendsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	top, err := topParam(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	g, err := granularityParam(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	points, err := h.Svc.Trends(r.Context(), datasetParam(r), g, top)
	if err != nil {
		fail(w, err)
		return
	}

	out := make([]TrendPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPointDTO{
			Entity: p.Entity,
			Bucket: p.Bucket.Format(bucketDateLayout),
			Count:  p.Count,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}

type VolumeHandler struct{ Svc dashUC.Service }

func (h VolumeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g, err := granularityParam(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	points, err := h.Svc.Volume(r.Context(), datasetParam(r), g)
	if err != nil {
		fail(w, err)
		return
	}

	out := make([]VolumePointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, VolumePointDTO{
			Bucket: p.Bucket.Format(bucketDateLayout),
			Count:  p.Count,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}
