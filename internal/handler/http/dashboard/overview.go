// Package dashboard exposes the report panels as read-only JSON endpoints.
package dashboard

import (
	"net/http"

	"github.com/iboet2004/db-rilis/internal/handler/http/respond"
	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
)

type OverviewHandler struct{ Svc dashUC.Service }

func (h OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ov, err := h.Svc.Overview(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, OverviewDTO{
		PressReleases:   ov.PressReleases,
		NewsItems:       ov.NewsItems,
		CoverageMatches: ov.CoverageMatches,
		CoverageRatio:   ov.CoverageRatio,
	})
}
