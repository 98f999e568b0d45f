package dashboard

import (
	"net/http"

	"github.com/iboet2004/db-rilis/internal/handler/http/respond"
	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
)

type EffectivenessHandler struct{ Svc dashUC.Service }

func (h EffectivenessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	top, err := topParam(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	list, err := h.Svc.Effectiveness(r.Context(), top)
	if err != nil {
		fail(w, err)
		return
	}

	out := make([]EffectivenessDTO, 0, len(list))
	for _, tc := range list {
		out = append(out, EffectivenessDTO{
			Title:        tc.Title,
			DisplayTitle: tc.DisplayTitle,
			Count:        tc.Count,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}

type ResponseTimesHandler struct{ Svc dashUC.Service }

func (h ResponseTimesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Svc.ResponseTimes(r.Context())
	if err != nil {
		fail(w, err)
		return
	}

	days := rs.Days
	if days == nil {
		days = []int{}
	}
	respond.JSON(w, http.StatusOK, ResponseTimesDTO{Days: days, Mean: rs.Mean})
}
