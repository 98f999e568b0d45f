package dashboard

import (
	"net/http"

	"github.com/iboet2004/db-rilis/internal/handler/http/respond"
	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
	"github.com/iboet2004/db-rilis/internal/usecase/stats"
)

type SourcesHandler struct{ Svc dashUC.Service }

func (h SourcesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	top, err := topParam(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := h.Svc.Sources(r.Context(), top)
	if err != nil {
		fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toEntityCounts(list))
}

type MediaHandler struct{ Svc dashUC.Service }

func (h MediaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	top, err := topParam(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := h.Svc.Media(r.Context(), top)
	if err != nil {
		fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toEntityCounts(list))
}

type LocationsHandler struct{ Svc dashUC.Service }

func (h LocationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.Locations(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	if list == nil {
		list = []string{}
	}
	respond.JSON(w, http.StatusOK, list)
}

func toEntityCounts(list []stats.EntityCount) []EntityCountDTO {
	out := make([]EntityCountDTO, 0, len(list))
	for _, e := range list {
		out = append(out, EntityCountDTO{Entity: e.Entity, Count: e.Count})
	}
	return out
}
