package dashboard

import (
	"net/http"

	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
)

// Register mounts all dashboard panel routes on the mux. Every endpoint is
// read-only GET.
func Register(mux *http.ServeMux, svc dashUC.Service) {
	mux.Handle("GET /dashboard/overview", OverviewHandler{svc})
	mux.Handle("GET /dashboard/sources", SourcesHandler{svc})
	mux.Handle("GET /dashboard/media", MediaHandler{svc})
	mux.Handle("GET /dashboard/locations", LocationsHandler{svc})
	mux.Handle("GET /dashboard/trends", TrendsHandler{svc})
	mux.Handle("GET /dashboard/volume", VolumeHandler{svc})
	mux.Handle("GET /dashboard/effectiveness", EffectivenessHandler{svc})
	mux.Handle("GET /dashboard/response-times", ResponseTimesHandler{svc})
}
