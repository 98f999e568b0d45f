package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iboet2004/db-rilis/internal/domain/entity"
	"github.com/iboet2004/db-rilis/internal/handler/http/dashboard"
	"github.com/iboet2004/db-rilis/internal/repository"
	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
)

/* ───────── モック実装 ───────── */

type stubRepo struct {
	sp   *repository.LoadedDataset
	news *repository.LoadedDataset
	err  error
}

func (s *stubRepo) PressReleases(_ context.Context) (*repository.LoadedDataset, error) {
	return s.sp, s.err
}

func (s *stubRepo) News(_ context.Context) (*repository.LoadedDataset, error) {
	return s.news, s.err
}

func (s *stubRepo) LoadAll(_ context.Context) (*repository.LoadedDataset, *repository.LoadedDataset, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.sp, s.news, nil
}

func fixtureRepo() *stubRepo {
	sp := &repository.LoadedDataset{
		Dataset: entity.NewDataset("DATASET SP",
			[]string{"Judul", "Narasumber", "Tanggal", "Lokasi"},
			[][]string{
				{"Rilis A", "Menteri, Dirjen", "2024-01-01", "Jakarta"},
				{"Rilis B", "Menteri", "2024-01-08", "Surabaya"},
			}),
		Schema: &entity.ResolvedSchema{
			Title:    entity.ResolvedField{Column: "Judul"},
			Entities: entity.ResolvedField{Column: "Narasumber", Separator: ","},
			Date:     entity.ResolvedField{Column: "Tanggal"},
			Location: entity.ResolvedField{Column: "Lokasi"},
		},
	}
	news := &repository.LoadedDataset{
		Dataset: entity.NewDataset("DATASET BERITA",
			[]string{"Judul Berita", "Referensi", "Media", "Tanggal"},
			[][]string{
				{"Berita 1", "Rilis A", "Kompas; Tempo", "2024-01-02"},
				{"Berita 2", "Rilis B", "Kompas", "2024-01-09"},
			}),
		Schema: &entity.ResolvedSchema{
			Title:     entity.ResolvedField{Column: "Judul Berita"},
			Reference: entity.ResolvedField{Column: "Referensi"},
			Entities:  entity.ResolvedField{Column: "Media", Separator: ";"},
			Date:      entity.ResolvedField{Column: "Tanggal"},
		},
	}
	return &stubRepo{sp: sp, news: news}
}

func serve(handler http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

/* ───────── テストケース ───────── */

func TestOverviewHandler_Success(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.OverviewHandler{Svc: svc}, "/dashboard/overview")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got dashboard.OverviewDTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PressReleases != 2 || got.NewsItems != 2 {
		t.Errorf("totals = %+v, want 2 press releases and 2 news items", got)
	}
	if got.CoverageMatches != 2 {
		t.Errorf("CoverageMatches = %d, want 2", got.CoverageMatches)
	}
	if got.CoverageRatio != 1.0 {
		t.Errorf("CoverageRatio = %f, want 1.0", got.CoverageRatio)
	}
}

func TestOverviewHandler_FetchFailure(t *testing.T) {
	svc := dashUC.Service{Repo: &stubRepo{err: errors.New("dial tcp: connection refused")}}
	rr := serve(dashboard.OverviewHandler{Svc: svc}, "/dashboard/overview")

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("error = %q, want sanitized message", body["error"])
	}
}

func TestSourcesHandler_Success(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.SourcesHandler{Svc: svc}, "/dashboard/sources?top=5")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got []dashboard.EntityCountDTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Entity != "Menteri" || got[0].Count != 2 {
		t.Errorf("got[0] = %+v, want Menteri with 2", got[0])
	}
}

func TestSourcesHandler_InvalidTop(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.SourcesHandler{Svc: svc}, "/dashboard/sources?top=many")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestMediaHandler_Success(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.MediaHandler{Svc: svc}, "/dashboard/media")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got []dashboard.EntityCountDTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Entity != "Kompas" || got[0].Count != 2 {
		t.Errorf("got[0] = %+v, want Kompas with 2", got[0])
	}
}

func TestLocationsHandler_EmptyDataset(t *testing.T) {
	repo := fixtureRepo()
	repo.sp = &repository.LoadedDataset{
		Dataset: entity.NewDataset("DATASET SP", nil, nil),
		Schema:  &entity.ResolvedSchema{},
	}
	svc := dashUC.Service{Repo: repo}
	rr := serve(dashboard.LocationsHandler{Svc: svc}, "/dashboard/locations")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 on degraded input", rr.Code)
	}

	var got []string
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got = %v, want empty list", got)
	}
}

func TestTrendsHandler_Success(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.TrendsHandler{Svc: svc}, "/dashboard/trends?dataset=sp&granularity=week&top=2")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got []dashboard.TrendPointDTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// 2 entities x 2 weekly buckets, dense.
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[0].Bucket != "2024-01-01" {
		t.Errorf("first bucket = %q, want 2024-01-01", got[0].Bucket)
	}
}

func TestTrendsHandler_UnknownDataset(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.TrendsHandler{Svc: svc}, "/dashboard/trends?dataset=archive")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestTrendsHandler_InvalidGranularity(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.TrendsHandler{Svc: svc}, "/dashboard/trends?granularity=quarter")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestVolumeHandler_Success(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.VolumeHandler{Svc: svc}, "/dashboard/volume?dataset=news&granularity=week")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got []dashboard.VolumePointDTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 buckets", len(got))
	}
	if got[0].Count != 1 || got[1].Count != 1 {
		t.Errorf("counts = [%d %d], want [1 1]", got[0].Count, got[1].Count)
	}
}

func TestEffectivenessHandler_Success(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.EffectivenessHandler{Svc: svc}, "/dashboard/effectiveness?top=1")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got []dashboard.EffectivenessDTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Title != "Rilis A" || got[0].Count != 1 {
		t.Errorf("got[0] = %+v, want Rilis A with 1", got[0])
	}
}

func TestResponseTimesHandler_Success(t *testing.T) {
	svc := dashUC.Service{Repo: fixtureRepo()}
	rr := serve(dashboard.ResponseTimesHandler{Svc: svc}, "/dashboard/response-times")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got dashboard.ResponseTimesDTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Days) != 2 {
		t.Fatalf("Days = %v, want two matched pairs", got.Days)
	}
	if got.Mean != 1.0 {
		t.Errorf("Mean = %f, want 1.0", got.Mean)
	}
}

func TestResponseTimesHandler_NoMatches(t *testing.T) {
	repo := fixtureRepo()
	repo.news = &repository.LoadedDataset{
		Dataset: entity.NewDataset("DATASET BERITA", nil, nil),
		Schema:  &entity.ResolvedSchema{},
	}
	svc := dashUC.Service{Repo: repo}
	rr := serve(dashboard.ResponseTimesHandler{Svc: svc}, "/dashboard/response-times")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 on degraded input", rr.Code)
	}

	var got dashboard.ResponseTimesDTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Days) != 0 || got.Mean != 0 {
		t.Errorf("got = %+v, want empty stats", got)
	}
}
