// Package dashboard assembles the report panels served over HTTP. Each
// operation loads the datasets it needs, runs the aggregation pipelines,
// and returns plain result values; degraded inputs yield empty results
// while a failed fetch is an error for the handler to surface.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/iboet2004/db-rilis/internal/observability/metrics"
	"github.com/iboet2004/db-rilis/internal/repository"
	"github.com/iboet2004/db-rilis/internal/usecase/coverage"
	"github.com/iboet2004/db-rilis/internal/usecase/stats"
	"github.com/iboet2004/db-rilis/internal/usecase/trend"
)

// Dataset selectors accepted by the trends and volume panels.
const (
	DatasetPressReleases = "sp"
	DatasetNews          = "news"
)

// Overview holds the scorecard figures shown at the top of the dashboard.
type Overview struct {
	PressReleases   int
	NewsItems       int
	CoverageMatches int
	CoverageRatio   float64
}

// Service implements the dashboard panels on top of the dataset repository.
type Service struct {
	Repo     repository.DatasetRepository
	Stats    stats.Service
	Trend    trend.Service
	Coverage coverage.Service
}

// Overview computes the scorecards: row totals, news rows matched to a
// release, and the matched share of news. A dataset with no news yields a
// zero ratio rather than a division error.
func (s Service) Overview(ctx context.Context) (*Overview, error) {
	defer observe("overview", time.Now())

	sp, news, err := s.Repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}

	matches := s.Coverage.MatchCount(news.Dataset, news.Schema.Reference, sp.Dataset, sp.Schema.Title)
	out := &Overview{
		PressReleases:   sp.Dataset.Len(),
		NewsItems:       news.Dataset.Len(),
		CoverageMatches: matches,
	}
	if out.NewsItems > 0 {
		out.CoverageRatio = float64(matches) / float64(out.NewsItems)
	}
	return out, nil
}

// Sources ranks narasumber entities from the press-release dataset.
func (s Service) Sources(ctx context.Context, topN int) ([]stats.EntityCount, error) {
	defer observe("sources", time.Now())

	sp, err := s.Repo.PressReleases(ctx)
	if err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}
	return s.Stats.Aggregate(sp.Dataset, sp.Schema.Entities).Top(topN), nil
}

// Media ranks media outlets from the news dataset.
func (s Service) Media(ctx context.Context, topN int) ([]stats.EntityCount, error) {
	defer observe("media", time.Now())

	news, err := s.Repo.News(ctx)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	return s.Stats.Aggregate(news.Dataset, news.Schema.Entities).Top(topN), nil
}

// Locations lists distinct press-release locations in dataset order.
func (s Service) Locations(ctx context.Context) ([]string, error) {
	defer observe("locations", time.Now())

	sp, err := s.Repo.PressReleases(ctx)
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}
	return s.Stats.Unique(sp.Dataset, sp.Schema.Location), nil
}

// Trends builds the dense per-entity time series for the selected dataset.
func (s Service) Trends(ctx context.Context, dataset string, g trend.Granularity, topN int) ([]trend.Point, error) {
	defer observe("trends", time.Now())

	loaded, err := s.selectDataset(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("trends: %w", err)
	}
	return s.Trend.Build(loaded.Dataset, loaded.Schema.Entities, loaded.Schema.Date, g, topN), nil
}

// Volume builds the overall row-count series for the selected dataset.
func (s Service) Volume(ctx context.Context, dataset string, g trend.Granularity) ([]trend.VolumePoint, error) {
	defer observe("volume", time.Now())

	loaded, err := s.selectDataset(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}
	return s.Trend.Volume(loaded.Dataset, loaded.Schema.Date, g), nil
}

// Effectiveness ranks press releases by news pickup.
func (s Service) Effectiveness(ctx context.Context, topN int) ([]coverage.TitleCount, error) {
	defer observe("effectiveness", time.Now())

	sp, news, err := s.Repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("effectiveness: %w", err)
	}
	return s.Coverage.Effectiveness(news.Dataset, news.Schema.Reference, sp.Dataset, sp.Schema.Title, topN), nil
}

// ResponseTimes computes release-to-coverage delays in whole days.
func (s Service) ResponseTimes(ctx context.Context) (coverage.ResponseStats, error) {
	defer observe("response_times", time.Now())

	sp, news, err := s.Repo.LoadAll(ctx)
	if err != nil {
		return coverage.ResponseStats{}, fmt.Errorf("response times: %w", err)
	}
	return s.Coverage.ResponseTimes(
		news.Dataset, news.Schema.Reference, news.Schema.Date,
		sp.Dataset, sp.Schema.Title, sp.Schema.Date,
	), nil
}

// selectDataset loads the dataset named by the sp/news selector.
func (s Service) selectDataset(ctx context.Context, dataset string) (*repository.LoadedDataset, error) {
	switch dataset {
	case DatasetPressReleases:
		return s.Repo.PressReleases(ctx)
	case DatasetNews:
		return s.Repo.News(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, dataset)
	}
}

func observe(panel string, start time.Time) {
	metrics.RecordDashboardRender(panel, time.Since(start))
}
