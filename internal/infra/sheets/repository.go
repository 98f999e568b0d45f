// Package sheets loads the dashboard datasets from a published Google
// Sheets document via its gviz CSV export endpoint. Fetches run through
// retry with backoff, a circuit breaker, and a client-side rate limiter;
// schema resolution happens here, once per load, so the rest of the system
// never touches column positions.
package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/iboet2004/db-rilis/internal/domain/entity"
	"github.com/iboet2004/db-rilis/internal/observability/logging"
	"github.com/iboet2004/db-rilis/internal/observability/metrics"
	"github.com/iboet2004/db-rilis/internal/observability/tracing"
	"github.com/iboet2004/db-rilis/internal/repository"
	"github.com/iboet2004/db-rilis/internal/resilience/circuitbreaker"
	"github.com/iboet2004/db-rilis/internal/resilience/retry"
)

// DatasetSpec names one sheet and the schema to resolve against it.
type DatasetSpec struct {
	Sheet  string
	Schema entity.Schema
}

// Config holds the repository's construction-time settings. The sheet
// identifier arrives here explicitly; nothing in this package is a
// process-wide constant.
type Config struct {
	// SheetID identifies the spreadsheet document.
	SheetID string

	// BaseURL is the spreadsheet host prefix, e.g.
	// https://docs.google.com/spreadsheets/d. Overridable for tests.
	BaseURL string

	// Rate and Burst shape the client-side limiter on outbound requests.
	Rate  float64
	Burst int

	// Client is the HTTP client used for fetches. Its timeout bounds one
	// attempt; retries multiply it.
	Client *http.Client
}

// Repository implements repository.DatasetRepository against the gviz
// endpoint.
type Repository struct {
	cfg      Config
	sp       DatasetSpec
	news     DatasetSpec
	limiter  *rate.Limiter
	breaker  *circuitbreaker.CircuitBreaker
	retryCfg retry.Config
}

var _ repository.DatasetRepository = (*Repository)(nil)

// NewRepository builds a Repository for the two dashboard datasets.
func NewRepository(cfg Config, sp, news DatasetSpec) *Repository {
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Repository{
		cfg:      cfg,
		sp:       sp,
		news:     news,
		limiter:  rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		breaker:  circuitbreaker.New(circuitbreaker.SheetFetchConfig()),
		retryCfg: retry.SheetFetchConfig(),
	}
}

// PressReleases loads the siaran pers dataset.
func (r *Repository) PressReleases(ctx context.Context) (*repository.LoadedDataset, error) {
	return r.load(ctx, r.sp)
}

// News loads the berita dataset.
func (r *Repository) News(ctx context.Context) (*repository.LoadedDataset, error) {
	return r.load(ctx, r.news)
}

// LoadAll fetches both datasets concurrently. Either failing fails the
// render as a unit; there is no partial result.
func (r *Repository) LoadAll(ctx context.Context) (sp, news *repository.LoadedDataset, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sp, err = r.load(gctx, r.sp)
		return err
	})
	g.Go(func() error {
		var err error
		news, err = r.load(gctx, r.news)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sp, news, nil
}

// Ping checks reachability of the gviz endpoint for health probes. Any
// HTTP response counts as reachable; only transport failures are errors.
func (r *Repository) Ping(ctx context.Context) error {
	u := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:csv&sheet=%s",
		r.cfg.BaseURL, r.cfg.SheetID, url.QueryEscape(r.sp.Sheet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := r.cfg.Client.Do(req)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
	return resp.Body.Close()
}

// BreakerState reports the fetch circuit breaker state for health checks.
func (r *Repository) BreakerState() string {
	return r.breaker.State().String()
}

// load fetches one sheet through the limiter, retry, and circuit breaker,
// then parses and schema-resolves it.
func (r *Repository) load(ctx context.Context, spec DatasetSpec) (*repository.LoadedDataset, error) {
	logger := logging.FromContext(ctx)

	ctx, span := tracing.GetTracer().Start(ctx, "sheets.load",
		oteltrace.WithAttributes(attribute.String("sheet", spec.Sheet)))
	defer span.End()

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	var records [][]string

	retryErr := retry.WithBackoff(ctx, r.retryCfg, func() error {
		cbResult, err := r.breaker.Execute(func() (interface{}, error) {
			return r.doFetch(ctx, spec.Sheet)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				logger.Warn("sheet fetch circuit breaker open, request rejected",
					slog.String("sheet", spec.Sheet),
					slog.String("state", r.breaker.State().String()))
			}
			return err
		}
		records = cbResult.([][]string)
		return nil
	})
	if retryErr != nil {
		span.RecordError(retryErr)
		metrics.RecordDatasetFetchError(spec.Sheet)
		return nil, fmt.Errorf("load sheet %q: %w", spec.Sheet, retryErr)
	}

	if len(records) == 0 {
		logger.Warn("sheet is empty", slog.String("sheet", spec.Sheet))
	}

	loaded, err := assemble(spec, records)
	if err != nil {
		span.RecordError(err)
		metrics.RecordDatasetFetchError(spec.Sheet)
		return nil, fmt.Errorf("load sheet %q: %w", spec.Sheet, err)
	}

	metrics.RecordDatasetFetch(spec.Sheet, loaded.Dataset.Len(), time.Since(start))
	return loaded, nil
}

// doFetch performs one HTTP attempt against the gviz CSV endpoint.
func (r *Repository) doFetch(ctx context.Context, sheet string) ([][]string, error) {
	u := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:csv&sheet=%s",
		r.cfg.BaseURL, r.cfg.SheetID, url.QueryEscape(sheet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := r.cfg.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logging.FromContext(ctx).Warn("failed to close response body", slog.Any("error", cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused across retries.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // gviz pads rows unevenly
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return records, nil
}

// assemble turns raw CSV records into a dataset with a resolved schema.
// A completely empty sheet is a zero-row dataset with an absent schema:
// downstream operations degrade to "no data". A sheet that does have a
// header but lacks a declared column is a configuration error and fails
// the load.
func assemble(spec DatasetSpec, records [][]string) (*repository.LoadedDataset, error) {
	if len(records) == 0 {
		return &repository.LoadedDataset{
			Dataset: entity.NewDataset(spec.Sheet, nil, nil),
			Schema:  &entity.ResolvedSchema{},
		}, nil
	}

	ds := entity.NewDataset(spec.Sheet, records[0], records[1:])
	resolved, err := spec.Schema.Resolve(ds.Columns)
	if err != nil {
		return nil, err
	}
	return &repository.LoadedDataset{Dataset: ds, Schema: resolved}, nil
}
