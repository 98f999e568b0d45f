// Package main provides a CLI that renders the dashboard once and prints
// it to stdout.
// Usage: db-rilis-report [--granularity week|month] [--top N] [--output json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iboet2004/db-rilis/internal/config"
	"github.com/iboet2004/db-rilis/internal/infra/sheets"
	"github.com/iboet2004/db-rilis/internal/observability/logging"
	"github.com/iboet2004/db-rilis/internal/usecase/coverage"
	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
	"github.com/iboet2004/db-rilis/internal/usecase/stats"
	"github.com/iboet2004/db-rilis/internal/usecase/trend"
)

// Report is the full dashboard rendered as one document.
type Report struct {
	GeneratedAt   string                 `json:"generated_at"`
	Overview      dashUC.Overview        `json:"overview"`
	Sources       []stats.EntityCount    `json:"sources"`
	Media         []stats.EntityCount    `json:"media"`
	Locations     []string               `json:"locations"`
	Volume        []trend.VolumePoint    `json:"volume"`
	Effectiveness []coverage.TitleCount  `json:"effectiveness"`
	ResponseTimes coverage.ResponseStats `json:"response_times"`
}

func main() {
	var (
		granularityFlag string
		topN            int
		outputFormat    string
	)

	flag.StringVar(&granularityFlag, "granularity", "week", "Bucket granularity: week or month")
	flag.IntVar(&topN, "top", 10, "Ranked panel size (0 = unbounded)")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	_ = godotenv.Load()

	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	g, err := trend.ParseGranularity(granularityFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	datasets, err := config.LoadDatasets(cfg.SchemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	repo := sheets.NewRepository(sheets.Config{
		SheetID: cfg.SheetID,
		BaseURL: cfg.BaseURL,
		Rate:    cfg.FetchRate,
		Burst:   cfg.FetchBurst,
		Client:  &http.Client{Timeout: cfg.FetchTimeout},
	},
		sheets.DatasetSpec{Sheet: datasets.PressReleases.Sheet, Schema: datasets.PressReleases.Schema},
		sheets.DatasetSpec{Sheet: datasets.News.Sheet, Schema: datasets.News.Schema},
	)
	svc := dashUC.Service{Repo: repo}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := buildReport(ctx, svc, g, topN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		printText(report)
	}
}

func buildReport(ctx context.Context, svc dashUC.Service, g trend.Granularity, topN int) (*Report, error) {
	overview, err := svc.Overview(ctx)
	if err != nil {
		return nil, err
	}
	sources, err := svc.Sources(ctx, topN)
	if err != nil {
		return nil, err
	}
	media, err := svc.Media(ctx, topN)
	if err != nil {
		return nil, err
	}
	locations, err := svc.Locations(ctx)
	if err != nil {
		return nil, err
	}
	volume, err := svc.Volume(ctx, dashUC.DatasetPressReleases, g)
	if err != nil {
		return nil, err
	}
	effectiveness, err := svc.Effectiveness(ctx, topN)
	if err != nil {
		return nil, err
	}
	responseTimes, err := svc.ResponseTimes(ctx)
	if err != nil {
		return nil, err
	}

	return &Report{
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Overview:      *overview,
		Sources:       sources,
		Media:         media,
		Locations:     locations,
		Volume:        volume,
		Effectiveness: effectiveness,
		ResponseTimes: responseTimes,
	}, nil
}

func printText(r *Report) {
	fmt.Printf("Laporan dashboard (%s)\n", r.GeneratedAt)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("Siaran pers : %d\n", r.Overview.PressReleases)
	fmt.Printf("Berita      : %d\n", r.Overview.NewsItems)
	fmt.Printf("Tercakup    : %d (%.1f%%)\n",
		r.Overview.CoverageMatches, r.Overview.CoverageRatio*100)

	fmt.Println("\nNarasumber teratas:")
	for _, e := range r.Sources {
		fmt.Printf("  %4d  %s\n", e.Count, e.Entity)
	}

	fmt.Println("\nMedia teratas:")
	for _, e := range r.Media {
		fmt.Printf("  %4d  %s\n", e.Count, e.Entity)
	}

	fmt.Println("\nLokasi:")
	for _, loc := range r.Locations {
		fmt.Printf("  - %s\n", loc)
	}

	fmt.Println("\nVolume siaran pers:")
	for _, p := range r.Volume {
		fmt.Printf("  %s  %d\n", p.Bucket.Format("2006-01-02"), p.Count)
	}

	fmt.Println("\nEfektivitas siaran pers:")
	for _, tc := range r.Effectiveness {
		fmt.Printf("  %4d  %s\n", tc.Count, tc.DisplayTitle)
	}

	fmt.Println("\nWaktu respons pemberitaan:")
	fmt.Printf("  pasangan: %d, rata-rata: %.1f hari\n",
		len(r.ResponseTimes.Days), r.ResponseTimes.Mean)
}
