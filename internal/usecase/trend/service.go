// Package trend builds temporal trend series from dated dataset rows.
// Rows are grouped into calendar buckets (week or month), entity mentions
// are counted per bucket, and the emitted series is dense: every bucket
// between the earliest and latest valid date appears, zero-filled where
// nothing was mentioned, so line charts render without gaps.
package trend

import (
	"time"

	"github.com/iboet2004/db-rilis/internal/domain/entity"
	"github.com/iboet2004/db-rilis/internal/pkg/datefmt"
	"github.com/iboet2004/db-rilis/internal/usecase/stats"
)

// Point is one cell of the trend matrix: mentions of an entity within a
// time bucket. Bucket is the start of the containing week or month.
type Point struct {
	Entity string
	Bucket time.Time
	Count  int
}

// VolumePoint counts all rows whose date falls in a bucket, regardless of
// entity. Feeds the publication timeline panel.
type VolumePoint struct {
	Bucket time.Time
	Count  int
}

// Service builds trend series from a dataset.
type Service struct{}

// Build produces the dense (entity x bucket) trend matrix for the topN most
// mentioned entities. Rows with unparsable dates are excluded from the trend
// only; an input with no valid dates yields an empty series, which callers
// surface as "no data". Points are emitted entity-major in rank order, with
// buckets ascending inside each entity.
func (Service) Build(ds *entity.Dataset, entities, date entity.ResolvedField, g Granularity, topN int) []Point {
	if ds.Len() == 0 || !entities.Present() || !date.Present() {
		return nil
	}

	totals := stats.NewCounts()
	perBucket := make(map[string]map[time.Time]int)
	var minBucket, maxBucket time.Time
	haveDates := false

	for _, row := range ds.Rows {
		when, ok := datefmt.Parse(row.Get(date.Column))
		if !ok {
			continue
		}
		bucket := g.BucketOf(when)
		if !haveDates || bucket.Before(minBucket) {
			minBucket = bucket
		}
		if !haveDates || bucket.After(maxBucket) {
			maxBucket = bucket
		}
		haveDates = true

		for _, token := range stats.Extract(row.Get(entities.Column), entities.Separator) {
			totals.Add(token)
			if perBucket[token] == nil {
				perBucket[token] = make(map[time.Time]int)
			}
			perBucket[token][bucket]++
		}
	}

	if !haveDates {
		return nil
	}

	buckets := g.Range(minBucket, maxBucket)
	kept := totals.Top(topN)

	out := make([]Point, 0, len(kept)*len(buckets))
	for _, ec := range kept {
		for _, b := range buckets {
			out = append(out, Point{
				Entity: ec.Entity,
				Bucket: b,
				Count:  perBucket[ec.Entity][b],
			})
		}
	}
	return out
}

// Volume counts rows per bucket over the same dense range rules as Build.
func (Service) Volume(ds *entity.Dataset, date entity.ResolvedField, g Granularity) []VolumePoint {
	if ds.Len() == 0 || !date.Present() {
		return nil
	}

	perBucket := make(map[time.Time]int)
	var minBucket, maxBucket time.Time
	haveDates := false

	for _, row := range ds.Rows {
		when, ok := datefmt.Parse(row.Get(date.Column))
		if !ok {
			continue
		}
		bucket := g.BucketOf(when)
		if !haveDates || bucket.Before(minBucket) {
			minBucket = bucket
		}
		if !haveDates || bucket.After(maxBucket) {
			maxBucket = bucket
		}
		haveDates = true
		perBucket[bucket]++
	}

	if !haveDates {
		return nil
	}

	buckets := g.Range(minBucket, maxBucket)
	out := make([]VolumePoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, VolumePoint{Bucket: b, Count: perBucket[b]})
	}
	return out
}
