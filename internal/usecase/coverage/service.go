// Package coverage joins the news dataset against the press-release dataset
// by exact title reference and derives coverage metrics: match counts, the
// effectiveness ranking of press releases, and response-time deltas.
// Matching is exact string equality after trimming; no fuzzy or
// case-insensitive matching.
package coverage

import (
	"sort"
	"strings"

	"github.com/iboet2004/db-rilis/internal/domain/entity"
	"github.com/iboet2004/db-rilis/internal/pkg/datefmt"
	"github.com/iboet2004/db-rilis/internal/utils/text"
)

const (
	// MaxResponseDays caps the response-time window. Deltas beyond it, and
	// negative deltas (news predating its release), are discarded as
	// outliers, not reported as errors.
	MaxResponseDays = 30

	// displayTitleRunes bounds press-release titles in ranked output.
	displayTitleRunes = 50
)

// TitleCount is one row of the effectiveness ranking: a press-release title
// and the number of news items referencing it.
type TitleCount struct {
	Title        string
	DisplayTitle string
	Count        int
}

// ResponseStats holds the filtered response-time deltas in whole days and
// their arithmetic mean. Mean is zero when no delta survived filtering.
type ResponseStats struct {
	Days []int
	Mean float64
}

// Service computes coverage metrics between the two datasets.
type Service struct{}

// titleSet builds the press-release title list, trimmed, deduplicated
// first-occurrence-wins, in dataset order. Duplicate titles collapse into
// one ranking row; see ResponseTimes for the all-matches side of that
// decision. Empty titles are excluded, they can never be referenced.
func titleSet(pr *entity.Dataset, title entity.ResolvedField) []string {
	if !title.Present() {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, cell := range pr.Column(title.Column) {
		t := strings.TrimSpace(cell)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// MatchCount counts news rows whose reference equals any press-release
// title. No matches is a zero count, not an error.
func (Service) MatchCount(news *entity.Dataset, ref entity.ResolvedField, pr *entity.Dataset, title entity.ResolvedField) int {
	titles := titleSet(pr, title)
	if len(titles) == 0 || !ref.Present() {
		return 0
	}
	known := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		known[t] = struct{}{}
	}

	n := 0
	for _, cell := range news.Column(ref.Column) {
		if _, ok := known[strings.TrimSpace(cell)]; ok {
			n++
		}
	}
	return n
}

// Effectiveness ranks press-release titles by how many news rows reference
// them, descending, ties in dataset order, truncated to topN entries.
// Titles with zero coverage stay in the ranking; they rank last.
func (Service) Effectiveness(news *entity.Dataset, ref entity.ResolvedField, pr *entity.Dataset, title entity.ResolvedField, topN int) []TitleCount {
	titles := titleSet(pr, title)
	if len(titles) == 0 {
		return nil
	}

	counts := make(map[string]int, len(titles))
	if ref.Present() {
		known := make(map[string]struct{}, len(titles))
		for _, t := range titles {
			known[t] = struct{}{}
		}
		for _, cell := range news.Column(ref.Column) {
			t := strings.TrimSpace(cell)
			if _, ok := known[t]; ok {
				counts[t]++
			}
		}
	}

	out := make([]TitleCount, 0, len(titles))
	for _, t := range titles {
		out = append(out, TitleCount{
			Title:        t,
			DisplayTitle: text.Truncate(t, displayTitleRunes),
			Count:        counts[t],
		})
	}
	sortByCountDesc(out)

	if topN > 0 && topN < len(out) {
		out = out[:topN]
	}
	return out
}

// sortByCountDesc orders the ranking by coverage count descending; the
// stable sort keeps dataset order for ties.
func sortByCountDesc(list []TitleCount) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Count > list[j].Count
	})
}

// ResponseTimes computes news.date - pr.date in whole days for every
// matched (news, press release) pair with both dates parseable. A news row
// matches every press-release row sharing its referenced title, so
// duplicate-titled releases each contribute a pair. Only deltas within
// [0, MaxResponseDays] survive.
func (Service) ResponseTimes(
	news *entity.Dataset, ref, newsDate entity.ResolvedField,
	pr *entity.Dataset, title, prDate entity.ResolvedField,
) ResponseStats {
	if news.Len() == 0 || pr.Len() == 0 ||
		!ref.Present() || !newsDate.Present() || !title.Present() || !prDate.Present() {
		return ResponseStats{}
	}

	// Title -> release dates, one entry per PR row with a parseable date.
	releaseDates := make(map[string][]int64)
	for _, row := range pr.Rows {
		t := strings.TrimSpace(row.Get(title.Column))
		if t == "" {
			continue
		}
		when, ok := datefmt.Parse(row.Get(prDate.Column))
		if !ok {
			continue
		}
		releaseDates[t] = append(releaseDates[t], datefmt.DayFloor(when).Unix())
	}

	var stats ResponseStats
	sum := 0
	for _, row := range news.Rows {
		dates, ok := releaseDates[strings.TrimSpace(row.Get(ref.Column))]
		if !ok {
			continue
		}
		when, ok := datefmt.Parse(row.Get(newsDate.Column))
		if !ok {
			continue
		}
		newsDay := datefmt.DayFloor(when).Unix()

		for _, prDay := range dates {
			days := int((newsDay - prDay) / (24 * 60 * 60))
			if days < 0 || days > MaxResponseDays {
				continue
			}
			stats.Days = append(stats.Days, days)
			sum += days
		}
	}

	if len(stats.Days) > 0 {
		stats.Mean = float64(sum) / float64(len(stats.Days))
	}
	return stats
}
