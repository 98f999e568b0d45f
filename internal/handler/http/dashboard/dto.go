package dashboard

// OverviewDTO carries the scorecard figures.
type OverviewDTO struct {
	PressReleases   int     `json:"press_releases"`
	NewsItems       int     `json:"news_items"`
	CoverageMatches int     `json:"coverage_matches"`
	CoverageRatio   float64 `json:"coverage_ratio"`
}

// EntityCountDTO is one ranked entity with its mention count.
type EntityCountDTO struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
}

// TrendPointDTO is one cell of the dense entity/bucket matrix.
type TrendPointDTO struct {
	Entity string `json:"entity"`
	Bucket string `json:"bucket"` // bucket start date, YYYY-MM-DD
	Count  int    `json:"count"`
}

// VolumePointDTO is one bucket of the overall volume series.
type VolumePointDTO struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// EffectivenessDTO is one press release ranked by news pickup.
type EffectivenessDTO struct {
	Title        string `json:"title"`
	DisplayTitle string `json:"display_title"`
	Count        int    `json:"count"`
}

// ResponseTimesDTO summarizes release-to-coverage delays.
type ResponseTimesDTO struct {
	Days []int   `json:"days"`
	Mean float64 `json:"mean"`
}
