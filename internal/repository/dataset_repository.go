package repository

import (
	"context"

	"github.com/iboet2004/db-rilis/internal/domain/entity"
)

// LoadedDataset pairs a fetched dataset with its resolved schema.
// Schema resolution happens exactly once, at load time; downstream
// operations never index columns positionally.
type LoadedDataset struct {
	Dataset *entity.Dataset
	Schema  *entity.ResolvedSchema
}

// DatasetRepository fetches the dashboard's tabular datasets from the
// spreadsheet source. Implementations must represent an empty sheet as a
// zero-row dataset, not an error; transport failure is an error and is
// fatal for the render that requested it.
type DatasetRepository interface {
	// PressReleases loads the press-release dataset (siaran pers).
	PressReleases(ctx context.Context) (*LoadedDataset, error)

	// News loads the news-coverage dataset (berita).
	News(ctx context.Context) (*LoadedDataset, error)

	// LoadAll loads both datasets for a full dashboard render.
	// Either failing fails the render as a unit.
	LoadAll(ctx context.Context) (sp, news *LoadedDataset, err error)
}
