package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iboet2004/db-rilis/internal/domain/entity"
)

// DatasetConfig declares one dataset: the sheet it lives on and the schema
// binding its logical fields to columns.
type DatasetConfig struct {
	Sheet  string        `yaml:"sheet"`
	Schema entity.Schema `yaml:"schema"`
}

// Datasets declares the two dashboard datasets.
type Datasets struct {
	PressReleases DatasetConfig `yaml:"press_releases"`
	News          DatasetConfig `yaml:"news"`
}

// LoadDatasets loads dataset declarations from a YAML file.
// The path is provided by trusted configuration, not user input.
func LoadDatasets(path string) (*Datasets, error) {
	// #nosec G304 -- path comes from startup configuration, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset schema file: %w", err)
	}

	var ds Datasets
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset schema file: %w", err)
	}

	if err := validateDatasets(&ds); err != nil {
		return nil, fmt.Errorf("dataset schema validation failed: %w", err)
	}
	return &ds, nil
}

// validateDatasets enforces the minimum schema each pipeline needs:
// press releases must be joinable (title) and aggregatable (entities, date);
// news must reference releases and carry its own entities and date.
func validateDatasets(ds *Datasets) error {
	if ds.PressReleases.Sheet == "" {
		return &entity.ValidationError{Field: "press_releases.sheet", Message: "is required"}
	}
	if ds.News.Sheet == "" {
		return &entity.ValidationError{Field: "news.sheet", Message: "is required"}
	}

	required := []struct {
		dataset string
		field   string
		spec    *entity.FieldSpec
	}{
		{"press_releases", "title", ds.PressReleases.Schema.Title},
		{"press_releases", "entities", ds.PressReleases.Schema.Entities},
		{"press_releases", "date", ds.PressReleases.Schema.Date},
		{"news", "reference", ds.News.Schema.Reference},
		{"news", "entities", ds.News.Schema.Entities},
		{"news", "date", ds.News.Schema.Date},
	}
	for _, r := range required {
		field := r.dataset + ".schema." + r.field
		if r.spec == nil {
			return &entity.ValidationError{Field: field, Message: "is required"}
		}
		if r.spec.Column == "" && r.spec.Index == nil {
			return &entity.ValidationError{Field: field, Message: "declares neither column nor index"}
		}
	}
	return nil
}
