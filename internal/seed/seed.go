package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/studentdesk/internal/app/models"
	appRepos "github.com/yigit/studentdesk/internal/app/repositories"
	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var sampleResources []byte

type sampleResource struct {
	Title      string  `yaml:"title"`
	Subject    string  `yaml:"subject"`
	Type       string  `yaml:"type"`
	Branch     string  `yaml:"branch"`
	Year       string  `yaml:"year"`
	Semester   string  `yaml:"semester"`
	ExamType   string  `yaml:"examType"`
	Regulation string  `yaml:"regulation"`
	FileURL    string  `yaml:"fileUrl"`
	Size       string  `yaml:"size"`
	Downloads  int64   `yaml:"downloads"`
	Uploader   string  `yaml:"uploader"`
	Rating     float64 `yaml:"rating"`
}

// SampleResources decodes the bundled sample catalog
func SampleResources() ([]appModels.Resource, error) {
	var samples []sampleResource
	if err := yaml.Unmarshal(sampleResources, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse sample resources: %w", err)
	}

	resources := make([]appModels.Resource, 0, len(samples))
	for _, s := range samples {
		resources = append(resources, appModels.Resource{
			Title:      s.Title,
			Subject:    s.Subject,
			Type:       appModels.ResourceType(s.Type),
			Branch:     s.Branch,
			Year:       s.Year,
			Semester:   s.Semester,
			ExamType:   s.ExamType,
			Regulation: s.Regulation,
			FileURL:    s.FileURL,
			Size:       s.Size,
			Downloads:  s.Downloads,
			Uploader:   s.Uploader,
			Rating:     s.Rating,
		})
	}
	return resources, nil
}

// CreateDefaultData loads the sample catalog when the store holds no resources.
// It returns the number of inserted resources.
func CreateDefaultData(ctx context.Context, store appRepos.ResourceStore, lgr zerolog.Logger) (int, error) {
	total, err := store.Count(ctx, appModels.ResourcePredicate{})
	if err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	if total > 0 {
		lgr.Info().Int64("resources", total).Msg("Catalog already populated, skipping seed")
		return 0, nil
	}

	resources, err := SampleResources()
	if err != nil {
		return 0, err
	}

	inserted := 0
	var finalErr error // collect errors without stopping the process
	for i := range resources {
		if err := store.Create(ctx, &resources[i]); err != nil {
			lgr.Error().Err(err).Str("title", resources[i].Title).Msg("Error creating sample resource")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		inserted++
	}

	lgr.Info().Int("inserted", inserted).Msg("Sample catalog seeded")
	return inserted, finalErr
}
