package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/app/repositories"
	"github.com/yigit/studentdesk/internal/pkg/helpers"
)

// Landing page section sizes
const (
	HomePapersLimit = 6
	HomeNotesLimit  = 4
	HomeRecentLimit = 5
)

// CatalogPage is one pagination window of a catalog query
type CatalogPage struct {
	Items      []models.Resource
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// HomeView is the landing page view model
type HomeView struct {
	Papers []models.Resource
	Notes  []models.Resource
	Recent []models.Resource
}

// CatalogService defines catalog read operations
type CatalogService interface {
	ListResources(ctx context.Context, pred models.ResourcePredicate, sort models.SortSpec, page int) (*CatalogPage, error)
	Home(ctx context.Context, filter models.ResourceFilter) (*HomeView, error)
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	resourceRepo repositories.ResourceStore
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(resourceRepo repositories.ResourceStore) CatalogService {
	return &catalogServiceImpl{resourceRepo: resourceRepo}
}

// ListResources counts and then fetches one page of matching resources.
// The two reads are not isolated from each other: a write landing between
// them can leave Total out of step with Items.
func (s *catalogServiceImpl) ListResources(ctx context.Context, pred models.ResourcePredicate, sort models.SortSpec, page int) (*CatalogPage, error) {
	page = helpers.NormalizePage(page)
	offset, limit := helpers.CalculateOffsetLimit(page, helpers.CatalogPageSize)

	total, err := s.resourceRepo.Count(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("error counting resources: %w", err)
	}

	totalPages := helpers.TotalPages(total, helpers.CatalogPageSize)

	// Pages past the end are empty without asking the store
	items := []models.Resource{}
	if total > 0 && page <= totalPages {
		items, err = s.resourceRepo.Find(ctx, pred, sort, offset, limit)
		if err != nil {
			return nil, fmt.Errorf("error listing resources: %w", err)
		}
	}

	return &CatalogPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   helpers.CatalogPageSize,
		TotalPages: totalPages,
	}, nil
}

// Home runs the three landing page reads concurrently. The first failure
// cancels the others and fails the whole view. The recent feed ignores the
// filter on purpose; it is a global recency list.
func (s *catalogServiceImpl) Home(ctx context.Context, filter models.ResourceFilter) (*HomeView, error) {
	pred := models.BuildResourcePredicate(filter)
	var view HomeView

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		papers, err := s.resourceRepo.Find(gctx, pred.WithType(models.ResourceTypePaper), models.DefaultSort, 0, HomePapersLimit)
		if err != nil {
			return fmt.Errorf("error loading papers: %w", err)
		}
		view.Papers = papers
		return nil
	})
	g.Go(func() error {
		notes, err := s.resourceRepo.Find(gctx, pred.WithType(models.ResourceTypeNote), models.MostDownloaded, 0, HomeNotesLimit)
		if err != nil {
			return fmt.Errorf("error loading notes: %w", err)
		}
		view.Notes = notes
		return nil
	})
	g.Go(func() error {
		recent, err := s.resourceRepo.Find(gctx, models.ResourcePredicate{}, models.DefaultSort, 0, HomeRecentLimit)
		if err != nil {
			return fmt.Errorf("error loading recent resources: %w", err)
		}
		view.Recent = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}
