package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

// MemoryResourceRepository keeps resources in process. It backs the
// "memory" database driver and evaluates predicates with ResourcePredicate.Matches.
type MemoryResourceRepository struct {
	mu        sync.RWMutex
	resources map[string]models.Resource
	now       func() time.Time
}

// NewMemoryResourceRepository creates an empty in-memory resource store
func NewMemoryResourceRepository() *MemoryResourceRepository {
	return &MemoryResourceRepository{
		resources: make(map[string]models.Resource),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a copy of resource, assigning its id and timestamps
func (r *MemoryResourceRepository) Create(_ context.Context, resource *models.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	resource.ID = uuid.New().String()
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = r.now()
	}
	resource.UpdatedAt = resource.CreatedAt
	r.resources[resource.ID] = *resource
	return nil
}

// GetByID returns a copy of the stored resource
func (r *MemoryResourceRepository) GetByID(_ context.Context, id string) (*models.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resource, ok := r.resources[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return &resource, nil
}

// Count returns the number of resources matching pred
func (r *MemoryResourceRepository) Count(_ context.Context, pred models.ResourcePredicate) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, resource := range r.resources {
		if pred.Matches(&resource) {
			total++
		}
	}
	return total, nil
}

// Find returns one window of the matching resources in sort order
func (r *MemoryResourceRepository) Find(_ context.Context, pred models.ResourcePredicate, sortSpec models.SortSpec, offset, limit uint64) ([]models.Resource, error) {
	r.mu.RLock()
	matched := make([]models.Resource, 0)
	for _, resource := range r.resources {
		if pred.Matches(&resource) {
			matched = append(matched, resource)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		c := compareResources(&matched[i], &matched[j], sortSpec.Field)
		if c == 0 {
			c = strings.Compare(matched[i].ID, matched[j].ID)
		}
		if sortSpec.Descending {
			return c > 0
		}
		return c < 0
	})

	if offset >= uint64(len(matched)) {
		return []models.Resource{}, nil
	}
	end := offset + limit
	if end > uint64(len(matched)) {
		end = uint64(len(matched))
	}
	return matched[offset:end], nil
}

func compareResources(a, b *models.Resource, field models.SortField) int {
	switch field {
	case models.SortByDownloads:
		switch {
		case a.Downloads < b.Downloads:
			return -1
		case a.Downloads > b.Downloads:
			return 1
		}
		return 0
	case models.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// IncrementDownloads bumps the counter under the write lock
func (r *MemoryResourceRepository) IncrementDownloads(_ context.Context, id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resource, ok := r.resources[id]
	if !ok || resource.FileURL == "" {
		return "", apperrors.ErrResourceNotFound
	}
	resource.Downloads++
	resource.UpdatedAt = r.now()
	r.resources[id] = resource
	return resource.FileURL, nil
}

// Delete removes a resource record
func (r *MemoryResourceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resources[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(r.resources, id)
	return nil
}
