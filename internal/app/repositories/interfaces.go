package repositories

import (
	"context"

	"github.com/yigit/studentdesk/internal/app/models"
)

// ResourceStore is the single source of truth for catalog records.
// Implementations must return apperrors.ErrResourceNotFound (possibly wrapped)
// for unknown ids.
type ResourceStore interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	Count(ctx context.Context, pred models.ResourcePredicate) (int64, error)
	Find(ctx context.Context, pred models.ResourcePredicate, sort models.SortSpec, offset, limit uint64) ([]models.Resource, error)
	// IncrementDownloads atomically bumps the counter of a resource that has a
	// delivery location and returns that location.
	IncrementDownloads(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

// StudentStore persists student identities
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByRollNo(ctx context.Context, rollNo string) (*models.Student, error)
}
