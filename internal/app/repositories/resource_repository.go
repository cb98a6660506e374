package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

var resourceColumns = []string{
	"id::text", "title", "subject", "type", "branch", "year", "semester",
	"exam_type", "regulation", "file_url", "size", "downloads", "uploader",
	"rating", "created_at", "updated_at",
}

// ResourceRepository handles resource database operations
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanResource(row pgx.Row) (*models.Resource, error) {
	var r models.Resource
	var resourceType string
	err := row.Scan(
		&r.ID, &r.Title, &r.Subject, &resourceType, &r.Branch, &r.Year, &r.Semester,
		&r.ExamType, &r.Regulation, &r.FileURL, &r.Size, &r.Downloads, &r.Uploader,
		&r.Rating, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Type = models.ResourceType(resourceType)
	return &r, nil
}

// Create inserts a resource, assigning its id and timestamps
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	resource.ID = uuid.New().String()
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = time.Now().UTC()
	}
	resource.UpdatedAt = resource.CreatedAt

	sql, args, err := r.sb.Insert("resources").
		Columns("id", "title", "subject", "type", "branch", "year", "semester",
			"exam_type", "regulation", "file_url", "size", "downloads", "uploader",
			"rating", "created_at", "updated_at").
		Values(resource.ID, resource.Title, resource.Subject, string(resource.Type), resource.Branch,
			resource.Year, resource.Semester, resource.ExamType, resource.Regulation, resource.FileURL,
			resource.Size, resource.Downloads, resource.Uploader, resource.Rating,
			resource.CreatedAt, resource.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create resource SQL")
		return fmt.Errorf("failed to build create resource query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("title", resource.Title).Msg("Error executing create resource query")
		return fmt.Errorf("error creating resource: %w", err)
	}

	logger.Info().Str("resourceID", resource.ID).Str("type", string(resource.Type)).Msg("Resource created successfully")
	return nil
}

// GetByID retrieves a resource by its id
func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrResourceNotFound
	}

	sql, args, err := r.sb.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get resource by ID SQL")
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	resource, err := scanResource(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("resourceID", id).Msg("Error scanning resource row")
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}
	return resource, nil
}

// Count returns the number of resources matching pred
func (r *ResourceRepository) Count(ctx context.Context, pred models.ResourcePredicate) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("resources").
		Where(predicateToSqlizer(pred)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count resources SQL")
		return 0, fmt.Errorf("failed to build count resources query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count resources query")
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return total, nil
}

// Find returns one window of the resources matching pred in sort order
func (r *ResourceRepository) Find(ctx context.Context, pred models.ResourcePredicate, sort models.SortSpec, offset, limit uint64) ([]models.Resource, error) {
	sql, args, err := r.sb.Select(resourceColumns...).
		From("resources").
		Where(predicateToSqlizer(pred)).
		OrderBy(orderByClauses(sort)...).
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find resources SQL")
		return nil, fmt.Errorf("failed to build find resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find resources query")
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	resources := make([]models.Resource, 0, limit)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning resource row")
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, *resource)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating resource rows")
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}

	logger.Debug().Uint64("offset", offset).Uint64("limit", limit).Int("returnedItems", len(resources)).Msg("Fetched resources")
	return resources, nil
}

// IncrementDownloads bumps the download counter in a single statement so
// concurrent downloads never lose an increment.
func (r *ResourceRepository) IncrementDownloads(ctx context.Context, id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.ErrResourceNotFound
	}

	sql, args, err := r.sb.Update("resources").
		Set("downloads", squirrel.Expr("downloads + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"file_url": ""}).
		Suffix("RETURNING file_url").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building increment downloads SQL")
		return "", fmt.Errorf("failed to build increment downloads query: %w", err)
	}

	var fileURL string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&fileURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("resourceID", id).Msg("Error incrementing downloads")
		return "", fmt.Errorf("failed to increment downloads: %w", err)
	}
	return fileURL, nil
}

// Delete removes a resource record
func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrResourceNotFound
	}

	sql, args, err := r.sb.Delete("resources").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete resource SQL")
		return fmt.Errorf("failed to build delete resource query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("resourceID", id).Msg("Error executing delete resource query")
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	logger.Info().Str("resourceID", id).Msg("Resource deleted successfully")
	return nil
}
