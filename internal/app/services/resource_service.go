package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/app/repositories"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/filestorage"
	"github.com/yigit/studentdesk/internal/pkg/logger"
	"github.com/yigit/studentdesk/internal/pkg/metrics"
	"github.com/yigit/studentdesk/internal/pkg/validation"
)

// ResourceService defines resource lifecycle operations
type ResourceService interface {
	CreateResource(ctx context.Context, req *dto.CreateResourceRequest, file *multipart.FileHeader) (*models.Resource, error)
	DeleteResource(ctx context.Context, id string) error
	RegisterDownload(ctx context.Context, id string) (string, error)
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	resourceRepo repositories.ResourceStore
	fileStorage  filestorage.FileStorage
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceRepo repositories.ResourceStore, fileStorage filestorage.FileStorage) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
		fileStorage:  fileStorage,
	}
}

// buildResource validates the upload form and maps it onto a Resource
func buildResource(req *dto.CreateResourceRequest) (*models.Resource, error) {
	if !validation.AllPresent(req.Title, req.Type) {
		return nil, apperrors.NewValidationError("Title and Type are required.")
	}
	resourceType := models.ResourceType(strings.TrimSpace(req.Type))
	if !resourceType.IsValid() {
		return nil, apperrors.NewValidationError("Type must be either paper or note.")
	}

	var rating float64
	if raw := strings.TrimSpace(req.Rating); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || !validation.NewNumericValidation(parsed).WithMin(models.MinRating).WithMax(models.MaxRating).Validate() {
			return nil, apperrors.NewValidationError("Rating must be a number between 0 and 5.")
		}
		rating = parsed
	}

	return &models.Resource{
		Title:      strings.TrimSpace(req.Title),
		Subject:    req.Subject,
		Type:       resourceType,
		Branch:     req.Branch,
		Year:       req.Year,
		Semester:   req.Semester,
		ExamType:   req.ExamType,
		Regulation: req.Regulation,
		FileURL:    strings.TrimSpace(req.FileURL),
		Size:       req.Size,
		Uploader:   req.Uploader,
		Rating:     rating,
	}, nil
}

// CreateResource validates the form, stores the PDF if one was sent and then
// creates the record. Validation happens before storage so a rejected upload
// never leaves a file behind.
func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *dto.CreateResourceRequest, file *multipart.FileHeader) (*models.Resource, error) {
	resource, err := buildResource(req)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	storedURL := ""
	if file != nil {
		storedURL, err = s.fileStorage.StoreUpload(ctx, file)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnsupportedMediaType) {
				metrics.UploadsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			} else {
				metrics.UploadsTotal.WithLabelValues(metrics.OutcomeError).Inc()
			}
			return nil, err
		}
		// A stored file takes precedence over a pre-hosted URL
		resource.FileURL = storedURL
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		if storedURL != "" {
			if rmErr := s.fileStorage.Remove(ctx, storedURL); rmErr != nil {
				logger.Error().Err(rmErr).Str("url", storedURL).Msg("Failed to clean up stored file after create failure")
			}
		}
		return nil, fmt.Errorf("error creating resource: %w", err)
	}

	metrics.UploadsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return resource, nil
}

// DeleteResource removes the backing file first and the record second.
// A crash between the two phases leaves a record pointing at a missing file.
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id string) error {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			metrics.DeletionsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
			return apperrors.NewResourceNotFoundError("Resource not found")
		}
		metrics.DeletionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return fmt.Errorf("error getting resource: %w", err)
	}

	if resource.FileURL != "" && s.fileStorage.IsLocal(resource.FileURL) {
		if err := s.fileStorage.Remove(ctx, resource.FileURL); err != nil {
			logger.Warn().Err(err).Str("resourceID", id).Str("url", resource.FileURL).Msg("Failed to remove backing file, deleting record anyway")
		}
	}

	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			metrics.DeletionsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
			return apperrors.NewResourceNotFoundError("Resource not found")
		}
		metrics.DeletionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return fmt.Errorf("error deleting resource: %w", err)
	}
	metrics.DeletionsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return nil
}

// RegisterDownload increments the download counter and returns where to redirect
func (s *resourceServiceImpl) RegisterDownload(ctx context.Context, id string) (string, error) {
	fileURL, err := s.resourceRepo.IncrementDownloads(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			metrics.DownloadsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
			return "", apperrors.NewResourceNotFoundError("File not found")
		}
		metrics.DownloadsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", fmt.Errorf("error registering download: %w", err)
	}
	metrics.DownloadsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return fileURL, nil
}
