package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/app/repositories"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/auth"
	"github.com/yigit/studentdesk/internal/pkg/validation"
)

// StudentService defines student account operations
type StudentService interface {
	Register(ctx context.Context, req *dto.StudentRegisterRequest) (*models.Student, error)
	Login(ctx context.Context, req *dto.StudentLoginRequest) (*models.Student, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo repositories.StudentStore
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.StudentStore) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

// Register creates a student account with a bcrypt password hash
func (s *studentServiceImpl) Register(ctx context.Context, req *dto.StudentRegisterRequest) (*models.Student, error) {
	if !validation.AllPresent(req.Name, req.RollNo, req.Password) {
		return nil, apperrors.NewValidationError("All fields are required.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationError("Password must be at most 72 bytes.")
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:         strings.TrimSpace(req.Name),
		RollNo:       strings.TrimSpace(req.RollNo),
		PasswordHash: hash,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrRollNoAlreadyExists) {
			return nil, apperrors.NewConflictError("Roll number already registered. Please login.")
		}
		return nil, fmt.Errorf("error registering student: %w", err)
	}
	return student, nil
}

// Login verifies a roll number and password
func (s *studentServiceImpl) Login(ctx context.Context, req *dto.StudentLoginRequest) (*models.Student, error) {
	rollNo := strings.TrimSpace(req.RollNo)
	if !validation.AllPresent(rollNo, req.Password) {
		return nil, apperrors.NewValidationError("Roll number and password are required.")
	}

	student, err := s.studentRepo.GetByRollNo(ctx, rollNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if !auth.CheckPassword(student.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return student, nil
}
