package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/dberrors"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	student.ID = uuid.New().String()
	student.CreatedAt = time.Now().UTC()

	sql, args, err := r.sb.Insert("students").
		Columns("id", "name", "roll_no", "password_hash", "created_at").
		Values(student.ID, student.Name, student.RollNo, student.PasswordHash, student.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_roll_no_key") {
			logger.Warn().Str("rollNo", student.RollNo).Msg("Attempted to create student with duplicate roll number")
			return apperrors.ErrRollNoAlreadyExists
		}
		logger.Error().Err(err).Str("rollNo", student.RollNo).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Str("studentID", student.ID).Str("rollNo", student.RollNo).Msg("Student created successfully")
	return nil
}

// GetByRollNo retrieves a student by roll number
func (r *StudentRepository) GetByRollNo(ctx context.Context, rollNo string) (*models.Student, error) {
	sql, args, err := r.sb.Select("id::text", "name", "roll_no", "password_hash", "created_at").
		From("students").
		Where(squirrel.Eq{"roll_no": rollNo}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by roll number SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.Name, &student.RollNo, &student.PasswordHash, &student.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("rollNo", rollNo).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// MemoryStudentRepository keeps students in process for the memory driver
type MemoryStudentRepository struct {
	mu       sync.Mutex
	byRollNo map[string]models.Student
}

// NewMemoryStudentRepository creates an empty in-memory student store
func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{byRollNo: make(map[string]models.Student)}
}

// Create stores a student, rejecting duplicate roll numbers
func (r *MemoryStudentRepository) Create(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byRollNo[student.RollNo]; exists {
		return apperrors.ErrRollNoAlreadyExists
	}
	student.ID = uuid.New().String()
	student.CreatedAt = time.Now().UTC()
	r.byRollNo[student.RollNo] = *student
	return nil
}

// GetByRollNo retrieves a student by roll number
func (r *MemoryStudentRepository) GetByRollNo(_ context.Context, rollNo string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	student, ok := r.byRollNo[rollNo]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return &student, nil
}
