package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/senati/mobile-backend/internal/app/models"
	"github.com/senati/mobile-backend/internal/pkg/apperrors"
	"github.com/senati/mobile-backend/internal/pkg/logger"
)

// IStudentRepository abstracts student lookups for services and tests
type IStudentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
	HasAny(ctx context.Context) (bool, error)
}

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

// GetByID retrieves a student by identifier
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	sql, args, err := r.sb.Select("id", "password_hash", "first_name", "last_name", "dni").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.PasswordHash, &student.FirstName, &student.LastName, &student.DNI)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// HasAny reports whether any student row exists. Used by the seeding path to
// decide whether demo data should be inserted.
func (r *StudentRepository) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	sql, args, err := r.sb.Select("1").
		From("students").
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building students exists SQL")
		return false, fmt.Errorf("failed to build students exists query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking students existence")
		return false, fmt.Errorf("error checking students existence: %w", err)
	}

	return exists, nil
}
