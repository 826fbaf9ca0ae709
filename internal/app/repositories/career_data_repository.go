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

// ICareerDataRepository abstracts career data lookups for services and tests
type ICareerDataRepository interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.CareerData, error)
}

// CareerDataRepository handles career data database operations
type CareerDataRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCareerDataRepository creates a new CareerDataRepository
func NewCareerDataRepository(db *pgxpool.Pool) *CareerDataRepository {
	return &CareerDataRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByStudentID retrieves the 1:1 career data row for a student
func (r *CareerDataRepository) GetByStudentID(ctx context.Context, studentID string) (*models.CareerData, error) {
	var data models.CareerData
	sql, args, err := r.sb.Select("id", "student_id", "level", "program", "school", "campus").
		From("career_data").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get career data SQL")
		return nil, fmt.Errorf("failed to build get career data query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&data.ID, &data.StudentID, &data.Level, &data.Program, &data.School, &data.Campus)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCareerDataNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning career data row")
		return nil, fmt.Errorf("error retrieving career data: %w", err)
	}

	return &data, nil
}
