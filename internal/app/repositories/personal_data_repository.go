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

// IPersonalDataRepository abstracts personal data lookups for services and tests
type IPersonalDataRepository interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.PersonalData, error)
}

// PersonalDataRepository handles personal data database operations
type PersonalDataRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPersonalDataRepository creates a new PersonalDataRepository
func NewPersonalDataRepository(db *pgxpool.Pool) *PersonalDataRepository {
	return &PersonalDataRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByStudentID retrieves the 1:1 personal data row for a student
func (r *PersonalDataRepository) GetByStudentID(ctx context.Context, studentID string) (*models.PersonalData, error) {
	var data models.PersonalData
	sql, args, err := r.sb.Select("id", "student_id", "email", "phone", "address").
		From("personal_data").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get personal data SQL")
		return nil, fmt.Errorf("failed to build get personal data query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&data.ID, &data.StudentID, &data.Email, &data.Phone, &data.Address)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonalDataNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning personal data row")
		return nil, fmt.Errorf("error retrieving personal data: %w", err)
	}

	return &data, nil
}
