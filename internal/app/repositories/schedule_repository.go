package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/senati/mobile-backend/internal/app/models"
	"github.com/senati/mobile-backend/internal/pkg/logger"
)

// IScheduleRepository abstracts schedule lookups for services and tests
type IScheduleRepository interface {
	GetByStudentAndDate(ctx context.Context, studentID string, date time.Time) ([]*models.ScheduleEntry, error)
}

// ScheduleRepository handles schedule database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByStudentAndDate retrieves all entries for a student on an exact date,
// ordered ascending by start time, row id as tie-break. An empty slice means
// no classes that day, not an error.
func (r *ScheduleRepository) GetByStudentAndDate(ctx context.Context, studentID string, date time.Time) ([]*models.ScheduleEntry, error) {
	sql, args, err := r.sb.Select(
		"id",
		"student_id",
		"date",
		"to_char(start_time, 'HH24:MI') AS start_time",
		"to_char(end_time, 'HH24:MI') AS end_time",
		"course_name",
		"instructor_name",
		"location",
	).
		From("schedule_entries").
		Where(squirrel.Eq{"student_id": studentID, "date": date}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get schedule SQL")
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing get schedule query")
		return nil, fmt.Errorf("error retrieving schedule entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.ScheduleEntry, 0)
	for rows.Next() {
		var entry models.ScheduleEntry
		if err := rows.Scan(
			&entry.ID, &entry.StudentID, &entry.Date,
			&entry.StartTime, &entry.EndTime,
			&entry.CourseName, &entry.InstructorName, &entry.Location,
		); err != nil {
			logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning schedule entry row")
			return nil, fmt.Errorf("error scanning schedule entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule entries: %w", err)
	}

	return entries, nil
}
