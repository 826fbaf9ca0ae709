// Package seed inserts the demo data set used by the mobile client during
// development. It is an administrative path, never reachable from the API.
package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/senati/mobile-backend/internal/app/repositories"
	"github.com/senati/mobile-backend/internal/db"
	"github.com/senati/mobile-backend/internal/pkg/auth"
	"github.com/senati/mobile-backend/internal/pkg/dberrors"
	"github.com/senati/mobile-backend/internal/pkg/helpers"
)

type scheduleRow struct {
	date       string
	startTime  string
	endTime    string
	course     string
	instructor string
	location   string
}

// CreateDemoData seeds one complete student record (credentials, personal
// data, career data and a day of schedule entries) when the store is empty.
// All inserts run in a single transaction: any failure rolls back and leaves
// the store unchanged.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, hasher auth.PasswordHasher, lgr zerolog.Logger) error {
	studentRepo := repositories.NewStudentRepository(dbPool)

	exists, err := studentRepo.HasAny(ctx)
	if err != nil {
		return fmt.Errorf("error checking for existing students: %w", err)
	}
	if exists {
		lgr.Info().Msg("Database already contains students, skipping demo data")
		return nil
	}

	passwordHash, err := hasher.Hash("password123")
	if err != nil {
		return fmt.Errorf("error hashing demo password: %w", err)
	}

	const studentID = "001234567"
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	err = db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := sb.Insert("students").
			Columns("id", "password_hash", "first_name", "last_name", "dni").
			Values(studentID, passwordHash, "Juan Carlos", "Flores García", "12345678").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build student insert: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error inserting demo student: %w", err)
		}

		sql, args, err = sb.Insert("personal_data").
			Columns("student_id", "email", "phone", "address").
			Values(studentID, "1234567@senati.pe",
				helpers.GetNullString(helpers.StringPtr("987 654 321")),
				helpers.GetNullString(helpers.StringPtr("Avenida Horizonte Azul"))).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build personal data insert: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error inserting demo personal data: %w", err)
		}

		sql, args, err = sb.Insert("career_data").
			Columns("student_id", "level", "program", "school", "campus").
			Values(studentID, "Profesional Técnico", "Desarrollo de Software",
				"Tecnologías de la información", "IND-ETI").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build career data insert: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error inserting demo career data: %w", err)
		}

		scheduleRows := []scheduleRow{
			{"2024-01-28", "07:00", "10:00", "SEMINARIO COMPLEMENT PRÁCT I", "GARCIA FORTUNA, MOISES EDUARDO", "IND - TORRE B 60TB - 200"},
			{"2024-01-28", "10:15", "13:15", "SEMINARIO COMPLEMENT PRÁCT I", "GARCIA FORTUNA, MOISES EDUARDO", "IND - TORRE B 60TB - 200"},
			{"2024-01-28", "14:00", "15:30", "DESARROLLO HUMANO", "OLAZA GARIBAY, JENNY ROSARIO", "IND - TORRE C 60TC - 504"},
			{"2024-01-28", "15:45", "17:15", "DESARROLLO HUMANO", "OLAZA GARIBAY, JENNY ROSARIO", "IND - TORRE C 60TC - 504"},
		}

		insert := sb.Insert("schedule_entries").
			Columns("student_id", "date", "start_time", "end_time", "course_name", "instructor_name", "location")
		for _, row := range scheduleRows {
			insert = insert.Values(studentID, row.date, row.startTime, row.endTime, row.course, row.instructor, row.location)
		}

		sql, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build schedule insert: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error inserting demo schedule entries: %w", err)
		}

		return nil
	})
	if err != nil {
		// Another instance may have seeded between the HasAny check and the insert.
		if dberrors.IsDuplicateConstraintError(err, "students_pkey") {
			lgr.Info().Msg("Demo data already seeded by another instance")
			return nil
		}
		return err
	}

	lgr.Info().Str("studentID", studentID).Msg("Demo data created")
	return nil
}
