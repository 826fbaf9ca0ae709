package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	PersonalDataRepository *PersonalDataRepository
	CareerDataRepository   *CareerDataRepository
	ScheduleRepository     *ScheduleRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		PersonalDataRepository: NewPersonalDataRepository(db),
		CareerDataRepository:   NewCareerDataRepository(db),
		ScheduleRepository:     NewScheduleRepository(db),
	}
}
