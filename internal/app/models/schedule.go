package models

import "time"

// ScheduleEntry defines a single class block based on the 'schedule_entries'
// table. A student owns zero or more entries per date; duplicates and overlaps
// are permitted and preserved.
type ScheduleEntry struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      string    `json:"student_id" db:"student_id"`
	Date           time.Time `json:"date" db:"date"`
	StartTime      string    `json:"start_time" db:"start_time" example:"07:00"` // HH:MM, 24h clock
	EndTime        string    `json:"end_time" db:"end_time" example:"10:00"`
	CourseName     string    `json:"course_name" db:"course_name"`
	InstructorName string    `json:"instructor_name" db:"instructor_name"`
	Location       string    `json:"location" db:"location"`
}
