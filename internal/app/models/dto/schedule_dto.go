package dto

// ScheduleEntryResponse represents one class block in a daily schedule
type ScheduleEntryResponse struct {
	ID             int64  `json:"id"`
	Date           string `json:"date" example:"2024-01-28"`
	StartTime      string `json:"start_time" example:"07:00"`
	EndTime        string `json:"end_time" example:"10:00"`
	CourseName     string `json:"course_name"`
	InstructorName string `json:"instructor_name"`
	Location       string `json:"location"`
}

// ScheduleResponse represents a student's schedule for a single date.
// Entries may be empty; a day without classes is a successful result.
type ScheduleResponse struct {
	Date    string                  `json:"date" example:"2024-01-28"`
	Entries []ScheduleEntryResponse `json:"entries"`
}
