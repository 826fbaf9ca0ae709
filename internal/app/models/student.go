package models

// Student defines the student model based on the 'students' table.
// The identifier is both the primary key and the login name; accounts are
// provisioned out of band, never through the API.
type Student struct {
	ID           string `json:"id" db:"id" example:"001234567"`
	PasswordHash string `json:"-" db:"password_hash"`
	FirstName    string `json:"first_name" db:"first_name" example:"Juan Carlos"`
	LastName     string `json:"last_name" db:"last_name" example:"Flores García"`
	DNI          string `json:"dni" db:"dni" example:"12345678"`

	// Relations (populated when needed)
	PersonalData *PersonalData `json:"personal_data,omitempty"`
	CareerData   *CareerData   `json:"career_data,omitempty"`
}

// FullName returns the display name used in login responses.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// PersonalData defines the 1:1 contact record based on the 'personal_data' table.
type PersonalData struct {
	ID        int64   `json:"id" db:"id"`
	StudentID string  `json:"student_id" db:"student_id"`
	Email     string  `json:"email" db:"email"`
	Phone     *string `json:"phone,omitempty" db:"phone"`   // Pointer for potential NULL
	Address   *string `json:"address,omitempty" db:"address"` // Pointer for potential NULL
}

// CareerData defines the 1:1 academic record based on the 'career_data' table.
type CareerData struct {
	ID        int64  `json:"id" db:"id"`
	StudentID string `json:"student_id" db:"student_id"`
	Level     string `json:"level" db:"level" example:"Profesional Técnico"`
	Program   string `json:"program" db:"program" example:"Desarrollo de Software"`
	School    string `json:"school" db:"school"`
	Campus    string `json:"campus" db:"campus"`
}
