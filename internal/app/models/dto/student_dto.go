package dto

// PersonalDataResponse represents a student's contact information joined with
// the identity fields from the student record.
type PersonalDataResponse struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	DNI       string  `json:"dni"`
	StudentID string  `json:"student_id"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// CareerDataResponse represents a student's program information
type CareerDataResponse struct {
	Level   string `json:"level"`
	Program string `json:"program"`
	School  string `json:"school"`
	Campus  string `json:"campus"`
}
