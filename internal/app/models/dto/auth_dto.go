package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required" example:"001234567"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	StudentID   string `json:"student_id" example:"001234567"`
	StudentName string `json:"student_name" example:"Juan Carlos Flores García"`
}
