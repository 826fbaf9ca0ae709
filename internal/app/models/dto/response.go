package dto

// MessageResponse represents a simple informational response body
type MessageResponse struct {
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

// HealthResponse represents the health check body
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
