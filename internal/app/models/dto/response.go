package dto

import "time"

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// SubmissionResponse is returned after a document has been stored
type SubmissionResponse struct {
	Message string `json:"message" example:"Survey submitted successfully"`
	ID      string `json:"id" example:"65f1c2a9e4b0a1b2c3d4e5f6"`
}

// ErrorResponse carries the failure reason of a request
type ErrorResponse struct {
	Error string `json:"error" example:"validation failed: rating must be at most 5"`
}

// HealthResponse reports service and database liveness
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Message   string    `json:"message" example:"Campus survey API is running"`
	Timestamp time.Time `json:"timestamp" example:"2024-03-01T12:00:00Z"`
	Database  string    `json:"database" example:"Connected"`
}

// Submission messages
const (
	SurveySubmittedMessage   = "Survey submitted successfully"
	FeedbackSubmittedMessage = "Feedback submitted successfully"
)

// NewErrorResponse builds an ErrorResponse from err
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}
