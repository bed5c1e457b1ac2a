package dto

// ErrorResponse is the body of every single-message failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every invalid field at once.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}
