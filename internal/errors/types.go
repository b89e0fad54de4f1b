package errors

// ErrorResponse is the JSON envelope returned for every failed request.
// Success is always false so clients can branch on a single field.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`             // error code (e.g. "invalid_credentials")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// ErrorInfo carries the classification result for an underlying error.
type ErrorInfo struct {
	category  string
	sanitized string
}
