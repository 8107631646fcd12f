package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_004"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Status  string    `json:"status" example:"failure"`
	Message string    `json:"message" example:"All fields are required"`
	Code    ErrorCode `json:"code" example:"VAL_001"`
	Fields  []string  `json:"fields,omitempty" example:"degree,branch"`
	Error   string    `json:"error,omitempty" example:"connection refused"`
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Status:  StatusFailure,
		Message: message,
		Code:    code,
	}
}

// WithFields names the offending request fields
func (e *ErrorResponse) WithFields(fields ...string) *ErrorResponse {
	e.Fields = fields
	return e
}

// WithError attaches the underlying failure text
func (e *ErrorResponse) WithError(err string) *ErrorResponse {
	e.Error = err
	return e
}
