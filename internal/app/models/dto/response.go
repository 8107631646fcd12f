package dto

// ListResponse wraps collection reads: {message:"success", data:[...]}.
type ListResponse struct {
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data"`
}

// NewListResponse creates a collection envelope
func NewListResponse(data interface{}) ListResponse {
	return ListResponse{
		Message: StatusSuccess,
		Data:    data,
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Semester with id 3 deleted successfully"`
}

// NewSuccessResponse creates a status+message envelope
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{
		Status:  StatusSuccess,
		Message: message,
	}
}

// UpdatedResponse carries the row as it is after an update.
type UpdatedResponse struct {
	Status  string      `json:"status" example:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message" example:"Semester updated successfully"`
}

// NewUpdatedResponse creates an update envelope
func NewUpdatedResponse(data interface{}, message string) UpdatedResponse {
	return UpdatedResponse{
		Status:  StatusSuccess,
		Data:    data,
		Message: message,
	}
}

// NewCreatedResponse creates {status, message, <idKey>: id}. The id key
// differs per resource (semesterId, courseId, batchId, ...).
func NewCreatedResponse(message, idKey string, id interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status":  StatusSuccess,
		"message": message,
		idKey:     id,
	}
}

// SemesterCreatedResponse documents the POST /semester body.
type SemesterCreatedResponse struct {
	Status     string `json:"status" example:"success"`
	Message    string `json:"message" example:"Semester added successfully"`
	SemesterID int64  `json:"semesterId" example:"12"`
}

// CourseCreatedResponse documents the POST /semester/{semesterId}/courses body.
type CourseCreatedResponse struct {
	Status   string `json:"status" example:"success"`
	Message  string `json:"message" example:"Course added successfully"`
	CourseID string `json:"courseId" example:"CS301"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
