package dto

// CreateSemesterRequest is the POST /semester body. Every field is required.
type CreateSemesterRequest struct {
	BatchID        int64  `json:"batchId" validate:"required" example:"1"`
	Degree         string `json:"degree" validate:"required" example:"BTech"`
	Branch         string `json:"branch" validate:"required" example:"CSE"`
	SemesterNumber int    `json:"semesterNumber" validate:"required,min=1,max=8" example:"3"`
	StartDate      string `json:"startDate" validate:"required,date" example:"2024-01-10"`
	EndDate        string `json:"endDate" validate:"required,date" example:"2024-05-20"`
	CreatedBy      string `json:"createdBy" validate:"required" example:"admin"`
	UpdatedBy      string `json:"updatedBy" validate:"required" example:"admin"`
}

// UpdateSemesterRequest is the PUT /semester/{semesterId} body.
type UpdateSemesterRequest struct {
	BatchID        int64  `json:"batchId" validate:"required" example:"1"`
	Degree         string `json:"degree" validate:"required" example:"BTech"`
	Branch         string `json:"branch" validate:"required" example:"CSE"`
	SemesterNumber int    `json:"semesterNumber" validate:"required,min=1,max=8" example:"3"`
	StartDate      string `json:"startDate" validate:"required,date" example:"2024-01-10"`
	EndDate        string `json:"endDate" validate:"required,date" example:"2024-05-20"`
	IsActive       string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy      string `json:"updatedBy" validate:"required" example:"admin"`
}

// SemesterQuery is the GET /semester filter. batch is the start year.
type SemesterQuery struct {
	Batch          string `form:"batch" example:"2024"`
	Degree         string `form:"degree" example:"BTech"`
	Branch         string `form:"branch" example:"CSE"`
	SemesterNumber string `form:"semesterNumber" example:"3"`
}
