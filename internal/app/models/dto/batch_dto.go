package dto

// CreateBatchRequest is the POST /batch body.
type CreateBatchRequest struct {
	Degree     string `json:"degree" validate:"required,max=50" example:"BTech"`
	Branch     string `json:"branch" validate:"required,max=100" example:"CSE"`
	Batch      string `json:"batch" validate:"required,len=4,numeric" example:"2024"`
	BatchYears string `json:"batchYears" validate:"required,max=20" example:"2024-2028"`
	CreatedBy  string `json:"createdBy" example:"admin"`
}

// UpdateBatchRequest is the PUT /batch/{batchId} body.
type UpdateBatchRequest struct {
	Degree     string `json:"degree" validate:"required,max=50" example:"BTech"`
	Branch     string `json:"branch" validate:"required,max=100" example:"CSE"`
	Batch      string `json:"batch" validate:"required,len=4,numeric" example:"2024"`
	BatchYears string `json:"batchYears" validate:"required,max=20" example:"2024-2028"`
	IsActive   string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy  string `json:"updatedBy" example:"admin"`
}
