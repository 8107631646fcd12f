package dto

// CreateCourseRequest is the POST /semester/{semesterId}/courses body. The
// semester comes from the path; a semesterId in the body is ignored.
type CreateCourseRequest struct {
	CourseCode     string `json:"courseCode" validate:"required,max=50" example:"CS301"`
	SemesterID     int64  `json:"-"`
	BatchID        int64  `json:"batchId" validate:"required" example:"1"`
	CourseName     string `json:"courseName" validate:"required,max=100" example:"Operating Systems"`
	CourseType     string `json:"courseType" validate:"required,oneof=INTEGRAL PRACTICAL THEORY" example:"THEORY"`
	CourseCategory string `json:"courseCategory" validate:"required,oneof=OEC PEC CORE" example:"CORE"`
	MinMark        *int   `json:"minMark" validate:"required,min=1" example:"40"`
	MaxMark        *int   `json:"maxMark" validate:"required,min=1" example:"100"`
	IsActive       string `json:"isActive" validate:"omitempty,yesno" example:"YES"`
	CreatedBy      string `json:"createdBy" example:"admin"`
}

// UpdateCourseRequest is the PUT /course/{courseCode} body.
type UpdateCourseRequest struct {
	SemesterID     int64  `json:"semesterId" validate:"required" example:"4"`
	BatchID        int64  `json:"batchId" validate:"required" example:"1"`
	CourseName     string `json:"courseName" validate:"required,max=100" example:"Operating Systems"`
	CourseType     string `json:"courseType" validate:"required,oneof=INTEGRAL PRACTICAL THEORY" example:"THEORY"`
	CourseCategory string `json:"courseCategory" validate:"required,oneof=OEC PEC CORE" example:"CORE"`
	MinMark        *int   `json:"minMark" validate:"required,min=1" example:"40"`
	MaxMark        *int   `json:"maxMark" validate:"required,min=1" example:"100"`
	IsActive       string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy      string `json:"updatedBy" example:"admin"`
}
