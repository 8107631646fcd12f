package dto

// CreateStaffCourseRequest is the POST /staff-courses body.
type CreateStaffCourseRequest struct {
	StaffID    int64  `json:"staffId" validate:"required" example:"2"`
	CourseCode string `json:"courseCode" validate:"required" example:"CS301"`
	CreatedBy  string `json:"createdBy" example:"admin"`
}
