package dto

// CreateStudentRequest is the POST /students body.
type CreateStudentRequest struct {
	Rollnumber     string `json:"rollnumber" validate:"required,max=20" example:"21CS042"`
	Name           string `json:"name" validate:"required,max=100" example:"Kiran Das"`
	CourseCode     string `json:"courseCode" validate:"required" example:"CS301"`
	Degree         string `json:"degree" validate:"required" example:"BTech"`
	Branch         string `json:"branch" validate:"required" example:"CSE"`
	Batch          string `json:"batch" validate:"required" example:"2024"`
	SemesterNumber int    `json:"semesterNumber" validate:"required,min=1,max=8" example:"3"`
	CreatedBy      string `json:"createdBy" example:"admin"`
}

// UpdateStudentRequest is the PUT /students/{rollnumber} body.
type UpdateStudentRequest struct {
	Name           string `json:"name" validate:"required,max=100" example:"Kiran Das"`
	CourseCode     string `json:"courseCode" validate:"required" example:"CS301"`
	Degree         string `json:"degree" validate:"required" example:"BTech"`
	Branch         string `json:"branch" validate:"required" example:"CSE"`
	Batch          string `json:"batch" validate:"required" example:"2024"`
	SemesterNumber int    `json:"semesterNumber" validate:"required,min=1,max=8" example:"4"`
	IsActive       string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy      string `json:"updatedBy" example:"admin"`
}

// StudentQuery filters GET /students. Every filter is optional.
type StudentQuery struct {
	Degree         string `form:"degree"`
	Branch         string `form:"branch"`
	Batch          string `form:"batch"`
	SemesterNumber int    `form:"semesterNumber" validate:"omitempty,min=1,max=8"`
}
