package dto

// CreateCourseOutcomeRequest is the POST /course/{courseCode}/outcomes body.
type CreateCourseOutcomeRequest struct {
	CourseCode string `json:"-"`
	CONumber   string `json:"coNumber" validate:"required,max=10" example:"CO1"`
	Weightage  *int   `json:"weightage" validate:"required,gte=0,lte=100" example:"20"`
	CreatedBy  string `json:"createdBy" example:"admin"`
}

// UpdateCourseOutcomeRequest is the PUT /outcomes/{coId} body.
type UpdateCourseOutcomeRequest struct {
	CONumber  string `json:"coNumber" validate:"required,max=10" example:"CO1"`
	Weightage *int   `json:"weightage" validate:"required,gte=0,lte=100" example:"25"`
	IsActive  string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy string `json:"updatedBy" example:"admin"`
}

// CreateCOToolRequest is the POST /outcomes/{coId}/tools body.
type CreateCOToolRequest struct {
	COID      int64  `json:"-"`
	ToolName  string `json:"toolName" validate:"required,max=50" example:"Quiz 1"`
	Weightage *int   `json:"weightage" validate:"required,gte=0,lte=100" example:"30"`
	CreatedBy string `json:"createdBy" example:"admin"`
}

// UpdateCOToolRequest is the PUT /tools/{toolId} body.
type UpdateCOToolRequest struct {
	ToolName  string `json:"toolName" validate:"required,max=50" example:"Quiz 1"`
	Weightage *int   `json:"weightage" validate:"required,gte=0,lte=100" example:"30"`
	IsActive  string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy string `json:"updatedBy" example:"admin"`
}

// CreateStudentMarkRequest is the POST /tools/{toolId}/marks body.
type CreateStudentMarkRequest struct {
	ToolID        int64  `json:"-"`
	Rollnumber    string `json:"rollnumber" validate:"required" example:"21CS042"`
	MarksObtained *int   `json:"marksObtained" validate:"required,gte=0" example:"17"`
	CreatedBy     string `json:"createdBy" example:"admin"`
}

// UpdateStudentMarkRequest is the PUT /marks/{studentToolId} body.
type UpdateStudentMarkRequest struct {
	MarksObtained *int   `json:"marksObtained" validate:"required,gte=0" example:"18"`
	IsActive      string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy     string `json:"updatedBy" example:"admin"`
}
