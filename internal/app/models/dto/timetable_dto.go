package dto

// CreateTimetableRequest is the POST /timetable body.
type CreateTimetableRequest struct {
	StaffID      int64  `json:"staffId" validate:"required" example:"2"`
	CourseCode   string `json:"courseCode" validate:"required" example:"CS301"`
	Degree       string `json:"degree" validate:"required" example:"BTech"`
	Branch       string `json:"branch" validate:"required" example:"CSE"`
	Batch        string `json:"batch" validate:"required" example:"2024"`
	DayOfWeek    string `json:"dayOfWeek" validate:"required,oneof=MON TUE WED THU FRI SAT" example:"MON"`
	PeriodNumber int    `json:"periodNumber" validate:"required,min=1,max=8" example:"2"`
	CreatedBy    string `json:"createdBy" example:"admin"`
}

// UpdateTimetableRequest is the PUT /timetable/{timetableId} body.
type UpdateTimetableRequest struct {
	StaffID      int64  `json:"staffId" validate:"required" example:"2"`
	CourseCode   string `json:"courseCode" validate:"required" example:"CS301"`
	Degree       string `json:"degree" validate:"required" example:"BTech"`
	Branch       string `json:"branch" validate:"required" example:"CSE"`
	Batch        string `json:"batch" validate:"required" example:"2024"`
	DayOfWeek    string `json:"dayOfWeek" validate:"required,oneof=MON TUE WED THU FRI SAT" example:"TUE"`
	PeriodNumber int    `json:"periodNumber" validate:"required,min=1,max=8" example:"3"`
	IsActive     string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy    string `json:"updatedBy" example:"admin"`
}

// TimetableQuery selects a staff member's slots or a class's slots.
type TimetableQuery struct {
	StaffID int64  `form:"staffId"`
	Degree  string `form:"degree"`
	Branch  string `form:"branch"`
	Batch   string `form:"batch"`
}
