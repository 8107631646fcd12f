package dto

// CreateDayAttendanceRequest is the POST /attendance/day body.
type CreateDayAttendanceRequest struct {
	Rollnumber     string `json:"rollnumber" validate:"required" example:"21CS042"`
	Degree         string `json:"degree" validate:"required" example:"BTech"`
	Branch         string `json:"branch" validate:"required" example:"CSE"`
	Batch          string `json:"batch" validate:"required" example:"2024"`
	SemesterNumber int    `json:"semesterNumber" validate:"required,min=1,max=8" example:"3"`
	AttendanceDate string `json:"attendanceDate" validate:"required,date" example:"2024-02-05"`
	Status         string `json:"status" validate:"required,oneof=P A" example:"P"`
	CreatedBy      string `json:"createdBy" example:"admin"`
}

// UpdateAttendanceRequest is the PUT body for day and period marks; only the
// status can change.
type UpdateAttendanceRequest struct {
	Status    string `json:"status" validate:"required,oneof=P A" example:"A"`
	UpdatedBy string `json:"updatedBy" example:"admin"`
}

// CreatePeriodAttendanceRequest is the POST /attendance/period body. When
// dayOfWeek is omitted it is derived from attendanceDate.
type CreatePeriodAttendanceRequest struct {
	Rollnumber     string `json:"rollnumber" validate:"required" example:"21CS042"`
	StaffID        int64  `json:"staffId" validate:"required" example:"2"`
	CourseCode     string `json:"courseCode" validate:"required" example:"CS301"`
	Degree         string `json:"degree" validate:"required" example:"BTech"`
	Branch         string `json:"branch" validate:"required" example:"CSE"`
	Batch          string `json:"batch" validate:"required" example:"2024"`
	SemesterNumber int    `json:"semesterNumber" validate:"required,min=1,max=8" example:"3"`
	DayOfWeek      string `json:"dayOfWeek" validate:"omitempty,oneof=MON TUE WED THU FRI SAT" example:"MON"`
	PeriodNumber   int    `json:"periodNumber" validate:"required,min=1,max=8" example:"2"`
	AttendanceDate string `json:"attendanceDate" validate:"required,date" example:"2024-02-05"`
	Status         string `json:"status" validate:"required,oneof=P A" example:"P"`
	CreatedBy      string `json:"createdBy" example:"admin"`
}

// DayAttendanceQuery filters GET /attendance/day.
type DayAttendanceQuery struct {
	Date   string `form:"date"`
	Degree string `form:"degree"`
	Branch string `form:"branch"`
	Batch  string `form:"batch"`
}

// PeriodAttendanceQuery filters GET /attendance/period.
type PeriodAttendanceQuery struct {
	CourseCode string `form:"courseCode"`
	Date       string `form:"date"`
}

// BulkDayAttendanceRequest is the POST /attendance/day/bulk body. The records
// are stored together or not at all.
type BulkDayAttendanceRequest struct {
	Records []CreateDayAttendanceRequest `json:"records" validate:"required,min=1,dive"`
}
