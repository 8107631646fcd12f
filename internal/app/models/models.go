package models

import "time"

// ActiveFlag is the soft-delete marker stored in every isActive column.
type ActiveFlag string

const (
	ActiveYes ActiveFlag = "YES"
	ActiveNo  ActiveFlag = "NO"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN"
	RoleStaff RoleType = "STAFF"
)

// CourseType is the delivery mode of a course.
type CourseType string

const (
	CourseTypeIntegral  CourseType = "INTEGRAL"
	CourseTypePractical CourseType = "PRACTICAL"
	CourseTypeTheory    CourseType = "THEORY"
)

// CourseCategory classifies a course within the curriculum.
type CourseCategory string

const (
	CourseCategoryOEC  CourseCategory = "OEC"
	CourseCategoryPEC  CourseCategory = "PEC"
	CourseCategoryCore CourseCategory = "CORE"
)

// DayOfWeek is a teaching day; Sunday is not one.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MON"
	Tuesday   DayOfWeek = "TUE"
	Wednesday DayOfWeek = "WED"
	Thursday  DayOfWeek = "THU"
	Friday    DayOfWeek = "FRI"
	Saturday  DayOfWeek = "SAT"
)

// DayOfWeekFromTime maps a calendar date onto a teaching day.
func DayOfWeekFromTime(t time.Time) (DayOfWeek, bool) {
	switch t.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	case time.Saturday:
		return Saturday, true
	}
	return "", false
}

// AttendanceStatus is P (present) or A (absent).
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "P"
	StatusAbsent  AttendanceStatus = "A"
)

// Audit holds the bookkeeping columns shared by every table.
// db tags are lowercase because PostgreSQL folds the unquoted identifiers.
type Audit struct {
	CreatedBy   *string   `json:"createdBy" db:"createdby"`
	UpdatedBy   *string   `json:"updatedBy" db:"updatedby"`
	CreatedDate time.Time `json:"createdDate" db:"createddate"`
	UpdatedDate time.Time `json:"updatedDate" db:"updateddate"`
}
