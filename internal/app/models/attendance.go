package models

// DayAttendance is a student's whole-day mark.
type DayAttendance struct {
	DayAttendanceID int64            `json:"dayAttendanceId" db:"dayattendanceid"`
	Rollnumber      string           `json:"rollnumber" db:"rollnumber"`
	Degree          string           `json:"degree" db:"degree"`
	Branch          string           `json:"branch" db:"branch"`
	Batch           string           `json:"batch" db:"batch"`
	SemesterNumber  int              `json:"semesterNumber" db:"semesternumber"`
	AttendanceDate  string           `json:"attendanceDate" db:"attendancedate"` // YYYY-MM-DD
	Status          AttendanceStatus `json:"status" db:"status"`
	Audit
}

// PeriodAttendance is a student's mark for one period of one course.
type PeriodAttendance struct {
	PeriodAttendanceID int64            `json:"periodAttendanceId" db:"periodattendanceid"`
	Rollnumber         string           `json:"rollnumber" db:"rollnumber"`
	StaffID            int64            `json:"staffId" db:"staffid"`
	CourseCode         string           `json:"courseCode" db:"coursecode"`
	Degree             string           `json:"degree" db:"degree"`
	Branch             string           `json:"branch" db:"branch"`
	Batch              string           `json:"batch" db:"batch"`
	SemesterNumber     int              `json:"semesterNumber" db:"semesternumber"`
	DayOfWeek          DayOfWeek        `json:"dayOfWeek" db:"dayofweek"`
	PeriodNumber       int              `json:"periodNumber" db:"periodnumber"`
	AttendanceDate     string           `json:"attendanceDate" db:"attendancedate"` // YYYY-MM-DD
	Status             AttendanceStatus `json:"status" db:"status"`
	Audit
}
