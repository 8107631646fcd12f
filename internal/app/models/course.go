package models

// Course is a subject offered within a semester. CourseCode is the natural
// primary key referenced by students, staff assignments, outcomes, the
// timetable and period attendance.
type Course struct {
	CourseCode     string         `json:"courseCode" db:"coursecode"`
	SemesterID     int64          `json:"semesterId" db:"semesterid"`
	BatchID        int64          `json:"batchId" db:"batchid"`
	CourseName     string         `json:"courseName" db:"coursename"`
	CourseType     CourseType     `json:"courseType" db:"coursetype"`
	CourseCategory CourseCategory `json:"courseCategory" db:"coursecategory"`
	MinMark        int            `json:"minMark" db:"minmark"`
	MaxMark        int            `json:"maxMark" db:"maxmark"`
	IsActive       ActiveFlag     `json:"isActive" db:"isactive"`
	Audit
}
