package models

// StaffCourse assigns a staff user to a course.
type StaffCourse struct {
	StaffCourseID int64      `json:"staffCourseId" db:"staffcourseid"`
	StaffID       int64      `json:"staffId" db:"staffid"`
	CourseCode    string     `json:"courseCode" db:"coursecode"`
	IsActive      ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}
