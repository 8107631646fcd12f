package models

// Student is identified by roll number and enrolled against a course.
type Student struct {
	Rollnumber     string     `json:"rollnumber" db:"rollnumber"`
	Name           string     `json:"name" db:"name"`
	CourseCode     string     `json:"courseCode" db:"coursecode"`
	Degree         string     `json:"degree" db:"degree"`
	Branch         string     `json:"branch" db:"branch"`
	Batch          string     `json:"batch" db:"batch"`
	SemesterNumber int        `json:"semesterNumber" db:"semesternumber"`
	IsActive       ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}
