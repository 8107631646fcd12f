package models

// Semester is a numbered term (1-8) within a batch's program.
type Semester struct {
	SemesterID     int64      `json:"semesterId" db:"semesterid"`
	BatchID        int64      `json:"batchId" db:"batchid"`
	Degree         string     `json:"degree" db:"degree"`
	Branch         string     `json:"branch" db:"branch"`
	SemesterNumber int        `json:"semesterNumber" db:"semesternumber"`
	StartDate      string     `json:"startDate" db:"startdate"` // YYYY-MM-DD
	EndDate        string     `json:"endDate" db:"enddate"`     // YYYY-MM-DD
	IsActive       ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}
